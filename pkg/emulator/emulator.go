// Package emulator returns canned responses for named tools instead of
// performing real network I/O, and records call history for test assertions.
//
// An Emulator is single-owner state: it holds no locks, so one instance
// belongs to one logical test context at a time. Tests that run in parallel
// construct one Emulator per worker.
package emulator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Config describes all mocks and emulator-wide defaults.
type Config struct {
	// Mocks are the tool mocks registered at construction time.
	Mocks []ToolMock `json:"mocks" yaml:"mocks"`
	// DefaultLatencyMs is the fallback latency applied when a selected
	// response has none of its own.
	DefaultLatencyMs float64 `json:"default_latency_ms,omitempty" yaml:"default_latency_ms,omitempty"`
	// RecordCalls enables the call log.
	RecordCalls bool `json:"record_calls" yaml:"record_calls"`
}

// Validate checks every mock in the config, reporting the first violation.
func (c Config) Validate() error {
	if c.DefaultLatencyMs < 0 {
		return fmt.Errorf("default_latency_ms must be >= 0, got %g", c.DefaultLatencyMs)
	}
	for i, m := range c.Mocks {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("mocks[%d]: %w", i, err)
		}
	}
	return nil
}

// Emulator emulates tool calls using pre-configured mock responses.
type Emulator struct {
	mocks            map[string]ToolMock
	cursors          map[string]int
	log              callLog
	rng              *rand.Rand
	now              func() time.Time
	defaultLatencyMs float64
	recordCalls      bool
}

// Option customizes an Emulator at construction time.
type Option func(*Emulator)

// WithRand replaces the emulator's random source. Seeding it makes the
// random behavior and the error-injection draws deterministic in tests.
func WithRand(r *rand.Rand) Option {
	return func(e *Emulator) { e.rng = r }
}

// WithClock replaces the timestamp source used for call records.
func WithClock(now func() time.Time) Option {
	return func(e *Emulator) { e.now = now }
}

// New constructs an Emulator from cfg. It fails when any mock violates its
// constraints, so misconfigured pools surface here rather than at call time.
func New(cfg Config, opts ...Option) (*Emulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Emulator{
		mocks:            make(map[string]ToolMock, len(cfg.Mocks)),
		cursors:          make(map[string]int),
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		now:              time.Now,
		defaultLatencyMs: cfg.DefaultLatencyMs,
		recordCalls:      cfg.RecordCalls,
	}
	for _, m := range cfg.Mocks {
		m = m.normalized()
		e.mocks[m.ToolName] = m
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Call executes a mocked tool call and returns the configured response.
//
// Latency simulation runs after selection and before recording, so the
// recorded timestamp approximates when the call completed. The latency wait
// honors ctx so a cooperative caller is never busy-spun; ctx expiry only cuts
// the wait short, the call itself still completes and records.
func (e *Emulator) Call(ctx context.Context, toolName string, input map[string]any) (Response, error) {
	mock, ok := e.mocks[toolName]
	if !ok {
		return Response{}, &ToolNotFoundError{Tool: toolName}
	}

	resp := e.selectResponse(mock, input)

	latency := resp.LatencyMs
	if latency <= 0 {
		latency = e.defaultLatencyMs
	}
	if latency > 0 {
		sleepWithContext(ctx, time.Duration(latency*float64(time.Millisecond)))
	}

	if e.recordCalls {
		e.log.append(CallRecord{
			ID:        uuid.NewString(),
			ToolName:  toolName,
			Input:     input,
			Response:  resp,
			Timestamp: e.now().UTC(),
		})
	}

	return resp, nil
}

// AddMock registers or replaces a mock at runtime. Replacing a mock does not
// reset its sequence cursor: swapping pools mid-sequence continues from the
// current position rather than restarting the pagination.
func (e *Emulator) AddMock(mock ToolMock) error {
	if err := mock.Validate(); err != nil {
		return err
	}
	mock = mock.normalized()
	e.mocks[mock.ToolName] = mock
	return nil
}

// RecordedCalls returns an independent snapshot of the call log, oldest
// first. Mutating the returned slice does not affect the emulator.
func (e *Emulator) RecordedCalls() []CallRecord {
	return e.log.snapshot()
}

// CallCount returns how many recorded calls were made to toolName.
func (e *Emulator) CallCount(toolName string) int {
	n := 0
	for _, rec := range e.log.records {
		if rec.ToolName == toolName {
			n++
		}
	}
	return n
}

// LastCall returns the most recent recorded call, if any.
func (e *Emulator) LastCall() (CallRecord, bool) {
	if len(e.log.records) == 0 {
		return CallRecord{}, false
	}
	return e.log.records[len(e.log.records)-1], true
}

// Reset clears the call log and every sequence cursor, restoring the
// emulator to its just-constructed state. Registered mocks are kept.
func (e *Emulator) Reset() {
	e.log.clear()
	e.cursors = make(map[string]int)
}

// sleepWithContext blocks for d or until ctx is done, whichever comes first.
func sleepWithContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
