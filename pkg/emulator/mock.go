package emulator

import (
	"fmt"
	"strings"
)

// ToolMock configures the emulated behavior of a single tool.
type ToolMock struct {
	// ToolName identifies the tool being mocked. Unique within an emulator.
	ToolName string `json:"tool_name" yaml:"tool_name"`
	// Behavior selects the response-selection strategy. Empty means static.
	Behavior Behavior `json:"behavior,omitempty" yaml:"behavior,omitempty"`
	// Responses is the pool of canned responses the behavior draws from.
	Responses []Response `json:"responses,omitempty" yaml:"responses,omitempty"`
	// ErrorRate is the probability in [0, 1] of injecting a synthetic 500
	// before behavior dispatch runs.
	ErrorRate float64 `json:"error_rate,omitempty" yaml:"error_rate,omitempty"`
	// Conditions holds the key/value pairs matched against the input payload
	// when Behavior is conditional. Ignored by all other behaviors.
	Conditions map[string]any `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// Validate checks the mock and every response in its pool. Behaviors that
// index into the pool are rejected here when the pool is empty so the fault
// surfaces at construction instead of at call time.
func (m ToolMock) Validate() error {
	if strings.TrimSpace(m.ToolName) == "" {
		return fmt.Errorf("tool_name must not be empty")
	}
	if !m.Behavior.Valid() {
		return fmt.Errorf("unknown behavior %q", m.Behavior)
	}
	if m.ErrorRate < 0 || m.ErrorRate > 1 {
		return fmt.Errorf("error_rate must be between 0.0 and 1.0, got %g", m.ErrorRate)
	}
	if len(m.Responses) == 0 && m.Behavior.indexesPool() {
		return fmt.Errorf("behavior %q requires at least one response", m.normalized().Behavior)
	}
	for i, r := range m.Responses {
		if err := r.Validate(); err != nil {
			return fmt.Errorf("responses[%d]: %w", i, err)
		}
	}
	return nil
}

// normalized returns a copy with the tool name trimmed and the default
// behavior made explicit.
func (m ToolMock) normalized() ToolMock {
	m.ToolName = strings.TrimSpace(m.ToolName)
	if m.Behavior == "" {
		m.Behavior = BehaviorStatic
	}
	return m
}
