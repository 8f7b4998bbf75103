package emulator

import "time"

// CallRecord captures a single emulated invocation for later assertions.
// Records are immutable once appended.
type CallRecord struct {
	// ID uniquely identifies the record within the process.
	ID string `json:"id" yaml:"id"`
	// ToolName is the tool that was called.
	ToolName string `json:"tool_name" yaml:"tool_name"`
	// Input is the payload supplied by the caller.
	Input map[string]any `json:"input" yaml:"input"`
	// Response is the response that was actually returned.
	Response Response `json:"response" yaml:"response"`
	// Timestamp is the UTC time at which the call completed.
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// callLog is an append-only recorder of CallRecords in chronological order.
type callLog struct {
	records []CallRecord
}

func (l *callLog) append(rec CallRecord) {
	l.records = append(l.records, rec)
}

func (l *callLog) clear() {
	l.records = nil
}

// snapshot returns an independent copy preserving insertion order.
func (l *callLog) snapshot() []CallRecord {
	out := make([]CallRecord, len(l.records))
	copy(out, l.records)
	return out
}
