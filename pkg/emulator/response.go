package emulator

import "fmt"

// Response is a single canned result returned by the emulator. It is a value
// type: once placed in a mock's pool it is shared by every selection of that
// mock and never mutated.
type Response struct {
	// StatusCode is an HTTP-style status code in [100, 599].
	StatusCode int `json:"status_code" yaml:"status_code"`
	// Body is the JSON-serialisable response payload.
	Body map[string]any `json:"body" yaml:"body"`
	// LatencyMs is the simulated latency for this response in milliseconds.
	// Zero means "use the emulator-wide default".
	LatencyMs float64 `json:"latency_ms" yaml:"latency_ms"`
	// Headers are HTTP-style response headers.
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Validate checks the response's field constraints. Violations are
// configuration faults and are never coerced or clamped.
func (r Response) Validate() error {
	if r.StatusCode < 100 || r.StatusCode > 599 {
		return fmt.Errorf("status_code must be 100-599, got %d", r.StatusCode)
	}
	if r.LatencyMs < 0 {
		return fmt.Errorf("latency_ms must be >= 0, got %g", r.LatencyMs)
	}
	return nil
}

// injectedErrorResponse is the synthetic response returned when the
// probabilistic error gate fires. It is a successful selection outcome,
// not an error of the engine.
func injectedErrorResponse(toolName string) Response {
	return Response{
		StatusCode: 500,
		Body:       map[string]any{"error": "injected_error", "tool": toolName},
	}
}

// toolErrorResponse is the synthetic response for BehaviorError mocks.
func toolErrorResponse(toolName string) Response {
	return Response{
		StatusCode: 500,
		Body:       map[string]any{"error": "tool_error", "tool": toolName},
	}
}
