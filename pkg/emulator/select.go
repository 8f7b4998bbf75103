package emulator

import "reflect"

// selectResponse picks a response for one invocation of mock. The error
// injection gate runs before behavior dispatch so it overrides every
// behavior, including static and sequential.
func (e *Emulator) selectResponse(mock ToolMock, input map[string]any) Response {
	if mock.ErrorRate > 0 && e.rng.Float64() < mock.ErrorRate {
		return injectedErrorResponse(mock.ToolName)
	}

	switch mock.Behavior {
	case BehaviorStatic:
		return mock.Responses[0]
	case BehaviorSequential:
		pos := e.cursors[mock.ToolName]
		// The cursor grows without bound; only the modulo indexes the pool.
		e.cursors[mock.ToolName] = pos + 1
		return mock.Responses[pos%len(mock.Responses)]
	case BehaviorRandom:
		return mock.Responses[e.rng.Intn(len(mock.Responses))]
	case BehaviorError:
		return toolErrorResponse(mock.ToolName)
	case BehaviorConditional:
		return matchConditional(mock, input)
	}

	// Unreachable for validated mocks; registration normalizes the behavior.
	return mock.Responses[0]
}

// matchConditional returns the first response for which every condition
// key is present in input with an equal value. When nothing matches, the
// last response is the designed catch-all, so pool authors should place
// their fallback last.
func matchConditional(mock ToolMock, input map[string]any) Response {
	for _, resp := range mock.Responses {
		if conditionsMatch(mock.Conditions, input) {
			return resp
		}
	}
	return mock.Responses[len(mock.Responses)-1]
}

// conditionsMatch reports whether all key/value pairs in conditions appear
// in input with equal values. An empty condition set matches trivially.
func conditionsMatch(conditions map[string]any, input map[string]any) bool {
	for k, want := range conditions {
		got, ok := input[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
