package emulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseValidation(t *testing.T) {
	tests := []struct {
		name    string
		resp    Response
		wantErr string
	}{
		{name: "ok", resp: Response{StatusCode: 200}},
		{name: "lower bound", resp: Response{StatusCode: 100}},
		{name: "upper bound", resp: Response{StatusCode: 599}},
		{name: "below range", resp: Response{StatusCode: 99}, wantErr: "status_code"},
		{name: "above range", resp: Response{StatusCode: 600}, wantErr: "status_code"},
		{name: "zero status", resp: Response{}, wantErr: "status_code"},
		{name: "negative latency", resp: Response{StatusCode: 200, LatencyMs: -1}, wantErr: "latency_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.resp.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToolMockValidation(t *testing.T) {
	ok := []Response{{StatusCode: 200}}

	tests := []struct {
		name    string
		mock    ToolMock
		wantErr string
	}{
		{
			name: "valid static",
			mock: ToolMock{ToolName: "search", Behavior: BehaviorStatic, Responses: ok},
		},
		{
			name: "empty behavior defaults to static",
			mock: ToolMock{ToolName: "search", Responses: ok},
		},
		{
			name: "error behavior allows empty pool",
			mock: ToolMock{ToolName: "broken", Behavior: BehaviorError},
		},
		{
			name:    "empty tool name",
			mock:    ToolMock{ToolName: "", Responses: ok},
			wantErr: "tool_name",
		},
		{
			name:    "whitespace tool name",
			mock:    ToolMock{ToolName: "   ", Responses: ok},
			wantErr: "tool_name",
		},
		{
			name:    "unknown behavior",
			mock:    ToolMock{ToolName: "search", Behavior: "roundrobin", Responses: ok},
			wantErr: "behavior",
		},
		{
			name:    "error rate above one",
			mock:    ToolMock{ToolName: "search", Responses: ok, ErrorRate: 1.5},
			wantErr: "error_rate",
		},
		{
			name:    "negative error rate",
			mock:    ToolMock{ToolName: "search", Responses: ok, ErrorRate: -0.1},
			wantErr: "error_rate",
		},
		{
			name:    "static without responses",
			mock:    ToolMock{ToolName: "search", Behavior: BehaviorStatic},
			wantErr: "at least one response",
		},
		{
			name:    "sequential without responses",
			mock:    ToolMock{ToolName: "pager", Behavior: BehaviorSequential},
			wantErr: "at least one response",
		},
		{
			name:    "conditional without responses",
			mock:    ToolMock{ToolName: "weather", Behavior: BehaviorConditional},
			wantErr: "at least one response",
		},
		{
			name: "invalid nested response",
			mock: ToolMock{
				ToolName:  "search",
				Responses: []Response{{StatusCode: 200}, {StatusCode: 42}},
			},
			wantErr: "responses[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mock.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestToolNameTrimmedOnRegistration(t *testing.T) {
	emu, err := New(Config{
		Mocks: []ToolMock{{
			ToolName:  "  search  ",
			Responses: []Response{{StatusCode: 200}},
		}},
	})
	require.NoError(t, err)

	_, err = emu.Call(context.Background(), "search", nil)
	assert.NoError(t, err)
}

func TestConfigValidation(t *testing.T) {
	err := Config{DefaultLatencyMs: -1}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default_latency_ms")

	err = Config{Mocks: []ToolMock{{ToolName: ""}}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mocks[0]")
}
