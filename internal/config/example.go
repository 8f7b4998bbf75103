package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/invincible-jha/aumai-toolemu/pkg/emulator"
)

// Example returns a starter config demonstrating sequential pagination,
// error injection, and per-response latency.
func Example() emulator.Config {
	return emulator.Config{
		DefaultLatencyMs: 50,
		RecordCalls:      true,
		Mocks: []emulator.ToolMock{
			{
				ToolName: "search",
				Behavior: emulator.BehaviorSequential,
				Responses: []emulator.Response{
					{
						StatusCode: 200,
						LatencyMs:  50,
						Body:       map[string]any{"results": []any{"result_1", "result_2"}},
						Headers:    map[string]string{"content-type": "application/json"},
					},
					{
						StatusCode: 200,
						LatencyMs:  80,
						Body:       map[string]any{"results": []any{}},
						Headers:    map[string]string{"content-type": "application/json"},
					},
				},
			},
			{
				ToolName:  "calculator",
				Behavior:  emulator.BehaviorStatic,
				ErrorRate: 0.1,
				Responses: []emulator.Response{
					{
						StatusCode: 200,
						LatencyMs:  10,
						Body:       map[string]any{"result": 42},
					},
				},
			},
		},
	}
}

// WriteExample writes the example config as YAML to path. Existing files are
// only overwritten when force is set.
func WriteExample(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file already exists: %s (use force to overwrite)", path)
		}
	}
	data, err := yaml.Marshal(Example())
	if err != nil {
		return fmt.Errorf("marshal example config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write example config: %w", err)
	}
	return nil
}
