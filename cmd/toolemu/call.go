package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/invincible-jha/aumai-toolemu/internal/config"
	"github.com/invincible-jha/aumai-toolemu/pkg/emulator"
)

// callOutput is the printed shape of an emulated response.
type callOutput struct {
	StatusCode int               `json:"status_code"`
	Body       map[string]any    `json:"body"`
	Headers    map[string]string `json:"headers"`
	LatencyMs  float64           `json:"latency_ms"`
}

// runCall invokes a single emulated tool and prints the response as JSON.
// With -config the registered mock is used; without it an ad-hoc static
// mock is built from -status and -body.
func runCall(args []string) int {
	fs := flag.NewFlagSet("call", flag.ExitOnError)
	toolName := fs.String("tool", "", "name of the tool to emulate")
	inputJSON := fs.String("input", "{}", "JSON string with input data")
	configPath := fs.String("config", "", "path to a config file to load mocks from")
	statusCode := fs.Int("status", 200, "response status code for ad-hoc calls (no config)")
	responseBody := fs.String("body", "", "JSON string for ad-hoc response body")
	_ = fs.Parse(args)

	if *toolName == "" {
		fmt.Fprintln(os.Stderr, "call: -tool is required")
		return 1
	}

	var input map[string]any
	if err := json.Unmarshal([]byte(*inputJSON), &input); err != nil {
		fmt.Fprintf(os.Stderr, "invalid JSON for -input: %v\n", err)
		return 1
	}

	var cfg emulator.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
			return 1
		}
		cfg = loaded
	} else {
		body := map[string]any{}
		if *responseBody != "" {
			if err := json.Unmarshal([]byte(*responseBody), &body); err != nil {
				fmt.Fprintf(os.Stderr, "invalid JSON for -body: %v\n", err)
				return 1
			}
		}
		cfg = emulator.Config{
			RecordCalls: true,
			Mocks: []emulator.ToolMock{
				{
					ToolName:  *toolName,
					Behavior:  emulator.BehaviorStatic,
					Responses: []emulator.Response{{StatusCode: *statusCode, Body: body}},
				},
			},
		}
	}

	emu, err := emulator.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build emulator: %v\n", err)
		return 1
	}

	resp, err := emu.Call(context.Background(), *toolName, input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	out, err := json.MarshalIndent(callOutput{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		Headers:    resp.Headers,
		LatencyMs:  resp.LatencyMs,
	}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode response: %v\n", err)
		return 1
	}
	fmt.Println(string(out))
	return 0
}
