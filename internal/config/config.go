// Package config loads emulator configuration from YAML or JSON documents
// and resolves server settings from the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/invincible-jha/aumai-toolemu/pkg/emulator"
)

// fileConfig mirrors emulator.Config with a tri-state record_calls so an
// omitted key defaults to true.
type fileConfig struct {
	Mocks            []emulator.ToolMock `json:"mocks" yaml:"mocks"`
	DefaultLatencyMs float64             `json:"default_latency_ms" yaml:"default_latency_ms"`
	RecordCalls      *bool               `json:"record_calls" yaml:"record_calls"`
}

// Load reads, parses, and validates an emulator config file. The format is
// chosen by extension: .yaml/.yml parse as YAML, anything else as JSON.
// The first constraint violation found is returned with its mock index.
func Load(path string) (emulator.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return emulator.Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return emulator.Config{}, fmt.Errorf("parse yaml config: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return emulator.Config{}, fmt.Errorf("parse json config: %w", err)
		}
	}

	cfg := emulator.Config{
		Mocks:            fc.Mocks,
		DefaultLatencyMs: fc.DefaultLatencyMs,
		RecordCalls:      fc.RecordCalls == nil || *fc.RecordCalls,
	}
	if err := cfg.Validate(); err != nil {
		return emulator.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
