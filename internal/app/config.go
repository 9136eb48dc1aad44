package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/vk/axisdefaults/internal/encode"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPaths   []string // layout files or directories
	OutputFormat encode.Format
	OutputPath   string // empty writes to the app's output writer

	// Editable overrides the layouts' editable flag when non-nil.
	Editable *bool

	LogFormat       string
	LogLevel        string
	HealthcheckPort int

	BridgeURL          string
	BridgeNamespace    string
	BridgeTimeout      time.Duration
	InsecureSkipVerify bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = encode.JSON
	}
	if _, err := encode.ParseFormat(string(cfg.OutputFormat)); err != nil {
		return nil, err
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("invalid healthcheck port %d", cfg.HealthcheckPort)
	}
	if cfg.BridgeTimeout < 0 {
		return nil, errors.New("bridge timeout cannot be negative")
	}
	return &cfg, nil
}
