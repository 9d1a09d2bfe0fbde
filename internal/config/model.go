package config

import (
	"errors"
	"fmt"
)

// Solver modes accepted by Config.Mode.
const (
	ModeSequential = "sequential"
	ModeConcurrent = "concurrent"
	ModeBoth       = "both"
)

// Sentinel validation errors.
var (
	ErrInvalidMode      = errors.New("config: mode must be 'sequential', 'concurrent' or 'both'")
	ErrInvalidWorkers   = errors.New("config: workers must be at least 1")
	ErrInvalidSource    = errors.New("config: source must be non-negative")
	ErrInvalidLogLevel  = errors.New("config: log level must be 'debug', 'info', 'warn' or 'error'")
	ErrInvalidLogFormat = errors.New("config: log format must be 'text' or 'json'")
	ErrInvalidThreshold = errors.New("config: inf_edge_threshold must be positive")
	ErrMissingGraphPath = errors.New("config: graph path is required")
)

// Config holds everything one solve needs.
type Config struct {
	GraphPath string
	Mode      string
	Workers   int
	Source    int

	// MaxDistance < 0 and InfEdgeThreshold == 0 mean "not set".
	MaxDistance      int64
	InfEdgeThreshold int64

	Print     bool // per-vertex report
	ShowGraph bool // adjacency dump before solving
	Time      bool // elapsed-time report

	LogLevel  string
	LogFormat string

	MetricsPath string // Prometheus text dump, "" to skip
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Mode:             ModeConcurrent,
		Workers:          16,
		Source:           0,
		MaxDistance:      -1,
		InfEdgeThreshold: 0,
		LogLevel:         "info",
		LogFormat:        "text",
	}
}

// Validate checks every field and returns the first violation.
func (c *Config) Validate() error {
	if c.GraphPath == "" {
		return ErrMissingGraphPath
	}
	switch c.Mode {
	case ModeSequential, ModeConcurrent, ModeBoth:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidMode, c.Mode)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidWorkers, c.Workers)
	}
	if c.Source < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSource, c.Source)
	}
	if c.InfEdgeThreshold < 0 {
		return fmt.Errorf("%w: inf_edge_threshold=%d", ErrInvalidThreshold, c.InfEdgeThreshold)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogLevel, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidLogFormat, c.LogFormat)
	}

	return nil
}
