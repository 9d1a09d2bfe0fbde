package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// File is the HCL form of a run configuration:
//
//	solver {
//	  mode               = "concurrent"
//	  workers            = 8
//	  source             = 0
//	  max_distance       = 1000
//	  inf_edge_threshold = 50
//	}
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
//	metrics {
//	  path = "metrics.prom"
//	}
//
// Every attribute is optional; absent ones keep the lower layer's value.
type File struct {
	Solver  *SolverBlock  `hcl:"solver,block"`
	Log     *LogBlock     `hcl:"log,block"`
	Metrics *MetricsBlock `hcl:"metrics,block"`
}

// SolverBlock is the `solver` block.
type SolverBlock struct {
	Mode             *string `hcl:"mode,optional"`
	Workers          *int    `hcl:"workers,optional"`
	Source           *int    `hcl:"source,optional"`
	MaxDistance      *int64  `hcl:"max_distance,optional"`
	InfEdgeThreshold *int64  `hcl:"inf_edge_threshold,optional"`
}

// LogBlock is the `log` block.
type LogBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// MetricsBlock is the `metrics` block.
type MetricsBlock struct {
	Path *string `hcl:"path,optional"`
}

// DecodeFile parses and decodes the HCL file at path.
func DecodeFile(path string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	return &f, nil
}

// DecodeBytes is DecodeFile for in-memory sources; filename is used in
// diagnostics only.
func DecodeBytes(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL %s: %w", filename, diags)
	}

	var f File
	diags = gohcl.DecodeBody(file.Body, nil, &f)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL %s: %w", filename, diags)
	}

	return &f, nil
}

// Apply overlays every attribute present in f onto c.
func (f *File) Apply(c *Config) {
	if f == nil {
		return
	}
	if s := f.Solver; s != nil {
		if s.Mode != nil {
			c.Mode = *s.Mode
		}
		if s.Workers != nil {
			c.Workers = *s.Workers
		}
		if s.Source != nil {
			c.Source = *s.Source
		}
		if s.MaxDistance != nil {
			c.MaxDistance = *s.MaxDistance
		}
		if s.InfEdgeThreshold != nil {
			c.InfEdgeThreshold = *s.InfEdgeThreshold
		}
	}
	if l := f.Log; l != nil {
		if l.Level != nil {
			c.LogLevel = *l.Level
		}
		if l.Format != nil {
			c.LogFormat = *l.Format
		}
	}
	if m := f.Metrics; m != nil && m.Path != nil {
		c.MetricsPath = *m.Path
	}
}
