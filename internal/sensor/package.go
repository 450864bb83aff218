package sensor

import (
	"path/filepath"
	"strings"
)

// Package is one transmission from a fitness sensor: a workout type code
// plus the raw measurement values that go with it.
type Package struct {
	ID     string
	Code   string
	Values []float64
}

// Format describes the wire layout packages arrive in.
type Format int

const (
	FormatStream Format = iota // line-oriented: CODE;v1;v2;...
	FormatBatch                // YAML list of type/data entries
)

// DetectFormat returns the expected input format for a file name.
func DetectFormat(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatBatch
	default:
		return FormatStream
	}
}
