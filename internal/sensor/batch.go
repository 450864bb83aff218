package sensor

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// batchEntry mirrors one package in a YAML batch file.
type batchEntry struct {
	Type string    `yaml:"type"`
	Data []float64 `yaml:"data"`
}

// ReadBatch reads a YAML batch of sensor packages, one entry per package.
func ReadBatch(r io.Reader) ([]Package, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading batch: %w", err)
	}

	var entries []batchEntry
	if err := yaml.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parsing batch: %w", err)
	}

	packages := make([]Package, 0, len(entries))
	for i, entry := range entries {
		if entry.Type == "" {
			return nil, fmt.Errorf("batch entry %d: missing workout type", i)
		}
		packages = append(packages, Package{ID: uuid.NewString(), Code: entry.Type, Values: entry.Data})
	}

	return packages, nil
}
