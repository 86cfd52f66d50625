package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/g2sim/g2sim/registry"
)

// LoadSeeds reads a YAML seed override file. Fields left unset keep the
// default seed values, so a file may override just b3.
func LoadSeeds(path string) (registry.Seeds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return registry.Seeds{}, fmt.Errorf("read seeds %q: %w", path, err)
	}

	seeds := registry.DefaultSeeds()
	if err := yaml.Unmarshal(data, &seeds); err != nil {
		return registry.Seeds{}, fmt.Errorf("parse seeds %q: %w", path, err)
	}
	return seeds, nil
}
