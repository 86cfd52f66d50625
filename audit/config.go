package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls what the scanner tolerates.
type Config struct {
	// Allow is the numeric allow-list. A literal equal to any entry is
	// never flagged.
	Allow []float64 `yaml:"allow"`

	// ExemptFiles are slash-separated path suffixes that are skipped
	// entirely. The registry seed file is exempt because it is the one
	// place numbers are allowed to live.
	ExemptFiles []string `yaml:"exempt_files"`

	// ForbiddenImports are import path prefixes that bypass the registry
	// by shipping physical constants of their own.
	ForbiddenImports []string `yaml:"forbidden_imports"`
}

// DefaultConfig returns the scanner defaults: the structural constants
// {0, 1, -1, 2, 10, 100}, the registry seed file exemption, and the gonum
// physical-constant packages on the deny list.
func DefaultConfig() Config {
	return Config{
		Allow:       []float64{0, 1, -1, 2, 10, 100},
		ExemptFiles: []string{"registry/seeds.go"},
		ForbiddenImports: []string{
			"gonum.org/v1/gonum/unit/constant",
		},
	}
}

// LoadConfig reads a YAML config file. Missing fields fall back to the
// defaults, so a config file may extend just the allow-list.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read audit config %q: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse audit config %q: %w", path, err)
	}
	return cfg, nil
}

func (c Config) allowed(v float64) bool {
	for _, a := range c.Allow {
		if v == a {
			return true
		}
	}
	return false
}

func (c Config) exempt(path string) bool {
	slashed := filepath.ToSlash(path)
	for _, suffix := range c.ExemptFiles {
		if strings.HasSuffix(slashed, suffix) {
			return true
		}
	}
	return false
}

func (c Config) forbiddenImport(path string) bool {
	for _, prefix := range c.ForbiddenImports {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
