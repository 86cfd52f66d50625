package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g2sim/g2sim/registry"
)

func writeSeeds(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seeds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSeeds_FullOverride(t *testing.T) {
	path := writeSeeds(t, "b3: 16\ndim_l: 60\ndim_r: 68\nxi_torsion: 0.5\n")
	seeds, err := LoadSeeds(path)
	require.NoError(t, err)
	assert.Equal(t, registry.Seeds{B3: 16, DimL: 60, DimR: 68, XiTorsion: 0.5}, seeds)
}

func TestLoadSeeds_PartialOverrideKeepsDefaults(t *testing.T) {
	path := writeSeeds(t, "b3: 16\n")
	seeds, err := LoadSeeds(path)
	require.NoError(t, err)

	want := registry.DefaultSeeds()
	want.B3 = 16
	assert.Equal(t, want, seeds)
}

func TestLoadSeeds_MissingFile(t *testing.T) {
	_, err := LoadSeeds(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadSeeds_MalformedYAML(t *testing.T) {
	path := writeSeeds(t, "b3: [not a number\n")
	_, err := LoadSeeds(path)
	require.Error(t, err)
}
