package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFile_GhostLiteralWithLineNumber(t *testing.T) {
	src := []byte(`package x

var clean = 1

var dirty = 1.280145
`)
	violations, err := ScanFile("x.go", src, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, KindLiteral, violations[0].Kind)
	assert.Equal(t, "1.280145", violations[0].Literal)
	assert.Equal(t, 1.280145, violations[0].Value)
	assert.Equal(t, 5, violations[0].Line)
}

func TestScanFile_OnlyAllowedConstants(t *testing.T) {
	src := []byte(`package x

func f(a float64) float64 {
	b := a * 2
	c := b / 10
	d := c + 100
	e := d - 1
	if e == 0 {
		return -1
	}
	return e * 1
}
`)
	violations, err := ScanFile("x.go", src, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestScanFile_NegatedLiteralReportedOnce(t *testing.T) {
	src := []byte(`package x

var v = -1.5
`)
	violations, err := ScanFile("x.go", src, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, "-1.5", violations[0].Literal)
	assert.Equal(t, -1.5, violations[0].Value)
}

func TestScanFile_AllowedNegativeOne(t *testing.T) {
	src := []byte(`package x

var v = -1
`)
	violations, err := ScanFile("x.go", src, DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestScanFile_StrconvParseFloatString(t *testing.T) {
	src := []byte(`package x

import "strconv"

var v, _ = strconv.ParseFloat("137.035999", 64)
`)
	violations, err := ScanFile("x.go", src, DefaultConfig())
	require.NoError(t, err)

	var parsed []Violation
	for _, v := range violations {
		if v.Kind == KindParsedString {
			parsed = append(parsed, v)
		}
	}
	require.Len(t, parsed, 1)
	assert.Equal(t, "137.035999", parsed[0].Literal)
	assert.Equal(t, 137.035999, parsed[0].Value)
}

func TestScanFile_ForbiddenImport(t *testing.T) {
	src := []byte(`package x

import _ "gonum.org/v1/gonum/unit/constant"
`)
	violations, err := ScanFile("x.go", src, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, violations, 1)
	assert.Equal(t, KindImport, violations[0].Kind)
	assert.Equal(t, "gonum.org/v1/gonum/unit/constant", violations[0].Literal)
	assert.Equal(t, 3, violations[0].Line)
}

func TestScanFile_HexAndUnderscoreLiterals(t *testing.T) {
	src := []byte(`package x

var a = 0x10
var b = 1_000
`)
	violations, err := ScanFile("x.go", src, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, violations, 2)
	assert.Equal(t, 16.0, violations[0].Value)
	assert.Equal(t, 1000.0, violations[1].Value)
}

func TestScan_DirectoryWalkAndExemption(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "registry"), 0o755))

	// The exempt seed file may contain anything.
	seeds := []byte(`package registry

var xi = 1.280145
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "registry", "seeds.go"), seeds, 0o644))

	dirty := []byte(`package main

var leak = 1.280145
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), dirty, 0o644))

	report, err := Scan(dir, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, report.FilesScanned)
	require.Len(t, report.Violations, 1)
	assert.Equal(t, 3, report.Violations[0].Line)
	assert.False(t, report.Sterile)
}

func TestScan_SterileTree(t *testing.T) {
	dir := t.TempDir()
	clean := []byte(`package main

func main() {}
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), clean, 0o644))

	report, err := Scan(dir, DefaultConfig())
	require.NoError(t, err)
	assert.True(t, report.Sterile)
	assert.Empty(t, report.Violations)
}

func TestScan_SkipsHiddenAndUnderscoreDirs(t *testing.T) {
	dir := t.TempDir()
	for _, sub := range []string{"_examples", ".git", "vendor"} {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, sub), 0o755))
		dirty := []byte(`package x

var leak = 3.14159
`)
		require.NoError(t, os.WriteFile(filepath.Join(dir, sub, "x.go"), dirty, 0o644))
	}

	report, err := Scan(dir, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, report.FilesScanned)
	assert.True(t, report.Sterile)
}

func TestReport_WriteJSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "AutoGenerated", "sterility_report.json")

	report := &Report{
		Root:         "/src",
		FilesScanned: 2,
		Violations: []Violation{
			{File: "a.go", Line: 7, Column: 13, Literal: "1.280145", Value: 1.280145, Kind: KindLiteral},
		},
	}
	require.NoError(t, report.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *report, decoded)
}

func TestLoadConfig_ExtendsAllowList(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "audit.yaml")
	require.NoError(t, os.WriteFile(path, []byte("allow: [0, 1, -1, 2, 10, 100, 4, 8]\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.True(t, cfg.allowed(8))
	assert.False(t, cfg.allowed(3))
	// Unset fields keep the defaults.
	assert.NotEmpty(t, cfg.ExemptFiles)
}
