// Package docsync renders the registry and engine results into the
// generated artifacts: FORMULAS.md and AutoGenerated/named_constants.json.
// It has no computational role; everything it writes is derived from a
// completed engine pass.
package docsync

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/g2sim/g2sim/registry"
	"github.com/g2sim/g2sim/sim"
)

// FormulasFile is the Markdown artifact name.
const FormulasFile = "FORMULAS.md"

// ConstantsFile is the JSON registry snapshot, under AutoGenerated/.
const ConstantsFile = "AutoGenerated/named_constants.json"

// NamedConstant is one registry entry in the JSON export.
type NamedConstant struct {
	Path        string  `json:"path"`
	Value       any     `json:"value"`
	Source      string  `json:"source"`
	Status      string  `json:"status"`
	Uncertainty float64 `json:"uncertainty,omitempty"`
}

// Sync writes both artifacts under outDir. sims must be in engine order;
// results must come from a completed pass over the same set.
func Sync(outDir string, reg *registry.Registry, sims []sim.Simulation, results []sim.Result) error {
	md := RenderFormulas(sims, results)
	path := filepath.Join(outDir, FormulasFile)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", FormulasFile, err)
	}

	data, err := NamedConstants(reg)
	if err != nil {
		return err
	}
	constPath := filepath.Join(outDir, filepath.FromSlash(ConstantsFile))
	if err := os.MkdirAll(filepath.Dir(constPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(constPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", ConstantsFile, err)
	}
	return nil
}

// NamedConstants serializes the registry snapshot as indented JSON.
func NamedConstants(reg *registry.Registry) ([]byte, error) {
	entries := reg.Snapshot()
	constants := make([]NamedConstant, 0, len(entries))
	for _, e := range entries {
		constants = append(constants, NamedConstant{
			Path:        e.Path,
			Value:       e.Param.Value,
			Source:      e.Param.Source,
			Status:      string(e.Param.Status),
			Uncertainty: e.Param.Uncertainty,
		})
	}
	data, err := json.MarshalIndent(constants, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal named constants: %w", err)
	}
	return data, nil
}

// RenderFormulas produces the FORMULAS.md text.
func RenderFormulas(sims []sim.Simulation, results []sim.Result) string {
	byID := make(map[string]sim.Result, len(results))
	for _, r := range results {
		byID[r.Meta.ID] = r
	}

	var b strings.Builder
	b.WriteString("# Derived Constants\n\n")
	b.WriteString("Generated by g2sim. Do not edit by hand; rerun `g2sim docs`.\n\n")

	var totalClaims, failedClaims int
	for _, r := range results {
		for _, v := range r.Validations {
			totalClaims++
			if !v.Validated {
				failedClaims++
			}
		}
	}
	fmt.Fprintf(&b, "Modules: %d. Claims: %d. Failing: %d.\n", len(results), totalClaims, failedClaims)

	for _, s := range sims {
		meta := s.Metadata()
		section := s.Section()
		fmt.Fprintf(&b, "\n## %s %s\n\n", section.Number, section.Title)
		fmt.Fprintf(&b, "Module `%s` v%s (%s)\n", meta.ID, meta.Version, meta.Domain)

		for _, block := range section.Blocks {
			switch block.Kind {
			case sim.BlockFormula:
				fmt.Fprintf(&b, "\n$$%s$$\n", block.LaTeX)
			default:
				fmt.Fprintf(&b, "\n%s\n", block.Text)
			}
		}

		result, ok := byID[meta.ID]
		if !ok || len(result.Validations) == 0 {
			continue
		}

		plainByID := make(map[string]string, len(s.Claims()))
		for _, claim := range s.Claims() {
			plainByID[claim.ID] = claim.Plain
		}

		b.WriteString("\n| Claim | Formula | Value | Reference | Sigma | Status | Validated |\n")
		b.WriteString("|---|---|---|---|---|---|---|\n")
		for _, v := range result.Validations {
			fmt.Fprintf(&b, "| %s | %s | %.9g | %.9g | %.2f | %s | %s |\n",
				v.ClaimID, plainByID[v.ClaimID], v.Value, v.Reference, v.Sigma, v.Status, passFail(v.Validated))
		}

		for _, claim := range s.Claims() {
			if len(claim.Steps) == 0 {
				continue
			}
			fmt.Fprintf(&b, "\nDerivation of `%s`:\n\n", claim.ID)
			for _, step := range claim.Steps {
				fmt.Fprintf(&b, "- %s\n", step)
			}
		}
	}
	return b.String()
}

func passFail(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
