package sim

import "github.com/g2sim/g2sim/registry"

// Metadata identifies a derivation module and its place in the rendered
// document.
type Metadata struct {
	ID          string // stable identifier, e.g. "cosmology.dark_energy"
	Version     string
	Domain      string // sector: "topology", "particle", "cosmology"
	Title       string
	Description string
	Section     string // document section number, e.g. "5.2"
}

// Simulation is one derivation module. Implementations are stateless:
// Run reads the declared inputs from the registry, evaluates a closed-form
// expression, writes the declared outputs back, and returns them.
type Simulation interface {
	Metadata() Metadata

	// RequiredInputs lists the registry paths Run reads. A missing path
	// makes Run fail deterministically with registry.ErrNotFound.
	RequiredInputs() []string

	// OutputParams lists the registry paths Run writes.
	OutputParams() []string

	Run(reg *registry.Registry) (map[string]float64, error)

	// Claims describes the module's outputs for validation and rendering.
	Claims() []Claim

	// Section returns the narrative blocks for document generation.
	Section() Section
}

// Result captures one module's run within an engine pass.
type Result struct {
	Meta        Metadata
	Outputs     map[string]float64
	Validations []Validation
	Err         error
}

// Validated reports whether the run succeeded and every claim passed.
func (r Result) Validated() bool {
	if r.Err != nil {
		return false
	}
	for _, v := range r.Validations {
		if !v.Validated {
			return false
		}
	}
	return true
}
