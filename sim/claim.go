package sim

import (
	"fmt"
	"math"

	"github.com/g2sim/g2sim/registry"
)

// Claim ties one derived registry value to either an experimental reference
// entry or an exact expected number. It is the single record type behind
// every formula in the document: the same struct drives validation,
// Markdown rendering, and the JSON exports.
type Claim struct {
	ID    string
	Label string
	LaTeX string
	Plain string

	// Target is the registry path holding the derived value.
	Target string

	// ReferencePath names the reference.* entry to compare against.
	// Empty for exact claims, which compare against Expected instead.
	ReferencePath string
	Expected      float64

	// MaxSigma is the sigma budget when the reference carries an
	// uncertainty. AbsTol is the absolute tolerance used for exact claims
	// and for references whose uncertainty is too small to be a meaningful
	// yardstick for a closed-form expression.
	MaxSigma float64
	AbsTol   float64

	Status registry.Status

	// Steps is the free-form derivation narrative rendered under the
	// formula in FORMULAS.md.
	Steps []string
}

// Validation is the outcome of evaluating one Claim against the registry.
type Validation struct {
	ClaimID     string
	Target      string
	Value       float64
	Reference   float64
	Uncertainty float64
	Sigma       float64 // |value-reference| / uncertainty; 0 when uncertainty is 0
	AbsErr      float64
	Validated   bool
	Status      registry.Status
}

// Validate reads the claim's target and reference from the registry and
// checks the tolerance. A validation failure is reported in the returned
// record, not as an error; errors mean the registry lookup itself failed.
func (c Claim) Validate(reg *registry.Registry) (Validation, error) {
	value, err := reg.Float(c.Target)
	if err != nil {
		return Validation{}, fmt.Errorf("claim %s: %w", c.ID, err)
	}

	v := Validation{
		ClaimID: c.ID,
		Target:  c.Target,
		Value:   value,
		Status:  c.Status,
	}

	if c.ReferencePath == "" {
		v.Reference = c.Expected
		v.AbsErr = math.Abs(value - c.Expected)
		v.Validated = v.AbsErr <= c.AbsTol
		return v, nil
	}

	ref, err := reg.Float(c.ReferencePath)
	if err != nil {
		return Validation{}, fmt.Errorf("claim %s: %w", c.ID, err)
	}
	unc, err := reg.Uncertainty(c.ReferencePath)
	if err != nil {
		return Validation{}, fmt.Errorf("claim %s: %w", c.ID, err)
	}

	v.Reference = ref
	v.Uncertainty = unc
	v.AbsErr = math.Abs(value - ref)
	if unc > 0 {
		v.Sigma = v.AbsErr / unc
	}

	switch {
	case c.MaxSigma > 0 && unc > 0:
		v.Validated = v.Sigma <= c.MaxSigma
	default:
		v.Validated = v.AbsErr <= c.AbsTol
	}
	return v, nil
}
