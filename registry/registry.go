package registry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
)

// Status tags the provenance class of a registry parameter.
type Status string

const (
	// StatusEstablished marks externally measured reference values
	// (CODATA, PDG, Planck, SH0ES, NuFIT, DESI).
	StatusEstablished Status = "ESTABLISHED"
	// StatusGeometric marks the raw seed integers of the framework.
	StatusGeometric Status = "GEOMETRIC"
	// StatusDerived marks values computed from seeds by exact arithmetic.
	StatusDerived Status = "DERIVED"
	// StatusPredicted marks derived values compared against a measurement.
	StatusPredicted Status = "PREDICTED"
	// StatusPhenomenological marks fitted coefficients that are not derived.
	StatusPhenomenological Status = "PHENOMENOLOGICAL"
	// StatusSpeculative marks claims the framework itself does not stand behind.
	StatusSpeculative Status = "SPECULATIVE"
)

var (
	// ErrNotFound is returned when a path has never been set.
	ErrNotFound = errors.New("parameter not found")
	// ErrWrongType is returned by the typed accessors on a type mismatch.
	ErrWrongType = errors.New("parameter has wrong type")
)

// Param is a single registry entry: a scalar value with provenance tags.
type Param struct {
	Value       any
	Source      string
	Status      Status
	Uncertainty float64 // 1-sigma experimental uncertainty; 0 when not applicable
}

// Entry pairs a dotted path with its Param, used for sorted snapshots.
type Entry struct {
	Path  string
	Param Param
}

// Registry maps dotted string paths to tagged scalar parameters.
// It is created once by New, seeded from a Seeds struct, and then extended
// by each simulation as it runs. Access is sequential; there is no locking
// because the driver runs simulations one at a time.
type Registry struct {
	seeds  Seeds
	params map[string]Param
}

// New returns a Registry populated with the default seed constants and the
// experimental reference table.
func New() *Registry {
	return NewWithSeeds(DefaultSeeds())
}

// NewWithSeeds returns a Registry populated from the given seeds.
func NewWithSeeds(s Seeds) *Registry {
	r := &Registry{
		seeds:  s,
		params: make(map[string]Param),
	}
	r.loadSeeds()
	r.loadReferences()
	return r
}

// Seeds returns the seed block the registry was built from.
func (r *Registry) Seeds() Seeds { return r.seeds }

// B3 is the third Betti number seed, the root of every derivation.
func (r *Registry) B3() int { return r.seeds.B3 }

// DimL is the left sector dimension seed.
func (r *Registry) DimL() int { return r.seeds.DimL }

// DimR is the right sector dimension seed.
func (r *Registry) DimR() int { return r.seeds.DimR }

// ChiEff is the effective Euler factor, b3^2/4.
func (r *Registry) ChiEff() int { return r.seeds.B3 * r.seeds.B3 / 4 }

// XiTorsion is the fitted torsion exponent. It is not derived from the
// seeds; its provenance status is PHENOMENOLOGICAL.
func (r *Registry) XiTorsion() float64 { return r.seeds.XiTorsion }

// Get returns the Param stored under path, or a wrapped ErrNotFound.
func (r *Registry) Get(path string) (Param, error) {
	p, ok := r.params[path]
	if !ok {
		return Param{}, fmt.Errorf("get %q: %w", path, ErrNotFound)
	}
	return p, nil
}

// Float returns the value under path as a float64. Integer values are
// widened; any other type is ErrWrongType.
func (r *Registry) Float(path string) (float64, error) {
	p, err := r.Get(path)
	if err != nil {
		return 0, err
	}
	switch v := p.Value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("float %q (%T): %w", path, p.Value, ErrWrongType)
	}
}

// Uncertainty returns the 1-sigma uncertainty stored under path.
func (r *Registry) Uncertainty(path string) (float64, error) {
	p, err := r.Get(path)
	if err != nil {
		return 0, err
	}
	return p.Uncertainty, nil
}

// Set stores value under path. It is an unconditional overwrite; a repeated
// Set on the same path replaces the previous entry and logs at debug level.
func (r *Registry) Set(path string, value any, source string, status Status) {
	if prev, ok := r.params[path]; ok && prev.Value != value {
		logrus.Debugf("registry: overwriting %s: %v -> %v", path, prev.Value, value)
	}
	r.params[path] = Param{Value: value, Source: source, Status: status}
}

// SetMeasured stores an externally measured value with its uncertainty.
func (r *Registry) SetMeasured(path string, value, uncertainty float64, source string) {
	r.params[path] = Param{
		Value:       value,
		Source:      source,
		Status:      StatusEstablished,
		Uncertainty: uncertainty,
	}
}

// Has reports whether path has been set.
func (r *Registry) Has(path string) bool {
	_, ok := r.params[path]
	return ok
}

// Len returns the number of stored parameters.
func (r *Registry) Len() int { return len(r.params) }

// Snapshot returns all entries sorted by path, for document generation.
func (r *Registry) Snapshot() []Entry {
	entries := make([]Entry, 0, len(r.params))
	for path, p := range r.params {
		entries = append(entries, Entry{Path: path, Param: p})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}
