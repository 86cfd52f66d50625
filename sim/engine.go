package sim

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/g2sim/g2sim/registry"
)

// Package-level registration list. Sector sub-packages append to it from
// init(), so a blank import is enough to assemble the default engine.
var (
	regMu      sync.Mutex
	registered []Simulation
)

// Register adds a simulation to the default set. Called from sector
// package init() functions.
func Register(s Simulation) {
	regMu.Lock()
	defer regMu.Unlock()
	registered = append(registered, s)
}

// Registered returns a copy of the registered simulations.
func Registered() []Simulation {
	regMu.Lock()
	defer regMu.Unlock()
	out := make([]Simulation, len(registered))
	copy(out, registered)
	return out
}

// Engine orders and runs a set of simulations against a shared registry.
type Engine struct {
	sims []Simulation
}

// NewEngine builds an engine over an explicit simulation set.
func NewEngine(sims ...Simulation) *Engine {
	return &Engine{sims: sims}
}

// DefaultEngine builds an engine over every registered simulation.
func DefaultEngine() *Engine {
	return NewEngine(Registered()...)
}

// Order returns the simulations sorted so that every producer of a required
// registry path runs before its consumers. Ties break on module ID, so the
// order is deterministic. Order fails on duplicate producers and on cycles.
//
// Paths nobody produces are assumed to preexist in the registry (seeds and
// references); if they do not, the consuming module fails at run time with
// registry.ErrNotFound.
func (e *Engine) Order() ([]Simulation, error) {
	producers := make(map[string]Simulation)
	for _, s := range e.sims {
		for _, out := range s.OutputParams() {
			if prev, ok := producers[out]; ok {
				return nil, fmt.Errorf("order: %q produced by both %s and %s",
					out, prev.Metadata().ID, s.Metadata().ID)
			}
			producers[out] = s
		}
	}

	// Kahn's algorithm over module IDs, ready set kept sorted.
	indegree := make(map[string]int, len(e.sims))
	dependents := make(map[string][]string)
	byID := make(map[string]Simulation, len(e.sims))
	for _, s := range e.sims {
		id := s.Metadata().ID
		if _, dup := byID[id]; dup {
			return nil, fmt.Errorf("order: duplicate simulation id %q", id)
		}
		byID[id] = s
		indegree[id] = 0
	}
	for _, s := range e.sims {
		id := s.Metadata().ID
		for _, in := range s.RequiredInputs() {
			p, ok := producers[in]
			if !ok || p.Metadata().ID == id {
				continue
			}
			dependents[p.Metadata().ID] = append(dependents[p.Metadata().ID], id)
			indegree[id]++
		}
	}

	ready := make([]string, 0, len(e.sims))
	for id, d := range indegree {
		if d == 0 {
			ready = append(ready, id)
		}
	}
	sort.Strings(ready)

	ordered := make([]Simulation, 0, len(e.sims))
	for len(ready) > 0 {
		id := ready[0]
		ready = ready[1:]
		ordered = append(ordered, byID[id])

		next := dependents[id]
		sort.Strings(next)
		for _, dep := range next {
			indegree[dep]--
			if indegree[dep] == 0 {
				ready = insertSorted(ready, dep)
			}
		}
	}

	if len(ordered) != len(e.sims) {
		stuck := make([]string, 0)
		for id, d := range indegree {
			if d > 0 {
				stuck = append(stuck, id)
			}
		}
		sort.Strings(stuck)
		return nil, fmt.Errorf("order: dependency cycle involving %v", stuck)
	}
	return ordered, nil
}

func insertSorted(ids []string, id string) []string {
	i := sort.SearchStrings(ids, id)
	ids = append(ids, "")
	copy(ids[i+1:], ids[i:])
	ids[i] = id
	return ids
}

// Run executes every simulation in dependency order against reg and
// evaluates each module's claims. A module error aborts the pass; the
// results accumulated so far are returned alongside the wrapped error.
// Claim validation failures do not abort anything: they only flip the
// Validated flag on the corresponding record.
func (e *Engine) Run(reg *registry.Registry) ([]Result, error) {
	ordered, err := e.Order()
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(ordered))
	for _, s := range ordered {
		meta := s.Metadata()
		logrus.Debugf("engine: running %s v%s", meta.ID, meta.Version)

		outputs, err := s.Run(reg)
		if err != nil {
			results = append(results, Result{Meta: meta, Err: err})
			return results, fmt.Errorf("run %s: %w", meta.ID, err)
		}

		res := Result{Meta: meta, Outputs: outputs}
		for _, c := range s.Claims() {
			v, err := c.Validate(reg)
			if err != nil {
				res.Err = err
				results = append(results, res)
				return results, fmt.Errorf("validate %s: %w", meta.ID, err)
			}
			if !v.Validated {
				logrus.Infof("engine: %s FAIL (value=%.9g reference=%.9g sigma=%.2f)",
					v.ClaimID, v.Value, v.Reference, v.Sigma)
			}
			res.Validations = append(res.Validations, v)
		}
		results = append(results, res)
	}
	return results, nil
}
