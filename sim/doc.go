// Package sim provides the derivation template and the engine that runs it.
//
// # Reading Guide
//
// Start with these three files:
//   - simulation.go: the Simulation interface and per-module Metadata
//   - claim.go: the Claim record tying a derived value to a measurement
//   - engine.go: dependency ordering over registry paths and the run loop
//
// # Architecture
//
// The sim package owns the interfaces; the actual derivations live in
// sub-packages grouped by sector:
//   - sim/topology/: geometric closure of the seed integers
//   - sim/particle/: fine structure, anomaly cancellation, mixing angles
//   - sim/cosmology/: dark energy, Hubble tension, spectral index
//
// Sub-packages register their simulations via init() (sim.Register), so a
// blank import of the sector packages is enough to assemble the default
// engine. The engine topologically orders simulations by the registry paths
// they consume and produce, then runs them one at a time against a shared
// *registry.Registry. Every computation is closed-form and deterministic;
// running the engine twice over the same registry state is bit-identical.
package sim
