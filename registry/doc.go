// Package registry holds the named constants every derivation reads and writes.
//
// # Reading Guide
//
// Start with these files:
//   - registry.go: the Registry type, Param records, and the path-keyed API
//   - seeds.go: the geometric seed integers and the experimental reference table
//   - verify.go: closure checks between the seed-derived quantities
//
// A Registry is created once per process by New (or NewWithSeeds when a
// seeds.yaml override is supplied), then handed by pointer to every
// simulation. Seed quantities have typed getters (B3, DimL, DimR, ChiEff,
// XiTorsion); everything a simulation produces at runtime goes through
// Set/Get under dotted string paths such as "cosmology.h0_derived".
//
// The registry is pure runtime state: it is never persisted or reloaded,
// and Set is an unconditional overwrite with no versioning.
package registry
