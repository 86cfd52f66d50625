package registry

// Seeds are the base integers of the geometric framework plus the one fitted
// coefficient. Every derived quantity in the repository traces back to this
// block; the sterility audit exempts this file and flags numeric literals
// anywhere else.
type Seeds struct {
	B3        int     `yaml:"b3"`
	DimL      int     `yaml:"dim_l"`
	DimR      int     `yaml:"dim_r"`
	XiTorsion float64 `yaml:"xi_torsion"`
}

// DefaultSeeds returns the canonical seed block.
func DefaultSeeds() Seeds {
	return Seeds{
		B3:        24,
		DimL:      135,
		DimR:      153,
		XiTorsion: 1.280145, // fit to NuFIT 5.2 reactor angle, not derived
	}
}

// loadSeeds materializes the raw seed block under dotted paths so that
// path-based readers and the document generator see the same values as the
// typed getters. Derived quantities (chi_eff, parity_sum) are produced by
// the topology closure module, not preloaded here.
func (r *Registry) loadSeeds() {
	r.params["topology.b3"] = Param{Value: r.seeds.B3, Source: "seed", Status: StatusGeometric}
	r.params["topology.dim_l"] = Param{Value: r.seeds.DimL, Source: "seed", Status: StatusGeometric}
	r.params["topology.dim_r"] = Param{Value: r.seeds.DimR, Source: "seed", Status: StatusGeometric}
	r.params["fit.xi_torsion"] = Param{Value: r.seeds.XiTorsion, Source: "fit to NuFIT 5.2", Status: StatusPhenomenological}
}

// loadReferences preloads the experimental comparison table. Values and
// uncertainties are copied from the cited publications; they are the only
// place measured numbers enter the repository.
func (r *Registry) loadReferences() {
	r.SetMeasured("reference.alpha_inv", 137.035999084, 0.000000021, "CODATA 2018")
	r.SetMeasured("reference.sin_theta_c", 0.22501, 0.00068, "PDG 2024")
	r.SetMeasured("reference.sin2_theta12", 0.307, 0.012, "NuFIT 5.2")
	r.SetMeasured("reference.sin2_theta23", 0.546, 0.021, "NuFIT 5.2")
	r.SetMeasured("reference.sin2_theta13", 0.02219, 0.00007, "NuFIT 5.2")
	r.SetMeasured("reference.sin2_theta_w", 0.23122, 0.00004, "PDG 2024")
	r.SetMeasured("reference.h0_planck", 67.36, 0.54, "Planck 2018")
	r.SetMeasured("reference.h0_local", 73.04, 1.04, "SH0ES 2022")
	r.SetMeasured("reference.w0", -0.957, 0.080, "Planck 2018 + Pantheon")
	r.SetMeasured("reference.wa", -0.75, 0.30, "DESI DR1 2024")
	r.SetMeasured("reference.n_s", 0.9649, 0.0042, "Planck 2018")
	r.SetMeasured("reference.omega_de", 0.6847, 0.0073, "Planck 2018")
}
