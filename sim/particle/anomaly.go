package particle

import (
	"github.com/g2sim/g2sim/registry"
	"github.com/g2sim/g2sim/sim"
)

// fermionRep is one Standard Model Weyl fermion multiplet per generation.
// Right-handed fields enter the anomaly traces with Sign -1 (left-handed
// Weyl convention).
type fermionRep struct {
	Name        string
	ColorDim    float64 // SU(3) representation dimension
	IsoDim      float64 // SU(2) representation dimension
	Hypercharge float64
	Sign        float64
}

// smFermions is the per-generation hypercharge table. The four anomaly
// traces over this table must vanish identically for the theory to be
// consistent; the module recomputes them rather than asserting zero.
var smFermions = []fermionRep{
	{Name: "Q", ColorDim: 3, IsoDim: 2, Hypercharge: 1.0 / 6.0, Sign: 1},
	{Name: "u_R", ColorDim: 3, IsoDim: 1, Hypercharge: 2.0 / 3.0, Sign: -1},
	{Name: "d_R", ColorDim: 3, IsoDim: 1, Hypercharge: -1.0 / 3.0, Sign: -1},
	{Name: "L", ColorDim: 1, IsoDim: 2, Hypercharge: -1.0 / 2.0, Sign: 1},
	{Name: "e_R", ColorDim: 1, IsoDim: 1, Hypercharge: -1.0, Sign: -1},
}

// Anomaly derives the generation count from b3 and recomputes the four
// gauge anomaly coefficients from the hypercharge table.
type Anomaly struct{}

func (a *Anomaly) Metadata() sim.Metadata {
	return sim.Metadata{
		ID:          "particle.anomaly",
		Version:     "1.0",
		Domain:      "particle",
		Title:       "Anomaly Cancellation and Generation Count",
		Description: "Derives N_gen = b3/8 and verifies the four SM anomaly traces vanish.",
		Section:     "3.2",
	}
}

func (a *Anomaly) RequiredInputs() []string { return []string{"topology.b3"} }

func (a *Anomaly) OutputParams() []string {
	return []string{
		"particle.generations",
		"particle.anomaly_u1_cubed",
		"particle.anomaly_grav_u1",
		"particle.anomaly_su2_u1",
		"particle.anomaly_su3_u1",
	}
}

func (a *Anomaly) Run(reg *registry.Registry) (map[string]float64, error) {
	b3, err := reg.Float("topology.b3")
	if err != nil {
		return nil, err
	}
	generations := b3 / 8

	var u1Cubed, gravU1, su2U1, su3U1 float64
	for _, f := range smFermions {
		y := f.Hypercharge
		u1Cubed += f.Sign * f.ColorDim * f.IsoDim * y * y * y
		gravU1 += f.Sign * f.ColorDim * f.IsoDim * y
		if f.IsoDim == 2 {
			su2U1 += f.Sign * f.ColorDim * y
		}
		if f.ColorDim == 3 {
			su3U1 += f.Sign * f.IsoDim * y
		}
	}

	id := a.Metadata().ID
	reg.Set("particle.generations", generations, id, registry.StatusDerived)
	reg.Set("particle.anomaly_u1_cubed", u1Cubed, id, registry.StatusDerived)
	reg.Set("particle.anomaly_grav_u1", gravU1, id, registry.StatusDerived)
	reg.Set("particle.anomaly_su2_u1", su2U1, id, registry.StatusDerived)
	reg.Set("particle.anomaly_su3_u1", su3U1, id, registry.StatusDerived)

	return map[string]float64{
		"particle.generations":      generations,
		"particle.anomaly_u1_cubed": u1Cubed,
		"particle.anomaly_grav_u1":  gravU1,
		"particle.anomaly_su2_u1":   su2U1,
		"particle.anomaly_su3_u1":   su3U1,
	}, nil
}

func (a *Anomaly) Claims() []sim.Claim {
	anomalyClaim := func(id, label, latex, plain, target string) sim.Claim {
		return sim.Claim{
			ID:       id,
			Label:    label,
			LaTeX:    latex,
			Plain:    plain,
			Target:   target,
			Expected: 0,
			AbsTol:   1e-12,
			Status:   registry.StatusDerived,
		}
	}
	return []sim.Claim{
		{
			ID:       "particle.generations",
			Label:    "Fermion generation count",
			LaTeX:    `N_{\mathrm{gen}} = \frac{b_3}{8}`,
			Plain:    "N_gen = b3/8",
			Target:   "particle.generations",
			Expected: 3,
			AbsTol:   1e-12,
			Status:   registry.StatusDerived,
			Steps: []string{
				"b3 = 24 divides exactly by the octonionic factor 8",
				"N_gen = 3, matching the observed generation count",
			},
		},
		anomalyClaim("particle.anomaly_u1_cubed", "U(1)^3 anomaly",
			`\sum \pm\, d_c d_w Y^3 = 0`, "sum of d_c*d_w*Y^3 over Weyl fermions = 0",
			"particle.anomaly_u1_cubed"),
		anomalyClaim("particle.anomaly_grav_u1", "grav^2 U(1) anomaly",
			`\sum \pm\, d_c d_w Y = 0`, "sum of d_c*d_w*Y over Weyl fermions = 0",
			"particle.anomaly_grav_u1"),
		anomalyClaim("particle.anomaly_su2_u1", "SU(2)^2 U(1) anomaly",
			`\sum_{\mathrm{doublets}} \pm\, d_c Y = 0`, "sum of d_c*Y over SU(2) doublets = 0",
			"particle.anomaly_su2_u1"),
		anomalyClaim("particle.anomaly_su3_u1", "SU(3)^2 U(1) anomaly",
			`\sum_{\mathrm{triplets}} \pm\, d_w Y = 0`, "sum of d_w*Y over SU(3) triplets = 0",
			"particle.anomaly_su3_u1"),
	}
}

func (a *Anomaly) Section() sim.Section {
	return sim.Section{
		Number: "3.2",
		Title:  "Anomaly Cancellation",
		Blocks: []sim.Block{
			sim.Text("The generation count follows from the seed b3 divided by " +
				"the octonionic factor. With three generations and the standard " +
				"hypercharge assignments, all four gauge anomaly traces vanish " +
				"identically; the module recomputes them from the multiplet table."),
			sim.Formula(`N_{\mathrm{gen}} = \frac{b_3}{8} = 3`, "N_gen = b3/8 = 3"),
		},
	}
}
