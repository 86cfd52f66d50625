package particle

import (
	"github.com/g2sim/g2sim/registry"
	"github.com/g2sim/g2sim/sim"
)

// PMNS derives the three neutrino mixing angles. The solar and atmospheric
// angles follow from the seed integers alone; the reactor angle uses the
// fitted torsion exponent and is flagged PHENOMENOLOGICAL.
type PMNS struct{}

func (p *PMNS) Metadata() sim.Metadata {
	return sim.Metadata{
		ID:          "particle.pmns",
		Version:     "1.1",
		Domain:      "particle",
		Title:       "PMNS Mixing Angles",
		Description: "Derives sin^2 of the three PMNS angles from b3, chi_eff, dim_r and xi_torsion.",
		Section:     "3.4",
	}
}

func (p *PMNS) RequiredInputs() []string {
	return []string{
		"topology.b3",
		"topology.chi_eff",
		"topology.dim_r",
		"fit.xi_torsion",
	}
}

func (p *PMNS) OutputParams() []string {
	return []string{
		"particle.sin2_theta12",
		"particle.sin2_theta23",
		"particle.sin2_theta13",
	}
}

func (p *PMNS) Run(reg *registry.Registry) (map[string]float64, error) {
	b3, err := reg.Float("topology.b3")
	if err != nil {
		return nil, err
	}
	chiEff, err := reg.Float("topology.chi_eff")
	if err != nil {
		return nil, err
	}
	dimR, err := reg.Float("topology.dim_r")
	if err != nil {
		return nil, err
	}
	xi, err := reg.Float("fit.xi_torsion")
	if err != nil {
		return nil, err
	}

	// Solar angle: tribimaximal 1/3 written through the seeds.
	sin2Theta12 := b3 / (chiEff / 2)
	// Atmospheric angle: dim_r over the parity sum less a third of b3.
	sin2Theta23 := dimR / (2*chiEff - b3/3)
	// Reactor angle: the one fitted quantity in the sector.
	sin2Theta13 := 10 * xi / (b3 * b3)

	id := p.Metadata().ID
	reg.Set("particle.sin2_theta12", sin2Theta12, id, registry.StatusPredicted)
	reg.Set("particle.sin2_theta23", sin2Theta23, id, registry.StatusPredicted)
	reg.Set("particle.sin2_theta13", sin2Theta13, id, registry.StatusPhenomenological)

	return map[string]float64{
		"particle.sin2_theta12": sin2Theta12,
		"particle.sin2_theta23": sin2Theta23,
		"particle.sin2_theta13": sin2Theta13,
	}, nil
}

func (p *PMNS) Claims() []sim.Claim {
	return []sim.Claim{
		{
			ID:            "particle.sin2_theta12",
			Label:         "Solar angle",
			LaTeX:         `\sin^2\theta_{12} = \frac{b_3}{\chi_{\mathrm{eff}}/2}`,
			Plain:         "sin2_theta12 = b3/(chi_eff/2) = 1/3",
			Target:        "particle.sin2_theta12",
			ReferencePath: "reference.sin2_theta12",
			MaxSigma:      3,
			Status:        registry.StatusPredicted,
			Steps: []string{
				"24/72 = 1/3, the tribimaximal solar value",
				"vs NuFIT 0.307(12), 2.2 sigma",
			},
		},
		{
			ID:            "particle.sin2_theta23",
			Label:         "Atmospheric angle",
			LaTeX:         `\sin^2\theta_{23} = \frac{d_R}{2\chi_{\mathrm{eff}} - b_3/3}`,
			Plain:         "sin2_theta23 = dim_r/(2*chi_eff - b3/3)",
			Target:        "particle.sin2_theta23",
			ReferencePath: "reference.sin2_theta23",
			MaxSigma:      3,
			Status:        registry.StatusPredicted,
			Steps: []string{
				"153/280 = 0.54643 vs NuFIT 0.546(21), 0.02 sigma",
			},
		},
		{
			ID:            "particle.sin2_theta13",
			Label:         "Reactor angle",
			LaTeX:         `\sin^2\theta_{13} = \frac{10\,\xi}{b_3^2}`,
			Plain:         "sin2_theta13 = 10*xi/b3^2",
			Target:        "particle.sin2_theta13",
			ReferencePath: "reference.sin2_theta13",
			MaxSigma:      3,
			Status:        registry.StatusPhenomenological,
			Steps: []string{
				"PHENOMENOLOGICAL FIT: xi = 1.280145 is tuned to this angle",
				"10*1.280145/576 = 0.0222247 vs NuFIT 0.02219(7), 0.5 sigma",
			},
		},
	}
}

func (p *PMNS) Section() sim.Section {
	return sim.Section{
		Number: "3.4",
		Title:  "Lepton Mixing",
		Blocks: []sim.Block{
			sim.Text("The solar and atmospheric angles are fixed by ratios of " +
				"the seed integers. The reactor angle is the only place the " +
				"fitted torsion exponent enters the particle sector, and the " +
				"claim is labeled accordingly."),
			sim.Formula(`\sin^2\theta_{12} = \tfrac{1}{3},\quad \sin^2\theta_{23} = \tfrac{153}{280}`,
				"sin2_theta12 = 1/3, sin2_theta23 = 153/280"),
			sim.Formula(`\sin^2\theta_{13} = \frac{10\,\xi}{b_3^2}`,
				"sin2_theta13 = 10*xi/b3^2"),
		},
	}
}
