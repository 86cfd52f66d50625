package cosmology

import (
	"github.com/g2sim/g2sim/registry"
	"github.com/g2sim/g2sim/sim"
)

// Fraction derives the dark energy density fraction from the Euler factor.
type Fraction struct{}

func (f *Fraction) Metadata() sim.Metadata {
	return sim.Metadata{
		ID:          "cosmology.fraction",
		Version:     "1.0",
		Domain:      "cosmology",
		Title:       "Dark Energy Fraction",
		Description: "Derives Omega_DE = chi_eff/210 and compares against Planck.",
		Section:     "4.4",
	}
}

func (f *Fraction) RequiredInputs() []string { return []string{"topology.chi_eff"} }

func (f *Fraction) OutputParams() []string { return []string{"cosmology.omega_de"} }

func (f *Fraction) Run(reg *registry.Registry) (map[string]float64, error) {
	chiEff, err := reg.Float("topology.chi_eff")
	if err != nil {
		return nil, err
	}
	omegaDE := chiEff / 210
	reg.Set("cosmology.omega_de", omegaDE, f.Metadata().ID, registry.StatusPredicted)
	return map[string]float64{"cosmology.omega_de": omegaDE}, nil
}

func (f *Fraction) Claims() []sim.Claim {
	return []sim.Claim{
		{
			ID:            "cosmology.omega_de",
			Label:         "Dark energy fraction",
			LaTeX:         `\Omega_\Lambda = \frac{\chi_{\mathrm{eff}}}{210}`,
			Plain:         "omega_de = chi_eff/210",
			Target:        "cosmology.omega_de",
			ReferencePath: "reference.omega_de",
			MaxSigma:      3,
			Status:        registry.StatusPredicted,
			Steps: []string{
				"144/210 = 0.685714 vs Planck 0.6847(73), 0.14 sigma",
			},
		},
	}
}

func (f *Fraction) Section() sim.Section {
	return sim.Section{
		Number: "4.4",
		Title:  "Energy Budget",
		Blocks: []sim.Block{
			sim.Text("The dark energy fraction is the Euler factor over the " +
				"triangular number 210 = dim_l + 75; the identification of the " +
				"denominator is the weakest link in the sector."),
			sim.Formula(`\Omega_\Lambda = \tfrac{144}{210} \approx 0.6857`, "omega_de = 144/210 ~= 0.6857"),
		},
	}
}
