package cosmology

import (
	"math"

	"github.com/g2sim/g2sim/registry"
	"github.com/g2sim/g2sim/sim"
)

// Hubble derives the late-time Hubble constant from the Planck CMB value
// and a geometric correction factor in b3, addressing the tension between
// early- and late-universe measurements.
type Hubble struct{}

func (h *Hubble) Metadata() sim.Metadata {
	return sim.Metadata{
		ID:          "cosmology.hubble",
		Version:     "1.0",
		Domain:      "cosmology",
		Title:       "Hubble Tension",
		Description: "Derives H0_local = H0_planck * (1 + 1/(2*b3))^4 and compares against SH0ES.",
		Section:     "4.2",
	}
}

func (h *Hubble) RequiredInputs() []string {
	return []string{"topology.b3", "reference.h0_planck"}
}

func (h *Hubble) OutputParams() []string {
	return []string{"cosmology.h0_derived"}
}

func (h *Hubble) Run(reg *registry.Registry) (map[string]float64, error) {
	b3, err := reg.Float("topology.b3")
	if err != nil {
		return nil, err
	}
	h0Planck, err := reg.Float("reference.h0_planck")
	if err != nil {
		return nil, err
	}

	h0 := h0Planck * math.Pow(1+1/(2*b3), 4)
	reg.Set("cosmology.h0_derived", h0, h.Metadata().ID, registry.StatusPredicted)
	return map[string]float64{"cosmology.h0_derived": h0}, nil
}

func (h *Hubble) Claims() []sim.Claim {
	return []sim.Claim{
		{
			ID:            "cosmology.h0_derived",
			Label:         "Late-time Hubble constant",
			LaTeX:         `H_0^{\mathrm{local}} = H_0^{\mathrm{CMB}}\left(1 + \frac{1}{2 b_3}\right)^4`,
			Plain:         "h0_derived = h0_planck * (1 + 1/(2*b3))^4",
			Target:        "cosmology.h0_derived",
			ReferencePath: "reference.h0_local",
			MaxSigma:      3,
			Status:        registry.StatusPredicted,
			Steps: []string{
				"(1 + 1/48)^4 = 1.08597",
				"67.36 * 1.08597 = 73.15 vs SH0ES 73.04(104), 0.1 sigma",
			},
		},
	}
}

func (h *Hubble) Section() sim.Section {
	return sim.Section{
		Number: "4.2",
		Title:  "Hubble Tension",
		Blocks: []sim.Block{
			sim.Text("The early- and late-universe determinations of H0 differ " +
				"by a fourth power of the half-inverse seed correction. Applied " +
				"to the Planck value, the correction lands on the distance-ladder " +
				"measurement."),
			sim.Formula(`H_0^{\mathrm{local}} = 67.36 \left(1 + \tfrac{1}{48}\right)^4 \approx 73.15`,
				"h0_derived = 67.36 * (1 + 1/48)^4 ~= 73.15"),
		},
	}
}
