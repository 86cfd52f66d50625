package particle

import (
	"github.com/g2sim/g2sim/registry"
	"github.com/g2sim/g2sim/sim"
)

// Weinberg evaluates the speculative tree-level identification of the weak
// mixing angle with 6/b3. The claim fails against the measured value by a
// wide margin; it is kept as the sector's explicit negative result and
// exercises the FAIL reporting path end to end.
type Weinberg struct{}

func (w *Weinberg) Metadata() sim.Metadata {
	return sim.Metadata{
		ID:          "particle.weinberg",
		Version:     "1.0",
		Domain:      "particle",
		Title:       "Weak Mixing Angle (speculative)",
		Description: "Evaluates sin^2(theta_W) = 6/b3 at tree level; known to disagree with PDG.",
		Section:     "3.5",
	}
}

func (w *Weinberg) RequiredInputs() []string { return []string{"topology.b3"} }

func (w *Weinberg) OutputParams() []string {
	return []string{"particle.sin2_theta_w"}
}

func (w *Weinberg) Run(reg *registry.Registry) (map[string]float64, error) {
	b3, err := reg.Float("topology.b3")
	if err != nil {
		return nil, err
	}
	sin2ThetaW := 6 / b3
	reg.Set("particle.sin2_theta_w", sin2ThetaW, w.Metadata().ID, registry.StatusSpeculative)
	return map[string]float64{"particle.sin2_theta_w": sin2ThetaW}, nil
}

func (w *Weinberg) Claims() []sim.Claim {
	return []sim.Claim{
		{
			ID:            "particle.sin2_theta_w",
			Label:         "Weak mixing angle",
			LaTeX:         `\sin^2\theta_W = \frac{6}{b_3}`,
			Plain:         "sin2_theta_w = 6/b3",
			Target:        "particle.sin2_theta_w",
			ReferencePath: "reference.sin2_theta_w",
			MaxSigma:      3,
			Status:        registry.StatusSpeculative,
			Steps: []string{
				"SPECULATIVE: tree-level value 0.25 ignores running",
				"vs PDG 0.23122(4); the claim fails validation as recorded",
			},
		},
	}
}

func (w *Weinberg) Section() sim.Section {
	return sim.Section{
		Number: "3.5",
		Title:  "Weak Mixing (speculative)",
		Blocks: []sim.Block{
			sim.Text("The tree-level identification sin^2(theta_W) = 6/b3 = 1/4 " +
				"disagrees with the measured MS-bar value once running is " +
				"accounted for. The claim is retained with SPECULATIVE status " +
				"and a recorded validation failure."),
			sim.Formula(`\sin^2\theta_W = \frac{6}{b_3} = 0.25`, "sin2_theta_w = 6/b3 = 0.25"),
		},
	}
}
