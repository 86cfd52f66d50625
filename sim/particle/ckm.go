package particle

import (
	"math"

	"github.com/g2sim/g2sim/registry"
	"github.com/g2sim/g2sim/sim"
)

// Cabibbo derives the Cabibbo angle from the seed b3.
type Cabibbo struct{}

func (c *Cabibbo) Metadata() sim.Metadata {
	return sim.Metadata{
		ID:          "particle.cabibbo",
		Version:     "1.0",
		Domain:      "particle",
		Title:       "Cabibbo Angle",
		Description: "Derives sin(theta_C) = 1/sqrt(b3-4) and compares against the PDG Wolfenstein lambda.",
		Section:     "3.3",
	}
}

func (c *Cabibbo) RequiredInputs() []string { return []string{"topology.b3"} }

func (c *Cabibbo) OutputParams() []string {
	return []string{"particle.sin_theta_c"}
}

func (c *Cabibbo) Run(reg *registry.Registry) (map[string]float64, error) {
	b3, err := reg.Float("topology.b3")
	if err != nil {
		return nil, err
	}
	sinThetaC := 1 / math.Sqrt(b3-4)
	reg.Set("particle.sin_theta_c", sinThetaC, c.Metadata().ID, registry.StatusPredicted)
	return map[string]float64{"particle.sin_theta_c": sinThetaC}, nil
}

func (c *Cabibbo) Claims() []sim.Claim {
	return []sim.Claim{
		{
			ID:            "particle.sin_theta_c",
			Label:         "Cabibbo angle",
			LaTeX:         `\sin\theta_C = \frac{1}{\sqrt{b_3 - 4}}`,
			Plain:         "sin(theta_C) = 1/sqrt(b3-4)",
			Target:        "particle.sin_theta_c",
			ReferencePath: "reference.sin_theta_c",
			MaxSigma:      3,
			Status:        registry.StatusPredicted,
			Steps: []string{
				"b3 - 4 = 20 counts the off-diagonal flavor directions",
				"1/sqrt(20) = 0.22361 vs PDG lambda = 0.22501(68), 2.1 sigma",
			},
		},
	}
}

func (c *Cabibbo) Section() sim.Section {
	return sim.Section{
		Number: "3.3",
		Title:  "Quark Mixing",
		Blocks: []sim.Block{
			sim.Text("The Wolfenstein expansion parameter is identified with " +
				"the inverse square root of the off-diagonal direction count."),
			sim.Formula(`\sin\theta_C = \frac{1}{\sqrt{20}} \approx 0.2236`,
				"sin(theta_C) = 1/sqrt(20) ~= 0.2236"),
		},
	}
}
