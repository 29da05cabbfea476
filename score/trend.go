package score

import (
	"math"

	"github.com/civictwin/civictwin-api/schema"
)

// Projector produces a short-horizon projection for a reading. The default
// implementation perturbs current values within fixed per-metric bounds; a
// real forecasting model can be substituted behind the same interface without
// changing callers.
type Projector interface {
	Project(m schema.CivicMetrics, priorStress float64) schema.TrendProjection
}

type perturbProjector struct {
	rand *Rand
}

func NewProjector(r *Rand) Projector {
	return &perturbProjector{rand: r}
}

func (p *perturbProjector) Project(m schema.CivicMetrics, priorStress float64) schema.TrendProjection {
	projected := map[string]float64{
		"traffic":      floorZero(m.Traffic + p.rand.Uniform(-5, 10)),
		"pollution":    floorZero(m.Pollution + p.rand.Uniform(-3, 8)),
		"power_demand": floorZero(m.PowerUsage + p.rand.Uniform(-2, 15)),
		"water_demand": floorZero(m.WaterUse + p.rand.Uniform(-1, 12)),
		"stress_level": floorZero(priorStress + p.rand.Uniform(-5, 15)),
	}

	insights := []string{}
	if projected["traffic"] > m.Traffic {
		insights = append(insights, "Traffic expected to increase during peak hours")
	}
	if projected["pollution"] > m.Pollution+5 {
		insights = append(insights, "Air quality may deteriorate, consider alerts")
	}
	if projected["power_demand"] > m.PowerUsage+10 {
		insights = append(insights, "High power demand predicted, optimize grid")
	}

	return schema.TrendProjection{
		Projected:  projected,
		Insights:   insights,
		Confidence: roundTo(p.rand.Uniform(75, 92), 1),
	}
}

func floorZero(f float64) float64 {
	return math.Max(0, f)
}
