package score

import "github.com/civictwin/civictwin-api/schema"

const minTips = 3

// Tip groups in emission order. Each group is gated on its own threshold.
var (
	trafficTips = []string{
		"Implement smart traffic light synchronization",
		"Promote ride-sharing apps during peak hours",
		"Enhance public transport frequency",
	}

	pollutionTips = []string{
		"Launch urban greening initiative",
		"Accelerate EV charging infrastructure",
		"Implement industrial emission monitoring",
	}

	powerTips = []string{
		"Smart grid optimization needed",
		"Incentivize solar panel installations",
		"Commercial building energy audits",
	}

	sustainingTip = "Maintain current sustainable practices!"

	generalTips = []string{
		"Deploy AI-powered resource management",
		"Implement real-time data dashboards",
		"Community engagement programs",
		"Green infrastructure development",
	}
)

// Tips assembles remediation suggestions for a reading. Threshold-triggered
// groups come first in fixed order, then sampled general tips pad the list to
// at least minTips entries.
func Tips(r *Rand, m schema.CivicMetrics, stress float64) []string {
	tips := []string{}

	if m.Traffic > 70 {
		tips = append(tips, trafficTips...)
	}
	if m.Pollution > 60 {
		tips = append(tips, pollutionTips...)
	}
	if m.PowerUsage > 75 {
		tips = append(tips, powerTips...)
	}
	if stress < 30 {
		tips = append(tips, sustainingTip)
	}

	for len(tips) < minTips {
		tips = append(tips, generalTips[r.Intn(len(generalTips))])
	}

	return tips
}
