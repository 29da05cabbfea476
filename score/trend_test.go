package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/civictwin/civictwin-api/schema"
)

func TestProjectWithinBounds(t *testing.T) {
	p := NewProjector(NewRand(1))
	m := schema.CivicMetrics{Traffic: 40, Pollution: 30, PowerUsage: 60, WaterUse: 20, Complaints: 15}

	bounds := map[string][2]float64{
		"traffic":      {m.Traffic - 5, m.Traffic + 10},
		"pollution":    {m.Pollution - 3, m.Pollution + 8},
		"power_demand": {m.PowerUsage - 2, m.PowerUsage + 15},
		"water_demand": {m.WaterUse - 1, m.WaterUse + 12},
		"stress_level": {35 - 5, 35 + 15},
	}

	for i := 0; i < 100; i++ {
		projection := p.Project(m, 35)
		assert.Len(t, projection.Projected, 5)

		for name, b := range bounds {
			v, ok := projection.Projected[name]
			assert.True(t, ok, "missing projection for %s", name)
			assert.True(t, v >= b[0] && v <= b[1], "%s projection %f out of [%f, %f]", name, v, b[0], b[1])
		}

		assert.True(t, projection.Confidence >= 75 && projection.Confidence <= 92,
			"confidence %f out of range", projection.Confidence)
	}
}

func TestProjectFlooredAtZero(t *testing.T) {
	p := NewProjector(NewRand(1))
	m := schema.CivicMetrics{}

	for i := 0; i < 100; i++ {
		projection := p.Project(m, 0)
		for name, v := range projection.Projected {
			assert.True(t, v >= 0, "%s projection %f below zero", name, v)
		}
	}
}

func TestProjectInsightRules(t *testing.T) {
	p := NewProjector(NewRand(1))
	m := schema.CivicMetrics{Traffic: 40, Pollution: 30, PowerUsage: 60, WaterUse: 20, Complaints: 15}

	for i := 0; i < 200; i++ {
		projection := p.Project(m, 35)

		expected := []string{}
		if projection.Projected["traffic"] > m.Traffic {
			expected = append(expected, "Traffic expected to increase during peak hours")
		}
		if projection.Projected["pollution"] > m.Pollution+5 {
			expected = append(expected, "Air quality may deteriorate, consider alerts")
		}
		if projection.Projected["power_demand"] > m.PowerUsage+10 {
			expected = append(expected, "High power demand predicted, optimize grid")
		}

		assert.Equal(t, expected, projection.Insights)
	}
}
