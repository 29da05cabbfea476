package score

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/civictwin/civictwin-api/schema"
)

// Default stress weights. The offline trainer may produce a calibrated
// replacement; see background.TrainStressModel.
const (
	DefaultTrafficCoefficient    = 0.25
	DefaultPollutionCoefficient  = 0.25
	DefaultPowerUsageCoefficient = 0.15
	DefaultWaterUseCoefficient   = 0.15
	DefaultComplaintsCoefficient = 0.20
)

// RequiredMetrics lists the request keys of a reading in validation order.
var RequiredMetrics = []string{"traffic", "pollution", "power_usage", "water_use", "complaints"}

var DefaultStressCoefficient = schema.StressCoefficient{
	Traffic:    DefaultTrafficCoefficient,
	Pollution:  DefaultPollutionCoefficient,
	PowerUsage: DefaultPowerUsageCoefficient,
	WaterUse:   DefaultWaterUseCoefficient,
	Complaints: DefaultComplaintsCoefficient,
}

// alertLevels maps a stress score to its alert level, highest threshold
// first. Thresholds are exclusive lower bounds; the last entry is the
// catch-all.
var alertLevels = []struct {
	Threshold float64
	Level     string
	Verdict   string
	Mood      string
}{
	{80, schema.AlertCritical, "CRITICAL - Emergency response required!", "emergency"},
	{65, schema.AlertHigh, "High Stress - Immediate intervention needed!", "red"},
	{45, schema.AlertMedium, "Moderate Stress - Monitor and take corrective actions.", "yellow"},
	{25, schema.AlertLow, "Stable - Maintain current policies.", "blue"},
	{-1, schema.AlertOptimal, "Excellent - City is thriving!", "green"},
}

// ValidationError reports the first missing or malformed metric of a raw
// reading. Its message is the wire-level error string.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateMetrics checks an arbitrary request mapping for the five required
// metrics. Values must be numbers or numeric strings and non-negative. It
// fails on the first offending field and has no side effects.
func ValidateMetrics(raw map[string]interface{}) (*schema.CivicMetrics, error) {
	values := make(map[string]float64, len(RequiredMetrics))

	for _, field := range RequiredMetrics {
		v, ok := raw[field]
		if !ok {
			return nil, &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("Missing field: %s", field),
			}
		}

		f, err := toFloat(v)
		if err != nil || f < 0 {
			return nil, &ValidationError{
				Field:   field,
				Message: fmt.Sprintf("Invalid field: %s", field),
			}
		}
		values[field] = f
	}

	return &schema.CivicMetrics{
		Traffic:    values["traffic"],
		Pollution:  values["pollution"],
		PowerUsage: values["power_usage"],
		WaterUse:   values["water_use"],
		Complaints: values["complaints"],
	}, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(n, 64)
	}
	return 0, fmt.Errorf("not a number")
}

// Stress computes the weighted composite civic stress score for a reading.
func Stress(c schema.StressCoefficient, m schema.CivicMetrics) float64 {
	return c.Traffic*m.Traffic +
		c.Pollution*m.Pollution +
		c.PowerUsage*m.PowerUsage +
		c.WaterUse*m.WaterUse +
		c.Complaints*m.Complaints
}

func DefaultStress(m schema.CivicMetrics) float64 {
	return Stress(DefaultStressCoefficient, m)
}

// Grade maps a stress score to its alert level, verdict and mood tag.
func Grade(stress float64) (level, verdict, mood string) {
	for _, a := range alertLevels {
		if stress > a.Threshold {
			return a.Level, a.Verdict, a.Mood
		}
	}
	// unreachable for non-negative stress values
	last := alertLevels[len(alertLevels)-1]
	return last.Level, last.Verdict, last.Mood
}

// Assess derives the full assessment for a validated reading. The confidence
// figure is advisory only and is sampled from [88, 97].
func Assess(r *Rand, c schema.StressCoefficient, m schema.CivicMetrics) schema.StressAssessment {
	stress := Stress(c, m)
	level, verdict, mood := Grade(stress)

	return schema.StressAssessment{
		CivicStress: stress,
		AlertLevel:  level,
		Verdict:     verdict,
		Mood:        mood,
		Confidence:  roundTo(r.Uniform(88, 97), 2),
		Tips:        Tips(r, m, stress),
	}
}

func roundTo(f float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(f*shift) / shift
}
