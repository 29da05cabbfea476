package schema

// Alert levels derived from the civic stress score, ordered from calm to
// emergency.
const (
	AlertOptimal  = "optimal"
	AlertLow      = "low"
	AlertMedium   = "medium"
	AlertHigh     = "high"
	AlertCritical = "critical"
)

// CivicMetrics is a validated reading of the five city metrics. All values
// are non-negative.
type CivicMetrics struct {
	Traffic    float64 `json:"traffic" bson:"traffic"`
	Pollution  float64 `json:"pollution" bson:"pollution"`
	PowerUsage float64 `json:"power_usage" bson:"power_usage"`
	WaterUse   float64 `json:"water_use" bson:"water_use"`
	Complaints float64 `json:"complaints" bson:"complaints"`
}

// StressCoefficient weights each metric in the composite civic stress score.
type StressCoefficient struct {
	Traffic    float64 `json:"traffic" bson:"traffic"`
	Pollution  float64 `json:"pollution" bson:"pollution"`
	PowerUsage float64 `json:"power_usage" bson:"power_usage"`
	WaterUse   float64 `json:"water_use" bson:"water_use"`
	Complaints float64 `json:"complaints" bson:"complaints"`
}

// StressAssessment is the full result of scoring one reading. It is never
// mutated after creation.
type StressAssessment struct {
	CivicStress float64  `json:"civic_stress" bson:"civic_stress"`
	AlertLevel  string   `json:"alert_level" bson:"alert_level"`
	Verdict     string   `json:"verdict" bson:"verdict"`
	Mood        string   `json:"mood" bson:"mood"`
	Confidence  float64  `json:"confidence" bson:"confidence"`
	Tips        []string `json:"tips" bson:"tips"`
}

// TrendProjection is a short-horizon projection for one reading.
type TrendProjection struct {
	Projected  map[string]float64 `json:"predictions" bson:"predictions"`
	Insights   []string           `json:"insights" bson:"insights"`
	Confidence float64            `json:"confidence" bson:"confidence"`
}
