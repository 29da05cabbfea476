package schema

const (
	CitySnapshotCollection = "citySnapshots"
	CoefficientCollection  = "scoreCoefficients"
)

// Snapshot is one accepted analysis persisted for the historical dashboard.
type Snapshot struct {
	CivicMetrics `bson:",inline"`
	CivicStress  float64         `json:"civic_stress" bson:"civic_stress"`
	AlertLevel   string          `json:"alert_level" bson:"alert_level"`
	Predictions  TrendProjection `json:"predictions" bson:"predictions"`
	Timestamp    int64           `json:"timestamp" bson:"ts"`
}

// CoefficientRecord stores one calibrated set of stress weights produced by
// the offline trainer.
type CoefficientRecord struct {
	Coefficient StressCoefficient `json:"coefficient" bson:"coefficient"`
	Samples     int               `json:"samples" bson:"samples"`
	Timestamp   int64             `json:"timestamp" bson:"ts"`
}
