package schema

// AirQuality holds pollutant concentrations for a coordinate. Overall is the
// composite index the AQI buckets are derived from.
type AirQuality struct {
	PM25    float64 `json:"pm2_5"`
	Ozone   float64 `json:"ozone"`
	CO      float64 `json:"co"`
	Overall float64 `json:"overall"`
}

// Weather holds current weather conditions for a coordinate.
type Weather struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
}

// EnvironmentReading is the combined environment payload served to clients.
type EnvironmentReading struct {
	AirQuality
	Weather
}
