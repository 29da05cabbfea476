package environment

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"math"
	"net/http"
	"time"

	"github.com/civictwin/civictwin-api/schema"
)

const (
	defaultAirURL     = "https://air-quality-api.open-meteo.com/v1/air-quality"
	defaultWeatherURL = "https://api.open-meteo.com/v1/forecast"
	defaultTimeout    = 5 * time.Second
)

var errEmptyResponse = fmt.Errorf("empty response from environment source")

// Data - interface to fetch live environment readings for a coordinate.
// Callers substitute synthetic values when a fetch fails; neither source is
// allowed to fail a request.
type Data interface {
	AirQuality(lat, lng float64) (*schema.AirQuality, error)
	Weather(lat, lng float64) (*schema.Weather, error)
}

type openMeteo struct {
	airURL     string
	weatherURL string
	client     *http.Client
}

type airResponse struct {
	Hourly struct {
		PM25           []float64 `json:"pm2_5"`
		Ozone          []float64 `json:"ozone"`
		CarbonMonoxide []float64 `json:"carbon_monoxide"`
	} `json:"hourly"`
}

type weatherResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    float64 `json:"relative_humidity_2m"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

func (o openMeteo) AirQuality(lat, lng float64) (*schema.AirQuality, error) {
	query := fmt.Sprintf("%s?latitude=%f&longitude=%f&hourly=pm10,pm2_5,carbon_monoxide,ozone", o.airURL, lat, lng)
	resp, err := o.client.Get(query)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	var r airResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return nil, err
	}

	if len(r.Hourly.PM25) == 0 || len(r.Hourly.Ozone) == 0 || len(r.Hourly.CarbonMonoxide) == 0 {
		return nil, errEmptyResponse
	}

	pm25 := r.Hourly.PM25[0]
	ozone := r.Hourly.Ozone[0]
	co := r.Hourly.CarbonMonoxide[0]

	return &schema.AirQuality{
		PM25:    pm25,
		Ozone:   ozone,
		CO:      co,
		Overall: math.Round((pm25+ozone+co/10)/3*100) / 100,
	}, nil
}

func (o openMeteo) Weather(lat, lng float64) (*schema.Weather, error) {
	query := fmt.Sprintf("%s?latitude=%f&longitude=%f&current=temperature_2m,relative_humidity_2m,wind_speed_10m", o.weatherURL, lat, lng)
	resp, err := o.client.Get(query)
	if nil != err {
		return nil, err
	}
	defer resp.Body.Close()

	d, err := ioutil.ReadAll(resp.Body)
	if nil != err {
		return nil, err
	}

	var r weatherResponse
	if err := json.Unmarshal(d, &r); nil != err {
		return nil, err
	}

	return &schema.Weather{
		Temperature: r.Current.Temperature,
		Humidity:    r.Current.Humidity,
		WindSpeed:   r.Current.WindSpeed,
	}, nil
}

// New - new Data interface backed by the open-meteo APIs. Empty URLs fall
// back to the public endpoints.
func New(airURL, weatherURL string) Data {
	a := defaultAirURL
	if airURL != "" {
		a = airURL
	}
	w := defaultWeatherURL
	if weatherURL != "" {
		w = weatherURL
	}

	return &openMeteo{
		airURL:     a,
		weatherURL: w,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
