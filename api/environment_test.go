package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/civictwin/civictwin-api/api/mocks"
	"github.com/civictwin/civictwin-api/schema"
	"github.com/civictwin/civictwin-api/score"
)

func newEnvironmentRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/location_predict", s.locationPredict)
	return router
}

func TestLocationPredict(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockData(ctl)
	d.EXPECT().AirQuality(25.03, 121.56).Return(&schema.AirQuality{
		PM25:    8,
		Ozone:   20,
		CO:      4,
		Overall: 9.6,
	}, nil).Times(1)
	d.EXPECT().Weather(25.03, 121.56).Return(&schema.Weather{
		Temperature: 28,
		Humidity:    85,
		WindSpeed:   20,
	}, nil).Times(1)

	s := &Server{
		environmentData: d,
		rand:            score.NewRand(1),
	}

	router := newEnvironmentRouter(s)
	w := postJSON(router, "/location_predict", `{"lat":25.03,"lon":121.56}`)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Environment map[string]float64 `json:"environment"`
		Status      string             `json:"status"`
		AqiLevel    string             `json:"aqi_level"`
		Insights    []string           `json:"insights"`
		Location    string             `json:"location"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, "excellent", resp.AqiLevel)
	assert.NotEmpty(t, resp.Status)
	assert.Equal(t, "25.0300, 121.5600", resp.Location)
	assert.Equal(t, 9.6, resp.Environment["overall"])
	assert.Equal(t, 28.0, resp.Environment["temperature"])

	// wind over 15 and humidity over 80 both trigger an insight
	assert.Len(t, resp.Insights, 2)
}

func TestLocationPredictUpstreamFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockData(ctl)
	d.EXPECT().AirQuality(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("upstream timeout")).Times(1)
	d.EXPECT().Weather(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("upstream timeout")).Times(1)

	s := &Server{
		environmentData: d,
		rand:            score.NewRand(1),
	}

	router := newEnvironmentRouter(s)
	w := postJSON(router, "/location_predict", `{"lat":1.2,"lon":3.4}`)

	assert.Equal(t, http.StatusOK, w.Code, "upstream failure must not surface")

	var resp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotContains(t, resp, "error")

	env, ok := resp["environment"].(map[string]interface{})
	assert.True(t, ok)
	for _, key := range []string{"pm2_5", "ozone", "co", "overall", "temperature", "humidity", "wind_speed"} {
		assert.Contains(t, env, key)
	}

	assert.NotEmpty(t, resp["aqi_level"])
	assert.NotEmpty(t, resp["status"])
}

func TestLocationPredictGeocodedLabel(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	d := mocks.NewMockData(ctl)
	d.EXPECT().AirQuality(gomock.Any(), gomock.Any()).Return(&schema.AirQuality{Overall: 60}, nil).Times(1)
	d.EXPECT().Weather(gomock.Any(), gomock.Any()).Return(&schema.Weather{}, nil).Times(1)

	g := mocks.NewMockGeoInfo(ctl)
	g.EXPECT().Label(1.2, 3.4).Return("Civic Plaza, Sample City", nil).Times(1)

	s := &Server{
		environmentData: d,
		geoClient:       g,
		rand:            score.NewRand(1),
	}

	router := newEnvironmentRouter(s)
	w := postJSON(router, "/location_predict", `{"lat":1.2,"lon":3.4}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Civic Plaza, Sample City", resp["location"])
	assert.Equal(t, "unhealthy", resp["aqi_level"])
}

func TestGradeAirQuality(t *testing.T) {
	cases := []struct {
		overall float64
		level   string
	}{
		{0, "excellent"},
		{14.9, "excellent"},
		{15, "good"},
		{34.9, "good"},
		{35, "moderate"},
		{54.9, "moderate"},
		{55, "unhealthy"},
		{74.9, "unhealthy"},
		{75, "hazardous"},
		{120, "hazardous"},
	}

	for _, c := range cases {
		_, level := gradeAirQuality(c.overall)
		assert.Equal(t, c.level, level, "wrong level for overall %f", c.overall)
	}
}
