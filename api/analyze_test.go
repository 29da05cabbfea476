package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/civictwin/civictwin-api/api/mocks"
	"github.com/civictwin/civictwin-api/ledger"
	"github.com/civictwin/civictwin-api/score"
)

func newAnalyzeRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/analyze", s.analyze)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAnalyze(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return("id", nil).Times(1)

	rnd := score.NewRand(1)
	s := &Server{
		mongoStore:  m,
		ledger:      ledger.New(),
		coefficient: score.DefaultStressCoefficient,
		projector:   score.NewProjector(rnd),
		rand:        rnd,
	}

	router := newAnalyzeRouter(s)
	w := postJSON(router, "/analyze", `{"traffic":90,"pollution":90,"power_usage":90,"water_use":90,"complaints":90}`)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Equal(t, 90.0, resp["civic_stress"])
	assert.Equal(t, "critical", resp["alert_level"])
	assert.Equal(t, "emergency", resp["mood"])
	assert.NotEmpty(t, resp["block_hash"])
	assert.NotEmpty(t, resp["prediction"])

	confidence, ok := resp["confidence"].(float64)
	assert.True(t, ok)
	assert.True(t, confidence >= 88 && confidence <= 97, "confidence %f out of range", confidence)

	tips, ok := resp["tips"].([]interface{})
	assert.True(t, ok)
	assert.True(t, len(tips) >= 3, "got %d tips", len(tips))

	analysis, ok := resp["ai_analysis"].(map[string]interface{})
	assert.True(t, ok)
	predictions, ok := analysis["predictions"].(map[string]interface{})
	assert.True(t, ok)
	assert.Len(t, predictions, 5)

	assert.Equal(t, 1, s.ledger.Length())
	assert.True(t, s.ledger.Verify())
}

func TestAnalyzeMissingField(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// no store expectations: a rejected submission must not be processed
	m := mocks.NewMockMongoStore(ctl)

	rnd := score.NewRand(1)
	s := &Server{
		mongoStore:  m,
		ledger:      ledger.New(),
		coefficient: score.DefaultStressCoefficient,
		projector:   score.NewProjector(rnd),
		rand:        rnd,
	}

	router := newAnalyzeRouter(s)
	w := postJSON(router, "/analyze", `{"traffic":90,"pollution":90,"power_usage":90,"water_use":90}`)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
	assert.JSONEq(t, `{"error":"Missing field: complaints"}`, w.Body.String())
	assert.Equal(t, 0, s.ledger.Length())
}

func TestAnalyzePersistenceFailureIsBestEffort(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return("", fmt.Errorf("mongo down")).Times(1)

	rnd := score.NewRand(1)
	s := &Server{
		mongoStore:  m,
		ledger:      ledger.New(),
		coefficient: score.DefaultStressCoefficient,
		projector:   score.NewProjector(rnd),
		rand:        rnd,
	}

	router := newAnalyzeRouter(s)
	w := postJSON(router, "/analyze", `{"traffic":10,"pollution":10,"power_usage":10,"water_use":10,"complaints":10}`)

	assert.Equal(t, http.StatusOK, w.Code, "analysis must survive a storage failure")
	assert.Equal(t, 1, s.ledger.Length())
}

func TestAnalyzeAcceptsNumericStrings(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	m.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return("id", nil).Times(1)

	rnd := score.NewRand(1)
	s := &Server{
		mongoStore:  m,
		ledger:      ledger.New(),
		coefficient: score.DefaultStressCoefficient,
		projector:   score.NewProjector(rnd),
		rand:        rnd,
	}

	router := newAnalyzeRouter(s)
	w := postJSON(router, "/analyze", `{"traffic":"20","pollution":"20","power_usage":"20","water_use":"20","complaints":"20"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 20.0, resp["civic_stress"])
	assert.Equal(t, "optimal", resp["alert_level"])
}
