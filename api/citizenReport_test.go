package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/civictwin/civictwin-api/api/mocks"
	"github.com/civictwin/civictwin-api/schema"
)

func newReportRouter(s *Server) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/citizen_report", s.citizenReport)
	return router
}

func TestCitizenReport(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	id := uuid.New()
	a := mocks.NewMockCivicCore(ctl)
	a.EXPECT().SaveReport("pothole", "deep pothole on main street", "5th and Main", 4).Return(&schema.CitizenReport{
		ID:          id,
		IssueType:   "pothole",
		Description: "deep pothole on main street",
		Location:    "5th and Main",
		Urgency:     4,
		Status:      schema.ReportPending,
	}, nil).Times(1)

	s := &Server{store: a}

	router := newReportRouter(s)
	w := postJSON(router, "/citizen_report", `{"type":"pothole","description":"deep pothole on main street","location":"5th and Main","urgency":4}`)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, id.String(), resp["report_id"])
}

func TestCitizenReportDefaultsLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCivicCore(ctl)
	a.EXPECT().SaveReport("noise", "overnight construction", "Unknown", 2).Return(&schema.CitizenReport{
		ID: uuid.New(),
	}, nil).Times(1)

	s := &Server{store: a}

	router := newReportRouter(s)
	w := postJSON(router, "/citizen_report", `{"type":"noise","description":"overnight construction","urgency":2}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCitizenReportMissingUrgency(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCivicCore(ctl)

	s := &Server{store: a}

	router := newReportRouter(s)
	w := postJSON(router, "/citizen_report", `{"type":"noise","description":"overnight construction"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing field: urgency"}`, w.Body.String())
}

func TestCitizenReportMissingType(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockCivicCore(ctl)

	s := &Server{store: a}

	router := newReportRouter(s)
	w := postJSON(router, "/citizen_report", `{"description":"no type given","urgency":1}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Missing field: type"}`, w.Body.String())
}
