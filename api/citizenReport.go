package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const unknownLocation = "Unknown"

type citizenReportParams struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	// pointer so an absent urgency is distinguishable from zero
	Urgency *int `json:"urgency"`
}

// citizenReport accepts one citizen issue into the intake queue.
func (s *Server) citizenReport(c *gin.Context) {
	var params citizenReportParams
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Type == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingField("type"))
		return
	}
	if params.Description == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingField("description"))
		return
	}
	if params.Urgency == nil {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingField("urgency"))
		return
	}

	location := params.Location
	if location == "" {
		location = unknownLocation
	}

	report, err := s.store.SaveReport(params.Type, params.Description, location, *params.Urgency)
	if err != nil {
		log.WithError(err).Error("save citizen report")
		abortWithEncoding(c, http.StatusInternalServerError, errorReportSave, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"report_id": report.ID.String(),
	})
}
