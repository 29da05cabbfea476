package api

import (
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/civictwin/civictwin-api/schema"
	"github.com/civictwin/civictwin-api/score"
)

// analyze runs one raw-metrics submission through the full pipeline:
// validate, score, project, tip, chain, persist.
func (s *Server) analyze(c *gin.Context) {
	var params map[string]interface{}
	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	metrics, err := score.ValidateMetrics(params)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorValidation(err), err)
		return
	}

	assessment := score.Assess(s.rand, s.coefficient, *metrics)
	projection := s.projector.Project(*metrics, assessment.CivicStress)

	block := s.ledger.Append(schema.BlockPayload{
		CivicMetrics: *metrics,
		CivicStress:  assessment.CivicStress,
		AlertLevel:   assessment.AlertLevel,
	})

	// The chain is authoritative; the snapshot write is best effort and a
	// failure does not void the computed assessment.
	if _, err := s.mongoStore.SaveSnapshot(*metrics, assessment, projection); err != nil {
		log.WithError(err).Error("save snapshot")
		c.Error(err)
	}

	c.JSON(http.StatusOK, gin.H{
		"prediction":   assessment.Verdict,
		"civic_stress": round2(assessment.CivicStress),
		"confidence":   assessment.Confidence,
		"tips":         assessment.Tips,
		"mood":         assessment.Mood,
		"alert_level":  assessment.AlertLevel,
		"block_hash":   block.Hash,
		"ai_analysis":  projection,
		"timestamp":    time.Now().Format("2006-01-02 15:04:05"),
	})
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
