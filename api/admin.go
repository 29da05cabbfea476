package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
)

const reportWindow = int64(100)

// trainModel enqueues an offline recalibration of the stress weights. The
// worker picks it up from the queue; nothing on the serving path waits for
// it.
func (s *Server) trainModel(c *gin.Context) {
	if s.backgroundEnqueuer == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	if _, err := s.backgroundEnqueuer.SendTask(&tasks.Signature{
		Name: "train_stress_model",
	}); err != nil {
		log.WithError(err).Error("enqueue train task")
		abortWithEncoding(c, http.StatusInternalServerError, errorEnqueueTask, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// listReports returns recent citizen reports, optionally filtered by status.
func (s *Server) listReports(c *gin.Context) {
	reports, err := s.store.ListReports(c.Query("status"), reportWindow)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
