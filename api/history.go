package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const historyWindow = int64(50)

// historicalData serves the most recent snapshots for the dashboard chart,
// newest first.
func (s *Server) historicalData(c *gin.Context) {
	snapshots, err := s.mongoStore.ListSnapshots(historyWindow)
	if err != nil {
		log.WithError(err).Error("list snapshots")
		abortWithEncoding(c, http.StatusInternalServerError, errorHistoryQuery, err)
		return
	}

	points := make([]gin.H, 0, len(snapshots))
	for _, snapshot := range snapshots {
		points = append(points, gin.H{
			"timestamp":    snapshot.Timestamp,
			"civic_stress": snapshot.CivicStress,
			"traffic":      snapshot.Traffic,
			"pollution":    snapshot.Pollution,
		})
	}

	c.JSON(http.StatusOK, gin.H{"historical_data": points})
}
