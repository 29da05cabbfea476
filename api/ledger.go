package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const ledgerWindow = 10

// blockchainData serves the tail of the snapshot ledger.
func (s *Server) blockchainData(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"blockchain": s.ledger.LastBlocks(ledgerWindow),
	})
}
