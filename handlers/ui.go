package handlers

import (
	"net/http"

	"shortlet/viewport"

	"github.com/gin-gonic/gin"
)

// CTAState handles GET /api/ui/cta-state. Purely presentational: given the
// reported geometry it answers whether the floating reserve button should
// show. Kept server-side so the predicate stays in one place across clients.
func CTAState(c *gin.Context) {
	var metrics viewport.Metrics
	if err := c.ShouldBindQuery(&metrics); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid viewport metrics", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"visible": metrics.FloatingCTAVisible()})
}
