package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats serves the aggregate inventory summary.
// GET /api/dashboard
func (h *Handlers) GetDashboardStats(c *gin.Context) {
	stats, err := h.Dashboard.GetDashboardStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
