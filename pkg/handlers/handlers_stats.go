package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ipgdev/diaconia-api-go/pkg/scheduler"
)

// GetStats returns the ranked per-volunteer shift counts for a month
// plus the advisory goal.
func (h *Handler) GetStats(c *gin.Context) {
	year, month, ok := monthParams(c)
	if !ok {
		return
	}

	m, err := h.Store.LoadSchedule()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load schedule"})
		return
	}
	volunteers, err := h.Store.Volunteers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load volunteers"})
		return
	}

	counts := scheduler.MonthlyCounts(m, volunteers, year, month)
	sundays := scheduler.SundaysInMonth(year, month)

	c.JSON(http.StatusOK, gin.H{
		"year":              year,
		"month":             int(month),
		"sunday_count":      len(sundays),
		"suggested_minimum": scheduler.SuggestedMinimum(len(sundays)),
		"counts":            scheduler.RankedCounts(counts, volunteers),
	})
}
