package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ipgdev/diaconia-api-go/pkg/models"
)

// GetSettings returns the editable display texts
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.Store.Settings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings replaces the display texts
func (h *Handler) UpdateSettings(c *gin.Context) {
	var req models.AppSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Store.UpdateSettings(req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save settings"})
		return
	}
	c.JSON(http.StatusOK, req)
}
