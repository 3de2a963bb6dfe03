package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ipgdev/diaconia-api-go/pkg/store"
)

type volunteerRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

func (r *volunteerRequest) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Name == "" {
		return "name is required"
	}
	if r.Phone == "" {
		return "phone is required"
	}
	return ""
}

// ListVolunteers returns the roster ordered by name
func (h *Handler) ListVolunteers(c *gin.Context) {
	volunteers, err := h.Store.Volunteers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load volunteers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"volunteers": volunteers})
}

// CreateVolunteer adds a deacon to the roster
func (h *Handler) CreateVolunteer(c *gin.Context) {
	var req volunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	volunteer, err := h.Store.CreateVolunteer(req.Name, req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create volunteer"})
		return
	}
	h.Log.Info("volunteer created", zap.String("id", volunteer.ID), zap.String("name", volunteer.Name))
	c.JSON(http.StatusCreated, volunteer)
}

// UpdateVolunteer changes a deacon's name and phone
func (h *Handler) UpdateVolunteer(c *gin.Context) {
	var req volunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	volunteer, err := h.Store.UpdateVolunteer(c.Param("id"), req.Name, req.Phone)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update volunteer"})
		return
	}
	c.JSON(http.StatusOK, volunteer)
}

// DeleteVolunteer removes a deacon from the roster. Existing schedule
// entries keep the id and render as unknown.
func (h *Handler) DeleteVolunteer(c *gin.Context) {
	id := c.Param("id")
	if err := h.Store.DeleteVolunteer(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Volunteer not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete volunteer"})
		return
	}
	h.Log.Info("volunteer deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Volunteer deleted"})
}
