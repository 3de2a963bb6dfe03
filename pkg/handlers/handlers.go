package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ipgdev/diaconia-api-go/pkg/auth"
	"github.com/ipgdev/diaconia-api-go/pkg/database"
	"github.com/ipgdev/diaconia-api-go/pkg/models"
	"github.com/ipgdev/diaconia-api-go/pkg/scheduler"
	"github.com/ipgdev/diaconia-api-go/pkg/store"
)

// Handler contains dependencies for the route handlers
type Handler struct {
	DB    *gorm.DB
	Store *store.Store
	Log   *zap.Logger
}

// New builds a Handler over the given database handle.
func New(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{DB: db, Store: store.New(db), Log: log}
}

// AuthMiddleware verifies the JWT token for admin routes
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Strip "Bearer " if present
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("username", claims.Username)
		c.Next()
	}
}

// Login handles admin login
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user database.MasterUser
	if err := h.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.CreateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

// monthParams parses the :year/:month path segments. Month is 1-12 on
// the wire.
func monthParams(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}
	return year, time.Month(month), true
}

// volunteerNames maps roster ids to display names.
func volunteerNames(volunteers []models.Volunteer) map[string]string {
	names := make(map[string]string, len(volunteers))
	for _, v := range volunteers {
		names[v.ID] = v.Name
	}
	return names
}

// loadMonth loads the schedule, lazily initializes the month's Sundays
// and persists whatever was created.
func (h *Handler) loadMonth(year int, month time.Month) (models.ScheduleMap, []time.Time, error) {
	m, err := h.Store.LoadSchedule()
	if err != nil {
		return nil, nil, err
	}
	sundays := scheduler.SundaysInMonth(year, month)
	if created := scheduler.EnsureMonth(m, sundays); len(created) > 0 {
		if err := h.Store.SaveDays(m, created); err != nil {
			return nil, nil, err
		}
		h.Log.Info("initialized schedule month",
			zap.Int("year", year),
			zap.Int("month", int(month)),
			zap.Int("days_created", len(created)))
	}
	return m, sundays, nil
}
