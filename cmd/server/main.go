package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ipgdev/diaconia-api-go/pkg/auth"
	"github.com/ipgdev/diaconia-api-go/pkg/database"
	"github.com/ipgdev/diaconia-api-go/pkg/handlers"
)

func main() {
	// Load .env if it exists
	// Try root and parent directories for flexibility
	envPaths := []string{".env", "../.env", "../../.env"}
	for _, p := range envPaths {
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			break
		}
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := database.InitDB()
	_ = auth.EnsureAdminExists(db)
	h := handlers.New(db, logger)

	r := gin.Default()

	// Routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Diaconia Rota API",
			"version": "1.0.0",
		})
	})

	r.POST("/admin/login", h.Login)

	// Public read side: the rota is visible to everyone
	api := r.Group("/api")
	{
		api.GET("/volunteers", h.ListVolunteers)
		api.GET("/schedule/:year/:month", h.GetMonth)
		api.GET("/schedule/:year/:month/export", h.ExportMonthCSV)
		api.GET("/stats/:year/:month", h.GetStats)
		api.GET("/settings", h.GetSettings)
	}

	// Admin Endpoints
	admin := r.Group("/admin")
	admin.Use(h.AuthMiddleware())
	{
		admin.POST("/volunteers", h.CreateVolunteer)
		admin.PUT("/volunteers/:id", h.UpdateVolunteer)
		admin.DELETE("/volunteers/:id", h.DeleteVolunteer)
		admin.POST("/schedule/assign", h.AssignSlot)
		admin.PUT("/settings", h.UpdateSettings)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	logger.Info("server starting", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Fatal("could not run server", zap.Error(err))
	}
}
