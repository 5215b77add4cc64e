package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ensaladazo/ecommerce-api/config"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	// Liveness endpoints
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Bienvenido a Ensaladazo! API",
			"status":  "online",
			"version": "1.0.0",
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db)
	SetupContactRoutes(r, db)
	SetupProductRoutes(r)
	SetupAuthRoutes(r, db, cfg)
}
