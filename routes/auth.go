package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ensaladazo/ecommerce-api/config"
	userControllers "github.com/ensaladazo/ecommerce-api/controllers/user"
	"github.com/ensaladazo/ecommerce-api/middleware"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", userControllers.Register(db))
		authGroup.POST("/login", userControllers.Login(db, cfg.JWTSecret))

		protected := authGroup.Group("/users")
		protected.Use(middleware.ValidateToken(cfg.JWTSecret))
		{
			protected.GET("/me", userControllers.GetMe(db))
		}
	}
}
