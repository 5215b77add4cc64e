package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	contactControllers "github.com/ensaladazo/ecommerce-api/controllers/contact"
)

// SetupContactRoutes registers the contact-form endpoints. The message
// listing/deletion is meant for the admin UI but carries no auth check.
func SetupContactRoutes(r *gin.Engine, db *gorm.DB) {
	contact := r.Group("/api/contact")
	{
		contact.POST("", contactControllers.SubmitMessage(db))
		contact.GET("/messages", contactControllers.GetAllMessages(db))
		contact.GET("/messages/:id", contactControllers.GetMessage(db))
		contact.DELETE("/messages/:id", contactControllers.DeleteMessage(db))
	}
}
