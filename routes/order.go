package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/ensaladazo/ecommerce-api/controllers/order"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	{
		// Convert a session's cart into an order
		orders.POST("/create", orderControllers.CreateOrder(db))

		// Live feed of newly created orders
		orders.GET("/ws", orderControllers.OrderFeedHandler)

		// Order history for a session, newest first
		orders.GET("/:user_session", orderControllers.GetUserOrders(db))
	}
}
