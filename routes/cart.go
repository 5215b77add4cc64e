package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/ensaladazo/ecommerce-api/controllers/cart"
)

// SetupCartRoutes registers the guest-cart endpoints. Carts are keyed by
// a client-supplied session string, so none of these require auth.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/api/cart")
	{
		cart.POST("/add", cartControllers.AddToCart(db))
		cart.DELETE("/clear/:user_session", cartControllers.ClearCart(db))
		cart.GET("/:user_session", cartControllers.GetCart(db))
		cart.GET("/:user_session/total", cartControllers.GetCartTotal(db))
		cart.PUT("/:item_id", cartControllers.UpdateCartItem(db))
		cart.DELETE("/:item_id", cartControllers.RemoveFromCart(db))
	}
}
