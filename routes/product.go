package routes

import (
	"github.com/gin-gonic/gin"

	productControllers "github.com/ensaladazo/ecommerce-api/controllers/product"
)

func SetupProductRoutes(r *gin.Engine) {
	r.GET("/api/products", productControllers.GetProducts())
}
