package productControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Available   bool    `json:"available"`
}

// The catalog is static configuration data, not domain state: there is
// no persistence and no mutation endpoint.
var catalog = []Product{
	{
		ID:          1,
		Name:        "Ensalada CobbFit",
		Description: "Mezcla fresca de lechuga, tomate, cebolla morada, aguacate, queso mozarella, tocino, pechuga de pollo, huevo duro, y rodajas de pan tostado.",
		Price:       4.00,
		Category:    "ensalada",
		Available:   true,
	},
	{
		ID:          2,
		Name:        "Ensalada César",
		Description: "Una ensalada a base de lechuga, pechuga de pollo, huevo duro, tomate, queso mozarella y rodajas de pan tostado.",
		Price:       3.25,
		Category:    "ensalada",
		Available:   true,
	},
	{
		ID:          3,
		Name:        "Ensalada Tropical",
		Description: "Mix de lechugas, pollo a la parrilla, piña fresca, mango, aguacate, almendras tostadas y vinagreta de cítricos.",
		Price:       3.75,
		Category:    "ensalada",
		Available:   true,
	},
	{
		ID:          4,
		Name:        "Ensalada Mediterránea",
		Description: "Lechugas mixtas, tomates cherry, pepino, aceitunas negras, queso feta, cebolla morada y pollo marinado.",
		Price:       3.50,
		Category:    "ensalada",
		Available:   true,
	},
	{
		ID:          5,
		Name:        "Smoothie Verde",
		Description: "Batido energizante de espinaca, manzana verde, jengibre y menta",
		Price:       2.75,
		Category:    "bebida",
		Available:   true,
	},
}

// GET /api/products
func GetProducts() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, catalog)
	}
}
