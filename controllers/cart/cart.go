package cartControllers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ensaladazo/ecommerce-api/models"
)

type AddItemInput struct {
	UserSession string  `json:"user_session" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
}

type UpdateItemInput struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// POST /api/cart/add
//
// Repeat-adds for the same (session, product) merge into the existing
// row: the quantity accumulates and the stored unit price wins — the
// request price is ignored on the merge path, so repeat-adds cannot
// reprice a line. The lookup-then-write is not serialized; two
// concurrent adds for the same key can insert duplicate rows.
func AddToCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		tx := db.WithContext(c.Request.Context())

		var item models.CartItem
		err := tx.Where("user_session = ? AND product_name = ?", input.UserSession, input.ProductName).
			First(&item).Error
		if err == nil {
			item.Quantity += input.Quantity
			item.TotalPrice = float64(item.Quantity) * item.UnitPrice
			if err := tx.Save(&item).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				return
			}
			c.JSON(http.StatusOK, item)
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		newItem := models.CartItem{
			UserSession: input.UserSession,
			ProductName: input.ProductName,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
			TotalPrice:  float64(input.Quantity) * input.UnitPrice,
		}
		if err := tx.Create(&newItem).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, newItem)
	}
}

// GET /api/cart/:user_session
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userSession := c.Param("user_session")

		var items []models.CartItem
		if err := db.WithContext(c.Request.Context()).
			Where("user_session = ?", userSession).
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if items == nil {
			items = []models.CartItem{}
		}

		c.JSON(http.StatusOK, items)
	}
}

// PUT /api/cart/:item_id
//
// Looked up by bare id: the row is not scoped to a session, so any
// caller who knows an id can update it.
func UpdateCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		var input UpdateItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		tx := db.WithContext(c.Request.Context())

		var item models.CartItem
		if err := tx.First(&item, itemID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart item"})
			return
		}

		item.Quantity = input.Quantity
		item.TotalPrice = float64(item.Quantity) * item.UnitPrice
		if err := tx.Save(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, item)
	}
}

// DELETE /api/cart/:item_id
func RemoveFromCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := strconv.Atoi(c.Param("item_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		result := db.WithContext(c.Request.Context()).Delete(&models.CartItem{}, itemID)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
	}
}

// DELETE /api/cart/clear/:user_session
func ClearCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userSession := c.Param("user_session")

		if err := db.WithContext(c.Request.Context()).
			Where("user_session = ?", userSession).
			Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

// GET /api/cart/:user_session/total
//
// total is rounded to 2 decimals for display; stored totals stay
// unrounded. item_count is the number of distinct lines, the summed
// quantities are reported separately.
func GetCartTotal(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userSession := c.Param("user_session")

		var items []models.CartItem
		if err := db.WithContext(c.Request.Context()).
			Where("user_session = ?", userSession).
			Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		var total float64
		var quantity int
		for _, item := range items {
			total += item.TotalPrice
			quantity += item.Quantity
		}

		c.JSON(http.StatusOK, gin.H{
			"total":          math.Round(total*100) / 100,
			"item_count":     len(items),
			"items":          len(items),
			"total_quantity": quantity,
		})
	}
}
