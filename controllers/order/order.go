package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ensaladazo/ecommerce-api/models"
)

type CreateOrderInput struct {
	UserSession   string `json:"user_session" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required,min=2,max=100"`
	CustomerEmail string `json:"customer_email" binding:"required,email"`
	CustomerPhone string `json:"customer_phone" binding:"omitempty,max=20"`
}

var errEmptyCart = errors.New("cart is empty")

func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// placeOrder snapshots the session's cart into an order and clears the
// cart, all in one transaction: a failure anywhere leaves neither a
// half-written order nor a stale cart.
func placeOrder(db *gorm.DB, input CreateOrderInput) (*models.OrderHistory, error) {
	var order models.OrderHistory

	err := db.Transaction(func(tx *gorm.DB) error {
		var items []models.CartItem
		if err := tx.Where("user_session = ?", input.UserSession).Find(&items).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return errEmptyCart
		}

		var total float64
		for _, item := range items {
			total += item.TotalPrice
		}

		order = models.OrderHistory{
			UserSession:   input.UserSession,
			OrderRef:      generateOrderRef(),
			CustomerName:  input.CustomerName,
			CustomerEmail: input.CustomerEmail,
			CustomerPhone: input.CustomerPhone,
			TotalAmount:   total,
			Status:        models.OrderStatusPending,
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		return tx.Where("user_session = ?", input.UserSession).
			Delete(&models.CartItem{}).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// POST /api/orders/create
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := placeOrder(db.WithContext(c.Request.Context()), input)
		if err != nil {
			if err == errEmptyCart {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastNewOrder(*order)
		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/:user_session
//
// Newest first. Clients render order history top-down from this.
func GetUserOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userSession := c.Param("user_session")

		var orders []models.OrderHistory
		if err := db.WithContext(c.Request.Context()).
			Where("user_session = ?", userSession).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		if orders == nil {
			orders = []models.OrderHistory{}
		}

		c.JSON(http.StatusOK, orders)
	}
}
