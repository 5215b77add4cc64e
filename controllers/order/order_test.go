package orderControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ensaladazo/ecommerce-api/models"
)

func setupOrderRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.CartItem{}, &models.OrderHistory{}))

	r := gin.New()
	orders := r.Group("/api/orders")
	orders.POST("/create", CreateOrder(db))
	orders.GET("/:user_session", GetUserOrders(db))
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type cartLine struct {
	Product string
	Qty     int
	Price   float64
}

func seedCart(t *testing.T, db *gorm.DB, session string, lines ...cartLine) float64 {
	t.Helper()
	var total float64
	for _, line := range lines {
		item := models.CartItem{
			UserSession: session,
			ProductName: line.Product,
			Quantity:    line.Qty,
			UnitPrice:   line.Price,
			TotalPrice:  float64(line.Qty) * line.Price,
		}
		require.NoError(t, db.Create(&item).Error)
		total += item.TotalPrice
	}
	return total
}

func TestCreateOrderOnEmptyCart(t *testing.T) {
	r, db := setupOrderRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/orders/create", gin.H{
		"user_session":   "s1",
		"customer_name":  "Ana López",
		"customer_email": "ana@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// No order row may exist after the failure.
	var count int64
	db.Model(&models.OrderHistory{}).Count(&count)
	assert.Zero(t, count)
}

func TestCreateOrderSnapshotsTotalAndClearsCart(t *testing.T) {
	r, db := setupOrderRouter(t)

	wantTotal := seedCart(t, db, "s1",
		cartLine{"Ensalada César", 3, 3.25},
		cartLine{"Smoothie Verde", 2, 2.75},
	)

	w := doJSON(t, r, http.MethodPost, "/api/orders/create", gin.H{
		"user_session":   "s1",
		"customer_name":  "Ana López",
		"customer_email": "ana@example.com",
		"customer_phone": "555-0101",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var order models.OrderHistory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, wantTotal, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderRef)

	var cartCount int64
	db.Model(&models.CartItem{}).Where("user_session = ?", "s1").Count(&cartCount)
	assert.Zero(t, cartCount)
}

func TestCreateOrderLeavesOtherSessionsAlone(t *testing.T) {
	r, db := setupOrderRouter(t)

	seedCart(t, db, "s1", cartLine{"Ensalada César", 1, 3.25})
	seedCart(t, db, "s2", cartLine{"Ensalada Tropical", 1, 3.75})

	w := doJSON(t, r, http.MethodPost, "/api/orders/create", gin.H{
		"user_session":   "s1",
		"customer_name":  "Ana López",
		"customer_email": "ana@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var otherCount int64
	db.Model(&models.CartItem{}).Where("user_session = ?", "s2").Count(&otherCount)
	assert.EqualValues(t, 1, otherCount)
}

func TestCreateOrderValidatesCustomer(t *testing.T) {
	r, db := setupOrderRouter(t)

	seedCart(t, db, "s1", cartLine{"Ensalada César", 1, 3.25})

	w := doJSON(t, r, http.MethodPost, "/api/orders/create", gin.H{
		"user_session":   "s1",
		"customer_name":  "Ana López",
		"customer_email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Validation failures happen before domain logic: cart untouched.
	var count int64
	db.Model(&models.CartItem{}).Where("user_session = ?", "s1").Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestGetUserOrdersNewestFirst(t *testing.T) {
	r, db := setupOrderRouter(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, ref := range []string{"ref-a", "ref-b", "ref-c"} {
		order := models.OrderHistory{
			UserSession:   "s1",
			OrderRef:      ref,
			CustomerName:  "Ana López",
			CustomerEmail: "ana@example.com",
			TotalAmount:   10,
			Status:        models.OrderStatusPending,
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, db.Create(&order).Error)
	}

	w := doJSON(t, r, http.MethodGet, "/api/orders/s1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.OrderHistory
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 3)
	assert.Equal(t, "ref-c", orders[0].OrderRef)
	assert.Equal(t, "ref-b", orders[1].OrderRef)
	assert.Equal(t, "ref-a", orders[2].OrderRef)
}

func TestGetUserOrdersEmpty(t *testing.T) {
	r, _ := setupOrderRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/orders/nobody", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}
