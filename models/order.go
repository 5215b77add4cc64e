package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // order placed, awaiting fulfilment
	OrderStatusCompleted OrderStatus = "completed" // fulfilled
	OrderStatusCancelled OrderStatus = "cancelled" // cancelled before fulfilment
)

// OrderHistory is an immutable snapshot of a checked-out cart. Rows are
// only ever created with status "pending"; no endpoint transitions or
// deletes them.
type OrderHistory struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        *uint       `json:"user_id,omitempty"` // nil for guest orders
	UserSession   string      `gorm:"size:100;index;not null" json:"user_session"`
	OrderRef      string      `gorm:"uniqueIndex" json:"order_ref"`
	CustomerName  string      `gorm:"not null" json:"customer_name"`
	CustomerEmail string      `gorm:"not null" json:"customer_email"`
	CustomerPhone string      `json:"customer_phone,omitempty"`
	TotalAmount   float64     `gorm:"not null" json:"total_amount"`
	Status        OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}
