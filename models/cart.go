package models

import "time"

type CartItem struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *uint     `json:"user_id,omitempty"` // nil for guest carts
	UserSession string    `gorm:"size:100;index;not null" json:"user_session"`
	ProductName string    `gorm:"not null" json:"product_name"`
	Quantity    int       `gorm:"default:1" json:"quantity"`
	UnitPrice   float64   `gorm:"not null" json:"unit_price"`
	TotalPrice  float64   `gorm:"not null" json:"total_price"` // always quantity * unit_price
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
