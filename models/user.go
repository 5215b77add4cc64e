package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`

	// Carts and orders may belong to a plain session with no
	// registered user behind it, so the association is optional.
	CartItems []CartItem     `gorm:"foreignKey:UserID" json:"-"`
	Orders    []OrderHistory `gorm:"foreignKey:UserID" json:"-"`
}
