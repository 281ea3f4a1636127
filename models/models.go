package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a storefront customer
type User struct {
	gorm.Model
	Username    string    `gorm:"uniqueIndex;not null" json:"username"`
	Email       string    `gorm:"uniqueIndex;not null" json:"email"`
	Password    string    `json:"-"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	IsBlocked   bool      `json:"is_blocked"`
	LastLoginAt time.Time `json:"last_login_at"`
	Wallet      Wallet    `json:"wallet,omitempty" gorm:"foreignKey:UserID"`

	Addresses []Address `json:"addresses" gorm:"foreignKey:UserID"`
}

// Seller represents a furniture seller with a panel account
type Seller struct {
	gorm.Model
	StoreName string    `gorm:"uniqueIndex;not null" json:"store_name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	Phone     string    `json:"phone"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Product represents a furniture listing. Catalog management lives in a
// separate system; only the fields order items reference are kept here.
type Product struct {
	gorm.Model
	Name     string  `json:"name"`
	SellerID uint    `json:"seller_id"`
	Price    float64 `json:"price"`
	Material string  `json:"material"`
	ImageURL string  `json:"image_url"`
}
