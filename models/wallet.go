package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction type constants
const (
	TransactionTypeCredit = "credit"
	TransactionTypeDebit  = "debit"
)

// Wallet represents a user's wallet. Approved return refunds and prepaid
// cancellation refunds are credited here.
type Wallet struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	UserID    uint           `json:"user_id" gorm:"uniqueIndex"`
	Balance   float64        `json:"balance" gorm:"default:0"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// WalletTransaction represents a transaction in a user's wallet
type WalletTransaction struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	WalletID    uint           `json:"wallet_id"`
	Wallet      Wallet         `json:"-" gorm:"foreignKey:WalletID"`
	Amount      float64        `json:"amount"`
	Type        string         `json:"type"` // credit, debit
	Description string         `json:"description"`
	OrderID     *uint          `json:"order_id"`
	Reference   string         `json:"reference"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
