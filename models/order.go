package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// Payment status constants
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// Payment method constants
const (
	PaymentMethodCOD        = "COD"
	PaymentMethodCard       = "CARD"
	PaymentMethodNetBanking = "NET_BANKING"
	PaymentMethodUPI        = "UPI"
	PaymentMethodWallet     = "WALLET"
)

// orderTransitions lists the legal status moves. delivered and cancelled
// are terminal and have no entry.
var orderTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusProcessing},
	OrderStatusProcessing: {OrderStatusShipped},
	OrderStatusShipped:    {OrderStatusDelivered},
}

type Order struct {
	ID                 uint                 `gorm:"primaryKey" json:"id"`
	OrderUID           string               `gorm:"uniqueIndex" json:"order_uid"`
	UserID             uint                 `json:"user_id"`
	User               User                 `json:"user" gorm:"foreignKey:UserID"`
	SellerID           uint                 `json:"seller_id"`
	Seller             Seller               `json:"seller" gorm:"foreignKey:SellerID"`
	AddressID          uint                 `json:"address_id"`
	Address            Address              `json:"shipping_address" gorm:"foreignKey:AddressID"`
	ItemsTotal         float64              `json:"items_total"`
	Discount           float64              `json:"discount"`
	FinalTotal         float64              `json:"final_total"`
	PaymentMethod      string               `json:"payment_method"`
	PaymentStatus      string               `json:"payment_status"`
	RazorpayOrderID    string               `json:"razorpay_order_id,omitempty"`
	Status             string               `json:"status"`
	CancellationReason string               `json:"cancellation_reason,omitempty"`
	RefundStatus       string               `json:"refund_status,omitempty"` // pending, completed
	RefundAmount       float64              `json:"refund_amount,omitempty"`
	RefundedAt         *time.Time           `json:"refunded_at,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
	OrderItems         []OrderItem          `json:"items" gorm:"foreignKey:OrderID"`
	StatusHistory      []OrderStatusHistory `json:"status_history" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	OrderID     uint    `json:"order_id"`
	ProductID   uint    `json:"product_id"`
	Product     Product `json:"product"`
	ProductName string  `json:"product_name"` // snapshot at order time
	Variant     string  `json:"variant"`      // material/finish/size descriptor
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`
}

// OrderStatusHistory is the audit trail of status changes on an order.
type OrderStatusHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `json:"order_id"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes,omitempty"`
	Actor     string    `json:"actor"` // customer, seller, system
	CreatedAt time.Time `json:"timestamp"`
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminalStatus reports whether the status admits no further transitions.
func IsTerminalStatus(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

// IsCOD reports whether payment is collected at delivery.
func (o *Order) IsCOD() bool {
	return o.PaymentMethod == PaymentMethodCOD
}
