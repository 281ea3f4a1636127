package models

import (
	"time"
)

// Return reason constants (closed enum)
const (
	ReturnReasonDamaged        = "damaged"
	ReturnReasonDefective      = "defective"
	ReturnReasonIncorrect      = "incorrect"
	ReturnReasonNotAsDescribed = "not_as_described"
	ReturnReasonWrongSize      = "wrong_size"
	ReturnReasonWrongColor     = "wrong_color"
	ReturnReasonOther          = "other"
)

// Coarse return request status mirror, kept for reporting queries only.
// Badges are always derived from SellerApproval, never from this column.
const (
	ReturnStatusPending  = "pending"
	ReturnStatusApproved = "approved"
	ReturnStatusRejected = "rejected"
)

// Badge labels derived from the seller approval tri-state.
const (
	ReturnBadgePendingApproval = "Pending Approval"
	ReturnBadgeRefundApproved  = "Refund Approved"
	ReturnBadgeRejected        = "Rejected"
)

// ValidReturnReasons lists every accepted return reason.
var ValidReturnReasons = []string{
	ReturnReasonDamaged,
	ReturnReasonDefective,
	ReturnReasonIncorrect,
	ReturnReasonNotAsDescribed,
	ReturnReasonWrongSize,
	ReturnReasonWrongColor,
	ReturnReasonOther,
}

// ReturnWindowDays is how far in the future a pickup may be scheduled.
const ReturnWindowDays = 30

// ReturnRequest is a customer's request to return a delivered order item.
// SellerApproval is tri-state: nil while pending, then set exactly once by
// the seller's decision. Requests are never deleted; they are the audit
// record of the return workflow.
type ReturnRequest struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	OrderID           uint       `json:"order_id"`
	Order             Order      `json:"-" gorm:"foreignKey:OrderID"`
	OrderItemID       uint       `json:"order_item_id"`
	OrderItem         OrderItem  `json:"order_item" gorm:"foreignKey:OrderItemID"`
	UserID            uint       `json:"user_id"`
	SellerID          uint       `json:"seller_id"`
	Reason            string     `json:"reason"`
	ReasonDescription string     `json:"reason_description,omitempty"`
	PickupDate        time.Time  `json:"pickup_date"`
	Status            string     `json:"status"`
	SellerApproval    *bool      `json:"seller_approval"`
	SellerNotes       string     `json:"seller_notes,omitempty"`
	RefundAmount      *float64   `json:"refund_amount,omitempty"`
	DecidedAt         *time.Time `json:"decided_at,omitempty"`
	CustomerName      string     `json:"customer_name"`
	CustomerEmail     string     `json:"customer_email"`
	CustomerPhone     string     `json:"customer_phone,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ApprovalBadge maps the seller approval tri-state to its display badge.
// Total over {nil, true, false}; there is no fourth rendering path.
func (r *ReturnRequest) ApprovalBadge() string {
	if r.SellerApproval == nil {
		return ReturnBadgePendingApproval
	}
	if *r.SellerApproval {
		return ReturnBadgeRefundApproved
	}
	return ReturnBadgeRejected
}

// IsDecided reports whether the seller has already made a decision.
func (r *ReturnRequest) IsDecided() bool {
	return r.SellerApproval != nil
}

// IsValidReturnReason reports whether the reason belongs to the closed enum.
func IsValidReturnReason(reason string) bool {
	for _, r := range ValidReturnReasons {
		if r == reason {
			return true
		}
	}
	return false
}
