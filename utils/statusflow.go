package utils

import (
	"time"

	"github.com/Arjun-316/FurniMart/models"
)

// LifecycleStep is one stage of the order progress display. Steps are
// derived fresh from the order record on every request and never persisted.
type LifecycleStep struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Completed bool       `json:"completed"`
	Current   bool       `json:"current"`
	Failed    bool       `json:"failed"`
	Date      *time.Time `json:"date,omitempty"`
}

// Step keys
const (
	StepKeyPayment    = "payment_success"
	StepKeyConfirmed  = "confirmed"
	StepKeyProcessing = "processing"
	StepKeyShipped    = "shipped"
	StepKeyDelivered  = "delivered"
	StepKeyCancelled  = "cancelled"
)

// DeriveSteps reconciles order status, payment status and payment method
// into the ordered lifecycle step sequence shown to the customer.
//
// A cancelled order collapses to exactly two steps regardless of how far
// it had progressed. For COD orders the Confirmed step precedes Payment
// Success (payment clears at collection); for prepaid methods the reverse
// holds. A COD order whose collection payment has not cleared counts as
// confirmed but marks the Payment Success step failed.
//
// Pure and deterministic: no I/O, no clock reads. An unrecognized status
// degrades to all-false step flags rather than failing, to tolerate
// backend enum drift.
func DeriveSteps(order *models.Order) []LifecycleStep {
	if order.Status == models.OrderStatusCancelled {
		cancelledAt := order.UpdatedAt
		return []LifecycleStep{
			{Key: StepKeyPayment, Label: "Payment Success"},
			{Key: StepKeyCancelled, Label: "Cancelled", Completed: true, Date: &cancelledAt},
		}
	}

	isCOD := order.IsCOD()
	isCODPendingPayment := isCOD && order.PaymentStatus == models.PaymentStatusPending

	confirmedReached := statusReached(order.Status, models.OrderStatusConfirmed)

	confirmed := LifecycleStep{
		Key:       StepKeyConfirmed,
		Label:     "Confirmed",
		Completed: confirmedReached || isCODPendingPayment,
		Current:   order.Status == models.OrderStatusConfirmed && !isCODPendingPayment,
	}
	if confirmed.Completed {
		createdAt := order.CreatedAt
		confirmed.Date = &createdAt
	}

	payment := LifecycleStep{
		Key:       StepKeyPayment,
		Label:     "Payment Success",
		Completed: order.PaymentStatus == models.PaymentStatusPaid,
		Current:   order.PaymentStatus == models.PaymentStatusPending && !isCOD,
		Failed:    isCODPendingPayment,
	}
	if payment.Completed {
		paidAt := order.CreatedAt
		payment.Date = &paidAt
	}

	var steps []LifecycleStep
	if isCOD {
		steps = append(steps, confirmed, payment)
	} else {
		steps = append(steps, payment, confirmed)
	}

	processing := LifecycleStep{
		Key:       StepKeyProcessing,
		Label:     "Processing",
		Completed: statusReached(order.Status, models.OrderStatusProcessing),
		Current:   order.Status == models.OrderStatusProcessing,
	}

	shipped := LifecycleStep{
		Key:       StepKeyShipped,
		Label:     "Shipped",
		Completed: statusReached(order.Status, models.OrderStatusShipped),
		Current:   order.Status == models.OrderStatusShipped,
	}

	delivered := LifecycleStep{
		Key:       StepKeyDelivered,
		Label:     "Delivered",
		Completed: order.Status == models.OrderStatusDelivered,
	}
	if delivered.Completed {
		deliveredAt := order.UpdatedAt
		delivered.Date = &deliveredAt
	}

	return append(steps, processing, shipped, delivered)
}

// fulfilmentRank orders the non-cancelled fulfilment statuses. Unknown
// statuses rank below everything so every membership check comes out false.
var fulfilmentRank = map[string]int{
	models.OrderStatusPending:    1,
	models.OrderStatusConfirmed:  2,
	models.OrderStatusProcessing: 3,
	models.OrderStatusShipped:    4,
	models.OrderStatusDelivered:  5,
}

// statusReached reports whether the order status is at or past the target.
func statusReached(status, target string) bool {
	rank, ok := fulfilmentRank[status]
	if !ok {
		return false
	}
	return rank >= fulfilmentRank[target]
}
