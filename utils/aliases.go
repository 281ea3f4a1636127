package utils

import (
	"strings"

	"github.com/Arjun-316/FurniMart/models"
)

// Backend versions have drifted on how payment methods and statuses are
// spelled. Rather than scattering tolerant checks through handlers, every
// known spelling maps to its canonical value here and payloads are
// normalized once at the request boundary.

var paymentMethodAliases = map[string]string{
	"cod":              models.PaymentMethodCOD,
	"cash_on_delivery": models.PaymentMethodCOD,
	"cash-on-delivery": models.PaymentMethodCOD,
	"card":             models.PaymentMethodCard,
	"credit_card":      models.PaymentMethodCard,
	"debit_card":       models.PaymentMethodCard,
	"netbanking":       models.PaymentMethodNetBanking,
	"net_banking":      models.PaymentMethodNetBanking,
	"nb":               models.PaymentMethodNetBanking,
	"upi":              models.PaymentMethodUPI,
	"wallet":           models.PaymentMethodWallet,
}

var orderStatusAliases = map[string]string{
	"pending":    models.OrderStatusPending,
	"placed":     models.OrderStatusPending,
	"confirmed":  models.OrderStatusConfirmed,
	"accepted":   models.OrderStatusConfirmed,
	"processing": models.OrderStatusProcessing,
	"in_process": models.OrderStatusProcessing,
	"shipped":    models.OrderStatusShipped,
	"dispatched": models.OrderStatusShipped,
	"delivered":  models.OrderStatusDelivered,
	"completed":  models.OrderStatusDelivered,
	"cancelled":  models.OrderStatusCancelled,
	"canceled":   models.OrderStatusCancelled,
}

var paymentStatusAliases = map[string]string{
	"pending":   models.PaymentStatusPending,
	"unpaid":    models.PaymentStatusPending,
	"paid":      models.PaymentStatusPaid,
	"completed": models.PaymentStatusPaid,
	"success":   models.PaymentStatusPaid,
}

// CanonicalPaymentMethod maps any known payment method spelling to its
// canonical value. Returns false for spellings outside the alias table.
func CanonicalPaymentMethod(raw string) (string, bool) {
	method, ok := paymentMethodAliases[strings.ToLower(strings.TrimSpace(raw))]
	return method, ok
}

// CanonicalOrderStatus maps any known order status spelling to its
// canonical value. Returns false for spellings outside the alias table.
func CanonicalOrderStatus(raw string) (string, bool) {
	status, ok := orderStatusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}

// CanonicalPaymentStatus maps any known payment status spelling to its
// canonical value. Returns false for spellings outside the alias table.
func CanonicalPaymentStatus(raw string) (string, bool) {
	status, ok := paymentStatusAliases[strings.ToLower(strings.TrimSpace(raw))]
	return status, ok
}
