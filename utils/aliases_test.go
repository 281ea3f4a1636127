package utils

import (
	"testing"

	"github.com/Arjun-316/FurniMart/models"
	"github.com/stretchr/testify/assert"
)

func TestCanonicalPaymentMethod(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"cod", models.PaymentMethodCOD},
		{"COD", models.PaymentMethodCOD},
		{"cash_on_delivery", models.PaymentMethodCOD},
		{" Cash-On-Delivery ", models.PaymentMethodCOD},
		{"card", models.PaymentMethodCard},
		{"credit_card", models.PaymentMethodCard},
		{"netbanking", models.PaymentMethodNetBanking},
		{"NET_BANKING", models.PaymentMethodNetBanking},
		{"upi", models.PaymentMethodUPI},
		{"wallet", models.PaymentMethodWallet},
	}
	for _, tc := range cases {
		got, ok := CanonicalPaymentMethod(tc.raw)
		assert.True(t, ok, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}

	_, ok := CanonicalPaymentMethod("barter")
	assert.False(t, ok)
	_, ok = CanonicalPaymentMethod("")
	assert.False(t, ok)
}

func TestCanonicalOrderStatus(t *testing.T) {
	got, ok := CanonicalOrderStatus("Dispatched")
	assert.True(t, ok)
	assert.Equal(t, models.OrderStatusShipped, got)

	got, ok = CanonicalOrderStatus("canceled")
	assert.True(t, ok)
	assert.Equal(t, models.OrderStatusCancelled, got)

	got, ok = CanonicalOrderStatus("placed")
	assert.True(t, ok)
	assert.Equal(t, models.OrderStatusPending, got)

	_, ok = CanonicalOrderStatus("lost")
	assert.False(t, ok)
}

func TestCanonicalPaymentStatus(t *testing.T) {
	for _, raw := range []string{"paid", "completed", "success"} {
		got, ok := CanonicalPaymentStatus(raw)
		assert.True(t, ok, "raw %q", raw)
		assert.Equal(t, models.PaymentStatusPaid, got)
	}

	got, ok := CanonicalPaymentStatus("unpaid")
	assert.True(t, ok)
	assert.Equal(t, models.PaymentStatusPending, got)

	_, ok = CanonicalPaymentStatus("refunded")
	assert.False(t, ok)
}
