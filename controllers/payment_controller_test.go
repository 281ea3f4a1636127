package controllers

import (
	"testing"

	"github.com/Arjun-316/FurniMart/models"
	"github.com/stretchr/testify/assert"
)

func TestAmountInPaise(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   int
	}{
		{"whole rupees", 250, 25000},
		{"paise survive the conversion", 19.99, 1999},
		{"no truncation on repeated decimals", 1099.90, 109990},
		{"sub-paisa rounds to nearest", 10.005, 1001},
		{"zero", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, amountInPaise(tc.amount))
		})
	}
}

func TestEnabledInstrumentsCoverPrepaidMethodsOnly(t *testing.T) {
	for _, method := range []string{
		models.PaymentMethodCard,
		models.PaymentMethodNetBanking,
		models.PaymentMethodUPI,
	} {
		assert.Contains(t, enabledInstruments, method)
	}
	assert.NotContains(t, enabledInstruments, models.PaymentMethodCOD)
}

// Every mutating handler invalidates the order read cache through the
// same key the detail handler caches under, so the key must be stable
// and unique per order.
func TestOrderCacheKey(t *testing.T) {
	assert.Equal(t, orderCacheKey(42), orderCacheKey(42))
	assert.NotEqual(t, orderCacheKey(42), orderCacheKey(43))
}
