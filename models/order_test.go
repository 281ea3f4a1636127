package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to string }{
		{OrderStatusPending, OrderStatusConfirmed},
		{OrderStatusPending, OrderStatusCancelled},
		{OrderStatusConfirmed, OrderStatusProcessing},
		{OrderStatusProcessing, OrderStatusShipped},
		{OrderStatusShipped, OrderStatusDelivered},
	}
	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s should be legal", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{OrderStatusConfirmed, OrderStatusCancelled},
		{OrderStatusPending, OrderStatusShipped},
		{OrderStatusProcessing, OrderStatusDelivered},
		{OrderStatusShipped, OrderStatusProcessing},
		{OrderStatusDelivered, OrderStatusShipped},
		{OrderStatusCancelled, OrderStatusPending},
		{OrderStatusDelivered, OrderStatusCancelled},
		{"unknown", OrderStatusConfirmed},
	}
	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s should be illegal", tc.from, tc.to)
	}
}

func TestTerminalStatuses(t *testing.T) {
	assert.True(t, IsTerminalStatus(OrderStatusDelivered))
	assert.True(t, IsTerminalStatus(OrderStatusCancelled))
	for _, status := range []string{OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing, OrderStatusShipped} {
		assert.False(t, IsTerminalStatus(status), "status %s", status)
	}
}

func TestIsCOD(t *testing.T) {
	assert.True(t, (&Order{PaymentMethod: PaymentMethodCOD}).IsCOD())
	assert.False(t, (&Order{PaymentMethod: PaymentMethodCard}).IsCOD())
	assert.False(t, (&Order{PaymentMethod: PaymentMethodUPI}).IsCOD())
}
