package utils

import (
	"testing"
	"time"

	"github.com/Arjun-316/FurniMart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeOrder(status, paymentStatus, paymentMethod string) *models.Order {
	return &models.Order{
		ID:            1,
		Status:        status,
		PaymentStatus: paymentStatus,
		PaymentMethod: paymentMethod,
		CreatedAt:     time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		UpdatedAt:     time.Date(2025, 3, 4, 16, 30, 0, 0, time.UTC),
	}
}

func stepByKey(t *testing.T, steps []LifecycleStep, key string) LifecycleStep {
	t.Helper()
	for _, s := range steps {
		if s.Key == key {
			return s
		}
	}
	t.Fatalf("step %q not found", key)
	return LifecycleStep{}
}

func indexOf(steps []LifecycleStep, key string) int {
	for i, s := range steps {
		if s.Key == key {
			return i
		}
	}
	return -1
}

func countCurrent(steps []LifecycleStep) int {
	n := 0
	for _, s := range steps {
		if s.Current {
			n++
		}
	}
	return n
}

func TestDeriveStepsCancelledCollapsesToTwoSteps(t *testing.T) {
	// Cancellation is terminal regardless of payment state or method.
	cases := []struct {
		name          string
		paymentStatus string
		paymentMethod string
	}{
		{"cod unpaid", models.PaymentStatusPending, models.PaymentMethodCOD},
		{"cod paid", models.PaymentStatusPaid, models.PaymentMethodCOD},
		{"card unpaid", models.PaymentStatusPending, models.PaymentMethodCard},
		{"upi paid", models.PaymentStatusPaid, models.PaymentMethodUPI},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := makeOrder(models.OrderStatusCancelled, tc.paymentStatus, tc.paymentMethod)
			steps := DeriveSteps(order)

			require.Len(t, steps, 2)
			assert.Equal(t, StepKeyPayment, steps[0].Key)
			assert.False(t, steps[0].Completed)
			assert.Equal(t, StepKeyCancelled, steps[1].Key)
			assert.True(t, steps[1].Completed)
			require.NotNil(t, steps[1].Date)
			assert.Equal(t, order.UpdatedAt, *steps[1].Date)
			assert.Zero(t, countCurrent(steps))
		})
	}
}

func TestDeriveStepsCODOrdering(t *testing.T) {
	steps := DeriveSteps(makeOrder(models.OrderStatusConfirmed, models.PaymentStatusPending, models.PaymentMethodCOD))
	assert.Less(t, indexOf(steps, StepKeyConfirmed), indexOf(steps, StepKeyPayment),
		"COD: Confirmed must precede Payment Success")
}

func TestDeriveStepsPrepaidOrdering(t *testing.T) {
	for _, method := range []string{models.PaymentMethodCard, models.PaymentMethodNetBanking, models.PaymentMethodUPI} {
		steps := DeriveSteps(makeOrder(models.OrderStatusPending, models.PaymentStatusPending, method))
		assert.Less(t, indexOf(steps, StepKeyPayment), indexOf(steps, StepKeyConfirmed),
			"%s: Payment Success must precede Confirmed", method)
	}
}

func TestDeriveStepsCODPendingPayment(t *testing.T) {
	// Scenario: confirmed COD order whose collection payment has not cleared.
	order := makeOrder(models.OrderStatusConfirmed, models.PaymentStatusPending, models.PaymentMethodCOD)
	steps := DeriveSteps(order)

	confirmed := stepByKey(t, steps, StepKeyConfirmed)
	assert.True(t, confirmed.Completed)
	assert.False(t, confirmed.Current)

	payment := stepByKey(t, steps, StepKeyPayment)
	assert.False(t, payment.Completed)
	assert.True(t, payment.Failed)
	assert.False(t, payment.Current)
}

func TestDeriveStepsCODPendingStatusPending(t *testing.T) {
	// A freshly placed COD order already counts as confirmed for display.
	steps := DeriveSteps(makeOrder(models.OrderStatusPending, models.PaymentStatusPending, models.PaymentMethodCOD))

	confirmed := stepByKey(t, steps, StepKeyConfirmed)
	assert.True(t, confirmed.Completed)
	assert.False(t, confirmed.Current)
	assert.True(t, stepByKey(t, steps, StepKeyPayment).Failed)
}

func TestDeriveStepsDeliveredCardOrder(t *testing.T) {
	// Every step completed, nothing current.
	order := makeOrder(models.OrderStatusDelivered, models.PaymentStatusPaid, models.PaymentMethodCard)
	steps := DeriveSteps(order)

	require.Len(t, steps, 5)
	assert.Equal(t, StepKeyPayment, steps[0].Key)
	assert.Equal(t, StepKeyConfirmed, steps[1].Key)
	assert.Equal(t, StepKeyProcessing, steps[2].Key)
	assert.Equal(t, StepKeyShipped, steps[3].Key)
	assert.Equal(t, StepKeyDelivered, steps[4].Key)

	for _, s := range steps {
		assert.True(t, s.Completed, "step %s should be completed", s.Key)
		assert.False(t, s.Current, "step %s should not be current", s.Key)
	}

	delivered := steps[4]
	require.NotNil(t, delivered.Date)
	assert.Equal(t, order.UpdatedAt, *delivered.Date)
}

func TestDeriveStepsPrepaidPendingPayment(t *testing.T) {
	steps := DeriveSteps(makeOrder(models.OrderStatusPending, models.PaymentStatusPending, models.PaymentMethodUPI))

	payment := stepByKey(t, steps, StepKeyPayment)
	assert.False(t, payment.Completed)
	assert.True(t, payment.Current)
	assert.False(t, payment.Failed)
	assert.Equal(t, 1, countCurrent(steps))
}

func TestDeriveStepsExactlyOneCurrentMidFulfilment(t *testing.T) {
	for _, status := range []string{models.OrderStatusConfirmed, models.OrderStatusProcessing, models.OrderStatusShipped} {
		steps := DeriveSteps(makeOrder(status, models.PaymentStatusPaid, models.PaymentMethodCard))
		assert.Equal(t, 1, countCurrent(steps), "status %s", status)
		assert.True(t, stepByKey(t, steps, status).Current)
	}
}

func TestDeriveStepsUnknownStatusDegrades(t *testing.T) {
	// Enum drift on the backend must not panic or mark progress.
	steps := DeriveSteps(makeOrder("awaiting_restock", models.PaymentStatusPending, models.PaymentMethodCard))

	require.Len(t, steps, 5)
	for _, key := range []string{StepKeyConfirmed, StepKeyProcessing, StepKeyShipped, StepKeyDelivered} {
		s := stepByKey(t, steps, key)
		assert.False(t, s.Completed, "step %s", key)
		assert.False(t, s.Current, "step %s", key)
		assert.False(t, s.Failed, "step %s", key)
	}
}

func TestDeriveStepsIdempotent(t *testing.T) {
	order := makeOrder(models.OrderStatusShipped, models.PaymentStatusPaid, models.PaymentMethodNetBanking)

	first := DeriveSteps(order)
	second := DeriveSteps(order)
	assert.Equal(t, first, second)
}

func TestDeriveStepsDatesOnCompletedSteps(t *testing.T) {
	order := makeOrder(models.OrderStatusProcessing, models.PaymentStatusPaid, models.PaymentMethodCard)
	steps := DeriveSteps(order)

	payment := stepByKey(t, steps, StepKeyPayment)
	require.NotNil(t, payment.Date)
	assert.Equal(t, order.CreatedAt, *payment.Date)

	confirmed := stepByKey(t, steps, StepKeyConfirmed)
	require.NotNil(t, confirmed.Date)
	assert.Equal(t, order.CreatedAt, *confirmed.Date)

	assert.Nil(t, stepByKey(t, steps, StepKeyDelivered).Date)
}
