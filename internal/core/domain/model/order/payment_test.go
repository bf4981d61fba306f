package order_test

import (
	"testing"

	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    order.PaymentStatus
		to      order.PaymentStatus
		allowed bool
	}{
		{"pending to paid", order.PaymentPending, order.PaymentPaid, true},
		{"pending to failed", order.PaymentPending, order.PaymentFailed, true},
		{"pending to refunded", order.PaymentPending, order.PaymentRefunded, false},
		{"failed to paid is a retry", order.PaymentFailed, order.PaymentPaid, true},
		{"failed to refunded", order.PaymentFailed, order.PaymentRefunded, false},
		{"paid to refunded", order.PaymentPaid, order.PaymentRefunded, true},
		{"paid to failed", order.PaymentPaid, order.PaymentFailed, false},
		{"refunded is terminal", order.PaymentRefunded, order.PaymentPaid, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentStatusFromString(t *testing.T) {
	roundTrips := []order.PaymentStatus{
		order.PaymentPending, order.PaymentPaid,
		order.PaymentFailed, order.PaymentRefunded,
	}
	for _, status := range roundTrips {
		parsed, err := order.PaymentStatusFromString(status.String())
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := order.PaymentStatusFromString("unknown")
	require.Error(t, err)

	_, err = order.PaymentStatusFromString("chargeback")
	require.Error(t, err)
}

func TestPaymentStatus_Validate(t *testing.T) {
	require.NoError(t, order.PaymentPending.Validate())
	require.NoError(t, order.PaymentRefunded.Validate())

	require.Error(t, order.PaymentUnknown.Validate())
	require.Error(t, order.PaymentStatus(9).Validate())
}
