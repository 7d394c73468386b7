package ordercontroller

import (
	"testing"

	"github.com/harikumar-dev/store-products-api/models"
	"github.com/stretchr/testify/require"
)

func TestMapOrderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want models.OrderStatus
	}{
		{"pending", models.OrderStatusPending},
		{"CONFIRMED", models.OrderStatusConfirmed},
		{"Shipped", models.OrderStatusShipped},
		{"delivered", models.OrderStatusDelivered},
		{"cancelled", models.OrderStatusCancelled},
	}
	for _, tc := range cases {
		got, err := mapOrderStatus(tc.in)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}

	_, err := mapOrderStatus("returned")
	require.Error(t, err)
}

func TestMapPaymentStatus(t *testing.T) {
	got, err := mapPaymentStatus("completed")
	require.NoError(t, err)
	require.Equal(t, models.PaymentStatusCompleted, got)

	_, err = mapPaymentStatus("paid")
	require.Error(t, err)
}

func TestInsufficientStockErrorMessage(t *testing.T) {
	err := &InsufficientStockError{ProductName: "iPhone 15 Pro", Requested: 3, Available: 2}
	require.Equal(t,
		"insufficient stock for product iPhone 15 Pro: requested 3, available 2",
		err.Error(),
	)
}
