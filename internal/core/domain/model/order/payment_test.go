package order_test

import (
	"testing"

	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod(t *testing.T) {
	t.Run("should validate cash and card", func(t *testing.T) {
		require.NoError(t, order.Cash.Validate())
		require.NoError(t, order.Card.Validate())
	})

	t.Run("should reject unknown method", func(t *testing.T) {
		err := order.PaymentMethodUnknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should round-trip through wire names", func(t *testing.T) {
		for _, method := range []order.PaymentMethod{order.Cash, order.Card} {
			parsed, err := order.PaymentMethodFromString(method.String())

			require.NoError(t, err)
			assert.Equal(t, method, parsed)
		}
	})

	t.Run("should reject unknown wire name", func(t *testing.T) {
		_, err := order.PaymentMethodFromString("crypto")
		require.Error(t, err)
	})
}

func TestPaymentStatus(t *testing.T) {
	t.Run("should validate pending and paid", func(t *testing.T) {
		require.NoError(t, order.PaymentPending.Validate())
		require.NoError(t, order.PaymentPaid.Validate())
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		err := order.PaymentStatusUnknown.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should round-trip through wire names", func(t *testing.T) {
		for _, status := range []order.PaymentStatus{order.PaymentPending, order.PaymentPaid} {
			parsed, err := order.PaymentStatusFromString(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})
}
