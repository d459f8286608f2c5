package order_test

import (
	"testing"
	"time"

	"deliverya/internal/core/domain/model/kernel"
	"deliverya/internal/core/domain/model/order"
	"deliverya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func newTestOrder(t *testing.T, method order.PaymentMethod) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"Maria Lopez",
		mustGeoPoint(t, -35.0311, -63.0128),
		mustGeoPoint(t, -35.0250, -63.0050),
		"Av. San Martin 120",
		"Calle 9 n. 454",
		"two boxes, ring the bell",
		1500,
		method,
		time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending unpaid order", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.CourierID())
		assert.Empty(t, o.CourierName())
		assert.Nil(t, o.AcceptedAt())
		assert.Nil(t, o.CompletedAt())
		assert.Nil(t, o.CancelledAt())
		assert.Nil(t, o.PaidAt())
	})

	t.Run("should derive distance and estimate from the route", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)

		km, err := o.Origin().DistanceKm(o.Destination())
		require.NoError(t, err)
		assert.InDelta(t, km, o.DistanceKm(), 1e-9)
		assert.Equal(t, kernel.EstimatedMinutes(km), o.EtaMinutes())
		assert.Positive(t, o.EtaMinutes())
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		origin := mustGeoPoint(t, 0, 0)
		destination := mustGeoPoint(t, 0, 1)
		createdAt := time.Now().UTC()

		testCases := []struct {
			name string
			fn   func() (*order.Order, error)
		}{
			{"empty client name", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "",
					origin, destination, "a", "b", "", 100, order.Cash, createdAt)
			}},
			{"empty origin label", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Maria",
					origin, destination, "", "b", "", 100, order.Cash, createdAt)
			}},
			{"empty destination label", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Maria",
					origin, destination, "a", "", "", 100, order.Cash, createdAt)
			}},
			{"zero price", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Maria",
					origin, destination, "a", "b", "", 0, order.Cash, createdAt)
			}},
			{"negative price", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Maria",
					origin, destination, "a", "b", "", -10, order.Cash, createdAt)
			}},
			{"unknown payment method", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Maria",
					origin, destination, "a", "b", "", 100, order.PaymentMethodUnknown, createdAt)
			}},
			{"unconstructed origin", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Maria",
					kernel.GeoPoint{}, destination, "a", "b", "", 100, order.Cash, createdAt)
			}},
			{"zero created time", func() (*order.Order, error) {
				return order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Maria",
					origin, destination, "a", "b", "", 100, order.Cash, time.Time{})
			}},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := tc.fn()
				require.Error(t, err)
			})
		}
	})

	t.Run("should allow empty description", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Maria",
			mustGeoPoint(t, 0, 0), mustGeoPoint(t, 0, 1),
			"a", "b", "", 100, order.Card, time.Now().UTC())

		require.NoError(t, err)
		assert.Empty(t, o.Description())
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var o order.Order
		require.Error(t, o.Validate())
	})
}

func TestOrder_Accept(t *testing.T) {
	courierID := kernel.NewUUID()
	acceptedAt := time.Date(2025, 3, 10, 12, 5, 0, 0, time.UTC)

	t.Run("should assign courier and move to in-transit", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)

		err := o.Accept(courierID, "Juan Perez", acceptedAt)

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		require.NotNil(t, o.CourierID())
		assert.True(t, o.CourierID().IsEqual(courierID))
		assert.Equal(t, "Juan Perez", o.CourierName())
		require.NotNil(t, o.AcceptedAt())
		assert.Equal(t, acceptedAt, *o.AcceptedAt())
	})

	t.Run("should reject a second acceptance with conflict error", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)
		require.NoError(t, o.Accept(courierID, "Juan Perez", acceptedAt))

		err := o.Accept(kernel.NewUUID(), "Pedro Gomez", acceptedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrObjectAlreadyTaken)
		assert.True(t, o.CourierID().IsEqual(courierID), "first courier keeps the order")
	})

	t.Run("should reject empty courier name", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)

		err := o.Accept(courierID, "", acceptedAt)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject acceptance of cancelled order", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)
		require.NoError(t, o.Cancel(acceptedAt))

		err := o.Accept(courierID, "Juan Perez", acceptedAt)

		require.Error(t, err)
	})
}

func TestOrder_Complete(t *testing.T) {
	courierID := kernel.NewUUID()
	acceptedAt := time.Date(2025, 3, 10, 12, 5, 0, 0, time.UTC)
	completedAt := time.Date(2025, 3, 10, 12, 40, 0, 0, time.UTC)

	t.Run("cash order should settle on completion", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)
		require.NoError(t, o.Accept(courierID, "Juan Perez", acceptedAt))

		err := o.Complete(completedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		require.NotNil(t, o.CompletedAt())
		assert.Equal(t, completedAt, *o.CompletedAt())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, completedAt, *o.PaidAt())
	})

	t.Run("card order should stay pending payment", func(t *testing.T) {
		o := newTestOrder(t, order.Card)
		require.NoError(t, o.Accept(courierID, "Juan Perez", acceptedAt))

		err := o.Complete(completedAt)

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.PaidAt())
	})

	t.Run("should reject completion of pending order", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)

		err := o.Complete(completedAt)

		require.Error(t, err)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject double completion", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)
		require.NoError(t, o.Accept(courierID, "Juan Perez", acceptedAt))
		require.NoError(t, o.Complete(completedAt))

		err := o.Complete(completedAt.Add(time.Minute))

		require.Error(t, err)
		assert.Equal(t, completedAt, *o.CompletedAt(), "timestamp is written once")
	})
}

func TestOrder_Cancel(t *testing.T) {
	cancelledAt := time.Date(2025, 3, 10, 12, 10, 0, 0, time.UTC)

	t.Run("should cancel pending order", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)

		err := o.Cancel(cancelledAt)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		require.NotNil(t, o.CancelledAt())
		assert.Equal(t, cancelledAt, *o.CancelledAt())
		assert.Nil(t, o.CourierID())
	})

	t.Run("should reject cancellation of in-transit order", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)
		require.NoError(t, o.Accept(kernel.NewUUID(), "Juan Perez", cancelledAt))

		err := o.Cancel(cancelledAt)

		require.Error(t, err)
		assert.Equal(t, order.InTransit, o.Status())
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	courierID := kernel.NewUUID()
	acceptedAt := time.Date(2025, 3, 10, 12, 5, 0, 0, time.UTC)
	completedAt := time.Date(2025, 3, 10, 12, 40, 0, 0, time.UTC)
	paidAt := time.Date(2025, 3, 10, 12, 45, 0, 0, time.UTC)

	t.Run("should settle completed card order", func(t *testing.T) {
		o := newTestOrder(t, order.Card)
		require.NoError(t, o.Accept(courierID, "Juan Perez", acceptedAt))
		require.NoError(t, o.Complete(completedAt))

		err := o.MarkPaid(paidAt)

		require.NoError(t, err)
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, paidAt, *o.PaidAt())
	})

	t.Run("should reject settlement before completion", func(t *testing.T) {
		o := newTestOrder(t, order.Card)
		require.NoError(t, o.Accept(courierID, "Juan Perez", acceptedAt))

		err := o.MarkPaid(paidAt)

		require.Error(t, err)
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("should reject double settlement", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)
		require.NoError(t, o.Accept(courierID, "Juan Perez", acceptedAt))
		require.NoError(t, o.Complete(completedAt))

		err := o.MarkPaid(paidAt)

		require.Error(t, err)
		assert.Equal(t, completedAt, *o.PaidAt(), "cash settlement timestamp is kept")
	})
}

func TestOrder_ResolvedAt(t *testing.T) {
	courierID := kernel.NewUUID()
	acceptedAt := time.Date(2025, 3, 10, 12, 5, 0, 0, time.UTC)
	completedAt := time.Date(2025, 3, 10, 12, 40, 0, 0, time.UTC)
	cancelledAt := time.Date(2025, 3, 10, 12, 10, 0, 0, time.UTC)

	t.Run("live order resolves at creation time", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)
		assert.Equal(t, o.CreatedAt(), o.ResolvedAt())
	})

	t.Run("completed order resolves at completion time", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)
		require.NoError(t, o.Accept(courierID, "Juan Perez", acceptedAt))
		require.NoError(t, o.Complete(completedAt))

		assert.Equal(t, completedAt, o.ResolvedAt())
	})

	t.Run("cancelled order resolves at cancellation time", func(t *testing.T) {
		o := newTestOrder(t, order.Cash)
		require.NoError(t, o.Cancel(cancelledAt))

		assert.Equal(t, cancelledAt, o.ResolvedAt())
	})
}

func TestRestoreOrder(t *testing.T) {
	restoreParams := func(t *testing.T) order.RestoreOrderParams {
		t.Helper()
		return order.RestoreOrderParams{
			ID:               kernel.NewUUID(),
			ClientID:         kernel.NewUUID(),
			ClientName:       "Maria Lopez",
			Origin:           mustGeoPoint(t, -35.0311, -63.0128),
			Destination:      mustGeoPoint(t, -35.0250, -63.0050),
			OriginLabel:      "Av. San Martin 120",
			DestinationLabel: "Calle 9 n. 454",
			Price:            1500,
			DistanceKm:       1.2,
			EtaMinutes:       11,
			Status:           order.Pending,
			PaymentMethod:    order.Card,
			PaymentStatus:    order.PaymentPending,
			CreatedAt:        time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		}
	}

	t.Run("should restore pending order", func(t *testing.T) {
		params := restoreParams(t)

		o, err := order.RestoreOrder(params)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.InDelta(t, 1.2, o.DistanceKm(), 1e-9)
		assert.Equal(t, 11, o.EtaMinutes())
		assert.Nil(t, o.CourierID())
	})

	t.Run("should restore in-transit order with courier", func(t *testing.T) {
		params := restoreParams(t)
		courierID := kernel.NewUUID()
		acceptedAt := params.CreatedAt.Add(5 * time.Minute)
		params.Status = order.InTransit
		params.CourierID = &courierID
		params.CourierName = "Juan Perez"
		params.AcceptedAt = &acceptedAt

		o, err := order.RestoreOrder(params)

		require.NoError(t, err)
		require.NotNil(t, o.CourierID())
		assert.True(t, o.CourierID().IsEqual(courierID))
		assert.Equal(t, acceptedAt, *o.AcceptedAt())
	})

	t.Run("should reject in-transit order without courier", func(t *testing.T) {
		params := restoreParams(t)
		params.Status = order.InTransit

		_, err := order.RestoreOrder(params)

		require.Error(t, err)
	})

	t.Run("should reject pending order with courier", func(t *testing.T) {
		params := restoreParams(t)
		courierID := kernel.NewUUID()
		params.CourierID = &courierID
		params.CourierName = "Juan Perez"

		_, err := order.RestoreOrder(params)

		require.Error(t, err)
	})

	t.Run("should reject paid order that is not completed", func(t *testing.T) {
		params := restoreParams(t)
		params.PaymentStatus = order.PaymentPaid

		_, err := order.RestoreOrder(params)

		require.Error(t, err)
	})

	t.Run("restored order should keep behaving", func(t *testing.T) {
		params := restoreParams(t)
		courierID := kernel.NewUUID()
		acceptedAt := params.CreatedAt.Add(5 * time.Minute)
		params.Status = order.InTransit
		params.CourierID = &courierID
		params.CourierName = "Juan Perez"
		params.AcceptedAt = &acceptedAt

		o, err := order.RestoreOrder(params)
		require.NoError(t, err)

		completedAt := acceptedAt.Add(30 * time.Minute)
		require.NoError(t, o.Complete(completedAt))
		require.NoError(t, o.MarkPaid(completedAt.Add(time.Minute)))
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	})
}
