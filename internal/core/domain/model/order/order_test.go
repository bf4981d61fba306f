package order_test

import (
	"testing"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, role actor.Role) actor.Actor {
	t.Helper()
	a, err := actor.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func mustItem(t *testing.T, name string, quantity int, unitPrice int64) order.Item {
	t.Helper()
	price, err := kernel.NewMoney(unitPrice)
	require.NoError(t, err)
	item, err := order.NewItem(kernel.NewUUID(), name, quantity, price, "kg")
	require.NoError(t, err)
	return item
}

func mustMoney(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

// newPlacedOrder creates a pending order together with its vendor and
// supplier actors.
func newPlacedOrder(t *testing.T, items ...order.Item) (*order.Order, actor.Actor, actor.Actor) {
	t.Helper()

	vendor := mustActor(t, actor.RoleVendor)
	supplier := mustActor(t, actor.RoleSupplier)

	if len(items) == 0 {
		items = []order.Item{
			mustItem(t, "Steel Rods", 10, 5000),
			mustItem(t, "Cement", 4, 35000),
		}
	}

	number, err := order.GenerateNumber()
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		vendor.ID(),
		supplier.ID(),
		items,
		"12 Industrial Estate",
		"gate 3, ask for foreman",
		mustMoney(t, 2000),
	)
	require.NoError(t, err)
	return o, vendor, supplier
}

// deliverOrder drives a pending order through the supplier's happy path.
func deliverOrder(t *testing.T, o *order.Order, supplier actor.Actor) {
	t.Helper()
	for _, status := range []order.Status{
		order.Confirmed, order.Preparing, order.OutForDelivery, order.Delivered,
	} {
		require.NoError(t, o.ChangeStatus(status, supplier))
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with seeded tracking step", func(t *testing.T) {
		o, _, _ := newPlacedOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.Rating())
		assert.Equal(t, int64(1), o.Version())
		assert.Equal(t, o.CreatedAt(), o.UpdatedAt())

		steps := o.TrackingSteps()
		require.Len(t, steps, 1)
		assert.Equal(t, order.Pending, steps[0].Status())
		assert.Equal(t, "Order Placed", steps[0].Title())
		assert.Equal(t, "Order has been placed and waiting for supplier confirmation", steps[0].Description())
		assert.True(t, steps[0].Completed())
	})

	t.Run("should derive totals from item snapshots and charges", func(t *testing.T) {
		o, _, _ := newPlacedOrder(t,
			mustItem(t, "Steel Rods", 10, 5000),
			mustItem(t, "Cement", 4, 35000),
		)

		// 10×5000 + 4×35000 = 190000, plus 2000 delivery charges.
		assert.Equal(t, int64(190000), o.TotalAmount().Amount())
		assert.Equal(t, int64(2000), o.DeliveryCharges().Amount())
		assert.Equal(t, int64(192000), o.FinalAmount().Amount())
	})

	t.Run("should fail when vendor and supplier are the same party", func(t *testing.T) {
		party := kernel.NewUUID()
		number, err := order.GenerateNumber()
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(), number, party, party,
			[]order.Item{mustItem(t, "Sand", 1, 100)},
			"somewhere", "", kernel.ZeroMoney(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "vendor and supplier must be different parties")
	})

	t.Run("should fail without items", func(t *testing.T) {
		number, err := order.GenerateNumber()
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(),
			nil, "somewhere", "", kernel.ZeroMoney(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order items")
	})

	t.Run("should fail without delivery address", func(t *testing.T) {
		number, err := order.GenerateNumber()
		require.NoError(t, err)

		o, err := order.NewOrder(
			kernel.NewUUID(), number, kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t, "Sand", 1, 100)},
			"", "", kernel.ZeroMoney(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "delivery address")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidNumber order.Number

		o, err := order.NewOrder(
			invalidID, invalidNumber, kernel.NewUUID(), kernel.NewUUID(),
			nil, "", "", kernel.ZeroMoney(),
		)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "OrderNumber must be created")
		assert.Contains(t, err.Error(), "order items")
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should walk the supplier happy path and log each step once", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)

		deliverOrder(t, o, supplier)

		assert.Equal(t, order.Delivered, o.Status())
		steps := o.TrackingSteps()
		require.Len(t, steps, 5)

		wantOrder := []order.Status{
			order.Pending, order.Confirmed, order.Preparing,
			order.OutForDelivery, order.Delivered,
		}
		for i, status := range wantOrder {
			assert.Equal(t, status, steps[i].Status())
			assert.True(t, steps[i].Completed())
		}
		// Pending=1 plus four transitions.
		assert.Equal(t, int64(5), o.Version())
	})

	t.Run("should let the vendor cancel a pending order", func(t *testing.T) {
		o, vendor, _ := newPlacedOrder(t)

		require.NoError(t, o.ChangeStatus(order.Cancelled, vendor))

		assert.Equal(t, order.Cancelled, o.Status())
		steps := o.TrackingSteps()
		require.Len(t, steps, 2)
		assert.Equal(t, "Cancelled", steps[1].Title())
		assert.Equal(t, "Order has been cancelled", steps[1].Description())
	})

	t.Run("should let the vendor cancel a confirmed order", func(t *testing.T) {
		o, vendor, supplier := newPlacedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, supplier))

		require.NoError(t, o.ChangeStatus(order.Cancelled, vendor))

		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject an unreachable target before checking the role", func(t *testing.T) {
		o, vendor, _ := newPlacedOrder(t)

		err := o.ChangeStatus(order.Delivered, vendor)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.NotErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject the wrong role for a reachable target", func(t *testing.T) {
		o, vendor, supplier := newPlacedOrder(t)

		err := o.ChangeStatus(order.Confirmed, vendor)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)

		err = o.ChangeStatus(order.Cancelled, supplier)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)

		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject the right role from another party's order", func(t *testing.T) {
		o, _, _ := newPlacedOrder(t)
		stranger := mustActor(t, actor.RoleSupplier)

		err := o.ChangeStatus(order.Confirmed, stranger)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should reject any transition out of a terminal status", func(t *testing.T) {
		o, vendor, supplier := newPlacedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Cancelled, vendor))

		for _, next := range []order.Status{
			order.Confirmed, order.Preparing, order.OutForDelivery,
			order.Delivered, order.Rejected, order.Cancelled,
		} {
			err := o.ChangeStatus(next, supplier)
			require.Error(t, err)
			assert.ErrorIs(t, err, order.ErrInvalidTransition)
		}
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject re-requesting the current status", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, supplier))

		err := o.ChangeStatus(order.Confirmed, supplier)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Len(t, o.TrackingSteps(), 2)
	})

	t.Run("should leave version and updatedAt untouched on failure", func(t *testing.T) {
		o, vendor, _ := newPlacedOrder(t)
		version := o.Version()
		updatedAt := o.UpdatedAt()

		require.Error(t, o.ChangeStatus(order.Delivered, vendor))

		assert.Equal(t, version, o.Version())
		assert.Equal(t, updatedAt, o.UpdatedAt())
	})

	t.Run("should bump version exactly once per successful change", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)
		version := o.Version()

		require.NoError(t, o.ChangeStatus(order.Confirmed, supplier))

		assert.Equal(t, version+1, o.Version())
	})

	t.Run("should let the supplier reject a pending order", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)

		require.NoError(t, o.ChangeStatus(order.Rejected, supplier))

		assert.Equal(t, order.Rejected, o.Status())
		steps := o.TrackingSteps()
		require.Len(t, steps, 2)
		assert.Equal(t, "Rejected", steps[1].Title())
		assert.Equal(t, "Order has been rejected by supplier", steps[1].Description())
	})
}

func TestOrder_UpdateItems(t *testing.T) {
	t.Run("should replace items and recompute totals while pending", func(t *testing.T) {
		o, vendor, _ := newPlacedOrder(t)

		newItems := []order.Item{mustItem(t, "Gravel", 3, 1000)}
		require.NoError(t, o.UpdateItems(newItems, vendor))

		require.Len(t, o.Items(), 1)
		assert.Equal(t, int64(3000), o.TotalAmount().Amount())
		assert.Equal(t, int64(5000), o.FinalAmount().Amount())
	})

	t.Run("should reject item updates once confirmed", func(t *testing.T) {
		o, vendor, supplier := newPlacedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, supplier))
		before := o.TotalAmount()

		err := o.UpdateItems([]order.Item{mustItem(t, "Gravel", 3, 1000)}, vendor)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderStateLocked)
		assert.True(t, o.TotalAmount().IsEqual(before))
	})

	t.Run("should reject item updates from the supplier", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)

		err := o.UpdateItems([]order.Item{mustItem(t, "Gravel", 3, 1000)}, supplier)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("should reject an empty replacement", func(t *testing.T) {
		o, vendor, _ := newPlacedOrder(t)

		err := o.UpdateItems(nil, vendor)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, o.Items(), 2)
	})
}

func TestOrder_SetDeliveryCharges(t *testing.T) {
	t.Run("should update charges and final amount while pending", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)
		total := o.TotalAmount().Amount()

		require.NoError(t, o.SetDeliveryCharges(mustMoney(t, 4500), supplier))

		assert.Equal(t, int64(4500), o.DeliveryCharges().Amount())
		assert.Equal(t, total+4500, o.FinalAmount().Amount())
	})

	t.Run("should allow charge updates while confirmed", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, supplier))

		require.NoError(t, o.SetDeliveryCharges(mustMoney(t, 100), supplier))

		assert.Equal(t, int64(100), o.DeliveryCharges().Amount())
	})

	t.Run("should reject charge updates once preparing", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)
		require.NoError(t, o.ChangeStatus(order.Confirmed, supplier))
		require.NoError(t, o.ChangeStatus(order.Preparing, supplier))

		err := o.SetDeliveryCharges(mustMoney(t, 100), supplier)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderStateLocked)
	})

	t.Run("should reject charge updates from the vendor", func(t *testing.T) {
		o, vendor, _ := newPlacedOrder(t)

		err := o.SetDeliveryCharges(mustMoney(t, 100), vendor)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestOrder_MarkPayment(t *testing.T) {
	t.Run("should follow the payment graph", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)

		require.NoError(t, o.MarkPayment(order.PaymentFailed, supplier))
		require.NoError(t, o.MarkPayment(order.PaymentPaid, supplier))
		require.NoError(t, o.MarkPayment(order.PaymentRefunded, supplier))

		assert.Equal(t, order.PaymentRefunded, o.PaymentStatus())
	})

	t.Run("should reject refunding an unpaid order", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)

		err := o.MarkPayment(order.PaymentRefunded, supplier)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderStateLocked)
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
	})

	t.Run("should reject payment changes from the vendor", func(t *testing.T) {
		o, vendor, _ := newPlacedOrder(t)

		err := o.MarkPayment(order.PaymentPaid, vendor)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})

	t.Run("should not touch the order status", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)

		require.NoError(t, o.MarkPayment(order.PaymentPaid, supplier))

		assert.Equal(t, order.Pending, o.Status())
		assert.Len(t, o.TrackingSteps(), 1)
	})
}

func TestOrder_SetRating(t *testing.T) {
	newRating := func(t *testing.T) order.Rating {
		t.Helper()
		r, err := order.NewRating(5, 4, 5, 4, "solid materials, quick delivery")
		require.NoError(t, err)
		return r
	}

	t.Run("should attach a rating to a delivered order", func(t *testing.T) {
		o, vendor, supplier := newPlacedOrder(t)
		deliverOrder(t, o, supplier)

		require.NoError(t, o.SetRating(newRating(t), vendor))

		rating := o.Rating()
		require.NotNil(t, rating)
		assert.Equal(t, 5, rating.Quality())
		assert.Equal(t, "solid materials, quick delivery", rating.Comment())
	})

	t.Run("should reject rating before delivery", func(t *testing.T) {
		o, vendor, _ := newPlacedOrder(t)

		err := o.SetRating(newRating(t), vendor)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderStateLocked)
		assert.Nil(t, o.Rating())
	})

	t.Run("should reject a second rating", func(t *testing.T) {
		o, vendor, supplier := newPlacedOrder(t)
		deliverOrder(t, o, supplier)
		require.NoError(t, o.SetRating(newRating(t), vendor))

		err := o.SetRating(newRating(t), vendor)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderStateLocked)
	})

	t.Run("should reject ratings from the supplier", func(t *testing.T) {
		o, _, supplier := newPlacedOrder(t)
		deliverOrder(t, o, supplier)

		err := o.SetRating(newRating(t), supplier)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotAuthorized)
	})
}

func TestOrder_InvolvesActor(t *testing.T) {
	o, vendor, supplier := newPlacedOrder(t)

	assert.True(t, o.InvolvesActor(vendor))
	assert.True(t, o.InvolvesActor(supplier))
	assert.False(t, o.InvolvesActor(mustActor(t, actor.RoleVendor)))
	assert.False(t, o.InvolvesActor(mustActor(t, actor.RoleSupplier)))
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should rebuild the aggregate and recompute totals", func(t *testing.T) {
		original, vendor, supplier := newPlacedOrder(t)
		deliverOrder(t, original, supplier)

		rating, err := order.NewRating(4, 4, 4, 4, "")
		require.NoError(t, err)
		require.NoError(t, original.SetRating(rating, vendor))

		restored, err := order.RestoreOrder(
			original.ID(),
			original.Number(),
			original.VendorID(),
			original.SupplierID(),
			original.Items(),
			original.DeliveryAddress(),
			original.DeliveryInstructions(),
			original.DeliveryCharges(),
			original.Status(),
			original.PaymentStatus(),
			original.TrackingSteps(),
			original.Rating(),
			original.CreatedAt(),
			original.UpdatedAt(),
			original.Version(),
		)

		require.NoError(t, err)
		require.NoError(t, restored.Validate())
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, original.Status(), restored.Status())
		assert.Equal(t, original.Version(), restored.Version())
		assert.True(t, restored.TotalAmount().IsEqual(original.TotalAmount()))
		assert.True(t, restored.FinalAmount().IsEqual(original.FinalAmount()))
		assert.Len(t, restored.TrackingSteps(), 5)
		require.NotNil(t, restored.Rating())
	})

	t.Run("should reject an invalid stored status", func(t *testing.T) {
		original, _, _ := newPlacedOrder(t)

		restored, err := order.RestoreOrder(
			original.ID(),
			original.Number(),
			original.VendorID(),
			original.SupplierID(),
			original.Items(),
			original.DeliveryAddress(),
			"",
			original.DeliveryCharges(),
			order.Status(42),
			order.PaymentPending,
			original.TrackingSteps(),
			nil,
			original.CreatedAt(),
			original.UpdatedAt(),
			original.Version(),
		)

		require.Error(t, err)
		assert.Nil(t, restored)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should fail validation for zero-value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})
}

func TestOrder_UpdatedAtMovesForward(t *testing.T) {
	o, _, supplier := newPlacedOrder(t)
	created := o.CreatedAt()

	time.Sleep(2 * time.Millisecond)
	require.NoError(t, o.ChangeStatus(order.Confirmed, supplier))

	assert.Equal(t, created, o.CreatedAt())
	assert.True(t, o.UpdatedAt().After(created))
}
