package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItemSpecs(t *testing.T) []commands.ItemSpec {
	t.Helper()
	spec, err := commands.NewItemSpec(kernel.NewUUID(), 3)
	require.NoError(t, err)
	return []commands.ItemSpec{spec}
}

func TestNewPlaceOrderCommand_ValidInput(t *testing.T) {
	vendor := vendorActor(t)
	supplierID := kernel.NewUUID()
	charges, err := kernel.NewMoney(2000)
	require.NoError(t, err)

	cmd, err := commands.NewPlaceOrderCommand(vendor, supplierID, validItemSpecs(t), "12 Market Road", "gate 3", charges)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.True(t, cmd.SupplierID().IsEqual(supplierID))
	assert.Equal(t, "12 Market Road", cmd.DeliveryAddress())
	assert.Equal(t, "gate 3", cmd.DeliveryInstructions())
	assert.Len(t, cmd.Items(), 1)
}

func TestNewPlaceOrderCommand_SupplierCannotPlace(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		supplierActor(t), kernel.NewUUID(), validItemSpecs(t), "12 Market Road", "", kernel.ZeroMoney())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrNotAuthorized)
}

func TestNewPlaceOrderCommand_SupplierIDRequired(t *testing.T) {
	var zeroID kernel.UUID
	_, err := commands.NewPlaceOrderCommand(
		vendorActor(t), zeroID, validItemSpecs(t), "12 Market Road", "", kernel.ZeroMoney())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPlaceOrderCommand_ItemsRequired(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		vendorActor(t), kernel.NewUUID(), nil, "12 Market Road", "", kernel.ZeroMoney())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewPlaceOrderCommand_AddressRequired(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(
		vendorActor(t), kernel.NewUUID(), validItemSpecs(t), "", "", kernel.ZeroMoney())

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewItemSpec_InvalidInput(t *testing.T) {
	_, err := commands.NewItemSpec(kernel.NewUUID(), 0)
	require.Error(t, err)

	var zeroID kernel.UUID
	_, err = commands.NewItemSpec(zeroID, 1)
	require.Error(t, err)
}

func TestPlaceOrderCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.PlaceOrderCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
}
