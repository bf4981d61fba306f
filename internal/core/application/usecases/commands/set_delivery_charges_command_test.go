package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSetDeliveryChargesCommand_ValidInput(t *testing.T) {
	number, err := order.GenerateNumber()
	require.NoError(t, err)
	charges, err := kernel.NewMoney(3500)
	require.NoError(t, err)

	cmd, err := commands.NewSetDeliveryChargesCommand(number, charges, supplierActor(t))

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, number, cmd.Number())
	assert.Equal(t, int64(3500), cmd.Charges().Amount())
}

func TestNewSetDeliveryChargesCommand_InvalidNumber(t *testing.T) {
	var zeroNumber order.Number
	_, err := commands.NewSetDeliveryChargesCommand(zeroNumber, kernel.ZeroMoney(), supplierActor(t))
	require.Error(t, err)
}

func TestSetDeliveryChargesCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.SetDeliveryChargesCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSetDeliveryChargesCommandIsNotConstructed)
}
