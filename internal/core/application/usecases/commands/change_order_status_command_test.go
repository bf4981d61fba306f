package commands_test

import (
	"testing"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChangeOrderStatusCommand_ValidInput(t *testing.T) {
	number, err := order.GenerateNumber()
	require.NoError(t, err)
	supplier := supplierActor(t)

	cmd, err := commands.NewChangeOrderStatusCommand(number, order.Confirmed, supplier)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, number, cmd.Number())
	assert.Equal(t, order.Confirmed, cmd.NewStatus())
	assert.Equal(t, supplier, cmd.By())
}

func TestNewChangeOrderStatusCommand_InvalidInput(t *testing.T) {
	number, err := order.GenerateNumber()
	require.NoError(t, err)

	var zeroNumber order.Number
	_, err = commands.NewChangeOrderStatusCommand(zeroNumber, order.Confirmed, supplierActor(t))
	require.Error(t, err)

	_, err = commands.NewChangeOrderStatusCommand(number, order.Unknown, supplierActor(t))
	require.Error(t, err)
}

func TestChangeOrderStatusCommand_ZeroValueFailsValidation(t *testing.T) {
	var cmd commands.ChangeOrderStatusCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrChangeOrderStatusCommandIsNotConstructed)
}
