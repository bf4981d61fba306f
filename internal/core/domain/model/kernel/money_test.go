package kernel_test

import (
	"testing"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create non-negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(12500)

		require.NoError(t, err)
		assert.Equal(t, int64(12500), m.Amount())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(0)

		require.NoError(t, err)
		assert.True(t, m.IsEqual(kernel.ZeroMoney()))
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	a, _ := kernel.NewMoney(1500)
	b, _ := kernel.NewMoney(2500)

	t.Run("should add exactly", func(t *testing.T) {
		assert.Equal(t, int64(4000), a.Add(b).Amount())
	})

	t.Run("should multiply by a quantity exactly", func(t *testing.T) {
		assert.Equal(t, int64(10500), a.MultiplyBy(7).Amount())
	})

	t.Run("should not mutate operands", func(t *testing.T) {
		_ = a.Add(b)
		_ = a.MultiplyBy(3)

		assert.Equal(t, int64(1500), a.Amount())
		assert.Equal(t, int64(2500), b.Amount())
	})

	t.Run("should keep a sum of subtotals exact", func(t *testing.T) {
		total := kernel.ZeroMoney()
		for range 1000 {
			total = total.Add(a)
		}
		assert.Equal(t, int64(1_500_000), total.Amount())
	})
}

func TestMoney_String(t *testing.T) {
	m, _ := kernel.NewMoney(990)
	assert.Equal(t, "990", m.String())
}
