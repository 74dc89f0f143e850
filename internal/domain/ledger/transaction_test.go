package ledger

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stocktrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSaleTransaction(t *testing.T) {
	itemID := uuid.New()
	price := decimal.NewFromFloat(4.50)

	t.Run("computes total from quantity, price and discount", func(t *testing.T) {
		tx, err := NewSaleTransaction(itemID, "Espresso", 3, price, decimal.NewFromFloat(1.50), "morning rush")

		require.NoError(t, err)
		assert.Equal(t, itemID, tx.ItemID)
		assert.Equal(t, "Espresso", tx.ItemName)
		assert.Equal(t, int64(3), tx.Quantity)
		assert.True(t, decimal.NewFromFloat(13.50).Equal(tx.Subtotal()))
		assert.True(t, decimal.NewFromFloat(12.00).Equal(tx.Total))
		assert.Equal(t, "morning rush", tx.Notes)
		assert.WithinDuration(t, time.Now(), tx.OccurredAt, time.Second)
	})

	t.Run("accepts discount equal to subtotal", func(t *testing.T) {
		tx, err := NewSaleTransaction(itemID, "Espresso", 2, price, decimal.NewFromFloat(9.00), "")

		require.NoError(t, err)
		assert.True(t, tx.Total.IsZero())
	})

	t.Run("rejects discount exceeding subtotal", func(t *testing.T) {
		_, err := NewSaleTransaction(itemID, "Espresso", 1, price, decimal.NewFromFloat(4.51), "")

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidDiscount))
		assert.Equal(t, "Discount cannot exceed subtotal.", err.Error())
	})

	t.Run("rejects negative discount", func(t *testing.T) {
		_, err := NewSaleTransaction(itemID, "Espresso", 1, price, decimal.NewFromInt(-1), "")

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidDiscount))
		assert.Equal(t, "Discount cannot be negative.", err.Error())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewSaleTransaction(itemID, "Espresso", 0, price, decimal.Zero, "")

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeInvalidQuantity))
		assert.Equal(t, "Quantity must be at least 1.", err.Error())
	})

	t.Run("rejects nil item id", func(t *testing.T) {
		_, err := NewSaleTransaction(uuid.Nil, "Espresso", 1, price, decimal.Zero, "")

		require.Error(t, err)
		assert.True(t, shared.IsCode(err, shared.CodeItemNotFound))
	})
}

func TestPeriodStart(t *testing.T) {
	// Wednesday 2026-08-19 15:30 local
	now := time.Date(2026, 8, 19, 15, 30, 0, 0, time.Local)

	t.Run("today starts at midnight", func(t *testing.T) {
		assert.Equal(t, time.Date(2026, 8, 19, 0, 0, 0, 0, time.Local), PeriodToday.Start(now))
	})

	t.Run("week starts on sunday", func(t *testing.T) {
		assert.Equal(t, time.Date(2026, 8, 16, 0, 0, 0, 0, time.Local), PeriodWeek.Start(now))
	})

	t.Run("week on sunday starts same day", func(t *testing.T) {
		sunday := time.Date(2026, 8, 16, 9, 0, 0, 0, time.Local)
		assert.Equal(t, time.Date(2026, 8, 16, 0, 0, 0, 0, time.Local), PeriodWeek.Start(sunday))
	})

	t.Run("month starts on the first", func(t *testing.T) {
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), PeriodMonth.Start(now))
	})

	t.Run("all has no lower bound", func(t *testing.T) {
		assert.True(t, PeriodAll.Start(now).IsZero())
	})
}

func TestPeriodIsValid(t *testing.T) {
	assert.True(t, PeriodAll.IsValid())
	assert.True(t, PeriodToday.IsValid())
	assert.True(t, PeriodWeek.IsValid())
	assert.True(t, PeriodMonth.IsValid())
	assert.False(t, Period("year").IsValid())
}
