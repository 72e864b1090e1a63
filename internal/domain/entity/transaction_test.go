package entity

import (
	"testing"
	"time"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	coremocks "github.com/csmqbusy/personal-finances/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Date defaults to now", func(t *testing.T) {
		desc := "  lunch "
		transaction, err := NewTransaction(1, KindSpending, 7, 1500, &desc, nil, mockTime)

		require.NoError(t, err)
		assert.Equal(t, fixedTime, transaction.Date)
		assert.Equal(t, "lunch", *transaction.Description)
		assert.Equal(t, uint64(7), transaction.CategoryID)
	})

	t.Run("Explicit date is normalized to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+3", 3*60*60)
		when := time.Date(2024, 1, 1, 2, 0, 0, 0, loc)

		transaction, err := NewTransaction(1, KindIncome, 7, 10, nil, &when, mockTime)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2023, 12, 31, 23, 0, 0, 0, time.UTC), transaction.Date)
		assert.Nil(t, transaction.Description)
	})

	t.Run("Non-positive amounts are rejected", func(t *testing.T) {
		for _, amount := range []int64{0, -1} {
			_, err := NewTransaction(1, KindSpending, 7, amount, nil, nil, mockTime)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})
}

func TestTransaction_Apply(t *testing.T) {
	transaction := &Transaction{ID: 1, CategoryID: 2, Amount: 100, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}

	t.Run("Invalid amount leaves the record unchanged", func(t *testing.T) {
		amount := int64(-5)
		err := transaction.Apply(TransactionUpdate{Amount: &amount}, 9)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, int64(100), transaction.Amount)
		assert.Equal(t, uint64(2), transaction.CategoryID)
	})

	t.Run("Partial update", func(t *testing.T) {
		amount := int64(250)
		desc := ""
		require.NoError(t, transaction.Apply(TransactionUpdate{Amount: &amount, Description: &desc}, 0))
		assert.Equal(t, int64(250), transaction.Amount)
		assert.Nil(t, transaction.Description)
		assert.Equal(t, uint64(2), transaction.CategoryID)
	})
}
