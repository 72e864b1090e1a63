package entity

import (
	"strings"
	"testing"

	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("Name is trimmed", func(t *testing.T) {
		category, err := NewCategory(1, KindSpending, "  Food ")
		require.NoError(t, err)
		assert.Equal(t, "Food", category.Name)
		assert.False(t, category.IsDefault)
	})

	t.Run("Empty and long names are rejected", func(t *testing.T) {
		_, err := NewCategory(1, KindIncome, "   ")
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)

		_, err = NewCategory(1, KindIncome, strings.Repeat("x", 101))
		assert.ErrorIs(t, err, errs.ErrInvalidRequest)
	})
}

func TestCategory_Rename(t *testing.T) {
	t.Run("Default category is read-only", func(t *testing.T) {
		category := NewDefaultCategory(1, KindSpending, "Other")
		assert.ErrorIs(t, category.Rename("Misc"), errs.ErrDefaultCategoryReadOnly)
		assert.Equal(t, "Other", category.Name)
	})

	t.Run("Regular category is renamed", func(t *testing.T) {
		category, _ := NewCategory(1, KindSpending, "Food")
		require.NoError(t, category.Rename("Groceries"))
		assert.Equal(t, "Groceries", category.Name)
	})
}

func TestCategoryRef(t *testing.T) {
	id := uint64(5)
	name := " Food "
	blank := "  "

	assert.True(t, CategoryRef{}.IsEmpty())
	assert.True(t, CategoryRef{Name: &blank}.IsEmpty())
	assert.False(t, CategoryRef{ID: &id}.IsEmpty())
	assert.Equal(t, "id:5", CategoryRef{ID: &id, Name: &name}.Key())
	assert.Equal(t, "name:food", CategoryRef{Name: &name}.Key())
}

func TestParseDisposition(t *testing.T) {
	for _, token := range []string{"", "delete", "to_default", "to_existing", "to_new"} {
		d, err := ParseDisposition(token)
		require.NoError(t, err)
		assert.Equal(t, Disposition(token), d)
	}

	_, err := ParseDisposition("archive")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)

	assert.True(t, DispositionToNew.NeedsTarget())
	assert.False(t, DispositionToDefault.NeedsTarget())
}

func TestParseTransactionKind(t *testing.T) {
	kind, err := ParseTransactionKind("income")
	require.NoError(t, err)
	assert.Equal(t, KindIncome, kind)

	_, err = ParseTransactionKind("transfer")
	assert.ErrorIs(t, err, errs.ErrInvalidRequest)
}
