package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/database"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type store struct {
	db         *gorm.DB
	users      *repository.UserRepository
	categories *repository.CategoryRepository
	spendings  *repository.TransactionRepository
	goals      *repository.GoalRepository
}

func newStore(t *testing.T) *store {
	tdb := database.NewTestDBManager(t, nil)
	db := tdb.Manager.DB()
	return &store{
		db:         db,
		users:      repository.NewUserRepository(db, tdb.Logger),
		categories: repository.NewCategoryRepository(db, entity.KindSpending, tdb.Logger),
		spendings:  repository.NewTransactionRepository(db, entity.KindSpending, tdb.Logger),
		goals:      repository.NewGoalRepository(db, tdb.Logger),
	}
}

func (s *store) user(t *testing.T, username string) *entity.User {
	t.Helper()
	user := &entity.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.users.Create(context.Background(), user))
	return user
}

func (s *store) category(t *testing.T, userID uint64, name string, isDefault bool) *entity.Category {
	t.Helper()
	category := &entity.Category{UserID: userID, Kind: entity.KindSpending, Name: name, IsDefault: isDefault}
	require.NoError(t, s.categories.Create(context.Background(), category))
	return category
}

func (s *store) spending(t *testing.T, userID, categoryID uint64, amount int64, description string, date time.Time) *entity.Transaction {
	t.Helper()
	transaction := &entity.Transaction{
		UserID:     userID,
		Kind:       entity.KindSpending,
		CategoryID: categoryID,
		Amount:     amount,
		Date:       date,
	}
	if description != "" {
		transaction.Description = &description
	}
	require.NoError(t, s.spendings.Create(context.Background(), transaction))
	return transaction
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := s.user(t, "alice")

	t.Run("Lookup by id and username", func(t *testing.T) {
		byID, err := s.users.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", byID.Email)

		byName, err := s.users.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, byName.ID)
	})

	t.Run("Duplicate username is a conflict", func(t *testing.T) {
		err := s.users.Create(ctx, &entity.User{Username: "alice", Email: "other@example.com", PasswordHash: "x"})
		assert.ErrorIs(t, err, errs.ErrUserAlreadyExists)
	})

	t.Run("Soft disable", func(t *testing.T) {
		alice.Deactivate()
		require.NoError(t, s.users.Update(ctx, alice))

		stored, err := s.users.GetByID(ctx, alice.ID)
		require.NoError(t, err)
		assert.False(t, stored.Active)
	})

	t.Run("Unknown user", func(t *testing.T) {
		_, err := s.users.GetByUsername(ctx, "nobody")
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := s.user(t, "alice")
	bob := s.user(t, "bob")
	other := s.category(t, alice.ID, "Other", true)
	food := s.category(t, alice.ID, "Food", false)
	bobsFood := s.category(t, bob.ID, "Food", false)

	t.Run("Names are unique per user regardless of case", func(t *testing.T) {
		err := s.categories.Create(ctx, &entity.Category{UserID: alice.ID, Name: "FOOD"})
		assert.ErrorIs(t, err, errs.ErrCategoryAlreadyExists)
		assert.NotEqual(t, food.ID, bobsFood.ID)
	})

	t.Run("Name lookup is case-insensitive", func(t *testing.T) {
		found, err := s.categories.GetByName(ctx, alice.ID, "fOoD")
		require.NoError(t, err)
		assert.Equal(t, food.ID, found.ID)
		assert.Equal(t, entity.KindSpending, found.Kind)
	})

	t.Run("Another user's category is not found", func(t *testing.T) {
		_, err := s.categories.GetByID(ctx, alice.ID, bobsFood.ID)
		assert.ErrorIs(t, err, errs.ErrCategoryNotFound)
	})

	t.Run("Default and list", func(t *testing.T) {
		def, err := s.categories.GetDefault(ctx, alice.ID)
		require.NoError(t, err)
		assert.Equal(t, other.ID, def.ID)
		assert.True(t, def.IsDefault)

		list, err := s.categories.List(ctx, alice.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Food", list[0].Name)
		assert.Equal(t, "Other", list[1].Name)
	})

	t.Run("Rename and delete", func(t *testing.T) {
		travel := s.category(t, alice.ID, "Travel", false)
		travel.Name = "Trips"
		require.NoError(t, s.categories.Update(ctx, travel))

		renamed, err := s.categories.GetByID(ctx, alice.ID, travel.ID)
		require.NoError(t, err)
		assert.Equal(t, "Trips", renamed.Name)

		require.NoError(t, s.categories.Delete(ctx, alice.ID, travel.ID))
		assert.ErrorIs(t, s.categories.Delete(ctx, alice.ID, travel.ID), errs.ErrCategoryNotFound)
	})

	t.Run("Non-ASCII name is found by its exact spelling", func(t *testing.T) {
		eclair := s.category(t, alice.ID, "Éclair", false)

		found, err := s.categories.GetByName(ctx, alice.ID, " Éclair ")
		require.NoError(t, err)
		assert.Equal(t, eclair.ID, found.ID)

		found, err = s.categories.GetByName(ctx, alice.ID, "ÉCLAIR")
		require.NoError(t, err)
		assert.Equal(t, eclair.ID, found.ID)
	})
}

func TestTransactionRepository(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := s.user(t, "alice")
	bob := s.user(t, "bob")
	other := s.category(t, alice.ID, "Other", true)
	food := s.category(t, alice.ID, "Food", false)
	clothes := s.category(t, alice.ID, "Clothes", false)
	bobsOther := s.category(t, bob.ID, "Other", true)

	first := s.spending(t, alice.ID, food.ID, 70, "Groceries 100%", day(2024, 5, 1))
	s.spending(t, alice.ID, clothes.ID, 30, "Shoes", day(2024, 5, 2))
	s.spending(t, alice.ID, food.ID, 10, "snack_bar", day(2024, 6, 1))
	s.spending(t, alice.ID, other.ID, 30, "", day(2024, 6, 3))
	s.spending(t, bob.ID, bobsOther.ID, 999, "", day(2024, 5, 1))

	t.Run("Get joins the category name", func(t *testing.T) {
		got, err := s.spendings.GetByID(ctx, alice.ID, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "Food", got.CategoryName)
		assert.Equal(t, int64(70), got.Amount)
		assert.True(t, got.Date.Equal(day(2024, 5, 1)))

		_, err = s.spendings.GetByID(ctx, bob.ID, first.ID)
		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
	})

	t.Run("No sort lists in id order", func(t *testing.T) {
		rows, err := s.spendings.List(ctx, entity.TransactionFilter{UserID: alice.ID})
		require.NoError(t, err)
		require.Len(t, rows, 4)
		for i := 1; i < len(rows); i++ {
			assert.Less(t, rows[i-1].ID, rows[i].ID)
		}
	})

	t.Run("Filters compose", func(t *testing.T) {
		low, high := int64(10), int64(50)
		from, to := day(2024, 5, 1), day(2024, 6, 1)
		rows, err := s.spendings.List(ctx, entity.TransactionFilter{
			UserID:      alice.ID,
			CategoryIDs: []uint64{food.ID, clothes.ID},
			Amount:      &entity.AmountRange{Min: &low, Max: &high},
			Dates:       &entity.DateRange{From: &from, To: &to},
			Sort:        []entity.SortOption{{Field: "amount", Descending: true}},
		})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, int64(30), rows[0].Amount)
		assert.Equal(t, int64(10), rows[1].Amount)
	})

	t.Run("Search treats wildcards literally", func(t *testing.T) {
		rows, err := s.spendings.List(ctx, entity.TransactionFilter{UserID: alice.ID, Search: "K_B"})
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "snack_bar", *rows[0].Description)

		rows, err = s.spendings.List(ctx, entity.TransactionFilter{UserID: alice.ID, Search: "100%"})
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("Sort by category name then date", func(t *testing.T) {
		rows, err := s.spendings.List(ctx, entity.TransactionFilter{
			UserID: alice.ID,
			Sort:   []entity.SortOption{{Field: "category_name"}, {Field: "date", Descending: true}},
		})
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "Clothes", rows[0].CategoryName)
		assert.Equal(t, "Food", rows[1].CategoryName)
		assert.True(t, rows[1].Date.Equal(day(2024, 6, 1)))
		assert.Equal(t, "Other", rows[3].CategoryName)
	})

	t.Run("Window pages through the ordered rows", func(t *testing.T) {
		filter := entity.TransactionFilter{UserID: alice.ID, Window: &entity.PageWindow{Offset: 1, Limit: 2}}

		rows, err := s.spendings.List(ctx, filter)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Greater(t, rows[0].ID, first.ID)

		count, err := s.spendings.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(4), count)

		count, err = s.spendings.Count(ctx, entity.TransactionFilter{UserID: alice.ID, Search: "K_B"})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Summary orders by amount then name", func(t *testing.T) {
		summary, err := s.spendings.Summarize(ctx, entity.TransactionFilter{UserID: alice.ID})
		require.NoError(t, err)
		assert.Equal(t, []entity.CategorySummary{
			{CategoryName: "Food", Amount: 80},
			{CategoryName: "Clothes", Amount: 30},
			{CategoryName: "Other", Amount: 30},
		}, summary)
	})

	t.Run("Category with transactions cannot be dropped directly", func(t *testing.T) {
		err := s.categories.Delete(ctx, alice.ID, clothes.ID)
		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
	})

	t.Run("Reassign and delete by category", func(t *testing.T) {
		count, err := s.spendings.CountByCategory(ctx, alice.ID, food.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)

		moved, err := s.spendings.ReassignCategory(ctx, alice.ID, food.ID, other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), moved)

		removed, err := s.spendings.DeleteByCategory(ctx, alice.ID, other.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)

		count, err = s.spendings.CountByCategory(ctx, bob.ID, bobsOther.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestGoalRepository(t *testing.T) {
	ctx := context.Background()
	s := newStore(t)
	alice := s.user(t, "alice")
	today := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	newGoal := func(name string, target time.Time, status entity.GoalStatus) *entity.SavingGoal {
		goal := &entity.SavingGoal{
			UserID:       alice.ID,
			Name:         name,
			TargetAmount: 1000,
			StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			TargetDate:   target,
			Status:       status,
		}
		require.NoError(t, s.goals.Create(ctx, goal))
		return goal
	}

	car := newGoal("Car", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), entity.GoalInProgress)
	trip := newGoal("Trip", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), entity.GoalInProgress)

	t.Run("Status filter is evaluated as of today", func(t *testing.T) {
		overdue := entity.GoalOverdue
		goals, err := s.goals.List(ctx, entity.GoalFilter{UserID: alice.ID, Status: &overdue, Today: today})
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, trip.ID, goals[0].ID)

		inProgress := entity.GoalInProgress
		goals, err = s.goals.List(ctx, entity.GoalFilter{UserID: alice.ID, Status: &inProgress, Today: today})
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, car.ID, goals[0].ID)

		count, err := s.goals.Count(ctx, entity.GoalFilter{UserID: alice.ID, Status: &overdue, Today: today})
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Window and count", func(t *testing.T) {
		filter := entity.GoalFilter{UserID: alice.ID, Window: &entity.PageWindow{Offset: 1, Limit: 5}}

		goals, err := s.goals.List(ctx, filter)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, trip.ID, goals[0].ID)

		count, err := s.goals.Count(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Search and sort", func(t *testing.T) {
		goals, err := s.goals.List(ctx, entity.GoalFilter{
			UserID: alice.ID,
			Sort:   []entity.SortOption{{Field: "target_date"}},
		})
		require.NoError(t, err)
		require.Len(t, goals, 2)
		assert.Equal(t, "Trip", goals[0].Name)

		goals, err = s.goals.List(ctx, entity.GoalFilter{UserID: alice.ID, Search: "ca"})
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, car.ID, goals[0].ID)
	})

	t.Run("Update persists status and end date", func(t *testing.T) {
		trip.MarkOverdue(today)
		require.NoError(t, s.goals.Update(ctx, trip))

		stored, err := s.goals.GetByID(ctx, alice.ID, trip.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.GoalOverdue, stored.Status)
		require.NotNil(t, stored.EndDate)
		assert.True(t, stored.EndDate.Equal(today))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.goals.Delete(ctx, alice.ID, car.ID))
		_, err := s.goals.GetByID(ctx, alice.ID, car.ID)
		assert.ErrorIs(t, err, errs.ErrGoalNotFound)
	})
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\% off\_now\\`, repository.EscapeLike(`50% off_now\`))
}
