package category

import (
	"context"
	"errors"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
)

// List returns the user's categories of a kind
func (u *UseCase) List(ctx context.Context, userID uint64, kind entity.TransactionKind) ([]*entity.Category, error) {
	return u.uow.GetCategoryRepository(ctx, kind).List(ctx, userID)
}

// Create adds a category; names are unique per user regardless of case
func (u *UseCase) Create(ctx context.Context, userID uint64, kind entity.TransactionKind, name string) (*entity.Category, error) {
	category, err := entity.NewCategory(userID, kind, name)
	if err != nil {
		return nil, err
	}

	repo := u.uow.GetCategoryRepository(ctx, kind)
	if err := u.ensureNameFree(ctx, userID, kind, category.Name, 0); err != nil {
		return nil, err
	}

	if err := repo.Create(ctx, category); err != nil {
		u.logger.Error("Failed to create category", map[string]any{
			"userId": userID,
			"kind":   kind,
			"name":   category.Name,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Category created", map[string]any{
		"userId":     userID,
		"kind":       kind,
		"categoryId": category.ID,
	})
	return category, nil
}

// Rename changes the name of a non-default category
func (u *UseCase) Rename(ctx context.Context, userID uint64, kind entity.TransactionKind, id uint64, name string) (*entity.Category, error) {
	repo := u.uow.GetCategoryRepository(ctx, kind)

	category, err := repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if err := category.Rename(name); err != nil {
		return nil, err
	}
	if err := u.ensureNameFree(ctx, userID, kind, category.Name, category.ID); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, category); err != nil {
		u.logger.Error("Failed to rename category", map[string]any{
			"userId":     userID,
			"categoryId": id,
			"error":      err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Category renamed", map[string]any{
		"userId":     userID,
		"kind":       kind,
		"categoryId": id,
	})
	return category, nil
}

// ensureNameFree fails with ErrCategoryAlreadyExists when another category has the name
func (u *UseCase) ensureNameFree(ctx context.Context, userID uint64, kind entity.TransactionKind, name string, selfID uint64) error {
	existing, err := u.uow.GetCategoryRepository(ctx, kind).GetByName(ctx, userID, name)
	switch {
	case errors.Is(err, errs.ErrCategoryNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID == selfID:
		return nil
	default:
		return errs.ErrCategoryAlreadyExists
	}
}
