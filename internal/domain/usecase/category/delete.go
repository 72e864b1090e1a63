package category

import (
	"context"
	"errors"
	"strings"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/csmqbusy/personal-finances/internal/domain/port/persistence"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
)

// Delete removes a category; when it still has transactions the disposition deletes or moves them
// The category deletion and the disposition commit together
func (u *UseCase) Delete(ctx context.Context, input usecase.DeleteCategoryInput) error {
	err := persistence.RunInTransaction(ctx, u.uow, func(txCtx context.Context) error {
		categories := u.uow.GetCategoryRepository(txCtx, input.Kind)
		transactions := u.uow.GetTransactionRepository(txCtx, input.Kind)

		category, err := categories.GetByID(txCtx, input.UserID, input.CategoryID)
		if err != nil {
			return err
		}
		if category.IsDefault {
			return errs.ErrDefaultCategoryReadOnly
		}

		count, err := transactions.CountByCategory(txCtx, input.UserID, category.ID)
		if err != nil {
			return err
		}

		if count > 0 {
			if err := u.dispose(txCtx, input, category); err != nil {
				return err
			}
		}

		return categories.Delete(txCtx, input.UserID, category.ID)
	})
	if err != nil {
		u.logger.Warn("Category deletion rejected", map[string]any{
			"userId":      input.UserID,
			"kind":        input.Kind,
			"categoryId":  input.CategoryID,
			"disposition": input.Disposition,
			"error":       err.Error(),
		})
		return err
	}

	u.logger.Info("Category deleted", map[string]any{
		"userId":      input.UserID,
		"kind":        input.Kind,
		"categoryId":  input.CategoryID,
		"disposition": input.Disposition,
	})
	return nil
}

// dispose applies the disposition to the transactions of category inside the current transaction
func (u *UseCase) dispose(ctx context.Context, input usecase.DeleteCategoryInput, category *entity.Category) error {
	categories := u.uow.GetCategoryRepository(ctx, input.Kind)
	transactions := u.uow.GetTransactionRepository(ctx, input.Kind)
	target := strings.TrimSpace(input.Target)

	if input.Disposition.NeedsTarget() && target == "" {
		return errs.NewValidationError("target", "is required for "+string(input.Disposition), errs.ErrMissingDisposition)
	}

	var targetID uint64
	switch input.Disposition {
	case entity.DispositionNone:
		return errs.ErrMissingDisposition

	case entity.DispositionDelete:
		_, err := transactions.DeleteByCategory(ctx, input.UserID, category.ID)
		return err

	case entity.DispositionToDefault:
		def, err := categories.GetDefault(ctx, input.UserID)
		if err != nil {
			return err
		}
		targetID = def.ID

	case entity.DispositionToExisting:
		existing, err := categories.GetByName(ctx, input.UserID, target)
		if errors.Is(err, errs.ErrCategoryNotFound) {
			return errs.ErrDispositionTargetNotFound
		}
		if err != nil {
			return err
		}
		if existing.ID == category.ID {
			return errs.NewValidationError("target", "cannot be the deleted category", errs.ErrInvalidRequest)
		}
		targetID = existing.ID

	case entity.DispositionToNew:
		created, err := entity.NewCategory(input.UserID, input.Kind, target)
		if err != nil {
			return err
		}
		if err := u.ensureNameFree(ctx, input.UserID, input.Kind, created.Name, 0); err != nil {
			return err
		}
		if err := categories.Create(ctx, created); err != nil {
			return err
		}
		targetID = created.ID

	default:
		return errs.ErrMissingDisposition
	}

	_, err := transactions.ReassignCategory(ctx, input.UserID, category.ID, targetID)
	return err
}
