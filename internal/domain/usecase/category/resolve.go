package category

import (
	"context"
	"strings"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
)

// Resolve maps an id-or-name reference to the id of a category owned by the user
func (u *UseCase) Resolve(ctx context.Context, userID uint64, kind entity.TransactionKind, ref entity.CategoryRef) (uint64, error) {
	if ref.IsEmpty() {
		return 0, errs.ErrCategoryMissing
	}

	repo := u.uow.GetCategoryRepository(ctx, kind)

	var (
		category *entity.Category
		err      error
	)
	if ref.ID != nil {
		category, err = repo.GetByID(ctx, userID, *ref.ID)
	} else {
		category, err = repo.GetByName(ctx, userID, strings.TrimSpace(*ref.Name))
	}
	if err != nil {
		u.logger.Debug("Category reference did not resolve", map[string]any{
			"userId": userID,
			"kind":   kind,
			"ref":    ref.Key(),
			"error":  err.Error(),
		})
		return 0, err
	}

	return category.ID, nil
}

// ResolveMany resolves each distinct reference once; any failure aborts the whole lookup
func (u *UseCase) ResolveMany(ctx context.Context, userID uint64, kind entity.TransactionKind, refs []entity.CategoryRef) ([]uint64, error) {
	seenRefs := make(map[string]struct{}, len(refs))
	seenIDs := make(map[uint64]struct{}, len(refs))
	ids := make([]uint64, 0, len(refs))

	for _, ref := range refs {
		key := ref.Key()
		if _, ok := seenRefs[key]; ok {
			continue
		}
		seenRefs[key] = struct{}{}

		id, err := u.Resolve(ctx, userID, kind, ref)
		if err != nil {
			return nil, err
		}
		if _, ok := seenIDs[id]; ok {
			continue
		}
		seenIDs[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids, nil
}
