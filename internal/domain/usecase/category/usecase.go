package category

import (
	"context"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	coreport "github.com/csmqbusy/personal-finances/internal/domain/port/core"
	"github.com/csmqbusy/personal-finances/internal/domain/port/persistence"
)

// DefaultName is the name of the per-user default category when none is configured
const DefaultName = "Other"

// Options configures category management
type Options struct {
	DefaultName string
}

// UseCase handles category management and reference resolution
type UseCase struct {
	uow    persistence.UnitOfWork
	logger coreport.Logger
	opts   Options
}

// NewUseCase creates a new category UseCase
func NewUseCase(uow persistence.UnitOfWork, logger coreport.Logger, opts Options) *UseCase {
	if opts.DefaultName == "" {
		opts.DefaultName = DefaultName
	}
	return &UseCase{
		uow:    uow,
		logger: logger,
		opts:   opts,
	}
}

// CreateDefaults creates the default category of every kind for a new user
// It runs on whatever transaction ctx carries
func CreateDefaults(ctx context.Context, uow persistence.UnitOfWork, userID uint64, name string) error {
	if name == "" {
		name = DefaultName
	}
	for _, kind := range entity.Kinds {
		if err := uow.GetCategoryRepository(ctx, kind).Create(ctx, entity.NewDefaultCategory(userID, kind, name)); err != nil {
			return err
		}
	}
	return nil
}
