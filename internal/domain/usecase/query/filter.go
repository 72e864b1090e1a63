package query

import (
	"strings"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	"github.com/csmqbusy/personal-finances/internal/domain/port/usecase"
)

// BuildTransactionFilter validates the optional parameters and composes the predicate set
// Category ids must already be resolved
func BuildTransactionFilter(
	userID uint64,
	kind entity.TransactionKind,
	categoryIDs []uint64,
	params usecase.QueryParams,
) (entity.TransactionFilter, error) {
	amount, err := entity.NewAmountRange(params.MinAmount, params.MaxAmount)
	if err != nil {
		return entity.TransactionFilter{}, err
	}

	dates, err := entity.NewDateRange(params.From, params.To)
	if err != nil {
		return entity.TransactionFilter{}, err
	}

	return entity.TransactionFilter{
		UserID:      userID,
		Kind:        kind,
		CategoryIDs: categoryIDs,
		Amount:      amount,
		Dates:       dates,
		Search:      strings.TrimSpace(params.Search),
		Sort:        ParseSortTokens(params.Sort, TransactionSortFields),
	}, nil
}
