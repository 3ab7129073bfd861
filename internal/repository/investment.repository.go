package repository

import (
	"context"

	"launchpad/internal/domain"
	"launchpad/internal/storage"
)

type InvestmentRepository interface {
	Add(ctx context.Context, in domain.Investment) (*domain.Investment, error)
	Get(ctx context.Context, id string) (*domain.Investment, bool)
	List(ctx context.Context, filter InvestmentListFilter) []domain.Investment
}

type investmentRepositoryHandler struct {
	investments *collection[domain.Investment, *domain.Investment]
}

func NewInvestmentRepository(store storage.Store) InvestmentRepository {
	return investmentRepositoryHandler{
		investments: newCollection[domain.Investment](store, storage.KeyInvestments),
	}
}

func (h investmentRepositoryHandler) Add(ctx context.Context, in domain.Investment) (*domain.Investment, error) {
	return h.investments.Add(ctx, in)
}

func (h investmentRepositoryHandler) Get(ctx context.Context, id string) (*domain.Investment, bool) {
	return h.investments.GetByID(ctx, id)
}

type InvestmentListFilter struct {
	InvestorIDs []string
}

// List keeps insertion order. Every call scans the full collection; there
// is no index by investor.
func (h investmentRepositoryHandler) List(ctx context.Context, filter InvestmentListFilter) []domain.Investment {
	all := h.investments.List(ctx)
	if len(filter.InvestorIDs) == 0 {
		return all
	}

	wanted := map[string]bool{}
	for _, id := range filter.InvestorIDs {
		wanted[id] = true
	}

	out := []domain.Investment{}
	for _, i := range all {
		if wanted[i.InvestorID] {
			out = append(out, i)
		}
	}
	return out
}
