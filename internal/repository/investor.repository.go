package repository

import (
	"context"

	"launchpad/internal/domain"
	"launchpad/internal/storage"
)

type InvestorRepository interface {
	Add(ctx context.Context, in domain.Investor) (*domain.Investor, error)
	Get(ctx context.Context, id string) (*domain.Investor, bool)
	List(ctx context.Context) []domain.Investor
}

type investorRepositoryHandler struct {
	investors *collection[domain.Investor, *domain.Investor]
}

func NewInvestorRepository(store storage.Store) InvestorRepository {
	return investorRepositoryHandler{
		investors: newCollection[domain.Investor](store, storage.KeyInvestors),
	}
}

func (h investorRepositoryHandler) Add(ctx context.Context, in domain.Investor) (*domain.Investor, error) {
	if in.InvestmentFocus == nil {
		in.InvestmentFocus = []string{}
	}
	return h.investors.Add(ctx, in)
}

func (h investorRepositoryHandler) Get(ctx context.Context, id string) (*domain.Investor, bool) {
	return h.investors.GetByID(ctx, id)
}

func (h investorRepositoryHandler) List(ctx context.Context) []domain.Investor {
	return h.investors.List(ctx)
}
