package service

import (
	"context"
	"fmt"
	"strings"

	"launchpad/internal/domain"
	"launchpad/internal/logger"
	"launchpad/internal/repository"
)

type InvestmentService interface {
	// Invest records a new investment with simulated market figures.
	Invest(ctx context.Context, in InvestInput) (*domain.Investment, error)
}

type InvestInput struct {
	InvestorID    string
	OpportunityID string
	// nil means the opportunity's minimum ticket
	Amount *float64
}

type investmentServiceHandler struct {
	InvestorRepository   repository.InvestorRepository
	InvestmentRepository repository.InvestmentRepository
	CatalogRepository    repository.CatalogRepository
	SimulatorService     SimulatorService
}

func NewInvestmentService(
	investorRepository repository.InvestorRepository,
	investmentRepository repository.InvestmentRepository,
	catalogRepository repository.CatalogRepository,
	simulatorService SimulatorService,
) InvestmentService {
	return investmentServiceHandler{
		InvestorRepository:   investorRepository,
		InvestmentRepository: investmentRepository,
		CatalogRepository:    catalogRepository,
		SimulatorService:     simulatorService,
	}
}

func (h investmentServiceHandler) Invest(ctx context.Context, in InvestInput) (*domain.Investment, error) {
	log := logger.FromContext(ctx)

	investorID := strings.TrimSpace(in.InvestorID)
	if investorID == "" {
		return nil, domain.NewValidationError("investorId", "is required")
	}
	opportunityID := strings.TrimSpace(in.OpportunityID)
	if opportunityID == "" {
		return nil, domain.NewValidationError("opportunityId", "is required")
	}
	if _, ok := h.InvestorRepository.Get(ctx, investorID); !ok {
		return nil, domain.NewNotFoundError("Investor", investorID)
	}

	var amount float64
	if in.Amount != nil {
		amount = *in.Amount
	} else {
		minTicket, ok := h.CatalogRepository.MinInvestment(opportunityID)
		if !ok {
			return nil, domain.NewValidationError("amount", "is required for opportunities outside the catalog")
		}
		amount = minTicket
	}
	if amount <= 0 {
		return nil, domain.NewValidationError("amount", "must be greater than 0")
	}

	investment := h.SimulatorService.Simulate(domain.Investment{
		InvestorID:    investorID,
		OpportunityID: opportunityID,
		Amount:        amount,
	})

	out, err := h.InvestmentRepository.Add(ctx, investment)
	if err != nil {
		return nil, fmt.Errorf("failed to record investment: %w", err)
	}

	log.Infof("investor %s invested %.2f in %s", investorID, amount, opportunityID)
	return out, nil
}
