package service

import (
	"context"
	"fmt"
	"time"

	"launchpad/internal/domain"
	"launchpad/internal/repository"

	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
)

type PortfolioService interface {
	// Aggregate recomputes the investor's portfolio from stored investments.
	// A missing investor is a domain.NotFoundError.
	Aggregate(ctx context.Context, investorID string) (*domain.Portfolio, error)
	GetPortfolioDetails(ctx context.Context, investorID string) (*PortfolioDetails, error)
	ExportCsv(ctx context.Context, investorID string) ([]byte, error)
}

type InvestmentDetails struct {
	domain.Investment
	Opportunity domain.Opportunity `json:"opportunity"`
}

// PortfolioDetails is the portfolio as the dashboard renders it: each
// investment paired with its opportunity, plus summary stats.
type PortfolioDetails struct {
	InvestorID         string                  `json:"investorId"`
	Investments        []InvestmentDetails     `json:"investments"`
	TotalInvested      float64                 `json:"totalInvested"`
	TotalCurrentValue  float64                 `json:"totalCurrentValue"`
	OverallPerformance float64                 `json:"overallPerformance"`
	Stats              domain.PerformanceStats `json:"stats"`
}

type portfolioServiceHandler struct {
	InvestorRepository   repository.InvestorRepository
	InvestmentRepository repository.InvestmentRepository
	CatalogRepository    repository.CatalogRepository
}

func NewPortfolioService(
	investorRepository repository.InvestorRepository,
	investmentRepository repository.InvestmentRepository,
	catalogRepository repository.CatalogRepository,
) PortfolioService {
	return portfolioServiceHandler{
		InvestorRepository:   investorRepository,
		InvestmentRepository: investmentRepository,
		CatalogRepository:    catalogRepository,
	}
}

func (h portfolioServiceHandler) Aggregate(ctx context.Context, investorID string) (*domain.Portfolio, error) {
	if _, ok := h.InvestorRepository.Get(ctx, investorID); !ok {
		return nil, domain.NewNotFoundError("Investor", investorID)
	}

	investments := h.InvestmentRepository.List(ctx, repository.InvestmentListFilter{
		InvestorIDs: []string{investorID},
	})

	return domain.NewPortfolio(investorID, investments), nil
}

func (h portfolioServiceHandler) GetPortfolioDetails(ctx context.Context, investorID string) (*PortfolioDetails, error) {
	portfolio, err := h.Aggregate(ctx, investorID)
	if err != nil {
		return nil, err
	}

	investments := []InvestmentDetails{}
	for _, i := range portfolio.Investments {
		investments = append(investments, InvestmentDetails{
			Investment:  i,
			Opportunity: h.CatalogRepository.Lookup(i.OpportunityID),
		})
	}

	performanceStats, err := computePerformanceStats(portfolio.PerformancePercentages())
	if err != nil {
		return nil, fmt.Errorf("failed to compute portfolio stats: %w", err)
	}

	return &PortfolioDetails{
		InvestorID:         portfolio.InvestorID,
		Investments:        investments,
		TotalInvested:      portfolio.TotalInvested,
		TotalCurrentValue:  portfolio.TotalCurrentValue,
		OverallPerformance: portfolio.OverallPerformance,
		Stats:              *performanceStats,
	}, nil
}

// computePerformanceStats returns zeroes for an empty portfolio.
func computePerformanceStats(performance []float64) (*domain.PerformanceStats, error) {
	if len(performance) == 0 {
		return &domain.PerformanceStats{}, nil
	}
	data := stats.Float64Data(performance)

	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	stdev, err := stats.StandardDeviation(data)
	if err != nil {
		return nil, err
	}
	best, err := stats.Max(data)
	if err != nil {
		return nil, err
	}
	worst, err := stats.Min(data)
	if err != nil {
		return nil, err
	}

	return &domain.PerformanceStats{
		Mean:   mean,
		StdDev: stdev,
		Best:   best,
		Worst:  worst,
	}, nil
}

type portfolioCsvRow struct {
	InvestmentID          string  `csv:"investment_id"`
	OpportunityID         string  `csv:"opportunity_id"`
	OpportunityName       string  `csv:"opportunity_name"`
	Date                  string  `csv:"date"`
	Amount                float64 `csv:"amount"`
	CurrentValue          float64 `csv:"current_value"`
	PerformancePercentage float64 `csv:"performance_percentage"`
}

func (h portfolioServiceHandler) ExportCsv(ctx context.Context, investorID string) ([]byte, error) {
	details, err := h.GetPortfolioDetails(ctx, investorID)
	if err != nil {
		return nil, err
	}

	rows := []portfolioCsvRow{}
	for _, i := range details.Investments {
		rows = append(rows, portfolioCsvRow{
			InvestmentID:          i.ID,
			OpportunityID:         i.OpportunityID,
			OpportunityName:       i.Opportunity.Name,
			Date:                  i.Date.Format(time.RFC3339),
			Amount:                i.Amount,
			CurrentValue:          i.CurrentValue,
			PerformancePercentage: i.PerformancePercentage,
		})
	}

	out, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to write portfolio csv: %w", err)
	}
	return out, nil
}
