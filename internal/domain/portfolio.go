package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Investment struct {
	ID                    string    `json:"id"`
	InvestorID            string    `json:"investorId"`
	OpportunityID         string    `json:"opportunityId"`
	Amount                float64   `json:"amount"`
	Date                  time.Time `json:"date"`
	CurrentValue          float64   `json:"currentValue"`
	PerformancePercentage float64   `json:"performancePercentage"`
}

func (i *Investment) Identifier() string {
	return i.ID
}

func (i *Investment) Stamp(id string, at time.Time) {
	if i.ID == "" {
		i.ID = id
	}
	if i.Date.IsZero() {
		i.Date = at
	}
}

// Portfolio is derived from an investor's investments on every read and is
// never persisted.
type Portfolio struct {
	InvestorID         string       `json:"investorId"`
	Investments        []Investment `json:"investments"`
	TotalInvested      float64      `json:"totalInvested"`
	TotalCurrentValue  float64      `json:"totalCurrentValue"`
	OverallPerformance float64      `json:"overallPerformance"`
}

func NewPortfolio(investorID string, investments []Investment) *Portfolio {
	totalInvested := decimal.Zero
	totalCurrentValue := decimal.Zero
	for _, i := range investments {
		totalInvested = totalInvested.Add(decimal.NewFromFloat(i.Amount))
		totalCurrentValue = totalCurrentValue.Add(decimal.NewFromFloat(i.CurrentValue))
	}

	if investments == nil {
		investments = []Investment{}
	}

	return &Portfolio{
		InvestorID:         investorID,
		Investments:        investments,
		TotalInvested:      totalInvested.InexactFloat64(),
		TotalCurrentValue:  totalCurrentValue.InexactFloat64(),
		OverallPerformance: overallPerformance(totalInvested, totalCurrentValue),
	}
}

// percent change of current value over invested, 0 when nothing is invested
func overallPerformance(invested, current decimal.Decimal) float64 {
	if !invested.IsPositive() {
		return 0
	}
	return current.Sub(invested).
		Div(invested).
		Mul(decimal.NewFromInt(100)).
		InexactFloat64()
}

func (p Portfolio) PerformancePercentages() []float64 {
	out := make([]float64, 0, len(p.Investments))
	for _, i := range p.Investments {
		out = append(out, i.PerformancePercentage)
	}
	return out
}
