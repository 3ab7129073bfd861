package service

import (
	"launchpad/internal/domain"
)

const (
	maxGrowth      = 0.3
	minPerformance = -10.0
	maxPerformance = 20.0
)

// SimulatorService produces mock market figures. Nothing here reflects real
// prices.
type SimulatorService interface {
	// Simulate fills CurrentValue and PerformancePercentage. The two are
	// drawn independently, so they need not agree with each other.
	Simulate(in domain.Investment) domain.Investment
	PerformanceMetrics(investorID string) domain.PerformanceMetrics
}

type simulatorServiceHandler struct {
	Random RandomSource
}

func NewSimulatorService(random RandomSource) SimulatorService {
	return simulatorServiceHandler{
		Random: random,
	}
}

func (h simulatorServiceHandler) Simulate(in domain.Investment) domain.Investment {
	in.CurrentValue = in.Amount * (1 + uniform(h.Random, 0, maxGrowth))
	in.PerformancePercentage = uniform(h.Random, minPerformance, maxPerformance)
	return in
}

// PerformanceMetrics biases each figure by the first byte of the investor
// ID, so the same investor trends the same way across calls.
func (h simulatorServiceHandler) PerformanceMetrics(investorID string) domain.PerformanceMetrics {
	seed := 0.0
	if len(investorID) > 0 {
		seed = float64(investorID[0]) / 255
	}

	return domain.PerformanceMetrics{
		InvestorID:    investorID,
		DailyChange:   round2(uniform(h.Random, -5, 15)) + seed*10,
		WeeklyChange:  round2(uniform(h.Random, -10, 30)) + seed*20,
		MonthlyChange: round2(uniform(h.Random, -15, 45)) + seed*30,
	}
}
