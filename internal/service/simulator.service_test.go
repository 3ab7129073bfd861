package service

import (
	"testing"

	"launchpad/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestSimulatorService_Simulate(t *testing.T) {
	t.Run("figures stay in range", func(t *testing.T) {
		h := NewSimulatorService(NewSeededRandomSource(42))
		for i := 0; i < 1000; i++ {
			out := h.Simulate(domain.Investment{Amount: 5000})
			require.GreaterOrEqual(t, out.CurrentValue, 5000.0)
			require.Less(t, out.CurrentValue, 6500.0)
			require.GreaterOrEqual(t, out.PerformancePercentage, -10.0)
			require.Less(t, out.PerformancePercentage, 20.0)
			require.Equal(t, 5000.0, out.Amount)
		}
	})

	t.Run("same seed gives same figures", func(t *testing.T) {
		a := NewSimulatorService(NewSeededRandomSource(7)).Simulate(domain.Investment{Amount: 1000})
		b := NewSimulatorService(NewSeededRandomSource(7)).Simulate(domain.Investment{Amount: 1000})
		require.Equal(t, a, b)
	})

	t.Run("keeps identity fields", func(t *testing.T) {
		h := NewSimulatorService(NewSeededRandomSource(1))
		out := h.Simulate(domain.Investment{
			InvestorID:    "inv-1",
			OpportunityID: "3",
			Amount:        100,
		})
		require.Equal(t, "inv-1", out.InvestorID)
		require.Equal(t, "3", out.OpportunityID)
	})
}

func TestSimulatorService_PerformanceMetrics(t *testing.T) {
	h := NewSimulatorService(NewSeededRandomSource(3))

	t.Run("bounds include investor bias", func(t *testing.T) {
		// 'a' is 97
		seed := 97.0 / 255
		for i := 0; i < 500; i++ {
			m := h.PerformanceMetrics("abc")
			require.Equal(t, "abc", m.InvestorID)
			require.GreaterOrEqual(t, m.DailyChange, -5+seed*10)
			require.LessOrEqual(t, m.DailyChange, 15+seed*10)
			require.GreaterOrEqual(t, m.WeeklyChange, -10+seed*20)
			require.LessOrEqual(t, m.WeeklyChange, 30+seed*20)
			require.GreaterOrEqual(t, m.MonthlyChange, -15+seed*30)
			require.LessOrEqual(t, m.MonthlyChange, 45+seed*30)
		}
	})

	t.Run("empty id has no bias", func(t *testing.T) {
		m := h.PerformanceMetrics("")
		require.GreaterOrEqual(t, m.DailyChange, -5.0)
		require.LessOrEqual(t, m.DailyChange, 15.0)
	})
}
