package domain

// PerformanceMetrics are display figures for an investor card. They are
// synthesized, not derived from investments.
type PerformanceMetrics struct {
	InvestorID    string  `json:"investorId"`
	DailyChange   float64 `json:"dailyChange"`
	WeeklyChange  float64 `json:"weeklyChange"`
	MonthlyChange float64 `json:"monthlyChange"`
}

type PerformanceStats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Best   float64 `json:"best"`
	Worst  float64 `json:"worst"`
}
