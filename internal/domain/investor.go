package domain

import (
	"fmt"
	"strings"
	"time"
)

type RiskLevel string

const (
	RiskLevel_Low    RiskLevel = "low"
	RiskLevel_Medium RiskLevel = "medium"
	RiskLevel_High   RiskLevel = "high"
)

func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLevel_Low, RiskLevel_Medium, RiskLevel_High:
		return true
	}
	return false
}

func ParseRiskLevel(in string) (RiskLevel, error) {
	r := RiskLevel(strings.ToLower(strings.TrimSpace(in)))
	if !r.Valid() {
		return "", NewValidationError("riskTolerance", fmt.Sprintf("must be one of low, medium, high; got %q", in))
	}
	return r, nil
}

type Investor struct {
	ID                  string    `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	RiskTolerance       RiskLevel `json:"riskTolerance"`
	InvestmentFocus     []string  `json:"investmentFocus"`
	MinInvestmentAmount float64   `json:"minInvestmentAmount"`
	MaxInvestmentAmount float64   `json:"maxInvestmentAmount"`
	Details             string    `json:"details"`
	CreatedAt           time.Time `json:"createdAt"`
}

func (i *Investor) Identifier() string {
	return i.ID
}

func (i *Investor) Stamp(id string, at time.Time) {
	if i.ID == "" {
		i.ID = id
	}
	if i.CreatedAt.IsZero() {
		i.CreatedAt = at
	}
}

// Validate mirrors the checks the investor form used to run before saving.
func (i Investor) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return NewValidationError("name", "is required")
	}
	if !i.RiskTolerance.Valid() {
		return NewValidationError("riskTolerance", fmt.Sprintf("must be one of low, medium, high; got %q", i.RiskTolerance))
	}
	if i.MinInvestmentAmount < 0 {
		return NewValidationError("minInvestmentAmount", "must not be negative")
	}
	if i.MaxInvestmentAmount < i.MinInvestmentAmount {
		return NewValidationError("maxInvestmentAmount", "must be greater than or equal to minInvestmentAmount")
	}
	return nil
}
