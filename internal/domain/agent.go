package domain

import (
	"strconv"
	"strings"
	"time"
)

// Agent is a marketplace listing for an AI investment agent.
type Agent struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Prompt       string    `json:"prompt"`
	Creator      string    `json:"creator"`
	VaultAddress string    `json:"vaultAddress"`
	Commission   string    `json:"commission"`
	ImageURL     string    `json:"imageUrl"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (a *Agent) Identifier() string {
	return a.ID
}

func (a *Agent) Stamp(id string, at time.Time) {
	if a.ID == "" {
		a.ID = id
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = at
	}
}

func (a Agent) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return NewValidationError("name", "is required")
	}
	if strings.TrimSpace(a.Prompt) == "" {
		return NewValidationError("prompt", "is required")
	}
	if a.Commission != "" {
		c, err := strconv.ParseFloat(a.Commission, 64)
		if err != nil || c < 0 || c > 100 {
			return NewValidationError("commission", "must be a number between 0 and 100")
		}
	}
	return nil
}
