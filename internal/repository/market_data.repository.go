package repository

import (
	"context"
	"encoding/json"
	"errors"

	"launchpad/internal/domain"
	"launchpad/pkg/cryptorank"
	"launchpad/pkg/dappradar"
)

const (
	dappRadarServiceName  = "Dappradar"
	cryptoRankServiceName = "CryptoRank"

	DefaultDappChain = "ethereum"
	DefaultDappPage  = 200
)

type MarketDataRepository interface {
	GetDapps(ctx context.Context, chain string, page int) (json.RawMessage, error)
	GetFunds(ctx context.Context) ([]domain.Fund, error)
}

type marketDataRepositoryHandler struct {
	DappRadarClient  dappradar.Client
	CryptoRankClient cryptorank.Client
}

func NewMarketDataRepository(dappRadarApiKey, cryptoRankApiKey string) MarketDataRepository {
	return marketDataRepositoryHandler{
		DappRadarClient:  dappradar.NewClient(dappRadarApiKey),
		CryptoRankClient: cryptorank.NewClient(cryptoRankApiKey),
	}
}

func (h marketDataRepositoryHandler) GetDapps(ctx context.Context, chain string, page int) (json.RawMessage, error) {
	out, err := h.DappRadarClient.GetDapps(ctx, chain, page)
	if err != nil {
		var details any
		apiErr := dappradar.APIError{}
		if errors.As(err, &apiErr) {
			details = upstreamDetails(apiErr.Body)
		}
		return nil, domain.NewExternalServiceError(dappRadarServiceName, err, details)
	}
	return out, nil
}

func (h marketDataRepositoryHandler) GetFunds(ctx context.Context) ([]domain.Fund, error) {
	funds, err := h.CryptoRankClient.GetFunds(ctx)
	if err != nil {
		var details any
		apiErr := cryptorank.APIError{}
		if errors.As(err, &apiErr) {
			details = upstreamDetails(apiErr.Body)
		}
		return nil, domain.NewExternalServiceError(cryptoRankServiceName, err, details)
	}

	out := []domain.Fund{}
	for _, f := range funds {
		out = append(out, domain.Fund{
			ID:   f.ID,
			Key:  f.Key,
			Name: f.Name,
			Tier: f.Tier,
			Type: f.Type,
		})
	}
	return out, nil
}

// upstreamDetails returns the body as parsed JSON when it is JSON, else the
// raw string.
func upstreamDetails(body string) any {
	var parsed any
	if err := json.Unmarshal([]byte(body), &parsed); err == nil {
		return parsed
	}
	return body
}
