package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"launchpad/internal/domain"
	"launchpad/internal/logger"
	"launchpad/internal/repository"

	"github.com/patrickmn/go-cache"
	"github.com/shopspring/decimal"
)

const (
	DefaultFundID = 1

	fundInsightPrefix = "explain me about the investor\n"
	dappInsightPrefix = "explain me about these dapps\n"

	marketCacheTTL     = 5 * time.Minute
	marketCacheCleanup = 10 * time.Minute
)

var (
	fundInsightFee = decimal.RequireFromString("0.000000000000000559")
	dappInsightFee = decimal.RequireFromString("0.000000000000000159")
)

type MarketService interface {
	GetDapps(ctx context.Context) (json.RawMessage, error)
	// DappInsight pays the provider and asks it to summarize the dapp listing.
	DappInsight(ctx context.Context) (string, error)
	GetFunds(ctx context.Context) ([]domain.Fund, error)
	// FundInsight pays the provider and asks it to describe one fund.
	FundInsight(ctx context.Context, fundID int) (string, error)
}

// AIProvider is the broker service and prompt that answer insight queries.
type AIProvider struct {
	ProviderAddress string
	Prompt          string
}

type marketServiceHandler struct {
	MarketDataRepository repository.MarketDataRepository
	BrokerRepository     repository.BrokerRepository
	Provider             AIProvider
	Cache                *cache.Cache
}

func NewMarketService(
	marketDataRepository repository.MarketDataRepository,
	brokerRepository repository.BrokerRepository,
	provider AIProvider,
) MarketService {
	return marketServiceHandler{
		MarketDataRepository: marketDataRepository,
		BrokerRepository:     brokerRepository,
		Provider:             provider,
		Cache:                cache.New(marketCacheTTL, marketCacheCleanup),
	}
}

func (h marketServiceHandler) GetDapps(ctx context.Context) (json.RawMessage, error) {
	key := fmt.Sprintf("dapps:%s:%d", repository.DefaultDappChain, repository.DefaultDappPage)
	if cached, ok := h.Cache.Get(key); ok {
		return cached.(json.RawMessage), nil
	}

	out, err := h.MarketDataRepository.GetDapps(ctx, repository.DefaultDappChain, repository.DefaultDappPage)
	if err != nil {
		return nil, err
	}
	h.Cache.Set(key, out, cache.DefaultExpiration)
	return out, nil
}

func (h marketServiceHandler) GetFunds(ctx context.Context) ([]domain.Fund, error) {
	const key = "funds"
	if cached, ok := h.Cache.Get(key); ok {
		return cached.([]domain.Fund), nil
	}

	out, err := h.MarketDataRepository.GetFunds(ctx)
	if err != nil {
		return nil, err
	}
	h.Cache.Set(key, out, cache.DefaultExpiration)
	return out, nil
}

func (h marketServiceHandler) DappInsight(ctx context.Context) (string, error) {
	dapps, err := h.GetDapps(ctx)
	if err != nil {
		return "", err
	}
	return h.ask(ctx, dappInsightPrefix+string(dapps), dappInsightFee)
}

func (h marketServiceHandler) FundInsight(ctx context.Context, fundID int) (string, error) {
	funds, err := h.GetFunds(ctx)
	if err != nil {
		return "", err
	}

	var fund *domain.Fund
	for i := range funds {
		if funds[i].ID == fundID {
			fund = &funds[i]
			break
		}
	}
	if fund == nil {
		return "", domain.NewNotFoundError("Fund", fmt.Sprint(fundID))
	}

	fundJson, err := json.Marshal(fund)
	if err != nil {
		return "", err
	}

	return h.ask(ctx, fundInsightPrefix+string(fundJson), fundInsightFee)
}

func (h marketServiceHandler) ask(ctx context.Context, query string, fee decimal.Decimal) (string, error) {
	log := logger.FromContext(ctx)

	if err := h.BrokerRepository.SettleFee(ctx, h.Provider.ProviderAddress, fee); err != nil {
		return "", fmt.Errorf("failed to settle fee: %w", err)
	}
	log.Debugf("settled %s with %s, waiting for ai response", fee.String(), h.Provider.ProviderAddress)

	resp, err := h.BrokerRepository.SendQuery(ctx, h.Provider.ProviderAddress, h.Provider.Prompt, query)
	if err != nil {
		return "", fmt.Errorf("failed to query provider: %w", err)
	}

	return resp.Content, nil
}
