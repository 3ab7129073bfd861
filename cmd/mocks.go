package cmd

import (
	"context"
	"fmt"
	"sync"

	"launchpad/internal/domain"
	"launchpad/internal/repository"

	"github.com/shopspring/decimal"
)

// a local stand-in for the compute network, for dev and tests when no
// gateway is running. Fees are debited from an in-memory balance.

var mockInitialBalance = decimal.RequireFromString("1000000000000000000") // 1 token in wei

type mockBrokerRepositoryHandler struct {
	mu       sync.Mutex
	address  string
	balance  decimal.Decimal
	services []domain.ServiceInfo
}

func NewMockBrokerRepository(providerAddress string) repository.BrokerRepository {
	return &mockBrokerRepositoryHandler{
		address: "0x0000000000000000000000000000000000000001",
		balance: mockInitialBalance,
		services: []domain.ServiceInfo{
			{
				ProviderAddress: providerAddress,
				ServiceType:     "chatbot",
				Endpoint:        "http://localhost:8080",
				InputPrice:      domain.NewBigInt(1),
				OutputPrice:     domain.NewBigInt(1),
				UpdatedAt:       domain.NewBigInt(0),
				Model:           "mock-model",
				ProviderName:    "Mock Provider",
			},
		},
	}
}

func (m *mockBrokerRepositoryHandler) GetBalance(ctx context.Context) (*domain.LedgerBalance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return &domain.LedgerBalance{
		Address:   m.address,
		Balance:   domain.BigInt{Int: m.balance.BigInt()},
		Locked:    domain.NewBigInt(0),
		Providers: []domain.ProviderBalance{},
	}, nil
}

func (m *mockBrokerRepositoryHandler) ListServices(ctx context.Context) ([]domain.ServiceInfo, error) {
	out := make([]domain.ServiceInfo, len(m.services))
	copy(out, m.services)
	return out, nil
}

func (m *mockBrokerRepositoryHandler) SendQuery(ctx context.Context, providerAddress, prompt, query string) (*domain.QueryResponse, error) {
	if !m.knows(providerAddress) {
		return nil, domain.NewExternalServiceError("broker", fmt.Errorf("unknown provider %s", providerAddress), nil)
	}
	return &domain.QueryResponse{
		ProviderAddress: providerAddress,
		Model:           "mock-model",
		Content:         "I am busy",
	}, nil
}

func (m *mockBrokerRepositoryHandler) SettleFee(ctx context.Context, providerAddress string, fee decimal.Decimal) error {
	if !fee.IsPositive() {
		return domain.NewValidationError("fee", "must be positive")
	}
	if !m.knows(providerAddress) {
		return domain.NewExternalServiceError("broker", fmt.Errorf("unknown provider %s", providerAddress), nil)
	}

	// fees are quoted in tokens, the ledger counts wei
	wei := fee.Shift(18).Ceil()

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.balance.LessThan(wei) {
		return domain.NewExternalServiceError("broker", fmt.Errorf("insufficient balance"), nil)
	}
	m.balance = m.balance.Sub(wei)
	return nil
}

func (m *mockBrokerRepositoryHandler) knows(providerAddress string) bool {
	for _, s := range m.services {
		if s.ProviderAddress == providerAddress {
			return true
		}
	}
	return false
}

