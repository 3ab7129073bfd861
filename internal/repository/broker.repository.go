package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"launchpad/internal/domain"
	"launchpad/pkg/broker"

	"github.com/shopspring/decimal"
)

const brokerServiceName = "broker"

// BrokerRepository is the compute network account: ledger balance, the
// provider directory, paid inference queries and fee settlement.
type BrokerRepository interface {
	GetBalance(ctx context.Context) (*domain.LedgerBalance, error)
	ListServices(ctx context.Context) ([]domain.ServiceInfo, error)
	SendQuery(ctx context.Context, providerAddress, prompt, query string) (*domain.QueryResponse, error)
	SettleFee(ctx context.Context, providerAddress string, fee decimal.Decimal) error
}

type brokerRepositoryHandler struct {
	Client broker.Client
}

func NewBrokerRepository(endpoint string) BrokerRepository {
	return brokerRepositoryHandler{
		Client: broker.NewClient(endpoint),
	}
}

func (h brokerRepositoryHandler) GetBalance(ctx context.Context) (*domain.LedgerBalance, error) {
	ledger, err := h.Client.GetLedger(ctx)
	if err != nil {
		return nil, wrapBrokerError(err)
	}

	out := domain.LedgerBalance{
		Address:   ledger.Address,
		Providers: []domain.ProviderBalance{},
	}
	if len(ledger.LedgerInfo) > 0 {
		if out.Balance, err = domain.ParseBigInt(ledger.LedgerInfo[0].String()); err != nil {
			return nil, wrapBrokerError(fmt.Errorf("invalid ledger balance: %w", err))
		}
	}
	if len(ledger.LedgerInfo) > 1 {
		if out.Locked, err = domain.ParseBigInt(ledger.LedgerInfo[1].String()); err != nil {
			return nil, wrapBrokerError(fmt.Errorf("invalid locked balance: %w", err))
		}
	}

	for i, infer := range ledger.Infers {
		if len(infer) < 3 {
			return nil, wrapBrokerError(fmt.Errorf("provider entry %d has %d fields, expected 3", i, len(infer)))
		}
		p := domain.ProviderBalance{}
		p.ProviderAddress = tupleString(infer[0])
		if p.Balance, err = tupleBigInt(infer[1]); err != nil {
			return nil, wrapBrokerError(fmt.Errorf("provider entry %d: %w", i, err))
		}
		if p.PendingRefund, err = tupleBigInt(infer[2]); err != nil {
			return nil, wrapBrokerError(fmt.Errorf("provider entry %d: %w", i, err))
		}
		out.Providers = append(out.Providers, p)
	}

	return &out, nil
}

func (h brokerRepositoryHandler) ListServices(ctx context.Context) ([]domain.ServiceInfo, error) {
	tuples, err := h.Client.ListServices(ctx)
	if err != nil {
		return nil, wrapBrokerError(err)
	}

	out := []domain.ServiceInfo{}
	for i, t := range tuples {
		service, err := serviceFromTuple(t)
		if err != nil {
			return nil, wrapBrokerError(fmt.Errorf("service %d: %w", i, err))
		}
		out = append(out, *service)
	}

	return out, nil
}

func serviceFromTuple(t []any) (*domain.ServiceInfo, error) {
	if len(t) < 8 {
		return nil, fmt.Errorf("expected 8 fields, got %d", len(t))
	}
	inputPrice, err := tupleBigInt(t[3])
	if err != nil {
		return nil, fmt.Errorf("inputPrice: %w", err)
	}
	outputPrice, err := tupleBigInt(t[4])
	if err != nil {
		return nil, fmt.Errorf("outputPrice: %w", err)
	}
	updatedAt, err := tupleBigInt(t[5])
	if err != nil {
		return nil, fmt.Errorf("updatedAt: %w", err)
	}

	return &domain.ServiceInfo{
		ProviderAddress: tupleString(t[0]),
		ServiceType:     tupleString(t[1]),
		Endpoint:        tupleString(t[2]),
		InputPrice:      inputPrice,
		OutputPrice:     outputPrice,
		UpdatedAt:       updatedAt,
		Model:           tupleString(t[6]),
		ProviderName:    tupleString(t[7]),
	}, nil
}

func (h brokerRepositoryHandler) SendQuery(ctx context.Context, providerAddress, prompt, query string) (*domain.QueryResponse, error) {
	resp, err := h.Client.SendQuery(ctx, broker.QueryRequest{
		ProviderAddress: providerAddress,
		Prompt:          prompt,
		Query:           query,
	})
	if err != nil {
		return nil, wrapBrokerError(err)
	}

	return &domain.QueryResponse{
		ProviderAddress: providerAddress,
		Model:           resp.Model,
		Content:         resp.Content,
		ChatID:          resp.ChatID,
	}, nil
}

func (h brokerRepositoryHandler) SettleFee(ctx context.Context, providerAddress string, fee decimal.Decimal) error {
	if !fee.IsPositive() {
		return domain.NewValidationError("fee", "must be positive")
	}
	err := h.Client.SettleFee(ctx, broker.SettleFeeRequest{
		ProviderAddress: providerAddress,
		Fee:             fee.String(),
	})
	if err != nil {
		return wrapBrokerError(err)
	}
	return nil
}

func wrapBrokerError(err error) error {
	var details any
	apiErr := broker.APIError{}
	if errors.As(err, &apiErr) {
		details = upstreamDetails(apiErr.Body)
	}
	return domain.NewExternalServiceError(brokerServiceName, err, details)
}

func tupleString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}

// tupleBigInt handles numbers decoded with UseNumber as well as the
// stringified form some gateway versions send.
func tupleBigInt(v any) (domain.BigInt, error) {
	switch x := v.(type) {
	case json.Number:
		return domain.ParseBigInt(x.String())
	case string:
		return domain.ParseBigInt(x)
	case nil:
		return domain.NewBigInt(0), nil
	default:
		return domain.BigInt{}, fmt.Errorf("unexpected value %v of type %T", v, v)
	}
}
