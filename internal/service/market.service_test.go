package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"launchpad/internal/domain"
	mock_repository "launchpad/internal/repository/mocks"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMarketService(t *testing.T) {
	ctx := context.Background()
	provider := AIProvider{
		ProviderAddress: "0xprovider",
		Prompt:          "say I am busy for every hello",
	}

	t.Run("fund insight settles then queries", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		brokerRepository := mock_repository.NewMockBrokerRepository(ctrl)
		h := NewMarketService(marketDataRepository, brokerRepository, provider)

		marketDataRepository.EXPECT().
			GetFunds(gomock.Any()).
			Return([]domain.Fund{
				{ID: 1, Key: "a16z", Name: "Andreessen Horowitz"},
				{ID: 2, Key: "paradigm", Name: "Paradigm"},
			}, nil).
			Times(1)

		gomock.InOrder(
			brokerRepository.EXPECT().
				SettleFee(gomock.Any(), "0xprovider", decimal.RequireFromString("0.000000000000000559")).
				Return(nil),
			brokerRepository.EXPECT().
				SendQuery(gomock.Any(), "0xprovider", provider.Prompt, gomock.Any()).
				DoAndReturn(func(_ context.Context, _, _, query string) (*domain.QueryResponse, error) {
					require.True(t, strings.HasPrefix(query, "explain me about the investor\n"))
					require.Contains(t, query, `"key":"a16z"`)
					return &domain.QueryResponse{Content: "a16z is a venture firm"}, nil
				}),
		)

		out, err := h.FundInsight(ctx, DefaultFundID)
		require.NoError(t, err)
		require.Equal(t, "a16z is a venture firm", out)

		// served from cache, GetFunds is not called again
		funds, err := h.GetFunds(ctx)
		require.NoError(t, err)
		require.Len(t, funds, 2)
	})

	t.Run("unknown fund", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		brokerRepository := mock_repository.NewMockBrokerRepository(ctrl)
		h := NewMarketService(marketDataRepository, brokerRepository, provider)

		marketDataRepository.EXPECT().GetFunds(gomock.Any()).Return([]domain.Fund{}, nil)

		_, err := h.FundInsight(ctx, 42)
		notFound := domain.NotFoundError{}
		require.True(t, errors.As(err, &notFound))
	})

	t.Run("fee failure stops the query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		brokerRepository := mock_repository.NewMockBrokerRepository(ctrl)
		h := NewMarketService(marketDataRepository, brokerRepository, provider)

		marketDataRepository.EXPECT().
			GetDapps(gomock.Any(), "ethereum", 200).
			Return(json.RawMessage(`{"results":[]}`), nil)
		brokerRepository.EXPECT().
			SettleFee(gomock.Any(), "0xprovider", decimal.RequireFromString("0.000000000000000159")).
			Return(domain.NewExternalServiceError("broker", errors.New("insufficient balance"), nil))

		_, err := h.DappInsight(ctx)
		external := domain.ExternalServiceError{}
		require.True(t, errors.As(err, &external))
		require.Equal(t, "broker", external.Service)
	})

	t.Run("upstream errors are not cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		h := NewMarketService(marketDataRepository, mock_repository.NewMockBrokerRepository(ctrl), provider)

		gomock.InOrder(
			marketDataRepository.EXPECT().
				GetDapps(gomock.Any(), "ethereum", 200).
				Return(nil, domain.NewExternalServiceError("Dappradar", errors.New("boom"), nil)),
			marketDataRepository.EXPECT().
				GetDapps(gomock.Any(), "ethereum", 200).
				Return(json.RawMessage(`{"results":[]}`), nil),
		)

		_, err := h.GetDapps(ctx)
		require.Error(t, err)

		out, err := h.GetDapps(ctx)
		require.NoError(t, err)
		require.JSONEq(t, `{"results":[]}`, string(out))
	})
}
