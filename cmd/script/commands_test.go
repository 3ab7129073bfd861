package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"launchpad/api"
	"launchpad/cmd"
	"launchpad/internal/domain"
	"launchpad/internal/repository"
	"launchpad/internal/service"
	"launchpad/internal/storage"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *api.ApiHandler {
	store := storage.NewMemoryStore()
	catalogRepository, err := repository.NewCatalogRepository()
	require.NoError(t, err)
	investorRepository := repository.NewInvestorRepository(store)
	investmentRepository := repository.NewInvestmentRepository(store)
	simulatorService := service.NewSimulatorService(service.NewSeededRandomSource(1))

	return &api.ApiHandler{
		InvestorRepository:   investorRepository,
		InvestmentRepository: investmentRepository,
		CatalogRepository:    catalogRepository,
		BrokerRepository:     cmd.NewMockBrokerRepository("0xprovider"),
		InvestmentService:    service.NewInvestmentService(investorRepository, investmentRepository, catalogRepository, simulatorService),
		PortfolioService:     service.NewPortfolioService(investorRepository, investmentRepository, catalogRepository),
		SimulatorService:     simulatorService,
	}
}

func run(t *testing.T, handler *api.ApiHandler, args ...string) (string, error) {
	root := newRootCmd(handler)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	handler := newTestHandler(t)

	t.Run("check-balance", func(t *testing.T) {
		out, err := run(t, handler, "check-balance")
		require.NoError(t, err)
		require.Contains(t, out, `"balance": "1000000000000000000"`)
	})

	t.Run("list-services", func(t *testing.T) {
		out, err := run(t, handler, "list-services")
		require.NoError(t, err)
		require.Contains(t, out, "0xprovider")
	})

	t.Run("seed then portfolio", func(t *testing.T) {
		out, err := run(t, handler, "seed", "--amount", "2500")
		require.NoError(t, err)

		seeded := struct {
			Investor   domain.Investor   `json:"investor"`
			Investment domain.Investment `json:"investment"`
		}{}
		require.NoError(t, json.Unmarshal([]byte(out), &seeded))
		require.Equal(t, 2500.0, seeded.Investment.Amount)

		out, err = run(t, handler, "portfolio", seeded.Investor.ID)
		require.NoError(t, err)
		details := service.PortfolioDetails{}
		require.NoError(t, json.Unmarshal([]byte(out), &details))
		require.Equal(t, 2500.0, details.TotalInvested)

		out, err = run(t, handler, "portfolio", seeded.Investor.ID, "--csv")
		require.NoError(t, err)
		require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)
	})

	t.Run("portfolio for missing investor", func(t *testing.T) {
		_, err := run(t, handler, "portfolio", "nope")
		require.Error(t, err)
	})
}
