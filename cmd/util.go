package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"launchpad/api"
	"launchpad/internal/logger"
	"launchpad/internal/repository"
	"launchpad/internal/service"
	"launchpad/internal/storage"
	"launchpad/internal/util"

	_ "github.com/lib/pq"
	"golang.org/x/time/rate"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	if err := handler.Db.Close(); err != nil {
		logger.New().Errorf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	ctx := context.Background()
	log := logger.New()

	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	store, db, err := newStore(ctx, secrets.Storage)
	if err != nil {
		return nil, err
	}
	log.Infof("using %s storage", secrets.Storage.Driver)

	brokerRepository, err := newBrokerRepository(secrets)
	if err != nil {
		return nil, err
	}

	catalogRepository, err := repository.NewCatalogRepository()
	if err != nil {
		return nil, err
	}
	investorRepository := repository.NewInvestorRepository(store)
	investmentRepository := repository.NewInvestmentRepository(store)
	agentRepository := repository.NewAgentRepository(store)
	marketDataRepository := repository.NewMarketDataRepository(secrets.DappRadar.ApiKey, secrets.CryptoRank.ApiKey)

	random := service.NewRandomSource()
	simulatorService := service.NewSimulatorService(random)
	provider := service.AIProvider{
		ProviderAddress: secrets.Broker.ProviderAddress,
		Prompt:          secrets.Broker.Prompt,
	}

	apiHandler := &api.ApiHandler{
		Db:                   db,
		InvestorRepository:   investorRepository,
		InvestmentRepository: investmentRepository,
		AgentRepository:      agentRepository,
		CatalogRepository:    catalogRepository,
		BrokerRepository:     brokerRepository,
		InvestmentService: service.NewInvestmentService(
			investorRepository,
			investmentRepository,
			catalogRepository,
			simulatorService,
		),
		PortfolioService: service.NewPortfolioService(
			investorRepository,
			investmentRepository,
			catalogRepository,
		),
		AllocatorService: service.NewAllocatorService(random),
		SimulatorService: simulatorService,
		MarketService:    service.NewMarketService(marketDataRepository, brokerRepository, provider),
		Provider:         provider,
		RateLimiter: rate.NewLimiter(
			rate.Every(time.Duration(secrets.RateLimit.IntervalMs)*time.Millisecond),
			secrets.RateLimit.Burst,
		),
		Port: secrets.Port,
	}

	return apiHandler, nil
}

// newStore returns the db handle too when there is one, so it can be closed.
func newStore(ctx context.Context, s util.StorageSecrets) (storage.Store, *sql.DB, error) {
	switch strings.ToLower(s.Driver) {
	case storage.DriverMemory:
		return storage.NewMemoryStore(), nil, nil
	case storage.DriverFile:
		store, err := storage.NewFileStore(s.Path)
		if err != nil {
			return nil, nil, err
		}
		return store, nil, nil
	case storage.DriverPostgres:
		db, err := sql.Open("postgres", s.Db.ToConnectionStr())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		return storage.NewPostgresStore(db), db, nil
	case storage.DriverSqlite:
		path := s.Path
		if filepath.Ext(path) == "" {
			// a directory, as for the file driver
			if err := os.MkdirAll(path, 0o755); err != nil {
				return nil, nil, fmt.Errorf("failed to create %s: %w", path, err)
			}
			path = filepath.Join(path, "launchpad.db")
		}
		db, err := storage.OpenSqlite(path)
		if err != nil {
			return nil, nil, err
		}
		store, err := storage.NewSqliteStore(ctx, db)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		return store, db, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", s.Driver)
}

func useMockBroker(secrets *util.Secrets) bool {
	return secrets.Broker.UseMock || strings.EqualFold(os.Getenv(logger.EnvKey), "test")
}

func newBrokerRepository(secrets *util.Secrets) (repository.BrokerRepository, error) {
	log := logger.New()

	var base repository.BrokerRepository
	switch {
	case useMockBroker(secrets):
		return NewMockBrokerRepository(secrets.Broker.ProviderAddress), nil
	case secrets.Broker.Endpoint != "":
		base = repository.NewBrokerRepository(secrets.Broker.Endpoint)
	default:
		log.Warn("no broker endpoint configured, falling back to the mock broker")
		base = NewMockBrokerRepository(secrets.Broker.ProviderAddress)
	}

	if secrets.Gpt == "" {
		return base, nil
	}
	return repository.NewGptBrokerRepository(base, secrets.Gpt)
}
