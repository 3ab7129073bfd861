package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"launchpad/internal/domain"
	"launchpad/internal/logger"
	"launchpad/internal/repository"
	"launchpad/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	apiName    = "0G Compute Network API"
	apiVersion = "1.0.0"
	apiPrefix  = "/api"
)

type ApiHandler struct {
	// set when storage is database backed
	Db   *sql.DB
	Port int

	InvestorRepository   repository.InvestorRepository
	InvestmentRepository repository.InvestmentRepository
	AgentRepository      repository.AgentRepository
	CatalogRepository    repository.CatalogRepository
	BrokerRepository     repository.BrokerRepository

	InvestmentService service.InvestmentService
	PortfolioService  service.PortfolioService
	AllocatorService  service.AllocatorService
	SimulatorService  service.SimulatorService
	MarketService     service.MarketService

	// provider and prompt used by the market insight routes
	Provider    service.AIProvider
	RateLimiter *rate.Limiter
}

type route struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Summary string `json:"summary"`
}

type routeDefinition struct {
	route
	handler gin.HandlerFunc
}

func (m ApiHandler) routes() []routeDefinition {
	return []routeDefinition{
		{route{http.MethodGet, "/", "Account info from the broker ledger"}, m.getAccount},
		{route{http.MethodGet, "/tmp", "API summary with available compute services"}, m.getApiSummary},
		{route{http.MethodGet, "/docs", "This route listing"}, m.getDocs},
		{route{http.MethodGet, apiPrefix + "/account", "Account info from the broker ledger"}, m.getAccount},

		{route{http.MethodPost, apiPrefix + "/wallet/connect", "Connect a wallet and return its balance"}, m.connectWallet},
		{route{http.MethodPost, apiPrefix + "/wallet/disconnect", "Disconnect the wallet"}, m.disconnectWallet},
		{route{http.MethodGet, apiPrefix + "/wallet/status", "Wallet status and balance"}, m.getWalletStatus},

		{route{http.MethodGet, apiPrefix + "/services/list", "List compute services"}, m.listServices},
		{route{http.MethodPost, apiPrefix + "/services/query", "Send a query to a provider"}, m.sendQuery},
		{route{http.MethodPost, apiPrefix + "/services/settle-fee", "Settle a fee with a provider"}, m.settleFee},

		{route{http.MethodGet, "/dapps", "DappRadar listing, ?analyze=true for an AI summary"}, m.getDapps},
		{route{http.MethodGet, "/funds", "AI description of a CryptoRank fund, ?fundId=N"}, m.getFunds},

		{route{http.MethodGet, apiPrefix + "/investors", "List investors"}, m.listInvestors},
		{route{http.MethodPost, apiPrefix + "/investors", "Create an investor"}, m.addInvestor},
		{route{http.MethodGet, apiPrefix + "/investors/:id", "Get an investor"}, m.getInvestor},
		{route{http.MethodGet, apiPrefix + "/investors/:id/portfolio", "Investor portfolio"}, m.getPortfolio},
		{route{http.MethodGet, apiPrefix + "/investors/:id/portfolio.csv", "Investor portfolio as csv"}, m.getPortfolioCsv},
		{route{http.MethodGet, apiPrefix + "/investors/:id/opportunities", "Random allocation set, ?k=N"}, m.getInvestorOpportunities},
		{route{http.MethodGet, apiPrefix + "/investors/:id/metrics", "Mock performance metrics"}, m.getPerformanceMetrics},
		{route{http.MethodPost, apiPrefix + "/investments", "Invest in an opportunity"}, m.invest},
		{route{http.MethodGet, apiPrefix + "/agents", "List agents"}, m.listAgents},
		{route{http.MethodPost, apiPrefix + "/agents", "Create an agent"}, m.addAgent},
		{route{http.MethodGet, apiPrefix + "/opportunities", "Opportunity catalog"}, m.listOpportunities},
	}
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	engine := gin.New()
	// lets handlers pass *gin.Context wherever a context.Context is expected
	engine.ContextWithFallback = true
	engine.Use(gin.Recovery())
	engine.Use(cors.Default())
	if m.RateLimiter != nil {
		engine.Use(rateLimitMiddleware(m.RateLimiter))
	}
	engine.Use(m.logRequestMiddlware)

	for _, r := range m.routes() {
		engine.Handle(r.Method, r.Path, r.handler)
	}

	return engine
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

// returnErrorJson maps domain errors onto status codes. Anything untyped
// is a 500.
func returnErrorJson(err error, c *gin.Context) {
	notFound := domain.NotFoundError{}
	validation := domain.ValidationError{}
	external := domain.ExternalServiceError{}
	switch {
	case errors.As(err, &notFound):
		returnErrorJsonCode(err, c, http.StatusNotFound)
	case errors.As(err, &validation):
		returnErrorJsonCode(err, c, http.StatusBadRequest)
	case errors.As(err, &external):
		returnExternalError(err, c, fmt.Sprintf("Failed to reach %s", external.Service))
	default:
		returnErrorJsonCode(err, c, http.StatusInternalServerError)
	}
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Warnf("request failed with %d: %s", code, err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"success": false,
		"error":   err.Error(),
	})
}

// returnExternalError is the envelope for upstream failures. details is
// whatever the upstream sent back, or the error text.
func returnExternalError(err error, c *gin.Context, message string) {
	logger.FromContext(c).Errorf("%s: %s", message, err.Error())

	var details any = err.Error()
	external := domain.ExternalServiceError{}
	if errors.As(err, &external) && external.Details != nil {
		details = external.Details
	}

	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": message,
		"details": details,
	})
}

func rateLimitMiddleware(limiter *rate.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"error":   "too many requests",
			})
			return
		}
		c.Next()
	}
}

// logRequestMiddlware attaches a request scoped logger and logs the outcome.
func (m ApiHandler) logRequestMiddlware(c *gin.Context) {
	requestID := uuid.New().String()
	log := logger.FromContext(c.Request.Context()).With("requestId", requestID)
	c.Request = c.Request.WithContext(logger.WithLogger(c.Request.Context(), log))

	start := time.Now()
	c.Next()

	route := c.FullPath()
	if route == "" {
		route = c.Request.URL.Path
	}
	log.Infow("request",
		"method", c.Request.Method,
		"route", route,
		"status", c.Writer.Status(),
		"latencyMs", time.Since(start).Milliseconds(),
	)
}
