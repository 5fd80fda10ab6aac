package routes

import (
	coreport "github.com/amirhossein-jamali/topup-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/topup-processor/internal/infrastructure/adapter/metrics"
	"github.com/gin-gonic/gin"
)

// APIPrefix is the path prefix of every API route
const APIPrefix = "/api"

// WebhookPath is the route of the provider callback, relative to the API prefix
const WebhookPath = "/transactions/webhook/zenospay"

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Transactions *handler.TransactionHandler
	Webhooks     *handler.WebhookHandler
	Health       *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	h Handlers,
	tokens *auth.TokenManager,
	m *metrics.Metrics,
	logger coreport.Logger,
) {
	admin := middleware.RequireRole(tokens, auth.RoleAdmin, logger)

	api := router.Group(APIPrefix)
	api.GET("/health", h.Health.Health)

	transactions := api.Group("/transactions")
	{
		// Public
		transactions.POST("", h.Transactions.Create)
		transactions.POST("/:id/pay/qris", h.Transactions.InitiatePayment)
		transactions.GET("/status", h.Transactions.CheckStatus)
		transactions.POST("/webhook/zenospay", h.Webhooks.Zenospay)

		// Administrative
		transactions.GET("", admin, h.Transactions.List)
		transactions.GET("/:id", admin, h.Transactions.Get)
		transactions.PUT("/:id", admin, h.Transactions.UpdateStatusByID)
		transactions.PUT("/merchant/status", admin, h.Transactions.UpdateStatusByReference)
	}

	router.GET("/metrics", gin.WrapH(m.Handler()))
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, m *metrics.Metrics) {
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.HTTPMetrics(m, timeProvider))
}

// NewRouter builds a gin engine with the middlewares and routes installed
func NewRouter(
	h Handlers,
	tokens *auth.TokenManager,
	m *metrics.Metrics,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	SetupMiddlewares(router, logger, timeProvider, m)
	SetupRoutes(router, h, tokens, m, logger)
	return router
}
