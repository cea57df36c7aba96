package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "cotador_telecom/docs"
	"cotador_telecom/internal/adapter/cache"
	"cotador_telecom/internal/adapter/http/dto/request"
	"cotador_telecom/internal/adapter/http/handlers"
	"cotador_telecom/internal/adapter/http/middleware"
	"cotador_telecom/internal/adapter/persistence/repository"
	"cotador_telecom/internal/infrastructure/auth"
	infracache "cotador_telecom/internal/infrastructure/cache"
	"cotador_telecom/internal/infrastructure/config"
	"cotador_telecom/internal/infrastructure/database"
	"cotador_telecom/internal/infrastructure/metrics"
	"cotador_telecom/internal/infrastructure/payments"
	"cotador_telecom/internal/usecase"
	"cotador_telecom/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Handlers groups the HTTP handlers mounted under /v1.
type Handlers struct {
	Quote        *handlers.QuoteHandler
	PriceTable   *handlers.PriceTableHandler
	Proposal     *handlers.ProposalHandler
	SetupPayment *handlers.SetupPaymentHandler
}

// Options carries the cross-cutting pieces of the router. Metrics and
// RateLimit are optional.
type Options struct {
	Verifier       middleware.TokenVerifier
	Metrics        *metrics.HTTPMetrics
	MetricsHandler http.Handler
	RateLimit      gin.HandlerFunc
}

// NewRouter builds the gin engine. Everything under /v1 except ping
// requires a bearer token and is authorized per route.
func NewRouter(h Handlers, opts Options) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Metrics(opts.Metrics))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if opts.MetricsHandler != nil {
		router.GET("/metrics", gin.WrapH(opts.MetricsHandler))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("")
	api.Use(middleware.Authenticate(opts.Verifier))
	if opts.RateLimit != nil {
		api.Use(opts.RateLimit)
	}
	addQuoteRoutes(api, h.Quote)
	addPriceTableRoutes(api, h.PriceTable)
	addProposalRoutes(api, h.Proposal, h.SetupPayment)
	return router
}

// Run wires the application from cfg and serves HTTP until ctx is done.
func Run(ctx context.Context, cfg *config.Config) error {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := request.RegisterValidators(); err != nil {
		return fmt.Errorf("register validators: %w", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}
	rdb, err := infracache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.MustRegisterDomainMetrics(reg)
	httpMetrics := metrics.NewHTTPMetrics(metrics.Namespace, reg)

	proposalRepo := repository.NewProposalDynamoRepository(ddb, cfg.ProposalsTable)
	priceTableRepo := repository.NewPriceTableDynamoRepository(ddb, cfg.PriceTablesTable)
	counterRepo := repository.NewCounterDynamoRepository(ddb, cfg.CountersTable)
	paymentRepo := repository.NewSetupPaymentDynamoRepository(ddb, cfg.SetupPaymentsTable)

	var priceTableCache interfaces.IPriceTableCache
	if rdb != nil {
		priceTableCache = cache.NewPriceTableCache(rdb, cfg.PriceTableCacheTTL)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(payments.Options{
		AccessToken: cfg.MercadoPagoAccessToken,
		Mock:        cfg.PaymentGatewayMock,
	})
	if err != nil {
		log.Warn().Err(err).Msg("mercado pago gateway not configured")
	} else {
		paymentGateway = mpGateway
	}

	priceTableUseCase := usecase.NewPriceTableUseCase(priceTableRepo, priceTableCache)
	quoteUseCase := usecase.NewQuoteUseCase(priceTableUseCase)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo, counterRepo, priceTableUseCase)
	paymentUseCase := usecase.NewSetupPaymentUseCase(paymentRepo, proposalUseCase, paymentGateway, usecase.SetupPaymentOptions{
		MockMode:       cfg.PaymentGatewayMock,
		Sandbox:        cfg.MercadoPagoSandbox(),
		TestPayerEmail: cfg.MercadoPagoTestPayerEmail,
	})

	rateLimit, err := middleware.RateLimit(cfg.RateLimit, rdb)
	if err != nil {
		return fmt.Errorf("rate limit %q: %w", cfg.RateLimit, err)
	}

	router := NewRouter(Handlers{
		Quote:        handlers.NewQuoteHandler(quoteUseCase),
		PriceTable:   handlers.NewPriceTableHandler(priceTableUseCase),
		Proposal:     handlers.NewProposalHandler(proposalUseCase),
		SetupPayment: handlers.NewSetupPaymentHandler(paymentUseCase, cfg.PaymentGatewayMock),
	}, Options{
		Verifier:       auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience),
		Metrics:        httpMetrics,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		RateLimit:      rateLimit,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Str("env", cfg.AppEnv).Msg("http server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
