package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/customer-pricing-api/docs"
	"github.com/jhoicas/customer-pricing-api/internal/application/pricing"
	domainpricing "github.com/jhoicas/customer-pricing-api/internal/domain/pricing"
	"github.com/jhoicas/customer-pricing-api/internal/infrastructure/metrics"
	"github.com/jhoicas/customer-pricing-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/customer-pricing-api/internal/interfaces/http"
	"github.com/jhoicas/customer-pricing-api/pkg/config"
	"github.com/jhoicas/customer-pricing-api/pkg/logger"
)

// @title                       Customer Pricing API
// @version                     1.0
// @description                 Descripción, disponible y último precio facturado de un artículo para un cliente.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	policy, err := domainpricing.NewPolicy(
		cfg.Pricing.DemandPolicy,
		cfg.Pricing.DemandScope,
		cfg.Pricing.ClampAtZero,
		cfg.Pricing.Warehouses,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("política de disponible")
	}
	log.Info().
		Str("demand_policy", string(policy.Demand)).
		Str("demand_scope", string(policy.Scope)).
		Bool("clamp_at_zero", policy.ClampAtZero).
		Strs("warehouses", policy.Warehouses).
		Msg("política de disponible")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	registry := metrics.NewRegistry()
	appMetrics := metrics.New(cfg.App.Name, registry)

	itemRepo := postgres.NewItemRepository(pool)
	binRepo := postgres.NewBinRepository(pool)
	demandRepo := postgres.NewDemandRepository(pool)
	invoiceRepo := postgres.NewSalesInvoiceRepository(pool)
	pricingUC := pricing.NewCustomerPricingUseCase(
		itemRepo, binRepo, demandRepo, invoiceRepo,
		pricing.Options{Policy: policy, IncludeBreakdown: cfg.Pricing.IncludeBreakdown},
		log, appMetrics,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	// recover después del logger y las métricas: un panic se registra como 500.
	app.Use(httpRouter.RequestLogger(log))
	app.Use(httpRouter.MetricsMiddleware(appMetrics))
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Customer Pricing API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler(registry)))

	httpRouter.Router(app, httpRouter.RouterDeps{
		PricingUC:    pricingUC,
		Log:          log,
		JWTSecret:    cfg.JWT.Secret,
		PricingRoles: cfg.Pricing.Roles,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
