package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/customer-pricing-api/internal/application/pricing"
	"github.com/jhoicas/customer-pricing-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PricingUC    *pricing.CustomerPricingUseCase
	Log          *logger.Logger
	JWTSecret    string
	PricingRoles []string
}

// Router registra las rutas de la API. Todas requieren Bearer Token y un rol autorizado.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret), RequireRole(deps.PricingRoles...))

	pricingHandler := NewPricingHandler(deps.PricingUC, deps.Log)
	api.Get("/customer-pricing", pricingHandler.Get)
	api.Post("/method/get_customer_pricing", pricingHandler.Call)
}
