package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/customer-pricing-api/internal/application/dto"
	"github.com/jhoicas/customer-pricing-api/pkg/config"
	"github.com/jhoicas/customer-pricing-api/pkg/logger"
)

// pricingService contrato mínimo que necesita el handler.
// Lo implementa *pricing.CustomerPricingUseCase.
type pricingService interface {
	GetCustomerPricing(ctx context.Context, in dto.CustomerPricingRequest) (*dto.CustomerPricingResponse, error)
}

// PricingHandler maneja la consulta de precio por cliente (protegido).
type PricingHandler struct {
	svc pricingService
	log *logger.Logger
}

// NewPricingHandler construye el handler.
func NewPricingHandler(svc pricingService, log *logger.Logger) *PricingHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &PricingHandler{svc: svc, log: log}
}

// Get godoc
// @Summary      Precio y disponible por cliente
// @Description  Descripción del artículo, disponible (existencias - pedidos abiertos - cotizaciones abiertas)
//
//	y tarifa de la última factura validada del cliente. Un artículo inexistente o item_code
//	vacío devuelve found=false, available_qty=0 y last_price=null. Sin customer, last_price=null.
//
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Param        customer   query  string  true   "Cliente"
// @Param        item_code  query  string  true   "Código de artículo"
// @Param        warehouse  query  string  false  "Bodegas separadas por coma. Vacío = política configurada."
// @Param        breakdown  query  bool    false  "Incluir bin_qty, so_qty y quot_qty"
// @Success      200  {object}  dto.CustomerPricingResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customer-pricing [get]
func (h *PricingHandler) Get(c *fiber.Ctx) error {
	in := dto.CustomerPricingRequest{
		Customer:   c.Query("customer"),
		ItemCode:   c.Query("item_code"),
		Warehouses: config.SplitList(c.Query("warehouse")),
		Breakdown:  c.QueryBool("breakdown", false),
	}
	return h.respond(c, in)
}

// Call godoc
// @Summary      Precio y disponible por cliente (estilo RPC)
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerPricingRequest  true  "customer, item_code, warehouses, breakdown"
// @Success      200   {object}  dto.CustomerPricingResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/method/get_customer_pricing [post]
func (h *PricingHandler) Call(c *fiber.Ctx) error {
	var in dto.CustomerPricingRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return h.respond(c, in)
}

func (h *PricingHandler) respond(c *fiber.Ctx, in dto.CustomerPricingRequest) error {
	resp, err := h.svc.GetCustomerPricing(c.Context(), in)
	if err != nil {
		h.log.Error().Err(err).
			Str("request_id", GetRequestID(c)).
			Str("customer", in.Customer).
			Str("item_code", in.ItemCode).
			Msg("consulta de precio por cliente")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno al consultar el precio"})
	}
	return c.JSON(resp)
}
