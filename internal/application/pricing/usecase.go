package pricing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/customer-pricing-api/internal/application/dto"
	"github.com/jhoicas/customer-pricing-api/internal/domain/entity"
	domainpricing "github.com/jhoicas/customer-pricing-api/internal/domain/pricing"
	"github.com/jhoicas/customer-pricing-api/internal/domain/repository"
	"github.com/jhoicas/customer-pricing-api/pkg/logger"
)

// Resultado de cada consulta, usado como etiqueta de métricas.
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// LookupObserver recibe el resultado y la duración de cada consulta.
// Lo implementa *metrics.Metrics; la interfaz evita que la aplicación dependa de Prometheus.
type LookupObserver interface {
	ObserveLookup(outcome string, elapsed time.Duration)
}

// Options configuración del caso de uso.
type Options struct {
	Policy           domainpricing.Policy
	IncludeBreakdown bool // desglose siempre activo, aunque el cliente no lo pida
}

// CustomerPricingUseCase calcula descripción, disponible y último precio de un artículo para un cliente.
// Solo lectura: no modifica ninguna entidad.
type CustomerPricingUseCase struct {
	items    repository.ItemRepository
	bins     repository.BinRepository
	demand   repository.DemandRepository
	invoices repository.SalesInvoiceRepository
	opts     Options
	log      *logger.Logger
	observer LookupObserver
}

// NewCustomerPricingUseCase construye el caso de uso. observer puede ser nil.
func NewCustomerPricingUseCase(
	items repository.ItemRepository,
	bins repository.BinRepository,
	demand repository.DemandRepository,
	invoices repository.SalesInvoiceRepository,
	opts Options,
	log *logger.Logger,
	observer LookupObserver,
) *CustomerPricingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CustomerPricingUseCase{
		items:    items,
		bins:     bins,
		demand:   demand,
		invoices: invoices,
		opts:     opts,
		log:      log,
		observer: observer,
	}
}

// NotFoundResponse respuesta degradada para un artículo inexistente.
func NotFoundResponse(itemCode string) *dto.CustomerPricingResponse {
	return &dto.CustomerPricingResponse{
		Description: fmt.Sprintf("Item %s not found", itemCode),
		Found:       false,
	}
}

// GetCustomerPricing devuelve la descripción del artículo, el disponible
// (existencias - pedidos abiertos - cotizaciones abiertas) y la tarifa de la última
// factura validada del cliente para ese artículo.
//
// Un artículo inexistente (o item_code vacío) no es un error: se devuelve NotFoundResponse.
// Sin cliente no hay último precio: last_price es null y el disponible se calcula igual.
// Cualquier fallo de lectura se propaga sin reintentos.
func (uc *CustomerPricingUseCase) GetCustomerPricing(ctx context.Context, in dto.CustomerPricingRequest) (*dto.CustomerPricingResponse, error) {
	start := time.Now()
	resp, outcome, err := uc.lookup(ctx, in)
	if uc.observer != nil {
		uc.observer.ObserveLookup(outcome, time.Since(start))
	}
	return resp, err
}

func (uc *CustomerPricingUseCase) lookup(ctx context.Context, in dto.CustomerPricingRequest) (*dto.CustomerPricingResponse, string, error) {
	customer := strings.TrimSpace(in.Customer)
	itemCode := strings.TrimSpace(in.ItemCode)

	// 1. Artículo
	var item *entity.Item
	if itemCode != "" {
		var err error
		item, err = uc.items.GetByCode(ctx, itemCode)
		if err != nil {
			return nil, OutcomeError, fmt.Errorf("consultar artículo: %w", err)
		}
	}
	if item == nil {
		uc.log.Warn().Str("customer", customer).Str("item_code", itemCode).Msg("artículo no encontrado")
		return NotFoundResponse(itemCode), OutcomeNotFound, nil
	}

	// 2. Existencias en bodegas
	warehouses := uc.opts.Policy.Warehouses
	if len(in.Warehouses) > 0 {
		warehouses = in.Warehouses
	}
	binQty, err := uc.bins.SumActualQty(ctx, itemCode, warehouses)
	if err != nil {
		return nil, OutcomeError, fmt.Errorf("sumar existencias: %w", err)
	}

	// 3. Demanda abierta (pedidos y cotizaciones)
	filter := uc.opts.Policy.DemandFilter(itemCode, customer)
	soQty, err := uc.demand.SumSalesOrderQty(ctx, filter)
	if err != nil {
		return nil, OutcomeError, fmt.Errorf("sumar pedidos abiertos: %w", err)
	}
	quotQty, err := uc.demand.SumQuotationQty(ctx, filter)
	if err != nil {
		return nil, OutcomeError, fmt.Errorf("sumar cotizaciones abiertas: %w", err)
	}

	avail := domainpricing.ComputeAvailability(binQty, soQty, quotQty, uc.opts.Policy.ClampAtZero)
	uc.log.Debug().
		Str("customer", customer).
		Str("item_code", itemCode).
		Stringer("bin_qty", avail.BinQty).
		Stringer("so_qty", avail.SalesOrderQty).
		Stringer("quot_qty", avail.QuotationQty).
		Stringer("available_qty", avail.Available).
		Msg("disponible calculado")

	// 4. Último precio facturado al cliente
	var line *entity.SalesInvoiceLine
	if customer != "" {
		line, err = uc.invoices.GetLastSubmittedLine(ctx, customer, itemCode)
		if err != nil {
			return nil, OutcomeError, fmt.Errorf("consultar última factura: %w", err)
		}
	}

	resp := &dto.CustomerPricingResponse{
		Description:  item.DisplayDescription(),
		AvailableQty: avail.Available,
		Found:        true,
	}
	if line != nil {
		rate := line.Rate
		resp.LastPrice = &rate
	}
	if in.Breakdown || uc.opts.IncludeBreakdown {
		resp.BinQty = &avail.BinQty
		resp.SOQty = &avail.SalesOrderQty
		resp.QuotQty = &avail.QuotationQty
	}
	return resp, OutcomeFound, nil
}
