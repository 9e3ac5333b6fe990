package repository

import (
	"context"

	"github.com/jhoicas/customer-pricing-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// DemandFilter criterio para sumar cantidades comprometidas en pedidos y cotizaciones.
type DemandFilter struct {
	ItemCode string
	// DocStatus estado del documento padre que se considera "abierto".
	DocStatus entity.DocStatus
	// ExcludeStatuses estados de cabecera que se descartan (vacío = ninguno).
	ExcludeStatuses []string
	// Customer restringe la demanda a los documentos del cliente (vacío = todos).
	Customer string
}

// DemandRepository define el puerto para la demanda abierta de un artículo.
type DemandRepository interface {
	SumSalesOrderQty(ctx context.Context, f DemandFilter) (decimal.Decimal, error)
	SumQuotationQty(ctx context.Context, f DemandFilter) (decimal.Decimal, error)
}
