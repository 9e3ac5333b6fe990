package repository

import (
	"context"

	"github.com/jhoicas/customer-pricing-api/internal/domain/entity"
)

// SalesInvoiceRepository define el puerto de lectura de facturas de venta.
type SalesInvoiceRepository interface {
	// GetLastSubmittedLine devuelve la línea validada más reciente (por fecha de contabilización)
	// del cliente para el artículo, o (nil, nil) si no existe ninguna.
	GetLastSubmittedLine(ctx context.Context, customer, itemCode string) (*entity.SalesInvoiceLine, error)
}
