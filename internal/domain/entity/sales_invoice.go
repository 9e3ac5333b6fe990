package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesInvoiceLine línea de una factura de venta junto con los datos de cabecera
// necesarios para ordenar por fecha de contabilización.
type SalesInvoiceLine struct {
	InvoiceName string
	Customer    string
	ItemCode    string
	Qty         decimal.Decimal
	Rate        decimal.Decimal
	PostingDate time.Time
}
