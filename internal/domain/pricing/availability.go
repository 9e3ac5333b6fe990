package pricing

import "github.com/shopspring/decimal"

// Availability desglose del disponible de un artículo.
type Availability struct {
	BinQty        decimal.Decimal
	SalesOrderQty decimal.Decimal
	QuotationQty  decimal.Decimal
	Available     decimal.Decimal
}

// ComputeAvailability calcula existencias - pedidos abiertos - cotizaciones abiertas.
// Con clamp el resultado nunca es negativo.
func ComputeAvailability(binQty, salesOrderQty, quotationQty decimal.Decimal, clamp bool) Availability {
	available := binQty.Sub(salesOrderQty).Sub(quotationQty)
	if clamp && available.IsNegative() {
		available = decimal.Zero
	}
	return Availability{
		BinQty:        binQty,
		SalesOrderQty: salesOrderQty,
		QuotationQty:  quotationQty,
		Available:     available,
	}
}
