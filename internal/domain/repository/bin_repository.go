package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// BinRepository define el puerto para consultar existencias por bodega.
type BinRepository interface {
	// SumActualQty suma actual_qty de todas las bodegas del artículo.
	// Si warehouses no está vacío, solo se consideran esas bodegas.
	SumActualQty(ctx context.Context, itemCode string, warehouses []string) (decimal.Decimal, error)
}
