package entity

import "github.com/shopspring/decimal"

// Bin representa la existencia física de un artículo en una bodega.
type Bin struct {
	ItemCode  string
	Warehouse string
	ActualQty decimal.Decimal
}
