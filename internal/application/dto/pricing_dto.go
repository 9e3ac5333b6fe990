package dto

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CustomerPricingRequest parámetros de GET /api/customer-pricing y cuerpo de
// POST /api/method/get_customer_pricing.
type CustomerPricingRequest struct {
	Customer   string   `json:"customer" query:"customer" form:"customer"`
	ItemCode   string   `json:"item_code" query:"item_code" form:"item_code"`
	Warehouses []string `json:"warehouses,omitempty" form:"warehouses"` // vacío = política configurada
	Breakdown  bool     `json:"breakdown,omitempty" query:"breakdown" form:"breakdown"`
}

// CustomerPricingResponse resultado de la consulta de precio por cliente.
// LastPrice es null si el cliente nunca ha facturado el artículo.
// BinQty, SOQty y QuotQty solo se devuelven cuando se pide el desglose.
type CustomerPricingResponse struct {
	Description  string           `json:"description"`
	AvailableQty decimal.Decimal  `json:"available_qty"`
	LastPrice    *decimal.Decimal `json:"last_price"`
	Found        bool             `json:"found"`
	BinQty       *decimal.Decimal `json:"bin_qty,omitempty"`
	SOQty        *decimal.Decimal `json:"so_qty,omitempty"`
	QuotQty      *decimal.Decimal `json:"quot_qty,omitempty"`
}

// MarshalJSON serializa cantidades y precio como números JSON (35, 13.75), no como strings.
func (r CustomerPricingResponse) MarshalJSON() ([]byte, error) {
	type wire struct {
		Description  string       `json:"description"`
		AvailableQty json.Number  `json:"available_qty"`
		LastPrice    *json.Number `json:"last_price"`
		Found        bool         `json:"found"`
		BinQty       *json.Number `json:"bin_qty,omitempty"`
		SOQty        *json.Number `json:"so_qty,omitempty"`
		QuotQty      *json.Number `json:"quot_qty,omitempty"`
	}
	return json.Marshal(wire{
		Description:  r.Description,
		AvailableQty: number(r.AvailableQty),
		LastPrice:    optionalNumber(r.LastPrice),
		Found:        r.Found,
		BinQty:       optionalNumber(r.BinQty),
		SOQty:        optionalNumber(r.SOQty),
		QuotQty:      optionalNumber(r.QuotQty),
	})
}

func number(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func optionalNumber(d *decimal.Decimal) *json.Number {
	if d == nil {
		return nil
	}
	n := number(*d)
	return &n
}
