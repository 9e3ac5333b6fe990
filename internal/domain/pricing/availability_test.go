package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-pricing-api/internal/domain/entity"
	"github.com/jhoicas/customer-pricing-api/internal/domain/pricing"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestComputeAvailability(t *testing.T) {
	tests := []struct {
		name  string
		bin   decimal.Decimal
		so    decimal.Decimal
		quot  decimal.Decimal
		clamp bool
		want  decimal.Decimal
	}{
		{"sin demanda devuelve existencias", d(50), d(0), d(0), true, d(50)},
		{"resta pedidos y cotizaciones", d(50), d(10), d(5), true, d(35)},
		{"recorta en cero", d(10), d(8), d(7), true, d(0)},
		{"sin recorte puede ser negativo", d(10), d(8), d(7), false, d(-5)},
		{"exactamente cero", d(15), d(10), d(5), true, d(0)},
		{"cantidades fraccionarias", decimal.RequireFromString("12.5"), decimal.RequireFromString("2.25"), d(0), true, decimal.RequireFromString("10.25")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ComputeAvailability(tt.bin, tt.so, tt.quot, tt.clamp)
			assert.True(t, tt.want.Equal(got.Available), "esperado %s, obtenido %s", tt.want, got.Available)
			assert.True(t, tt.bin.Equal(got.BinQty))
			assert.True(t, tt.so.Equal(got.SalesOrderQty))
			assert.True(t, tt.quot.Equal(got.QuotationQty))
		})
	}
}

func TestNewPolicy_Defaults(t *testing.T) {
	p, err := pricing.NewPolicy("", "", true, nil)
	require.NoError(t, err)
	assert.Equal(t, pricing.DemandDraft, p.Demand)
	assert.Equal(t, pricing.ScopeAll, p.Scope)
	assert.True(t, p.ClampAtZero)
}

func TestNewPolicy_ValoresInvalidos(t *testing.T) {
	_, err := pricing.NewPolicy("pending", "all", true, nil)
	assert.Error(t, err)

	_, err = pricing.NewPolicy("draft", "company", true, nil)
	assert.Error(t, err)
}

func TestParseDemandPolicy_IgnoraMayusculas(t *testing.T) {
	p, err := pricing.ParseDemandPolicy("  ACTIVE ")
	require.NoError(t, err)
	assert.Equal(t, pricing.DemandActive, p)
}

func TestPolicy_DemandFilter_Draft(t *testing.T) {
	p := pricing.DefaultPolicy()
	f := p.DemandFilter("WIDGET-1", "ACME")

	assert.Equal(t, "WIDGET-1", f.ItemCode)
	assert.Equal(t, entity.DocStatusDraft, f.DocStatus)
	assert.Empty(t, f.ExcludeStatuses)
	assert.Empty(t, f.Customer, "con alcance all no se filtra por cliente")
}

func TestPolicy_DemandFilter_ActivePorCliente(t *testing.T) {
	p, err := pricing.NewPolicy("active", "customer", true, nil)
	require.NoError(t, err)
	f := p.DemandFilter("WIDGET-1", "ACME")

	assert.Equal(t, entity.DocStatusSubmitted, f.DocStatus)
	assert.ElementsMatch(t, []string{"Completed", "Closed", "Cancelled", "Lost", "Ordered", "Expired"}, f.ExcludeStatuses)
	assert.Equal(t, "ACME", f.Customer)
}
