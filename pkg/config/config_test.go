package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customer-pricing-api/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "customer-pricing", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "draft", cfg.Pricing.DemandPolicy)
	assert.Equal(t, "all", cfg.Pricing.DemandScope)
	assert.True(t, cfg.Pricing.ClampAtZero)
	assert.False(t, cfg.Pricing.IncludeBreakdown)
	assert.Empty(t, cfg.Pricing.Warehouses)
	assert.Equal(t, []string{"admin", "vendedor"}, cfg.Pricing.Roles)
}

func TestLoad_DesdeEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("PRICING_DEMAND_POLICY", "active")
	t.Setenv("PRICING_DEMAND_SCOPE", "customer")
	t.Setenv("PRICING_CLAMP_AT_ZERO", "false")
	t.Setenv("PRICING_WAREHOUSES", "Stores - SS, Finished Goods - SS ,")
	t.Setenv("PRICING_INCLUDE_BREAKDOWN", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "active", cfg.Pricing.DemandPolicy)
	assert.Equal(t, "customer", cfg.Pricing.DemandScope)
	assert.False(t, cfg.Pricing.ClampAtZero)
	assert.Equal(t, []string{"Stores - SS", "Finished Goods - SS"}, cfg.Pricing.Warehouses)
	assert.True(t, cfg.Pricing.IncludeBreakdown)
}

func TestLoad_PuertoInvalido(t *testing.T) {
	t.Setenv("HTTP_PORT", "-1")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "erp", Password: "p@ss:word", DBName: "erp", SSLMode: "disable"}
	assert.Equal(t, "postgres://erp:p%40ss%3Aword@db:5432/erp?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, config.SplitList(""))
	assert.Equal(t, []string{"a", "b"}, config.SplitList(" a ,, b "))
}
