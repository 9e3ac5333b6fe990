//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jhoicas/customer-pricing-api/internal/application/dto"
	"github.com/jhoicas/customer-pricing-api/internal/application/pricing"
	"github.com/jhoicas/customer-pricing-api/internal/domain/entity"
	domainpricing "github.com/jhoicas/customer-pricing-api/internal/domain/pricing"
	"github.com/jhoicas/customer-pricing-api/internal/domain/repository"
	"github.com/jhoicas/customer-pricing-api/internal/infrastructure/postgres"
	"github.com/jhoicas/customer-pricing-api/pkg/config"
	"github.com/jhoicas/customer-pricing-api/pkg/logger"
)

// Ejecutar con: go test -tags integration ./internal/infrastructure/postgres/...
// Requiere Docker.

const seedSQL = `
INSERT INTO items (item_code, item_name, description) VALUES
  ('WIDGET-1', 'Widget', 'Widget de acero 10mm'),
  ('GADGET-2', 'Gadget', NULL);

INSERT INTO bins (item_code, warehouse, actual_qty) VALUES
  ('WIDGET-1', 'Stores - SS', 30),
  ('WIDGET-1', 'Finished Goods - SS', 20),
  ('GADGET-2', 'Stores - SS', 4);

INSERT INTO sales_orders (name, customer, docstatus, status) VALUES
  ('SO-0001', 'ACME', 0, 'Draft'),
  ('SO-0002', 'OTRO', 1, 'To Deliver and Bill'),
  ('SO-0003', 'ACME', 1, 'Completed'),
  ('SO-0004', 'ACME', 2, 'Cancelled');
INSERT INTO sales_order_items (parent, item_code, qty) VALUES
  ('SO-0001', 'WIDGET-1', 10),
  ('SO-0002', 'WIDGET-1', 7),
  ('SO-0003', 'WIDGET-1', 100),
  ('SO-0004', 'WIDGET-1', 100),
  ('SO-0001', 'GADGET-2', 9);

INSERT INTO quotations (name, party_name, docstatus, status) VALUES
  ('QTN-0001', 'ACME', 0, 'Draft'),
  ('QTN-0002', 'ACME', 1, 'Open'),
  ('QTN-0003', 'OTRO', 1, 'Lost');
INSERT INTO quotation_items (parent, item_code, qty) VALUES
  ('QTN-0001', 'WIDGET-1', 5),
  ('QTN-0002', 'WIDGET-1', 3),
  ('QTN-0003', 'WIDGET-1', 50);

INSERT INTO sales_invoices (name, customer, docstatus, posting_date, posting_time) VALUES
  ('SINV-0001', 'ACME', 1, '2026-01-10', '09:00:00'),
  ('SINV-0002', 'ACME', 1, '2026-03-02', '10:30:00'),
  ('SINV-0003', 'ACME', 0, '2026-05-01', '08:00:00'),
  ('SINV-0004', 'OTRO', 1, '2026-06-01', '08:00:00'),
  ('SINV-0005', 'BETA', 1, '2026-04-01', '15:00:00'),
  ('SINV-0006', 'BETA', 1, '2026-04-01', '09:00:00'),
  ('SINV-0007', 'GAMMA', 1, '2026-04-02', '11:00:00'),
  ('SINV-0008', 'GAMMA', 1, '2026-04-02', '11:00:00');
INSERT INTO sales_invoice_items (parent, item_code, qty, rate) VALUES
  ('SINV-0001', 'WIDGET-1', 2, 12.50),
  ('SINV-0002', 'WIDGET-1', 1, 13.75),
  ('SINV-0003', 'WIDGET-1', 1, 99.00),
  ('SINV-0004', 'WIDGET-1', 1, 11.00),
  ('SINV-0005', 'WIDGET-1', 1, 21.00),
  ('SINV-0006', 'WIDGET-1', 1, 20.00),
  ('SINV-0007', 'WIDGET-1', 1, 30.00),
  ('SINV-0008', 'WIDGET-1', 1, 31.00);
`

func setupDatabase(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()

	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("erp"),
		tcpostgres.WithUsername("erp"),
		tcpostgres.WithPassword("erp"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err, "levantar contenedor postgres")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("terminar contenedor: %v", err)
		}
	})

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	m, err := migrate.New(migrationsPath(), connStr)
	require.NoError(t, err)
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		t.Fatalf("aplicar migraciones: %v", err)
	}
	_, _ = m.Close()

	// El pool del servicio es de solo lectura: los datos se cargan con una conexión aparte.
	conn, err := pgx.Connect(ctx, connStr)
	require.NoError(t, err)
	_, err = conn.Exec(ctx, seedSQL)
	require.NoError(t, err, "cargar datos de prueba")
	require.NoError(t, conn.Close(ctx))

	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: connStr, MaxConns: 4})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func migrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return "file://" + filepath.Join(filepath.Dir(filename), "migrations")
}

func TestRepositories_Integration(t *testing.T) {
	ctx := context.Background()
	pool := setupDatabase(ctx, t)

	items := postgres.NewItemRepository(pool)
	bins := postgres.NewBinRepository(pool)
	demand := postgres.NewDemandRepository(pool)
	invoices := postgres.NewSalesInvoiceRepository(pool)

	t.Run("item existente y descripción nula", func(t *testing.T) {
		item, err := items.GetByCode(ctx, "GADGET-2")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "", item.Description)
		assert.Equal(t, "Gadget", item.DisplayDescription())

		missing, err := items.GetByCode(ctx, "DOES-NOT-EXIST")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("existencias por bodega", func(t *testing.T) {
		total, err := bins.SumActualQty(ctx, "WIDGET-1", nil)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(total), "obtenido %s", total)

		stores, err := bins.SumActualQty(ctx, "WIDGET-1", []string{"Stores - SS"})
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(30).Equal(stores), "obtenido %s", stores)

		none, err := bins.SumActualQty(ctx, "DOES-NOT-EXIST", nil)
		require.NoError(t, err)
		assert.True(t, none.IsZero())
	})

	t.Run("demanda en borrador", func(t *testing.T) {
		f := repository.DemandFilter{ItemCode: "WIDGET-1", DocStatus: entity.DocStatusDraft}
		so, err := demand.SumSalesOrderQty(ctx, f)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(10).Equal(so), "obtenido %s", so)

		quot, err := demand.SumQuotationQty(ctx, f)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(5).Equal(quot), "obtenido %s", quot)
	})

	t.Run("demanda validada no terminal", func(t *testing.T) {
		f := repository.DemandFilter{
			ItemCode:        "WIDGET-1",
			DocStatus:       entity.DocStatusSubmitted,
			ExcludeStatuses: entity.TerminalStatuses(),
		}
		so, err := demand.SumSalesOrderQty(ctx, f)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(7).Equal(so), "obtenido %s", so)

		quot, err := demand.SumQuotationQty(ctx, f)
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(3).Equal(quot), "obtenido %s", quot)

		f.Customer = "ACME"
		so, err = demand.SumSalesOrderQty(ctx, f)
		require.NoError(t, err)
		assert.True(t, so.IsZero(), "ACME no tiene pedidos validados abiertos, obtenido %s", so)
	})

	t.Run("última factura validada", func(t *testing.T) {
		line, err := invoices.GetLastSubmittedLine(ctx, "ACME", "WIDGET-1")
		require.NoError(t, err)
		require.NotNil(t, line)
		assert.Equal(t, "SINV-0002", line.InvoiceName)
		assert.True(t, decimal.RequireFromString("13.75").Equal(line.Rate), "obtenido %s", line.Rate)

		none, err := invoices.GetLastSubmittedLine(ctx, "ACME", "GADGET-2")
		require.NoError(t, err)
		assert.Nil(t, none)
	})

	t.Run("misma fecha: desempate por hora y por nombre", func(t *testing.T) {
		byTime, err := invoices.GetLastSubmittedLine(ctx, "BETA", "WIDGET-1")
		require.NoError(t, err)
		require.NotNil(t, byTime)
		assert.Equal(t, "SINV-0005", byTime.InvoiceName, "misma fecha: gana la hora más tardía")
		assert.True(t, decimal.NewFromInt(21).Equal(byTime.Rate), "obtenido %s", byTime.Rate)

		byName, err := invoices.GetLastSubmittedLine(ctx, "GAMMA", "WIDGET-1")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, "SINV-0008", byName.InvoiceName, "misma fecha y hora: gana el nombre mayor")
		assert.True(t, decimal.NewFromInt(31).Equal(byName.Rate), "obtenido %s", byName.Rate)
	})

	t.Run("consulta completa", func(t *testing.T) {
		uc := pricing.NewCustomerPricingUseCase(items, bins, demand, invoices,
			pricing.Options{Policy: domainpricing.DefaultPolicy()}, logger.Nop(), nil)

		resp, err := uc.GetCustomerPricing(ctx, dto.CustomerPricingRequest{Customer: "ACME", ItemCode: "WIDGET-1"})
		require.NoError(t, err)
		assert.True(t, resp.Found)
		assert.True(t, decimal.NewFromInt(35).Equal(resp.AvailableQty), "obtenido %s", resp.AvailableQty)
		require.NotNil(t, resp.LastPrice)
		assert.True(t, decimal.RequireFromString("13.75").Equal(*resp.LastPrice))

		resp, err = uc.GetCustomerPricing(ctx, dto.CustomerPricingRequest{Customer: "ACME", ItemCode: "DOES-NOT-EXIST"})
		require.NoError(t, err)
		assert.False(t, resp.Found)
		assert.Nil(t, resp.LastPrice)

		resp, err = uc.GetCustomerPricing(ctx, dto.CustomerPricingRequest{Customer: "", ItemCode: "WIDGET-1"})
		require.NoError(t, err)
		assert.True(t, resp.Found)
		assert.True(t, decimal.NewFromInt(35).Equal(resp.AvailableQty), "obtenido %s", resp.AvailableQty)
		assert.Nil(t, resp.LastPrice)
	})
}
