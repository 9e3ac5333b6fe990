package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jhoicas/customer-pricing-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.BinRepository = (*BinRepo)(nil)

// BinRepo implementación de BinRepository sobre la tabla bins (existencias por bodega).
type BinRepo struct {
	q Querier
}

// NewBinRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBinRepository(q Querier) *BinRepo {
	return &BinRepo{q: q}
}

// SumActualQty suma actual_qty del artículo; con warehouses se limita a esas bodegas.
func (r *BinRepo) SumActualQty(ctx context.Context, itemCode string, warehouses []string) (decimal.Decimal, error) {
	query, args, err := binSumQuery(itemCode, warehouses).ToSql()
	if err != nil {
		return decimal.Zero, fmt.Errorf("build bin query: %w", err)
	}
	var total decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("sum bins: %w", err)
	}
	return total, nil
}

func binSumQuery(itemCode string, warehouses []string) squirrel.SelectBuilder {
	q := psql.Select("COALESCE(SUM(actual_qty), 0)").
		From("bins").
		Where(squirrel.Eq{"item_code": itemCode})
	if len(warehouses) > 0 {
		q = q.Where(squirrel.Eq{"warehouse": warehouses})
	}
	return q
}
