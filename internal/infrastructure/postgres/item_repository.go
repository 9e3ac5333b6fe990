package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jhoicas/customer-pricing-api/internal/domain/entity"
	"github.com/jhoicas/customer-pricing-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre la tabla items del ERP.
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

// GetByCode obtiene un artículo por código. Devuelve (nil, nil) si no existe.
func (r *ItemRepo) GetByCode(ctx context.Context, itemCode string) (*entity.Item, error) {
	query, args, err := psql.
		Select(
			"item_code",
			"COALESCE(item_name, '') AS item_name",
			"COALESCE(description, '') AS description",
		).
		From("items").
		Where(squirrel.Eq{"item_code": itemCode}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item query: %w", err)
	}

	var item entity.Item
	if err := pgxscan.Get(ctx, r.q, &item, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return &item, nil
}
