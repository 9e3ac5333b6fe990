package repository

import (
	"context"

	"github.com/jhoicas/customer-pricing-api/internal/domain/entity"
)

// ItemRepository define el puerto de lectura del maestro de artículos (DIP).
type ItemRepository interface {
	// GetByCode devuelve (nil, nil) si el artículo no existe.
	GetByCode(ctx context.Context, itemCode string) (*entity.Item, error)
}
