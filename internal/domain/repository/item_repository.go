package repository

import (
	"context"

	"github.com/invorya/stockscan-api/internal/domain/entity"
)

// ItemRepository define el puerto de consulta de artículos de inventario.
type ItemRepository interface {
	// GetByCode devuelve el artículo con ese código, o (nil, nil) si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Item, error)
}
