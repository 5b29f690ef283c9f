package repository

import (
	"context"

	"github.com/invorya/stockscan-api/internal/domain/entity"
)

// WarehouseRepository define el puerto de consulta de bodegas.
type WarehouseRepository interface {
	// GetByCode devuelve la bodega con esa etiqueta, o (nil, nil) si no existe.
	GetByCode(ctx context.Context, code string) (*entity.Warehouse, error)
}
