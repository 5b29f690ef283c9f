package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invorya/stockscan-api/internal/domain/entity"
	"github.com/invorya/stockscan-api/internal/domain/repository"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL.
type ItemRepo struct {
	pool *pgxpool.Pool
}

// NewItemRepository construye el adaptador de consulta de artículos.
func NewItemRepository(pool *pgxpool.Pool) *ItemRepo {
	return &ItemRepo{pool: pool}
}

// GetByCode obtiene un artículo por su código QR.
func (r *ItemRepo) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	query := `
		SELECT id, code, name, description, price, batch_number, manufacture_date, warehouse_code, created_at, updated_at
		FROM items WHERE code = $1`
	var it entity.Item
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&it.ID, &it.Code, &it.Name, &it.Description, &it.Price,
		&it.BatchNumber, &it.ManufactureDate, &it.WarehouseCode,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item by code: %w", err)
	}
	return &it, nil
}
