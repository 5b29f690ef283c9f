package usecase

import (
	"context"
	"fmt"

	"github.com/invorya/stockscan-api/internal/domain"
	"github.com/invorya/stockscan-api/internal/domain/entity"
	"github.com/invorya/stockscan-api/internal/domain/repository"
)

// ItemUseCase consulta de artículos de inventario.
type ItemUseCase struct {
	items repository.ItemRepository
}

// NewItemUseCase construye el caso de uso de artículos.
func NewItemUseCase(items repository.ItemRepository) *ItemUseCase {
	return &ItemUseCase{items: items}
}

// GetByCode devuelve un artículo por código o domain.ErrItemNotFound.
func (uc *ItemUseCase) GetByCode(ctx context.Context, code string) (*entity.Item, error) {
	item, err := uc.items.GetByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("consultar artículo: %w", err)
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}
	return item, nil
}
