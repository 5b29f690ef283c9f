package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockscan-api/internal/application/dto"
	"github.com/invorya/stockscan-api/internal/application/usecase"
	"github.com/invorya/stockscan-api/internal/domain"
	"github.com/invorya/stockscan-api/internal/domain/entity"
)

// ItemHandler consulta de artículos por código (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler de artículos.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// GetByCode godoc
// @Summary      Consultar un artículo por código
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "código del artículo"
// @Success      200   {object}  dto.ScanItemDTO
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{code} [get]
func (h *ItemHandler) GetByCode(c *fiber.Ctx) error {
	item, err := h.uc.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		if errors.Is(err, domain.ErrItemNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "el artículo no existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo consultar el artículo"})
	}
	return c.JSON(toItemDTO(item))
}

func toItemDTO(item *entity.Item) dto.ScanItemDTO {
	return dto.ScanItemDTO{
		ID:              item.ID,
		Code:            item.Code,
		Name:            item.Name,
		Description:     item.Description,
		Price:           item.Price.String(),
		BatchNumber:     item.BatchNumber,
		ManufactureDate: item.ManufactureDate,
		WarehouseCode:   item.WarehouseCode,
	}
}
