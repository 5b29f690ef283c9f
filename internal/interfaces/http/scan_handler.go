package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockscan-api/internal/application/dto"
	"github.com/invorya/stockscan-api/internal/application/scan"
	"github.com/invorya/stockscan-api/internal/domain"
)

// ScanHandler maneja el procesamiento de códigos escaneados (protegido).
type ScanHandler struct {
	uc *scan.UseCase
}

// NewScanHandler construye el handler de escaneo.
func NewScanHandler(uc *scan.UseCase) *ScanHandler {
	return &ScanHandler{uc: uc}
}

// ProcessScan godoc
// @Summary      Procesar un payload QR decodificado
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ScanRequest  true  "payload: código|YYYY-MM-DD|lote|bodega"
// @Success      200   {object}  dto.ScanResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/scan [post]
func (h *ScanHandler) ProcessScan(c *fiber.Ctx) error {
	var in dto.ScanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ProcessScan(c.Context(), in.Payload)
	if err != nil {
		return scanError(c, err)
	}
	return c.JSON(out)
}

// ManualEntry godoc
// @Summary      Resolver un código ingresado manualmente
// @Tags         scan
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ManualEntryRequest  true  "code"
// @Success      200   {object}  dto.ScanResultResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/scan/manual [post]
func (h *ScanHandler) ManualEntry(c *fiber.Ctx) error {
	var in dto.ManualEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.ProcessManualEntry(c.Context(), in.Code)
	if err != nil {
		return scanError(c, err)
	}
	return c.JSON(out)
}

// scanError mapea los errores del caso de uso a los tres casos que distingue
// el cliente: formato inválido, artículo no encontrado y fallo genérico.
func scanError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidPayload):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PAYLOAD", Message: "el código escaneado no tiene un formato válido"})
	case errors.Is(err, domain.ErrItemNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "ITEM_NOT_FOUND", Message: "el artículo no existe en el inventario"})
	case errors.Is(err, domain.ErrScanInProgress):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "SCAN_IN_PROGRESS", Message: "hay un escaneo en curso"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo procesar el escaneo"})
}
