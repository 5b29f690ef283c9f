// Package scan implementa el caso de uso del escaneo de códigos QR de
// inventario: parsear el payload decodificado, resolver el artículo y
// enriquecer con la bodega de la etiqueta de ubicación.
package scan

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/invorya/stockscan-api/internal/application/dto"
	"github.com/invorya/stockscan-api/internal/domain"
	"github.com/invorya/stockscan-api/internal/domain/entity"
	"github.com/invorya/stockscan-api/internal/domain/repository"
	domscan "github.com/invorya/stockscan-api/internal/domain/scan"
	"github.com/invorya/stockscan-api/pkg/logger"
)

// UseCase procesa payloads escaneados o ingresados manualmente.
//
// inFlight es un candado de reentrada, no un mutex: un segundo escaneo que
// llegue mientras otro se resuelve retorna domain.ErrScanInProgress de
// inmediato, sin bloquear. Protege contra callbacks duplicados del lector.
type UseCase struct {
	items      repository.ItemRepository
	warehouses repository.WarehouseRepository
	inFlight   atomic.Bool
	log        *logger.Logger
}

// NewUseCase construye el caso de uso de escaneo.
func NewUseCase(items repository.ItemRepository, warehouses repository.WarehouseRepository, log *logger.Logger) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &UseCase{items: items, warehouses: warehouses, log: log}
}

// ProcessScan parsea el texto decodificado y resuelve el artículo.
// Errores posibles: ErrScanInProgress, ErrInvalidPayload, ErrItemNotFound o
// un error de infraestructura envuelto.
func (uc *UseCase) ProcessScan(ctx context.Context, raw string) (*dto.ScanResultResponse, error) {
	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrScanInProgress
	}
	defer uc.inFlight.Store(false)

	payload, err := domscan.ParsePayload(raw)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, payload)
}

// ProcessManualEntry resuelve un código ingresado a mano por el operario.
// Comparte el candado y la resolución con ProcessScan.
func (uc *UseCase) ProcessManualEntry(ctx context.Context, code string) (*dto.ScanResultResponse, error) {
	if !uc.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrScanInProgress
	}
	defer uc.inFlight.Store(false)

	payload, err := domscan.ManualPayload(code)
	if err != nil {
		return nil, err
	}
	return uc.resolve(ctx, payload)
}

func (uc *UseCase) resolve(ctx context.Context, payload *domscan.Payload) (*dto.ScanResultResponse, error) {
	item, err := uc.items.GetByCode(ctx, payload.ItemCode)
	if err != nil {
		return nil, fmt.Errorf("buscar artículo %q: %w", payload.ItemCode, err)
	}
	if item == nil {
		return nil, domain.ErrItemNotFound
	}

	out := &dto.ScanResultResponse{
		Item:          toScanItem(item),
		BatchNumber:   payload.BatchNumber,
		WarehouseCode: payload.LocationTag,
	}

	// La etiqueta de bodega del payload es informativa: si no resuelve a una
	// bodega conocida el escaneo igual es válido.
	if payload.LocationTag != "" {
		wh, err := uc.warehouses.GetByCode(ctx, payload.LocationTag)
		if err != nil {
			uc.log.Warn().Err(err).Str("location", payload.LocationTag).Msg("escaneo: consulta de bodega falló")
		} else if wh != nil {
			out.WarehouseName = wh.Name
		}
	}
	return out, nil
}

func toScanItem(item *entity.Item) dto.ScanItemDTO {
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
