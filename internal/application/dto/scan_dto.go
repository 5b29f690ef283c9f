package dto

import "time"

// ScanRequest entrada del handler de escaneo: el texto decodificado del QR.
type ScanRequest struct {
	Payload string `json:"payload" validate:"required"`
}

// ManualEntryRequest entrada manual del operario cuando la cámara no decodifica.
type ManualEntryRequest struct {
	Code string `json:"code" validate:"required"`
}

// ScanItemDTO artículo resuelto a partir de un escaneo.
type ScanItemDTO struct {
	ID              string    `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           string    `json:"price"`
	BatchNumber     string    `json:"batch_number,omitempty"`
	ManufactureDate time.Time `json:"manufacture_date,omitzero"`
	WarehouseCode   string    `json:"warehouse_code,omitempty"`
}

// ScanResultResponse resultado de procesar un payload escaneado.
type ScanResultResponse struct {
	Item          ScanItemDTO `json:"item"`
	BatchNumber   string      `json:"scanned_batch,omitempty"`
	WarehouseCode string      `json:"scanned_warehouse,omitempty"`
	WarehouseName string      `json:"warehouse_name,omitempty"`
}
