package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo de inventario identificado por su código QR.
type Item struct {
	ID              string
	Code            string // código único del artículo (contenido del QR)
	Name            string
	Description     string
	Price           decimal.Decimal
	BatchNumber     string
	ManufactureDate time.Time
	WarehouseCode   string // etiqueta de ubicación de bodega
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
