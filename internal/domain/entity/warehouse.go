package entity

import "time"

// Warehouse representa una bodega física; Code es la etiqueta de ubicación
// que viaja dentro del payload QR.
type Warehouse struct {
	ID        string
	Code      string
	Name      string
	CreatedAt time.Time
}
