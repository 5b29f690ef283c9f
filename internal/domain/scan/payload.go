// Package scan contiene la estructura transitoria de un payload QR de
// inventario y su parsing. El payload nunca se persiste: se produce al
// decodificar un código escaneado o por entrada manual del operario.
package scan

import (
	"strings"
	"time"

	"github.com/invorya/stockscan-api/internal/domain"
)

// Formato del payload: cuatro campos separados por pipe.
//
//	<código>|<fecha fabricación YYYY-MM-DD>|<lote>|<etiqueta bodega>
const (
	fieldSeparator = "|"
	dateLayout     = "2006-01-02"
	payloadFields  = 4
)

// Payload es la estructura parseada de un código QR de inventario.
type Payload struct {
	ItemCode        string
	ManufactureDate time.Time
	BatchNumber     string
	LocationTag     string
}

// ParsePayload parsea el texto decodificado por la cámara. Devuelve
// domain.ErrInvalidPayload si el formato no es el esperado: cuatro campos,
// código no vacío y fecha válida.
func ParsePayload(raw string) (*Payload, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ErrInvalidPayload
	}
	parts := strings.Split(raw, fieldSeparator)
	if len(parts) != payloadFields {
		return nil, domain.ErrInvalidPayload
	}
	code := strings.TrimSpace(parts[0])
	if code == "" {
		return nil, domain.ErrInvalidPayload
	}
	mfgDate, err := time.Parse(dateLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, domain.ErrInvalidPayload
	}
	return &Payload{
		ItemCode:        code,
		ManufactureDate: mfgDate,
		BatchNumber:     strings.TrimSpace(parts[2]),
		LocationTag:     strings.TrimSpace(parts[3]),
	}, nil
}

// ManualPayload construye un payload desde entrada manual del operario
// (solo código; el resto de campos quedan vacíos).
func ManualPayload(code string) (*Payload, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrInvalidPayload
	}
	return &Payload{ItemCode: code}, nil
}
