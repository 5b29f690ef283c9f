package scan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockscan-api/internal/domain"
)

func TestParsePayload_FormatoValido(t *testing.T) {
	p, err := ParsePayload("SKU-001|2024-03-15|L-77|BOD-NORTE")
	require.NoError(t, err)

	assert.Equal(t, "SKU-001", p.ItemCode)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), p.ManufactureDate)
	assert.Equal(t, "L-77", p.BatchNumber)
	assert.Equal(t, "BOD-NORTE", p.LocationTag)
}

func TestParsePayload_RecortaEspacios(t *testing.T) {
	p, err := ParsePayload("  SKU-001 | 2024-03-15 | L-77 | BOD-NORTE  ")
	require.NoError(t, err)
	assert.Equal(t, "SKU-001", p.ItemCode)
	assert.Equal(t, "BOD-NORTE", p.LocationTag)
}

func TestParsePayload_Invalidos(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"vacío", ""},
		{"solo espacios", "   "},
		{"faltan campos", "SKU-001|2024-03-15"},
		{"campos de más", "SKU-001|2024-03-15|L-77|BOD|extra"},
		{"código vacío", "|2024-03-15|L-77|BOD"},
		{"fecha inválida", "SKU-001|15/03/2024|L-77|BOD"},
		{"texto arbitrario", "https://ejemplo.com/no-es-un-item"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := ParsePayload(tc.raw)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, domain.ErrInvalidPayload)
		})
	}
}

func TestManualPayload(t *testing.T) {
	p, err := ManualPayload("  SKU-002 ")
	require.NoError(t, err)
	assert.Equal(t, "SKU-002", p.ItemCode)
	assert.Empty(t, p.BatchNumber)
	assert.Empty(t, p.LocationTag)

	_, err = ManualPayload("   ")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}
