package entity

import "time"

// User representa un usuario del sistema (operarios de bodega y administración).
// LastLoginAt en cero significa que nunca ha iniciado sesión.
type User struct {
	ID           string
	Username     string // único, sensible a mayúsculas
	FullName     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         Role
	Active       bool
	CreatedAt    time.Time
	LastLoginAt  time.Time
}
