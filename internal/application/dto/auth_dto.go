package dto

import "time"

// RegisterRequest entrada para registro de un usuario nuevo.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=1,max=100"`
	FullName string `json:"full_name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"required,oneof=admin manager operator"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest entrada para login (username + password).
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserResponse salida de un usuario (sin password hash).
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	FullName    string    `json:"full_name"`
	Role        string    `json:"role"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_login_at,omitzero"`
}

// LoginResponse salida con token JWT y el usuario autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// SessionStatusResponse estado de la sesión local persistida.
type SessionStatusResponse struct {
	Valid bool `json:"valid"`
}
