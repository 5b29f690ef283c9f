package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El handler HTTP decide cómo exponerlos; los fallos de login siempre
// colapsan en una respuesta uniforme para no filtrar qué usernames existen.
var (
	ErrNotFound              = errors.New("recurso no encontrado")
	ErrUserNotFound          = errors.New("usuario no encontrado")
	ErrItemNotFound          = errors.New("artículo no encontrado")
	ErrUsernameAlreadyExists = errors.New("el username ya está registrado")
	ErrInvalidInput          = errors.New("entrada inválida")
	ErrInvalidRole           = errors.New("rol inválido")
	ErrUnauthorized          = errors.New("no autorizado")
	ErrForbidden             = errors.New("acceso denegado")
	ErrInvalidPayload        = errors.New("payload de escaneo inválido")
	ErrScanInProgress        = errors.New("escaneo en curso")
	ErrSessionExpired        = errors.New("sesión expirada")
)
