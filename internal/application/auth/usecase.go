package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/invorya/stockscan-api/internal/application/ports"
	"github.com/invorya/stockscan-api/internal/domain"
	"github.com/invorya/stockscan-api/internal/domain/entity"
	"github.com/invorya/stockscan-api/internal/domain/repository"
	"github.com/invorya/stockscan-api/pkg/logger"
)

// Claves de sesión en el almacén cifrado.
const (
	KeyCurrentUserID   = "current_user_id"
	KeyCurrentUserName = "current_user_name"
	KeyCurrentUserRole = "current_user_role"
	KeyCurrentUsername = "current_username"
	KeyLoginTimestamp  = "login_timestamp"
)

// sessionKeys en orden para la limpieza clave a clave del logout.
var sessionKeys = []string{
	KeyCurrentUserID,
	KeyCurrentUserName,
	KeyCurrentUserRole,
	KeyCurrentUsername,
	KeyLoginTimestamp,
}

const (
	// MinPasswordLength longitud mínima aceptada en registro.
	MinPasswordLength = 6
	// DefaultSessionMaxAge ventana de validez de la sesión persistida.
	DefaultSessionMaxAge = 30 * 24 * time.Hour
)

// dummyHash es un hash bcrypt fijo contra el que se compara cuando el username
// no existe, para que el tiempo de respuesta no distinga usuario inexistente
// de password incorrecto.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// SessionManager casos de uso de autenticación y sesión local: login,
// registro, persistencia de sesión, expiración y permisos por rol.
type SessionManager struct {
	users  repository.UserRepository
	store  ports.SecureStore
	maxAge time.Duration
	log    *logger.Logger
}

// NewSessionManager construye el manager. maxAge <= 0 usa la ventana por defecto (30 días).
func NewSessionManager(users repository.UserRepository, store ports.SecureStore, maxAge time.Duration, log *logger.Logger) *SessionManager {
	if maxAge <= 0 {
		maxAge = DefaultSessionMaxAge
	}
	if log == nil {
		log = logger.Nop()
	}
	return &SessionManager{users: users, store: store, maxAge: maxAge, log: log}
}

// Login verifica username/password contra el User Store. Cualquier fallo de
// autenticación (usuario inexistente, password incorrecto, error de
// infraestructura) devuelve domain.ErrUnauthorized: la causa queda solo en el
// log. Credenciales vacías se rechazan antes de tocar el store.
func (m *SessionManager) Login(ctx context.Context, username, password string) (*entity.User, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		m.log.Error().Err(err).Msg("login: consulta de usuario falló")
		return nil, domain.ErrUnauthorized
	}
	if user == nil {
		// Igualar el tiempo de respuesta con un compare ficticio.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if err := m.users.UpdateLastLogin(ctx, user.ID); err != nil {
		// El login ya fue verificado: un fallo al auditar no lo revierte.
		m.log.Warn().Err(err).Str("user_id", user.ID).Msg("login: no se pudo actualizar last_login")
	} else {
		user.LastLoginAt = time.Now().UTC()
	}
	return user, nil
}

// Register valida y crea un usuario nuevo. candidate trae username, nombre y
// rol; si no trae ID se genera uno. El password llega en texto y se hashea con
// bcrypt. Nada se persiste si alguna validación falla.
func (m *SessionManager) Register(ctx context.Context, candidate *entity.User, password string) (*entity.User, error) {
	if candidate == nil {
		return nil, domain.ErrInvalidInput
	}
	username := strings.TrimSpace(candidate.Username)
	fullName := strings.TrimSpace(candidate.FullName)
	if username == "" || fullName == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(password) < MinPasswordLength {
		return nil, domain.ErrInvalidInput
	}
	if !candidate.Role.Valid() {
		return nil, domain.ErrInvalidRole
	}

	existing, err := m.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("verificar username: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrUsernameAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashear password: %w", err)
	}

	id := candidate.ID
	if id == "" {
		id = uuid.New().String()
	}
	user := &entity.User{
		ID:           id,
		Username:     username,
		FullName:     fullName,
		PasswordHash: string(hash),
		Role:         candidate.Role,
		Active:       true,
		CreatedAt:    time.Now().UTC(),
		LastLoginAt:  time.Time{}, // sentinela: nunca ha iniciado sesión
	}
	if err := m.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("crear usuario: %w", err)
	}
	return user, nil
}

// GetCurrentUser resuelve el usuario de la sesión persistida. Siempre
// re-consulta el User Store (el rol o el estado activo pueden haber cambiado
// desde el último login). Sin sesión, usuario inexistente o inactivo devuelve
// (nil, nil).
func (m *SessionManager) GetCurrentUser(ctx context.Context) (*entity.User, error) {
	id, ok := m.store.Get(KeyCurrentUserID)
	if !ok || id == "" {
		return nil, nil
	}
	user, err := m.users.FindByID(ctx, id)
	if err != nil {
		m.log.Error().Err(err).Str("user_id", id).Msg("sesión: consulta de usuario falló")
		return nil, err
	}
	if user == nil || !user.Active {
		// Usuario eliminado o desactivado por un administrador: sesión
		// silenciosamente invalidada.
		return nil, nil
	}
	return user, nil
}

// SaveUserSession persiste los campos de sesión en el almacén cifrado. Un
// fallo de persistencia se registra pero no se propaga: el login sigue siendo
// válido, la sesión simplemente no sobrevive un reinicio.
func (m *SessionManager) SaveUserSession(user *entity.User) {
	if user == nil {
		return
	}
	fields := []struct{ key, value string }{
		{KeyCurrentUserID, user.ID},
		{KeyCurrentUserName, user.FullName},
		{KeyCurrentUserRole, string(user.Role)},
		{KeyCurrentUsername, user.Username},
		{KeyLoginTimestamp, time.Now().UTC().Format(time.RFC3339)},
	}
	for _, f := range fields {
		if err := m.store.Set(f.key, f.value); err != nil {
			m.log.Warn().Err(err).Str("key", f.key).Msg("sesión: no se pudo persistir")
			return
		}
	}
}

// HasPermission evalúa un permiso contra el rol del usuario actual.
// Sin sesión (o con cualquier fallo al resolverla) devuelve false.
func (m *SessionManager) HasPermission(ctx context.Context, perm entity.Permission) bool {
	user, err := m.GetCurrentUser(ctx)
	if err != nil || user == nil {
		return false
	}
	return user.Role.Can(perm)
}

// Logout limpia todas las claves de sesión. Si la limpieza total falla se
// remueve cada clave conocida individualmente, ignorando errores posteriores.
func (m *SessionManager) Logout() {
	if err := m.store.RemoveAll(); err != nil {
		m.log.Warn().Err(err).Msg("logout: limpieza total falló, removiendo clave a clave")
		for _, key := range sessionKeys {
			_ = m.store.Remove(key)
		}
	}
}

// IsSessionValid indica si la sesión persistida sigue dentro de la ventana de
// validez. Timestamp ausente o no parseable cuenta como sesión inválida.
func (m *SessionManager) IsSessionValid() bool {
	raw, ok := m.store.Get(KeyLoginTimestamp)
	if !ok {
		return false
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return false
	}
	return time.Since(ts) < m.maxAge
}
