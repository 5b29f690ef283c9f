package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockscan-api/internal/application/auth"
	"github.com/invorya/stockscan-api/internal/application/dto"
	"github.com/invorya/stockscan-api/internal/domain"
	"github.com/invorya/stockscan-api/internal/domain/entity"
	"github.com/invorya/stockscan-api/pkg/config"
	"github.com/invorya/stockscan-api/pkg/jwt"
)

// AuthHandler maneja registro, login y estado de sesión.
type AuthHandler struct {
	uc     *auth.SessionManager
	jwtCfg config.JWTConfig
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.SessionManager, jwtCfg config.JWTConfig) *AuthHandler {
	return &AuthHandler{uc: uc, jwtCfg: jwtCfg}
}

// Register godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, full_name, role, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	candidate := &entity.User{
		Username: in.Username,
		FullName: in.FullName,
		Role:     entity.Role(in.Role),
	}
	user, err := h.uc.Register(c.Context(), candidate, in.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "username, full_name y password (mínimo 6 caracteres) son requeridos"})
		case errors.Is(err, domain.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "role debe ser admin, manager u operator"})
		case errors.Is(err, domain.ErrUsernameAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "USERNAME_EXISTS", Message: "el username ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo registrar el usuario"})
	}
	return c.Status(fiber.StatusCreated).JSON(toUserResponse(user))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Login(c.Context(), in.Username, in.Password)
	if err != nil {
		// Respuesta uniforme: no distingue usuario inexistente de password
		// incorrecto ni de fallo interno.
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	}

	h.uc.SaveUserSession(user)

	token, err := jwt.Generate(h.jwtCfg.Secret, user.ID, user.Username, string(user.Role), h.jwtCfg.Issuer, h.jwtCfg.Expiration)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo generar el token"})
	}
	return c.JSON(dto.LoginResponse{Token: token, User: toUserResponse(user)})
}

// Me godoc
// @Summary      Usuario de la sesión actual
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.uc.GetCurrentUser(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "no se pudo resolver la sesión"})
	}
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "NO_SESSION", Message: "no hay sesión activa"})
	}
	return c.JSON(toUserResponse(user))
}

// Logout godoc
// @Summary      Cerrar sesión (limpia la sesión persistida)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.uc.Logout()
	return c.JSON(fiber.Map{"message": "sesión cerrada"})
}

// SessionStatus godoc
// @Summary      Validez de la sesión persistida
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.SessionStatusResponse
// @Router       /api/auth/session [get]
func (h *AuthHandler) SessionStatus(c *fiber.Ctx) error {
	return c.JSON(dto.SessionStatusResponse{Valid: h.uc.IsSessionValid()})
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		FullName:    u.FullName,
		Role:        string(u.Role),
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		LastLoginAt: u.LastLoginAt,
	}
}
