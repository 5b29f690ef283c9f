package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockscan-api/internal/application/auth"
	"github.com/invorya/stockscan-api/internal/application/scan"
	"github.com/invorya/stockscan-api/internal/application/usecase"
	"github.com/invorya/stockscan-api/internal/domain/entity"
	"github.com/invorya/stockscan-api/pkg/config"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC *auth.SessionManager
	ScanUC *scan.UseCase
	UserUC *usecase.UserUseCase
	ItemUC *usecase.ItemUseCase
	JWT    config.JWTConfig
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.JWT)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	// Sesión (protegido)
	protected.Get("/auth/me", authHandler.Me)
	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/session", authHandler.SessionStatus)

	// Escaneo (protegido, requiere scan_items)
	scanGroup := protected.Group("/scan", RequirePermission(entity.PermissionScanItems))
	scanHandler := NewScanHandler(deps.ScanUC)
	scanGroup.Post("/", scanHandler.ProcessScan)
	scanGroup.Post("/manual", scanHandler.ManualEntry)

	// Artículos (protegido, requiere view_inventory)
	items := protected.Group("/items", RequirePermission(entity.PermissionViewInventory))
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Get("/:code", itemHandler.GetByCode)

	// Usuarios (protegido, requiere manage_users)
	users := protected.Group("/users", RequirePermission(entity.PermissionManageUsers))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
}
