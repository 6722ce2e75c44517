package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-ledger/internal/application/auth"
	"github.com/tu-usuario/stock-ledger/internal/application/ledger"
	"github.com/tu-usuario/stock-ledger/internal/application/usecase"
	"github.com/tu-usuario/stock-ledger/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC       *ledger.UseCase
	CSVUC          *ledger.CSVUseCase
	CategoryUC     *usecase.CategoryUseCase
	UserUC         *usecase.UserUseCase
	NotificationUC *usecase.NotificationUseCase
	ReportUC       *usecase.ReportUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", MetricsMiddleware())

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Items (protegido): lectura libre; escritura, borrado y export por permiso
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.LedgerUC, deps.CSVUC)
	items.Get("/", itemHandler.List)
	items.Get("/export", RequirePermission(entity.PermExportData), itemHandler.Export)
	items.Post("/import", RequirePermission(entity.PermWrite), itemHandler.Import)
	items.Get("/code/:code", itemHandler.GetByCode)
	items.Get("/:id", itemHandler.GetByID)
	items.Get("/:id/transactions", RequirePermission(entity.PermViewAudit), itemHandler.ListTransactions)
	items.Post("/", RequirePermission(entity.PermWrite), itemHandler.Create)
	items.Put("/:id", RequirePermission(entity.PermWrite), itemHandler.Update)
	items.Delete("/:id", RequirePermission(entity.PermDelete), itemHandler.Delete)

	// Categories (protegido): mutaciones requieren manage_categories
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Post("/", RequirePermission(entity.PermManageCategories), categoryHandler.Create)
	categories.Put("/:id", RequirePermission(entity.PermManageCategories), categoryHandler.Update)
	categories.Delete("/:id", RequirePermission(entity.PermManageCategories), categoryHandler.Delete)
	categories.Post("/:id/subcategories", RequirePermission(entity.PermManageCategories), categoryHandler.AddSubcategory)

	// Users (protegido, solo administradores)
	users := protected.Group("/users", RequireRole(entity.RoleCoreAdmin, entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequirePermission(entity.PermManageUsers), userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", RequirePermission(entity.PermManageUsers), userHandler.Update)
	users.Put("/:id/permissions", RequirePermission(entity.PermManagePermissions), userHandler.UpdatePermissions)
	users.Delete("/:id", RequirePermission(entity.PermManageUsers), userHandler.Delete)

	// Notifications (protegido)
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Put("/read", notificationHandler.MarkAllRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/weekly", reportHandler.WeeklyStats)
	reports.Get("/weekly/pdf", RequirePermission(entity.PermExportData), reportHandler.WeeklyStatsPDF)
}
