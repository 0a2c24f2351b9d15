package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Deposito-api/internal/application/access"
	"github.com/jhoicas/Deposito-api/internal/application/auth"
	"github.com/jhoicas/Deposito-api/internal/application/inventory"
	"github.com/jhoicas/Deposito-api/internal/application/report"
	"github.com/jhoicas/Deposito-api/internal/application/usecase"
	"github.com/jhoicas/Deposito-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Guard          *access.Guard
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	WarehouseUC    *usecase.WarehouseUseCase
	RoleUC         *usecase.RoleUseCase
	UserUC         *usecase.UserUseCase
	AdminUC        *usecase.AdminUseCase
	AIUC           *usecase.AIUseCase
	StockUC        *inventory.StockUseCase
	TransferUC     *inventory.TransferUseCase
	ImportUC       *inventory.ImportUseCase
	ReportUC       *report.UseCase
	JWTSecret      string
	ImportMaxBytes int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	perm := func(m entity.Module, a entity.Action) fiber.Handler {
		return RequirePermission(deps.Guard, m, a)
	}

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Guard)
	authGroup := api.Group("/auth")
	authGroup.Get("/users", authHandler.Users)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)
	protected.Get("/permissions/check", authHandler.CheckPermission)

	reportHandler := NewReportHandler(deps.ReportUC)

	// Products
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Get("/", perm(entity.ModuleProducts, entity.ActionRead), productHandler.List)
	products.Post("/", perm(entity.ModuleProducts, entity.ActionCreate), productHandler.Create)
	products.Get("/:id", perm(entity.ModuleProducts, entity.ActionRead), productHandler.GetByID)
	products.Put("/:id", perm(entity.ModuleProducts, entity.ActionUpdate), productHandler.Update)
	products.Delete("/:id", perm(entity.ModuleProducts, entity.ActionDelete), productHandler.Delete)

	// Warehouses
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses := protected.Group("/warehouses")
	warehouses.Get("/", perm(entity.ModuleWarehouses, entity.ActionRead), warehouseHandler.List)
	warehouses.Post("/", perm(entity.ModuleWarehouses, entity.ActionCreate), warehouseHandler.Create)
	warehouses.Get("/:id", perm(entity.ModuleWarehouses, entity.ActionRead), warehouseHandler.GetByID)
	warehouses.Put("/:id", perm(entity.ModuleWarehouses, entity.ActionUpdate), warehouseHandler.Update)
	warehouses.Delete("/:id", perm(entity.ModuleWarehouses, entity.ActionDelete), warehouseHandler.Delete)
	warehouses.Get("/:id/report.pdf", perm(entity.ModuleInventory, entity.ActionExport), reportHandler.WarehousePDF)

	// Inventory (ledger)
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.TransferUC)
	inv := protected.Group("/inventory")
	inv.Get("/", perm(entity.ModuleInventory, entity.ActionRead), inventoryHandler.ListStock)
	inv.Put("/stock", perm(entity.ModuleInventory, entity.ActionUpdate), inventoryHandler.SetStock)
	inv.Get("/:product_id/:warehouse_id", perm(entity.ModuleInventory, entity.ActionRead), inventoryHandler.GetStock)

	// Movements
	movements := protected.Group("/movements")
	movements.Post("/", perm(entity.ModuleMovements, entity.ActionCreate), inventoryHandler.CreateTransfer)
	movements.Get("/", perm(entity.ModuleMovementHistory, entity.ActionRead), inventoryHandler.ListTransfers)
	movements.Get("/:id", perm(entity.ModuleMovementHistory, entity.ActionRead), inventoryHandler.GetTransfer)
	movements.Delete("/:id", perm(entity.ModuleMovementHistory, entity.ActionDelete), inventoryHandler.DeleteTransfer)
	movements.Get("/:id/receipt.pdf", perm(entity.ModuleMovementHistory, entity.ActionExport), reportHandler.TransferPDF)

	// Import
	importHandler := NewImportHandler(deps.ImportUC, deps.ImportMaxBytes)
	imp := protected.Group("/import", perm(entity.ModuleImport, entity.ActionCreate))
	imp.Post("/", importHandler.Import)
	imp.Post("/preview", importHandler.Preview)

	// Reports
	reports := protected.Group("/reports", perm(entity.ModuleReports, entity.ActionExport))
	reports.Get("/products.csv", reportHandler.ProductsCSV)
	reports.Get("/inventory.csv", reportHandler.InventoryCSV)
	reports.Get("/inventory.xlsx", reportHandler.InventoryXLSX)

	// Admin
	adminHandler := NewAdminHandler(deps.RoleUC, deps.UserUC, deps.AdminUC)
	admin := protected.Group("/admin")
	admin.Get("/roles", perm(entity.ModuleAdmin, entity.ActionRead), adminHandler.ListRoles)
	admin.Post("/roles", perm(entity.ModuleAdmin, entity.ActionCreate), adminHandler.CreateRole)
	admin.Put("/roles/:id", perm(entity.ModuleAdmin, entity.ActionUpdate), adminHandler.UpdateRole)
	admin.Delete("/roles/:id", perm(entity.ModuleAdmin, entity.ActionDelete), adminHandler.DeleteRole)
	admin.Get("/users", perm(entity.ModuleAdmin, entity.ActionRead), adminHandler.ListUsers)
	admin.Post("/users", perm(entity.ModuleAdmin, entity.ActionCreate), adminHandler.CreateUser)
	admin.Put("/users/:id", perm(entity.ModuleAdmin, entity.ActionUpdate), adminHandler.UpdateUser)
	admin.Delete("/users/:id", perm(entity.ModuleAdmin, entity.ActionDelete), adminHandler.DeleteUser)
	admin.Post("/reset", perm(entity.ModuleReset, entity.ActionDelete), adminHandler.Reset)

	// AI (el caso de uso exige products/create o products/update)
	if deps.AIUC != nil {
		aiHandler := NewAIHandler(deps.AIUC)
		protected.Post("/ai/product-description", aiHandler.GenerateDescription)
	}
}
