package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
)

// RouterDeps dependencias para el router del stub.
type RouterDeps struct {
	Store *memory.Store
	JWT   JWTConfig
}

// Router registra las rutas bajo /api/v1, el mismo contrato que consume el
// gateway del cliente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Auth: registro y login públicos; el perfil requiere token
	authHandler := NewAuthHandler(deps.Store, deps.JWT)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWT.Secret), authHandler.Me)

	// Todo lo demás requiere Bearer Token
	protected := api.Group("/", AuthMiddleware(deps.JWT.Secret))

	// Admin (requiere is_admin en el token)
	admin := protected.Group("/admin", RequireAdmin())
	adminHandler := NewAdminHandler(deps.Store)
	admin.Get("/cafes", adminHandler.ListCafes)
	admin.Post("/cafes", adminHandler.CreateCafe)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Post("/users", adminHandler.CreateUser)
	admin.Get("/cafe/:cafeID/users", adminHandler.CafeUsers)
	admin.Post("/assign-cafe", adminHandler.AssignCafe)
	admin.Delete("/assign-cafe", adminHandler.UnassignCafe)

	// Cafés del usuario
	cafeHandler := NewCafeHandler(deps.Store)
	protected.Get("/cafes", cafeHandler.List)
	protected.Post("/cafes", cafeHandler.Create)

	// Recursos scoped a un café: además del token, el usuario debe estar
	// asignado al café de la ruta
	cafe := protected.Group("/cafes/:cafeID", CafeAccess(deps.Store))

	stockHandler := NewStockHandler(deps.Store)
	stock := cafe.Group("/stock")
	stock.Get("/", stockHandler.List)
	stock.Post("/", stockHandler.Create)
	// "history" va antes que ":itemID" para que no lo capture el parámetro
	stock.Get("/history", stockHandler.History)
	stock.Put("/:itemID", stockHandler.Update)
	stock.Put("/:itemID/cost", stockHandler.UpdateCost)
	stock.Post("/:itemID/restock", stockHandler.Restock)
	stock.Post("/:itemID/waste", stockHandler.Waste)
	stock.Get("/:itemID/history", stockHandler.ItemHistory)
	stock.Delete("/:itemID", stockHandler.Delete)

	menuHandler := NewMenuHandler(deps.Store)
	menu := cafe.Group("/menu")
	menu.Get("/", menuHandler.List)
	menu.Post("/", menuHandler.Create)
	menu.Put("/:itemID", menuHandler.Update)
	menu.Put("/:itemID/price", menuHandler.UpdatePrice)
	menu.Delete("/:itemID", menuHandler.Delete)
	menu.Get("/:itemID/recipe", menuHandler.GetRecipe)
	menu.Put("/:itemID/recipe", menuHandler.ReplaceRecipe)
	menu.Post("/:itemID/recipe", menuHandler.AddIngredient)
	menu.Delete("/:itemID/recipe/:lineID", menuHandler.DeleteIngredient)

	categories := cafe.Group("/categories")
	categories.Get("/", menuHandler.ListCategories)
	categories.Post("/", menuHandler.CreateCategory)
	categories.Put("/:categoryID", menuHandler.UpdateCategory)
	categories.Delete("/:categoryID", menuHandler.DeleteCategory)

	orderHandler := NewOrderHandler(deps.Store)
	orders := cafe.Group("/orders")
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Delete("/:orderID", orderHandler.Delete)
	cafe.Post("/waste/menu", orderHandler.CreateMenuWaste)
	cafe.Get("/waste/menu", orderHandler.MenuWasteHistory)

	staffHandler := NewStaffHandler(deps.Store)
	staff := cafe.Group("/staff")
	staff.Get("/", staffHandler.List)
	staff.Post("/", staffHandler.Create)
	staff.Put("/:staffID", staffHandler.Update)
	staff.Put("/:staffID/salary", staffHandler.UpdateSalary)
	staff.Get("/:staffID/salary-history", staffHandler.SalaryHistory)
	staff.Delete("/:staffID", staffHandler.Delete)

	expenses := cafe.Group("/expenses")
	expenses.Get("/monthly", staffHandler.ListMonthly)
	expenses.Post("/monthly", staffHandler.CreateMonthly)
	expenses.Put("/monthly/:expenseID", staffHandler.UpdateMonthly)
	expenses.Delete("/monthly/:expenseID", staffHandler.DeleteMonthly)
	expenses.Get("/daily", staffHandler.ListDaily)
	expenses.Post("/daily", staffHandler.CreateDaily)
	expenses.Put("/daily/:expenseID", staffHandler.UpdateDaily)
	expenses.Delete("/daily/:expenseID", staffHandler.DeleteDaily)

	reportHandler := NewReportHandler(deps.Store)
	reports := cafe.Group("/reports")
	reports.Get("/daily", reportHandler.Daily)
	reports.Get("/monthly", reportHandler.Monthly)

	// Upload: autenticado pero no scoped a un café
	uploadHandler := NewUploadHandler(deps.Store)
	protected.Post("/upload/", uploadHandler.Upload)
	protected.Delete("/upload/", uploadHandler.Delete)
	app.Get("/static/:name", uploadHandler.Serve)
}
