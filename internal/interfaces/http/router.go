package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/analytics"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	HRUC         *usecase.HRUseCase
	SalesUC      *usecase.SalesUseCase
	InventoryUC  *usecase.InventoryUseCase
	PurchasingUC *usecase.PurchasingUseCase
	FinanceUC    *usecase.FinanceUseCase
	DashboardUC  *analytics.DashboardUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// RRHH
	hr := api.Group("/hr")
	hrHandler := NewHRHandler(deps.HRUC)
	hr.Get("/employees", hrHandler.ListEmployees)
	hr.Get("/employees/:id", hrHandler.GetEmployee)
	hr.Get("/attendance", hrHandler.ListAttendance)
	hr.Post("/attendance/clock-in", hrHandler.ClockIn)
	hr.Post("/attendance/clock-out", hrHandler.ClockOut)
	hr.Get("/payroll", hrHandler.ListPayroll)
	hr.Get("/reviews", hrHandler.ListReviews)
	hr.Get("/vacations", hrHandler.ListVacations)
	hr.Post("/vacations", hrHandler.CreateVacation)
	hr.Put("/vacations/:id", hrHandler.UpdateVacation)

	// Ventas: las rutas estáticas de clientes van antes que /:id
	sales := api.Group("/sales")
	salesHandler := NewSalesHandler(deps.SalesUC)
	sales.Get("/customers", salesHandler.ListCustomers)
	sales.Post("/customers", salesHandler.CreateCustomer)
	sales.Put("/customers/:id", salesHandler.UpdateCustomer)
	sales.Get("/", salesHandler.ListSales)
	sales.Post("/", salesHandler.CreateSale)
	sales.Put("/:id", salesHandler.UpdateSale)

	// Inventario
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/products", inventoryHandler.ListProducts)
	inv.Post("/products", inventoryHandler.CreateProduct)
	inv.Put("/products/:id", inventoryHandler.UpdateProduct)
	inv.Get("/suppliers", inventoryHandler.ListSuppliers)
	inv.Post("/suppliers", inventoryHandler.CreateSupplier)
	inv.Put("/suppliers/:id", inventoryHandler.UpdateSupplier)
	inv.Get("/movements", inventoryHandler.ListMovements)
	inv.Post("/movements", inventoryHandler.CreateMovement)

	// Compras
	purchases := api.Group("/purchases")
	purchasingHandler := NewPurchasingHandler(deps.PurchasingUC)
	purchases.Get("/", purchasingHandler.List)
	purchases.Post("/", purchasingHandler.Create)
	purchases.Put("/:id", purchasingHandler.Update)

	// Finanzas
	finance := api.Group("/finance")
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	finance.Get("/transactions", financeHandler.ListTransactions)
	finance.Post("/transactions", financeHandler.CreateTransaction)
	finance.Put("/transactions/:id", financeHandler.UpdateTransaction)
	finance.Get("/budgets", financeHandler.ListBudgets)

	// Tablero
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/financial-metrics", dashboardHandler.FinancialMetrics)
	dashboard.Get("/sales-metrics", dashboardHandler.SalesMetrics)
}
