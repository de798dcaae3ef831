package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/checkout"
	"github.com/jhoicas/estoque-api/internal/application/export"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	EmployeeUC  *usecase.EmployeeUseCase
	ClientUC    *usecase.ClientUseCase
	InventoryUC *inventory.UseCase
	CheckoutUC  *checkout.UseCase
	DashboardUC *appanalytics.DashboardUseCase
	ExportUC    *export.UseCase
	JWTSecret   string
	// SessionTTL vida de la cookie de sesión (igual a la expiración del JWT).
	SessionTTL time.Duration
}

// Router registra las rutas: la API JSON bajo /api y las rutas de formulario del painel en la raíz.
func Router(app *fiber.App, deps RouterDeps) {
	requireAuth := AuthMiddleware(deps.JWTSecret)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.SessionTTL)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authHandler.Logout)
	authGroup.Post("/recover", authHandler.Recover)
	authGroup.Post("/password", authHandler.UpdatePassword)

	// Empresa (protegido)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Get("/company", requireAuth, companyHandler.Get)
	api.Put("/company", requireAuth, companyHandler.Upsert)
	app.Get("/dados_empresa", requireAuth, companyHandler.Page)

	// Estoque (protegido)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := api.Group("/inventory", requireAuth)
	inv.Get("/", inventoryHandler.List)
	inv.Post("/", inventoryHandler.Create)
	inv.Get("/:id", inventoryHandler.Get)
	inv.Put("/:id", inventoryHandler.Update)

	// Funcionários (protegido)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees := api.Group("/employees", requireAuth)
	employees.Get("/", employeeHandler.List)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/:id", employeeHandler.Get)
	employees.Put("/:id", employeeHandler.Update)

	// Clientes (protegido)
	clientHandler := NewClientHandler(deps.ClientUC)
	clients := api.Group("/clients", requireAuth)
	clients.Get("/", clientHandler.Panel)
	clients.Post("/", clientHandler.Create)
	clients.Get("/:id", clientHandler.Get)
	clients.Put("/:id", clientHandler.Update)

	// Painel: buscadores, carrito, métricas y exportación (protegido)
	salesHandler := NewSalesHandler(deps.CheckoutUC, deps.CompanyUC)
	metricsHandler := NewMetricsHandler(deps.DashboardUC)
	exportHandler := NewExportHandler(deps.ExportUC)

	app.Get("/buscar_funcionarios", requireAuth, employeeHandler.Search)
	app.Get("/buscar_clientes", requireAuth, clientHandler.Search)
	app.Get("/buscar_produtos", requireAuth, inventoryHandler.Search)
	app.Get("/buscar_detalhes_produto", requireAuth, inventoryHandler.Details)
	app.Get("/buscar_produto_route", requireAuth, inventoryHandler.ByCode)

	app.Get("/painel_compras", requireAuth, salesHandler.Panel)
	app.Post("/revisar_compra", requireAuth, salesHandler.Review)
	app.Post("/finalizar_compra", requireAuth, salesHandler.Checkout)

	app.Get("/dados_dashboard_metricas", requireAuth, metricsHandler.Sales)
	app.Get("/dados_metricas_funcionarios", requireAuth, metricsHandler.Employees)
	app.Get("/dados_metricas_clientes", requireAuth, metricsHandler.Clients)

	app.Get("/exportar_vendas_nfe", requireAuth, exportHandler.RecentSales)
	app.Post("/gerar_arquivo_nfe", requireAuth, exportHandler.Generate)
}
