package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jhoicas/estoque-api/docs"
	appanalytics "github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/checkout"
	"github.com/jhoicas/estoque-api/internal/application/export"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-api/internal/infrastructure/store"
	httpRouter "github.com/jhoicas/estoque-api/internal/interfaces/http"
)

// swaggerFile especificación servida en /docs cuando existe.
const swaggerFile = "./docs/swagger.json"

func newServeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Inicia el servidor HTTP (comando por defecto)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

// swaggerSpecPath usa ./docs/swagger.json si existe; si no (binario fuera del repo)
// vuelca la especificación embebida a un archivo temporal.
func swaggerSpecPath() (string, error) {
	if _, err := os.Stat(swaggerFile); err == nil {
		return swaggerFile, nil
	}
	f, err := os.CreateTemp("", "estoque-swagger-*.json")
	if err != nil {
		return "", fmt.Errorf("swagger: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(docs.SwaggerInfo.ReadDoc()); err != nil {
		return "", fmt.Errorf("swagger: %w", err)
	}
	return f.Name(), nil
}

func runServe(ctx context.Context, opts *rootOptions) error {
	cfg, log, err := bootstrap(opts)
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		// Fuera de production: secreto efímero, las sesiones no sobreviven a un reinicio.
		cfg.JWT.Secret = uuid.NewString()
		log.Warn().Msg("JWT_SECRET vacío, usando un secreto aleatorio por proceso")
	}

	db, err := store.Open(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("abrir base de datos: %w", err)
	}
	defer db.Close()

	conn := db.Conn()
	userRepo := store.NewUserRepository(conn)
	companyRepo := store.NewCompanyRepository(conn)
	employeeRepo := store.NewEmployeeRepository(conn)
	clientRepo := store.NewClientRepository(conn)
	inventoryRepo := store.NewInventoryRepository(conn)
	saleRepo := store.NewSaleRepository(conn)
	metricsRepo := store.NewMetricsRepository(conn)
	txRunner := store.NewTxRunner(db)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(userRepo, companyRepo, txRunner)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	inventoryUC := inventory.NewUseCase(inventoryRepo, txRunner)
	checkoutUC := checkout.NewUseCase(txRunner, log)
	dashboardUC := appanalytics.NewDashboardUseCase(metricsRepo)
	exportUC := export.NewUseCase(companyRepo, saleRepo, infrapdf.NewMarotoSalesReport())

	app := httpRouter.NewApp(cfg.App.Name, log)

	// Swagger UI en local: http://localhost:<port>/docs
	specPath, err := swaggerSpecPath()
	if err != nil {
		log.Warn().Err(err).Msg("swagger deshabilitado")
	} else {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: specPath,
			Path:     "docs",
			Title:    "Estoque API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		EmployeeUC:  employeeUC,
		ClientUC:    clientUC,
		InventoryUC: inventoryUC,
		CheckoutUC:  checkoutUC,
		DashboardUC: dashboardUC,
		ExportUC:    exportUC,
		JWTSecret:   cfg.JWT.Secret,
		SessionTTL:  time.Duration(cfg.JWT.Expiration) * time.Minute,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
	return nil
}
