package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/analytics"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/application/usecase"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/seed"
	"github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage"
	storagefile "github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/file"
	storagemem "github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/memory"
	storagepg "github.com/DarkSevenX/sistema-RRHH-DDS/internal/storage/postgres"
	httpRouter "github.com/DarkSevenX/sistema-RRHH-DDS/internal/interfaces/http"
	"github.com/DarkSevenX/sistema-RRHH-DDS/pkg/config"
	"github.com/DarkSevenX/sistema-RRHH-DDS/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("driver", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store storage.TxStore
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		store = storagemem.New()
	case config.StoreDriverFile:
		fileStore, err := storagefile.Open(cfg.Store.Path)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Store.Path).Msg("abrir almacén de archivo")
		}
		store = fileStore
	case config.StoreDriverPostgres:
		pgStore, err := storagepg.New(ctx, cfg.Store.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pgStore.Close()
		store = pgStore
	default:
		log.Fatal().Str("driver", cfg.Store.Driver).Msg("driver de almacenamiento desconocido")
	}

	gen := seed.NewGenerator(cfg.Seed.Random, time.Now())
	if err := seed.EnsureSeeded(ctx, store, gen.Dataset(), log); err != nil {
		log.Fatal().Err(err).Msg("siembra inicial")
	}

	hrUC := usecase.NewHRUseCase(store)
	salesUC := usecase.NewSalesUseCase(store)
	inventoryUC := usecase.NewInventoryUseCase(store)
	purchasingUC := usecase.NewPurchasingUseCase(store, inventoryUC)
	financeUC := usecase.NewFinanceUseCase(store)
	dashboardUC := analytics.NewDashboardUseCase(store, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sistema RRHH DDS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		HRUC:         hrUC,
		SalesUC:      salesUC,
		InventoryUC:  inventoryUC,
		PurchasingUC: purchasingUC,
		FinanceUC:    financeUC,
		DashboardUC:  dashboardUC,
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
}
