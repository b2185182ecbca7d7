package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/finanzas-reventa/docs"
	"github.com/jhoicas/finanzas-reventa/internal/application/analytics"
	"github.com/jhoicas/finanzas-reventa/internal/application/export"
	"github.com/jhoicas/finanzas-reventa/internal/application/records"
	"github.com/jhoicas/finanzas-reventa/internal/domain/ledger"
	"github.com/jhoicas/finanzas-reventa/internal/domain/repository"
	"github.com/jhoicas/finanzas-reventa/internal/infrastructure/cache"
	"github.com/jhoicas/finanzas-reventa/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/finanzas-reventa/internal/infrastructure/pdf"
	"github.com/jhoicas/finanzas-reventa/internal/infrastructure/postgres"
	"github.com/jhoicas/finanzas-reventa/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/finanzas-reventa/internal/interfaces/http"
	"github.com/jhoicas/finanzas-reventa/pkg/config"
	"github.com/jhoicas/finanzas-reventa/pkg/logger"
	"github.com/jhoicas/finanzas-reventa/pkg/money"
)

// @title        Finanzas Reventa API
// @version      1.0
// @description  Capital, compras, ventas y ajustes de un negocio de reventa.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.Storage.Backend).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repo, closeRepo, err := openRepository(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Storage.Backend).Msg("abrir almacenamiento")
	}
	defer func() {
		if err := closeRepo.Close(); err != nil {
			log.Error().Err(err).Msg("cerrar almacenamiento")
		}
	}()
	if cfg.Storage.CacheTTL > 0 {
		repo = cache.NewSnapshotRepository(repo, cfg.Storage.CacheTTL)
		log.Info().Dur("ttl", cfg.Storage.CacheTTL).Msg("caché de registros activa")
	}

	moneyFmt := money.NewFormatter(cfg.App.Currency)
	calc := ledger.NewCalculator(ledger.WithMoneyFormatter(moneyFmt))
	recordsSvc := records.NewService(repo, calc, log)
	analyticsSvc := analytics.NewService(recordsSvc, calc)
	exportSvc := export.NewService(analyticsSvc, infrapdf.NewMarotoPDFGenerator(moneyFmt), cfg.App.Name)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name + " API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": cfg.Storage.Backend})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Records:   recordsSvc,
		Analytics: analyticsSvc,
		Export:    exportSvc,
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
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openRepository construye el repositorio según DATA_BACKEND y devuelve cómo cerrarlo.
func openRepository(ctx context.Context, cfg *config.Config) (repository.SnapshotRepository, io.Closer, error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		if err := postgres.RunMigrations(pool); err != nil {
			pool.Close()
			return nil, nil, err
		}
		repo := postgres.NewSnapshotRepository(pool, postgres.NewTxRunner(pool))
		return repo, closerFunc(func() error { pool.Close(); return nil }), nil
	case config.BackendSQLite:
		repo, err := sqlite.NewSnapshotRepository(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return repo, repo, nil
	default:
		return memory.NewSnapshotRepository(), closerFunc(func() error { return nil }), nil
	}
}
