package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appinventory "github.com/jhoicas/stockview-api/internal/application/inventory"
	"github.com/jhoicas/stockview-api/internal/application/usecase"
	"github.com/jhoicas/stockview-api/internal/infrastructure/memstore"
	httpRouter "github.com/jhoicas/stockview-api/internal/interfaces/http"
	"github.com/jhoicas/stockview-api/pkg/config"
	"github.com/jhoicas/stockview-api/pkg/logger"
	"github.com/jhoicas/stockview-api/pkg/metrics"
)

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
		Msg("iniciando aplicación")

	metrics.Init(cfg.Metrics.Prefix)

	// Catálogo en memoria: dueño único de filas y bodegas
	catalog := memstore.NewCatalog(memstore.SeedProducts(), memstore.SeedWarehouses())

	// Serie de KPIs: generada una vez por proceso, inmutable después
	seed := cfg.Catalog.KPISeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	kpiSeries := memstore.NewKPISeries(memstore.GenerateDailySeries(cfg.Catalog.KPIDays, rng))

	ledger := memstore.NewMovementLedger()

	queryUC := usecase.NewQueryUseCase(catalog, catalog)
	kpiUC := usecase.NewKPIUseCase(kpiSeries)
	transferUC := appinventory.NewTransferUseCase(catalog, catalog, catalog, ledger, log)
	demandUC := appinventory.NewDemandUseCase(catalog, catalog, ledger, log)
	movementUC := appinventory.NewMovementUseCase(ledger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.MetricsMiddleware())

	httpRouter.Router(app, httpRouter.RouterDeps{
		QueryUC:    queryUC,
		KPIUC:      kpiUC,
		TransferUC: transferUC,
		DemandUC:   demandUC,
		MovementUC: movementUC,
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
