package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	appinventory "github.com/jhoicas/stockview-api/internal/application/inventory"
	"github.com/jhoicas/stockview-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	QueryUC    *usecase.QueryUseCase
	KPIUC      *usecase.KPIUseCase
	TransferUC *appinventory.TransferUseCase
	DemandUC   *appinventory.DemandUseCase
	MovementUC *appinventory.MovementUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Sondas y métricas
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Products: listado filtrado, resumen y ajuste de demanda
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.QueryUC, deps.DemandUC)
	products.Get("/", productHandler.List)
	products.Get("/summary", productHandler.Summary)
	products.Put("/:id/demand", productHandler.UpdateDemand)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.QueryUC)
	warehouses.Get("/", warehouseHandler.List)

	// KPIs
	kpis := api.Group("/kpis")
	kpiHandler := NewKPIHandler(deps.KPIUC)
	kpis.Get("/", kpiHandler.List)

	// Inventory: traslados y bitácora
	invGroup := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.TransferUC, deps.MovementUC)
	invGroup.Post("/transfers", inventoryHandler.Transfer)
	invGroup.Get("/movements", inventoryHandler.ListMovements)
}
