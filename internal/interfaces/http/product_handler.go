package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockview-api/internal/application/dto"
	appinventory "github.com/jhoicas/stockview-api/internal/application/inventory"
	"github.com/jhoicas/stockview-api/internal/application/usecase"
	"github.com/jhoicas/stockview-api/internal/domain"
	"github.com/jhoicas/stockview-api/pkg/metrics"
)

// ProductHandler maneja las peticiones HTTP de productos.
type ProductHandler struct {
	queryUC  *usecase.QueryUseCase
	demandUC *appinventory.DemandUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(queryUC *usecase.QueryUseCase, demandUC *appinventory.DemandUseCase) *ProductHandler {
	return &ProductHandler{queryUC: queryUC, demandUC: demandUC}
}

// List godoc
// @Summary      Listar filas producto-bodega con estado derivado
// @Tags         products
// @Produce      json
// @Param        search     query  string  false  "Subcadena sobre name, sku o id (insensible a mayúsculas)"
// @Param        status     query  string  false  "all | healthy | low | critical"
// @Param        warehouse  query  string  false  "Código de bodega o all"
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.queryUC.ListProducts(c.Query("search"), c.Query("status"), c.Query("warehouse"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.RecordEngineOperation("list_products", "ok")
	return c.JSON(dto.ProductListResponse{Products: products, Total: len(products)})
}

// Summary godoc
// @Summary      Resumen agregado (stock, demanda, fill rate) de las filas filtradas
// @Tags         products
// @Produce      json
// @Param        search     query  string  false  "Subcadena sobre name, sku o id"
// @Param        status     query  string  false  "all | healthy | low | critical"
// @Param        warehouse  query  string  false  "Código de bodega o all"
// @Success      200  {object}  dto.InventorySummaryResponse
// @Router       /api/products/summary [get]
func (h *ProductHandler) Summary(c *fiber.Ctx) error {
	out, err := h.queryUC.GetSummary(c.Query("search"), c.Query("status"), c.Query("warehouse"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.RecordEngineOperation("inventory_summary", "ok")
	return c.JSON(out)
}

// UpdateDemand godoc
// @Summary      Fijar el pronóstico de demanda de una fila
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateDemandRequest  true  "Nueva demanda (warehouse opcional)"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/demand [put]
func (h *ProductHandler) UpdateDemand(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateDemandRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Demand == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "demand es requerido y debe ser un entero"})
	}

	out, err := h.demandUC.UpdateDemand(c.UserContext(), id, in.Warehouse, *in.Demand)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			metrics.RecordEngineOperation("update_demand", "not_found")
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			metrics.RecordEngineOperation("update_demand", "invalid")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la demanda no puede ser negativa"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	metrics.RecordEngineOperation("update_demand", "ok")
	return c.JSON(out)
}
