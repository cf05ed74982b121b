package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockview-api/internal/application/dto"
	appinventory "github.com/jhoicas/stockview-api/internal/application/inventory"
	"github.com/jhoicas/stockview-api/internal/domain"
	"github.com/jhoicas/stockview-api/pkg/metrics"
)

// InventoryHandler maneja traslados de stock y la bitácora de movimientos.
type InventoryHandler struct {
	transferUC *appinventory.TransferUseCase
	movementUC *appinventory.MovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(transferUC *appinventory.TransferUseCase, movementUC *appinventory.MovementUseCase) *InventoryHandler {
	return &InventoryHandler{transferUC: transferUC, movementUC: movementUC}
}

// Transfer godoc
// @Summary      Trasladar stock de un producto entre bodegas
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "Traslado a aplicar"
// @Success      200   {object}  dto.ProductResponse  "Fila ORIGEN tras la mutación"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/transfers [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" || in.From == "" || in.To == "" || in.Qty == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id, from, to y qty son requeridos"})
	}

	out, err := h.transferUC.TransferStock(c.UserContext(), in.ProductID, in.From, in.To, *in.Qty)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			metrics.RecordEngineOperation("transfer_stock", "not_found")
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado en la bodega origen"})
		case errors.Is(err, domain.ErrInvalidInput):
			metrics.RecordEngineOperation("transfer_stock", "invalid")
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "traslado inválido: cantidad, bodega destino o igualdad origen/destino"})
		case errors.Is(err, domain.ErrInsufficientStock):
			metrics.RecordEngineOperation("transfer_stock", "insufficient_stock")
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "la cantidad excede el stock disponible en la bodega origen"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	metrics.RecordEngineOperation("transfer_stock", "ok")
	return c.JSON(out)
}

// ListMovements godoc
// @Summary      Bitácora de mutaciones confirmadas
// @Tags         inventory
// @Produce      json
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) ListMovements(c *fiber.Ctx) error {
	out, err := h.movementUC.ListMovements()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
