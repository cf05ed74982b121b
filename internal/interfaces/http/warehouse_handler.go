package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockview-api/internal/application/dto"
	"github.com/jhoicas/stockview-api/internal/application/usecase"
)

// WarehouseHandler maneja las peticiones HTTP de bodegas.
type WarehouseHandler struct {
	queryUC *usecase.QueryUseCase
}

// NewWarehouseHandler construye el handler.
func NewWarehouseHandler(queryUC *usecase.QueryUseCase) *WarehouseHandler {
	return &WarehouseHandler{queryUC: queryUC}
}

// List godoc
// @Summary      Listar bodegas del conjunto de referencia
// @Tags         warehouses
// @Produce      json
// @Success      200  {array}  dto.WarehouseResponse
// @Router       /api/warehouses [get]
func (h *WarehouseHandler) List(c *fiber.Ctx) error {
	out, err := h.queryUC.ListWarehouses()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
