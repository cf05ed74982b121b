package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockview-api/internal/application/dto"
	"github.com/jhoicas/stockview-api/internal/application/usecase"
	"github.com/jhoicas/stockview-api/pkg/metrics"
)

// KPIHandler maneja las peticiones HTTP de la serie de KPIs.
type KPIHandler struct {
	kpiUC *usecase.KPIUseCase
}

// NewKPIHandler construye el handler.
func NewKPIHandler(kpiUC *usecase.KPIUseCase) *KPIHandler {
	return &KPIHandler{kpiUC: kpiUC}
}

// List godoc
// @Summary      Serie diaria de KPIs recortada a la ventana final solicitada
// @Tags         kpis
// @Produce      json
// @Param        range  query  string  false  "all o <N>d (ej. 7d, 14d, 30d); malformado devuelve la serie completa"
// @Success      200  {array}  dto.KPIPointResponse
// @Router       /api/kpis [get]
func (h *KPIHandler) List(c *fiber.Ctx) error {
	out, err := h.kpiUC.ListKPIs(c.Query("range", "all"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	metrics.RecordEngineOperation("list_kpis", "ok")
	return c.JSON(out)
}
