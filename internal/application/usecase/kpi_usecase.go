package usecase

import (
	"regexp"
	"strconv"

	"github.com/jhoicas/stockview-api/internal/application/dto"
	"github.com/jhoicas/stockview-api/internal/domain/entity"
	"github.com/jhoicas/stockview-api/internal/domain/repository"
)

// rangePattern acepta rangos tipo "7d", "14D", etc. en cualquier posición.
var rangePattern = regexp.MustCompile(`(?i)(\d+)d`)

// KPIUseCase recorta la serie diaria de KPIs a la ventana final solicitada.
// Lectura permisiva: "all", un rango malformado o N no positivo devuelven
// la serie completa en vez de un error.
type KPIUseCase struct {
	kpis repository.KPIRepository
}

// NewKPIUseCase construye el caso de uso.
func NewKPIUseCase(kpis repository.KPIRepository) *KPIUseCase {
	return &KPIUseCase{kpis: kpis}
}

// ListKPIs devuelve los puntos de la ventana [última fecha - (N-1) días, última fecha]
// para un rango "<N>d"; la serie completa en cualquier otro caso. Si N excede
// el largo de la serie, el recorte por fechas degrada solo a la serie completa.
func (uc *KPIUseCase) ListKPIs(rangeSpec string) ([]dto.KPIPointResponse, error) {
	points, err := uc.kpis.Series()
	if err != nil {
		return nil, err
	}

	points = windowTail(points, rangeSpec)

	out := make([]dto.KPIPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.KPIPointResponse{
			Date:   p.Date.Format("2006-01-02"),
			Stock:  p.Stock,
			Demand: p.Demand,
		})
	}
	return out, nil
}

// windowTail recorta la cola de la serie; nunca la muta.
func windowTail(points []entity.KPIPoint, rangeSpec string) []entity.KPIPoint {
	if len(points) == 0 || rangeSpec == "" || rangeSpec == "all" {
		return points
	}

	m := rangePattern.FindStringSubmatch(rangeSpec)
	if m == nil {
		return points
	}
	days, err := strconv.Atoi(m[1])
	if err != nil || days <= 0 {
		return points
	}

	last := points[len(points)-1].Date
	start := last.AddDate(0, 0, -(days - 1))

	kept := make([]entity.KPIPoint, 0, len(points))
	for _, p := range points {
		if !p.Date.Before(start) && !p.Date.After(last) {
			kept = append(kept, p)
		}
	}
	return kept
}
