package memstore

import (
	"math/rand"
	"time"

	"github.com/jhoicas/stockview-api/internal/domain/entity"
)

// KPISeries serie diaria pre-generada de stock/demanda agregados.
// Se construye una vez al arrancar el proceso y es de solo lectura después.
type KPISeries struct {
	points []entity.KPIPoint
}

// NewKPISeries envuelve una serie ya ordenada ascendente por fecha.
func NewKPISeries(points []entity.KPIPoint) *KPISeries {
	return &KPISeries{points: append([]entity.KPIPoint(nil), points...)}
}

// Series devuelve una copia de la serie completa.
func (s *KPISeries) Series() ([]entity.KPIPoint, error) {
	out := make([]entity.KPIPoint, len(s.points))
	copy(out, s.points)
	return out, nil
}

// GenerateDailySeries simula una serie diaria de days puntos terminando ayer:
// caída de demanda en fin de semana (factor 0.75), ruido acotado
// (stock ±10, demanda ±5), piso de demanda en 350 y un cambio de tendencia
// a mitad de la serie (primera mitad: stock baja y demanda sube; segunda
// mitad al revés). rng inyectable para series reproducibles en tests.
func GenerateDailySeries(days int, rng *rand.Rand) []entity.KPIPoint {
	if days <= 0 {
		return nil
	}

	now := time.Now()
	last := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)

	currentStock := 420
	currentDemand := 440

	points := make([]entity.KPIPoint, 0, days)
	for i := 0; i < days; i++ {
		date := last.AddDate(0, 0, -(days - 1 - i))

		weekendFactor := 1.0
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			weekendFactor = 0.75
		}

		stockNoise := rng.Intn(20) - 10 // -10..+9
		demandNoise := rng.Intn(10) - 5 // -5..+4

		currentStock += stockNoise
		currentDemand = int(float64(currentDemand+demandNoise) * weekendFactor)
		if currentDemand < 350 {
			currentDemand = 350
		}

		if i < days/2 {
			currentStock -= 2
			currentDemand++
		} else {
			currentStock++
			currentDemand -= 2
		}

		points = append(points, entity.KPIPoint{
			Date:   date,
			Stock:  currentStock,
			Demand: currentDemand,
		})
	}
	return points
}
