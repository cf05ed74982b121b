package repository

import "github.com/jhoicas/stockview-api/internal/domain/entity"

// KPIRepository acceso de solo lectura a la serie diaria de KPIs.
// La serie se genera una vez por proceso y es inmutable después.
type KPIRepository interface {
	// Series devuelve la serie completa ordenada ascendente por fecha.
	Series() ([]entity.KPIPoint, error)
}
