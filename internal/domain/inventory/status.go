package inventory

// Estados de salud derivados de comparar stock contra demanda en una fila.
const (
	StatusHealthy  = "Healthy"
	StatusLow      = "Low"
	StatusCritical = "Critical"
)

// Valores textuales del filtro de estado tal como los expone la API
// (minúsculas, sensibles a mayúsculas).
const (
	FilterAll      = "all"
	FilterHealthy  = "healthy"
	FilterLow      = "low"
	FilterCritical = "critical"
)

// ClassifyStatus clasifica una fila según stock vs demanda (servicio de dominio, función pura):
// stock > demanda → Healthy; stock == demanda → Low; stock < demanda → Critical.
// La igualdad domina: una fila 0/0 es Low, no Healthy.
func ClassifyStatus(stock, demand int) string {
	switch {
	case stock > demand:
		return StatusHealthy
	case stock == demand:
		return StatusLow
	default:
		return StatusCritical
	}
}

// ParseStatusFilter traduce el filtro textual al estado derivado que representa.
// Devuelve ok=false para "all", vacío o valores no reconocidos: las lecturas
// son permisivas y un filtro desconocido equivale a no filtrar.
func ParseStatusFilter(s string) (status string, ok bool) {
	switch s {
	case FilterHealthy:
		return StatusHealthy, true
	case FilterLow:
		return StatusLow, true
	case FilterCritical:
		return StatusCritical, true
	default:
		return "", false
	}
}
