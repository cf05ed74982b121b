package dto

// KPIPointResponse punto diario de la serie de KPIs (fecha YYYY-MM-DD).
type KPIPointResponse struct {
	Date   string `json:"date"`
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}
