package dto

// WarehouseResponse bodega del conjunto de referencia.
type WarehouseResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}
