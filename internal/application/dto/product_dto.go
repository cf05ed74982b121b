package dto

import "github.com/shopspring/decimal"

// ProductResponse fila producto-bodega con su estado de salud derivado.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
	Status    string `json:"status"` // Healthy, Low o Critical
}

// ProductListResponse respuesta de GET /api/products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// InventorySummaryResponse agregados sobre las filas filtradas
// (GET /api/products/summary, mismos filtros que el listado).
type InventorySummaryResponse struct {
	TotalStock  int `json:"total_stock"`
	TotalDemand int `json:"total_demand"`
	// FillRatePct = min(stock, demanda) servida / demanda total * 100;
	// 100 cuando la demanda total es 0.
	FillRatePct  decimal.Decimal `json:"fill_rate_pct"`
	CriticalRows int             `json:"critical_rows"`
}
