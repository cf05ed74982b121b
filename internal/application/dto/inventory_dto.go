package dto

// UpdateDemandRequest body para PUT /api/products/:id/demand.
// Warehouse es opcional: ausente, se actualiza la primera fila del producto
// por orden de inserción (comportamiento histórico del dashboard).
// Demand es puntero para distinguir "ausente" de 0.
type UpdateDemandRequest struct {
	Demand    *int   `json:"demand"`
	Warehouse string `json:"warehouse,omitempty"`
}

// TransferRequest body para POST /api/inventory/transfers.
type TransferRequest struct {
	ProductID string `json:"product_id"`
	From      string `json:"from"`
	To        string `json:"to"`
	Qty       *int   `json:"qty"`
}

// MovementResponse entrada de la bitácora de movimientos.
type MovementResponse struct {
	TransactionID string `json:"transaction_id"`
	Type          string `json:"type"`
	ProductID     string `json:"product_id"`
	FromWarehouse string `json:"from_warehouse,omitempty"`
	ToWarehouse   string `json:"to_warehouse,omitempty"`
	Quantity      int    `json:"quantity"`
	Date          string `json:"date"`
}
