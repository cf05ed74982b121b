package entity

// Product representa la existencia de un producto en una bodega concreta
// (fila multi-bodega). La clave lógica es (ID, WarehouseCode): un mismo ID
// lógico puede tener una fila por cada bodega donde se almacena.
// Stock y Demand son cantidades enteras no negativas.
type Product struct {
	ID            string
	Name          string
	SKU           string
	WarehouseCode string
	Stock         int
	Demand        int
}
