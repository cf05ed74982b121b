package entity

import "time"

// Tipos de movimiento registrados en la bitácora.
const (
	MovementTypeTRANSFER = "TRANSFER" // traslado entre bodegas
	MovementTypeDEMAND   = "DEMAND"   // ajuste del pronóstico de demanda
)

// StockMovement registro inmutable de una mutación confirmada del catálogo.
// Para TRANSFER, Quantity son las unidades trasladadas; para DEMAND,
// Quantity es el nuevo valor de demanda aplicado.
type StockMovement struct {
	TransactionID string
	Type          string
	ProductID     string
	FromWarehouse string
	ToWarehouse   string
	Quantity      int
	Date          time.Time
}
