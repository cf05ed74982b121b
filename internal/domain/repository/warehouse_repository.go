package repository

import "github.com/jhoicas/stockview-api/internal/domain/entity"

// WarehouseRepository acceso al conjunto de referencia fijo de bodegas.
type WarehouseRepository interface {
	All() ([]entity.Warehouse, error)
	Exists(code string) (bool, error)
}
