package repository

import "github.com/jhoicas/stockview-api/internal/domain/entity"

// ProductRepository acceso al catálogo de filas producto-bodega.
// La clave es (ID, WarehouseCode). Las consultas devuelven copias
// desechables; la única vía de mutación es UpsertRow.
// Aquí no hay validación: las restricciones las imponen los casos de uso
// antes de invocar la mutación.
type ProductRepository interface {
	// FindRow busca la fila exacta (id, warehouseCode). Devuelve nil si no existe.
	FindRow(id, warehouseCode string) (*entity.Product, error)
	// FindAnyRowByID devuelve la primera fila del producto por orden de
	// inserción, sin importar la bodega. nil si el id no existe.
	FindAnyRowByID(id string) (*entity.Product, error)
	// CountRowsByID cuántas filas (bodegas) tiene el producto.
	CountRowsByID(id string) (int, error)
	// AllRows todas las filas preservando el orden de inserción.
	AllRows() ([]entity.Product, error)
	// UpsertRow inserta la fila si la clave no existe; si existe, reemplaza
	// sus campos mutables (Stock, Demand) in situ.
	UpsertRow(row entity.Product) error
	// UpsertRows aplica varias filas como una sola mutación atómica: ningún
	// lector concurrente observa un subconjunto de ellas aplicado.
	UpsertRows(rows ...entity.Product) error
}
