package entity

// Warehouse representa una bodega del conjunto de referencia fijo.
// Los campos descriptivos son inmutables; el catálogo no crea bodegas.
type Warehouse struct {
	Code    string
	Name    string
	City    string
	Country string
}
