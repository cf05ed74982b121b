// Package memstore implementa los repositorios del dominio sobre memoria de
// proceso. El catálogo es el dueño exclusivo de las filas producto-bodega y
// del conjunto de bodegas; los llamadores solo reciben copias desechables.
package memstore

import (
	"context"
	"sync"

	"github.com/jhoicas/stockview-api/internal/domain/entity"
)

// rowKey clave compuesta de una fila del catálogo.
type rowKey struct {
	id        string
	warehouse string
}

// Catalog almacén en memoria de filas producto-bodega y bodegas.
//
// Las filas viven en un slice que preserva el orden de inserción, con un
// índice (id, bodega) → posición para búsqueda directa. Las lecturas toman
// el RWMutex en modo lectura y pueden correr en paralelo; cada mutación lo
// toma en modo escritura.
//
// Además mantiene un mutex por ID de producto: RunLocked serializa el ciclo
// completo validar-luego-mutar de las mutaciones que tocan filas de un mismo
// producto, el equivalente en memoria al SELECT FOR UPDATE que usaríamos
// contra una base de datos.
type Catalog struct {
	mu    sync.RWMutex
	rows  []entity.Product
	index map[rowKey]int

	warehouses []entity.Warehouse
	whIndex    map[string]struct{}

	lockMu   sync.Mutex
	rowLocks map[string]*sync.Mutex
}

// NewCatalog construye el catálogo con las filas y bodegas iniciales.
// Las filas se insertan en el orden recibido vía UpsertRow, de modo que una
// clave repetida en la semilla colapsa en una sola fila.
func NewCatalog(rows []entity.Product, warehouses []entity.Warehouse) *Catalog {
	c := &Catalog{
		index:      make(map[rowKey]int, len(rows)),
		warehouses: append([]entity.Warehouse(nil), warehouses...),
		whIndex:    make(map[string]struct{}, len(warehouses)),
		rowLocks:   make(map[string]*sync.Mutex),
	}
	for _, w := range warehouses {
		c.whIndex[w.Code] = struct{}{}
	}
	for _, r := range rows {
		_ = c.UpsertRow(r)
	}
	return c
}

// FindRow busca la fila exacta (id, warehouseCode). Devuelve una copia; nil si no existe.
func (c *Catalog) FindRow(id, warehouseCode string) (*entity.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[rowKey{id: id, warehouse: warehouseCode}]
	if !ok {
		return nil, nil
	}
	row := c.rows[i]
	return &row, nil
}

// FindAnyRowByID devuelve la primera fila del producto por orden de inserción.
func (c *Catalog) FindAnyRowByID(id string) (*entity.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.rows {
		if c.rows[i].ID == id {
			row := c.rows[i]
			return &row, nil
		}
	}
	return nil, nil
}

// CountRowsByID cuántas bodegas tienen fila para el producto.
func (c *Catalog) CountRowsByID(id string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for i := range c.rows {
		if c.rows[i].ID == id {
			n++
		}
	}
	return n, nil
}

// AllRows copia de todas las filas en orden de inserción.
func (c *Catalog) AllRows() ([]entity.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entity.Product, len(c.rows))
	copy(out, c.rows)
	return out, nil
}

// UpsertRow inserta la fila si la clave (ID, WarehouseCode) no existe; si
// existe, reemplaza sus campos mutables (Stock, Demand) in situ. No valida:
// las restricciones las imponen los casos de uso antes de llamar aquí.
func (c *Catalog) UpsertRow(row entity.Product) error {
	return c.UpsertRows(row)
}

// UpsertRows aplica varias filas bajo una sola adquisición del lock de
// escritura. Una mutación de varias filas (origen y destino de un traslado)
// es atómica frente a los lectores: ningún AllRows/FindRow concurrente puede
// observar la primera fila aplicada sin la segunda.
func (c *Catalog) UpsertRows(rows ...entity.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, row := range rows {
		k := rowKey{id: row.ID, warehouse: row.WarehouseCode}
		if i, ok := c.index[k]; ok {
			c.rows[i].Stock = row.Stock
			c.rows[i].Demand = row.Demand
			continue
		}
		c.rows = append(c.rows, row)
		c.index[k] = len(c.rows) - 1
	}
	return nil
}

// All devuelve las bodegas del conjunto de referencia.
func (c *Catalog) All() ([]entity.Warehouse, error) {
	out := make([]entity.Warehouse, len(c.warehouses))
	copy(out, c.warehouses)
	return out, nil
}

// Exists indica si el código pertenece al conjunto de referencia de bodegas.
func (c *Catalog) Exists(code string) (bool, error) {
	_, ok := c.whIndex[code]
	return ok, nil
}

// RunLocked ejecuta fn con acceso exclusivo a todas las filas del producto.
// El lock cubre el ciclo validar-luego-mutar completo y se libera en toda
// ruta de salida; fn no debe bloquear en I/O externo.
func (c *Catalog) RunLocked(ctx context.Context, productID string, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	mu := c.rowLock(productID)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}

func (c *Catalog) rowLock(productID string) *sync.Mutex {
	c.lockMu.Lock()
	defer c.lockMu.Unlock()

	mu, ok := c.rowLocks[productID]
	if !ok {
		mu = &sync.Mutex{}
		c.rowLocks[productID] = mu
	}
	return mu
}
