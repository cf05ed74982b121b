package memstore

import (
	"sync"

	"github.com/jhoicas/stockview-api/internal/domain/entity"
)

// MovementLedger bitácora append-only en memoria de mutaciones confirmadas.
type MovementLedger struct {
	mu    sync.RWMutex
	items []entity.StockMovement
}

// NewMovementLedger construye la bitácora vacía.
func NewMovementLedger() *MovementLedger {
	return &MovementLedger{}
}

// Append registra un movimiento confirmado.
func (l *MovementLedger) Append(m entity.StockMovement) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items, m)
	return nil
}

// List copia de los movimientos en orden de registro.
func (l *MovementLedger) List() ([]entity.StockMovement, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entity.StockMovement, len(l.items))
	copy(out, l.items)
	return out, nil
}
