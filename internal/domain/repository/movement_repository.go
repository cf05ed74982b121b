package repository

import "github.com/jhoicas/stockview-api/internal/domain/entity"

// MovementRepository bitácora append-only de mutaciones confirmadas.
type MovementRepository interface {
	Append(m entity.StockMovement) error
	// List devuelve los movimientos en orden de registro.
	List() ([]entity.StockMovement, error)
}
