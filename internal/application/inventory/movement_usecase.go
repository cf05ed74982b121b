package inventory

import (
	"time"

	"github.com/jhoicas/stockview-api/internal/application/dto"
	"github.com/jhoicas/stockview-api/internal/domain/repository"
)

// MovementUseCase consulta la bitácora de mutaciones confirmadas.
type MovementUseCase struct {
	movements repository.MovementRepository
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(movements repository.MovementRepository) *MovementUseCase {
	return &MovementUseCase{movements: movements}
}

// ListMovements devuelve los movimientos en orden de registro.
func (uc *MovementUseCase) ListMovements() ([]dto.MovementResponse, error) {
	items, err := uc.movements.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovementResponse, 0, len(items))
	for _, m := range items {
		out = append(out, dto.MovementResponse{
			TransactionID: m.TransactionID,
			Type:          m.Type,
			ProductID:     m.ProductID,
			FromWarehouse: m.FromWarehouse,
			ToWarehouse:   m.ToWarehouse,
			Quantity:      m.Quantity,
			Date:          m.Date.Format(time.RFC3339),
		})
	}
	return out, nil
}
