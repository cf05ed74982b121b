package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockview-api/internal/application/dto"
	"github.com/jhoicas/stockview-api/internal/domain"
	"github.com/jhoicas/stockview-api/internal/domain/entity"
	"github.com/jhoicas/stockview-api/internal/domain/repository"
	"github.com/jhoicas/stockview-api/pkg/logger"
)

// DemandUseCase fija el pronóstico de demanda de una fila del catálogo.
type DemandUseCase struct {
	locker    RowLocker
	products  repository.ProductRepository
	movements repository.MovementRepository
	log       *logger.Logger
}

// NewDemandUseCase construye el caso de uso.
func NewDemandUseCase(
	locker RowLocker,
	products repository.ProductRepository,
	movements repository.MovementRepository,
	log *logger.Logger,
) *DemandUseCase {
	return &DemandUseCase{locker: locker, products: products, movements: movements, log: log}
}

// UpdateDemand valida y aplica demand a la fila (id, warehouse).
//
// warehouse es opcional: vacío, se resuelve la primera fila del producto por
// orden de inserción (contrato histórico del dashboard); si el id tiene
// filas en varias bodegas se deja un warning porque la resolución es
// ambigua. ErrNotFound si no hay fila; ErrInvalidInput si demand < 0.
// Idempotente: aplicar dos veces el mismo valor deja el mismo estado.
func (uc *DemandUseCase) UpdateDemand(ctx context.Context, id, warehouse string, demand int) (*dto.ProductResponse, error) {
	var result *dto.ProductResponse

	err := uc.locker.RunLocked(ctx, id, func() error {
		var row *entity.Product
		var err error

		if warehouse != "" {
			row, err = uc.products.FindRow(id, warehouse)
		} else {
			row, err = uc.products.FindAnyRowByID(id)
			if err == nil && row != nil {
				if n, cErr := uc.products.CountRowsByID(id); cErr == nil && n > 1 {
					uc.log.Warn().
						Str("product_id", id).
						Int("rows", n).
						Str("resolved_warehouse", row.WarehouseCode).
						Msg("updateDemand sin bodega sobre un producto multi-bodega; se usa la primera fila")
				}
			}
		}
		if err != nil {
			return err
		}
		if row == nil {
			return domain.ErrNotFound
		}
		if demand < 0 {
			return domain.ErrInvalidInput
		}

		row.Demand = demand
		if err := uc.products.UpsertRow(*row); err != nil {
			return err
		}

		if err := uc.movements.Append(entity.StockMovement{
			TransactionID: uuid.New().String(),
			Type:          entity.MovementTypeDEMAND,
			ProductID:     id,
			ToWarehouse:   row.WarehouseCode,
			Quantity:      demand,
			Date:          time.Now(),
		}); err != nil {
			return err
		}

		r := toProductResponse(*row)
		result = &r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", id).
		Str("warehouse", result.Warehouse).
		Int("demand", demand).
		Msg("pronóstico de demanda actualizado")

	return result, nil
}
