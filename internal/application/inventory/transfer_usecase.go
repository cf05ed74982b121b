package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/stockview-api/internal/application/dto"
	"github.com/jhoicas/stockview-api/internal/domain"
	"github.com/jhoicas/stockview-api/internal/domain/entity"
	"github.com/jhoicas/stockview-api/internal/domain/inventory"
	"github.com/jhoicas/stockview-api/internal/domain/repository"
	"github.com/jhoicas/stockview-api/pkg/logger"
)

// TransferUseCase traslada stock de un producto entre bodegas.
//
// Validación en cortocircuito, la primera falla gana:
//  1. la fila (id, from) no existe            → ErrNotFound
//  2. qty <= 0                                → ErrInvalidInput
//  3. to == from                              → ErrInvalidInput
//  4. to no es una bodega del conjunto fijo   → ErrInvalidInput
//  5. qty > stock de la fila origen           → ErrInsufficientStock
//
// Todo el ciclo corre bajo el lock por producto del RowLocker; una falla no
// deja escritura parcial. El stock total del producto se conserva en todo
// traslado exitoso.
type TransferUseCase struct {
	locker     RowLocker
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
	movements  repository.MovementRepository
	log        *logger.Logger
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	locker RowLocker,
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
	movements repository.MovementRepository,
	log *logger.Logger,
) *TransferUseCase {
	return &TransferUseCase{
		locker:     locker,
		products:   products,
		warehouses: warehouses,
		movements:  movements,
		log:        log,
	}
}

// TransferStock mueve qty unidades de (id, from) hacia (id, to).
//
// Resta qty a la fila origen y la suma a la fila destino; si la fila destino
// no existe se crea con stock = qty y la demanda copiada de la fila origen
// en el momento del traslado (una bodega recién abierta hereda un pronóstico
// plausible, no cero). Devuelve la fila ORIGEN ya mutada; quien necesite la
// fila destino debe consultarla de nuevo.
func (uc *TransferUseCase) TransferStock(ctx context.Context, id, from, to string, qty int) (*dto.ProductResponse, error) {
	var result *dto.ProductResponse

	err := uc.locker.RunLocked(ctx, id, func() error {
		source, err := uc.products.FindRow(id, from)
		if err != nil {
			return err
		}
		if source == nil {
			return domain.ErrNotFound
		}
		if qty <= 0 {
			return domain.ErrInvalidInput
		}
		if to == from {
			return domain.ErrInvalidInput
		}
		exists, err := uc.warehouses.Exists(to)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrInvalidInput
		}
		if qty > source.Stock {
			return domain.ErrInsufficientStock
		}

		dest, err := uc.products.FindRow(id, to)
		if err != nil {
			return err
		}
		if dest == nil {
			dest = &entity.Product{
				ID:            id,
				Name:          source.Name,
				SKU:           source.SKU,
				WarehouseCode: to,
				Stock:         qty,
				Demand:        source.Demand,
			}
		} else {
			dest.Stock += qty
		}
		source.Stock -= qty

		// Origen y destino se aplican como una sola mutación atómica: un
		// lector concurrente nunca ve el origen decrementado sin el destino
		// incrementado (el total del producto se conserva en todo instante).
		if err := uc.products.UpsertRows(*source, *dest); err != nil {
			return err
		}

		if err := uc.movements.Append(entity.StockMovement{
			TransactionID: uuid.New().String(),
			Type:          entity.MovementTypeTRANSFER,
			ProductID:     id,
			FromWarehouse: from,
			ToWarehouse:   to,
			Quantity:      qty,
			Date:          time.Now(),
		}); err != nil {
			return err
		}

		r := toProductResponse(*source)
		result = &r
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("product_id", id).
		Str("from", from).
		Str("to", to).
		Int("qty", qty).
		Msg("traslado de stock aplicado")

	return result, nil
}

func toProductResponse(r entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        r.ID,
		Name:      r.Name,
		SKU:       r.SKU,
		Warehouse: r.WarehouseCode,
		Stock:     r.Stock,
		Demand:    r.Demand,
		Status:    inventory.ClassifyStatus(r.Stock, r.Demand),
	}
}
