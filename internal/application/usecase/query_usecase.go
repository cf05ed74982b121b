package usecase

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stockview-api/internal/application/dto"
	"github.com/jhoicas/stockview-api/internal/domain/entity"
	"github.com/jhoicas/stockview-api/internal/domain/inventory"
	"github.com/jhoicas/stockview-api/internal/domain/repository"
)

// QueryUseCase resuelve consultas de solo lectura sobre el catálogo:
// listado filtrado de filas con estado derivado, bodegas y resumen agregado.
//
// Los filtros son permisivos: bodega vacía o "all" no filtra, búsqueda vacía
// no filtra y un valor de estado no reconocido equivale a "all". El orden
// del resultado es siempre el orden de inserción del catálogo; aquí no se
// ordena nada.
type QueryUseCase struct {
	products   repository.ProductRepository
	warehouses repository.WarehouseRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(
	products repository.ProductRepository,
	warehouses repository.WarehouseRepository,
) *QueryUseCase {
	return &QueryUseCase{products: products, warehouses: warehouses}
}

// ListProducts devuelve las filas que pasan los tres filtros, con su estado derivado.
func (uc *QueryUseCase) ListProducts(search, status, warehouse string) ([]dto.ProductResponse, error) {
	rows, err := uc.filterRows(search, status, warehouse)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, toProductResponse(r))
	}
	return out, nil
}

// ListWarehouses devuelve el conjunto de referencia de bodegas.
func (uc *QueryUseCase) ListWarehouses() ([]dto.WarehouseResponse, error) {
	whs, err := uc.warehouses.All()
	if err != nil {
		return nil, err
	}
	out := make([]dto.WarehouseResponse, 0, len(whs))
	for _, w := range whs {
		out = append(out, dto.WarehouseResponse{
			Code:    w.Code,
			Name:    w.Name,
			City:    w.City,
			Country: w.Country,
		})
	}
	return out, nil
}

// GetSummary agrega stock, demanda y fill rate sobre las filas filtradas
// (mismos filtros que ListProducts). Fill rate = unidades servibles
// min(stock, demanda) sobre la demanda total, en porcentaje; 100 si la
// demanda total es 0.
func (uc *QueryUseCase) GetSummary(search, status, warehouse string) (*dto.InventorySummaryResponse, error) {
	rows, err := uc.filterRows(search, status, warehouse)
	if err != nil {
		return nil, err
	}

	totalStock, totalDemand, served, critical := 0, 0, 0, 0
	for _, r := range rows {
		totalStock += r.Stock
		totalDemand += r.Demand
		if r.Stock < r.Demand {
			served += r.Stock
			critical++
		} else {
			served += r.Demand
		}
	}

	fillRate := decimal.NewFromInt(100)
	if totalDemand > 0 {
		fillRate = decimal.NewFromInt(int64(served)).
			Div(decimal.NewFromInt(int64(totalDemand))).
			Mul(decimal.NewFromInt(100)).
			Round(1)
	}

	return &dto.InventorySummaryResponse{
		TotalStock:   totalStock,
		TotalDemand:  totalDemand,
		FillRatePct:  fillRate,
		CriticalRows: critical,
	}, nil
}

// filterRows aplica los filtros en orden: bodega, búsqueda, estado derivado.
// El resultado es conmutativo entre filtros; el orden fija el comportamiento.
func (uc *QueryUseCase) filterRows(search, status, warehouse string) ([]entity.Product, error) {
	rows, err := uc.products.AllRows()
	if err != nil {
		return nil, err
	}

	if warehouse != "" && warehouse != "all" {
		kept := rows[:0]
		for _, r := range rows {
			if r.WarehouseCode == warehouse {
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	if q := strings.ToLower(search); q != "" {
		kept := rows[:0]
		for _, r := range rows {
			if strings.Contains(strings.ToLower(r.Name), q) ||
				strings.Contains(strings.ToLower(r.SKU), q) ||
				strings.Contains(strings.ToLower(r.ID), q) {
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	if want, ok := inventory.ParseStatusFilter(status); ok {
		kept := rows[:0]
		for _, r := range rows {
			if inventory.ClassifyStatus(r.Stock, r.Demand) == want {
				kept = append(kept, r)
			}
		}
		rows = kept
	}

	return rows, nil
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
