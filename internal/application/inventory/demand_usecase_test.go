package inventory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockview-api/internal/domain"
	"github.com/jhoicas/stockview-api/internal/domain/entity"
	"github.com/jhoicas/stockview-api/internal/infrastructure/memstore"
)

func newDemandFixture(rows ...entity.Product) (*DemandUseCase, *memstore.Catalog, *memstore.MovementLedger) {
	catalog := memstore.NewCatalog(rows, memstore.SeedWarehouses())
	ledger := memstore.NewMovementLedger()
	uc := NewDemandUseCase(catalog, catalog, ledger, testLogger())
	return uc, catalog, ledger
}

func TestUpdateDemand_ActualizaLaFila(t *testing.T) {
	uc, catalog, ledger := newDemandFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
	)

	out, err := uc.UpdateDemand(context.Background(), "P-1", "", 40)
	require.NoError(t, err)
	assert.Equal(t, 40, out.Demand)
	assert.Equal(t, 50, out.Stock, "el stock no se toca")
	assert.Equal(t, "Healthy", out.Status, "el estado derivado refleja la nueva demanda")

	row, _ := catalog.FindRow("P-1", "BLR-A")
	assert.Equal(t, 40, row.Demand)

	movs, _ := ledger.List()
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeDEMAND, movs[0].Type)
	assert.Equal(t, 40, movs[0].Quantity)
}

// Aplicar dos veces el mismo valor deja el mismo estado observable del catálogo.
func TestUpdateDemand_Idempotente(t *testing.T) {
	uc, catalog, _ := newDemandFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
	)
	ctx := context.Background()

	_, err := uc.UpdateDemand(ctx, "P-1", "", 33)
	require.NoError(t, err)
	after1, _ := catalog.AllRows()

	_, err = uc.UpdateDemand(ctx, "P-1", "", 33)
	require.NoError(t, err)
	after2, _ := catalog.AllRows()

	assert.Equal(t, after1, after2)
}

func TestUpdateDemand_Validaciones(t *testing.T) {
	uc, catalog, _ := newDemandFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
	)
	ctx := context.Background()

	// Producto inexistente
	_, err := uc.UpdateDemand(ctx, "P-9", "", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Bodega explícita sin fila para el producto
	_, err = uc.UpdateDemand(ctx, "P-1", "DEL-B", 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Demanda negativa: se rechaza sin mutar
	_, err = uc.UpdateDemand(ctx, "P-1", "", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	row, _ := catalog.FindRow("P-1", "BLR-A")
	assert.Equal(t, 80, row.Demand)

	// Cero es válido
	out, err := uc.UpdateDemand(ctx, "P-1", "", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, out.Demand)
}

// Con bodega explícita se actualiza exactamente esa fila; sin bodega, la
// primera por orden de inserción (contrato histórico del dashboard).
func TestUpdateDemand_ProductoMultiBodega(t *testing.T) {
	uc, catalog, _ := newDemandFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 50, Demand: 80},
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "DEL-B", Stock: 20, Demand: 30},
	)
	ctx := context.Background()

	// Explícita
	out, err := uc.UpdateDemand(ctx, "P-1", "DEL-B", 99)
	require.NoError(t, err)
	assert.Equal(t, "DEL-B", out.Warehouse)

	rowA, _ := catalog.FindRow("P-1", "BLR-A")
	rowB, _ := catalog.FindRow("P-1", "DEL-B")
	assert.Equal(t, 80, rowA.Demand, "la otra fila no se toca")
	assert.Equal(t, 99, rowB.Demand)

	// Implícita: resuelve la primera fila insertada
	out, err = uc.UpdateDemand(ctx, "P-1", "", 11)
	require.NoError(t, err)
	assert.Equal(t, "BLR-A", out.Warehouse)

	rowA, _ = catalog.FindRow("P-1", "BLR-A")
	rowB, _ = catalog.FindRow("P-1", "DEL-B")
	assert.Equal(t, 11, rowA.Demand)
	assert.Equal(t, 99, rowB.Demand)
}
