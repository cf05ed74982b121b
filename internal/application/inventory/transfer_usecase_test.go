package inventory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockview-api/internal/domain"
	"github.com/jhoicas/stockview-api/internal/domain/entity"
	"github.com/jhoicas/stockview-api/internal/infrastructure/memstore"
	"github.com/jhoicas/stockview-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newTransferFixture(rows ...entity.Product) (*TransferUseCase, *memstore.Catalog, *memstore.MovementLedger) {
	catalog := memstore.NewCatalog(rows, memstore.SeedWarehouses())
	ledger := memstore.NewMovementLedger()
	uc := NewTransferUseCase(catalog, catalog, catalog, ledger, testLogger())
	return uc, catalog, ledger
}

// totalStock suma el stock de todas las filas del producto.
func totalStock(t *testing.T, catalog *memstore.Catalog, id string) int {
	t.Helper()
	rows, err := catalog.AllRows()
	require.NoError(t, err)
	total := 0
	for _, r := range rows {
		if r.ID == id {
			total += r.Stock
		}
	}
	return total
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario concreto del dashboard
// ──────────────────────────────────────────────────────────────────────────────

// P-1001 en BLR-A con 180/120: trasladar 50 a DEL-B deja el origen en 130 y
// crea la fila destino con stock 50 y la demanda COPIADA del origen (120, no
// cero). Un segundo traslado de 200 excede el stock reducido y no toca nada.
func TestTransferStock_EscenarioCompleto(t *testing.T) {
	uc, catalog, _ := newTransferFixture(
		entity.Product{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", WarehouseCode: "BLR-A", Stock: 180, Demand: 120},
	)
	ctx := context.Background()

	out, err := uc.TransferStock(ctx, "P-1001", "BLR-A", "DEL-B", 50)
	require.NoError(t, err)

	// Se devuelve la fila ORIGEN ya mutada
	assert.Equal(t, "BLR-A", out.Warehouse)
	assert.Equal(t, 130, out.Stock)
	assert.Equal(t, 120, out.Demand)

	// Fila destino creada con demanda heredada
	dest, err := catalog.FindRow("P-1001", "DEL-B")
	require.NoError(t, err)
	require.NotNil(t, dest)
	assert.Equal(t, 50, dest.Stock)
	assert.Equal(t, 120, dest.Demand)
	assert.Equal(t, "12mm Hex Bolt", dest.Name)
	assert.Equal(t, "HEX-12-100", dest.SKU)

	// Segundo traslado: 200 > 130 → InsufficientStock y nada cambia
	_, err = uc.TransferStock(ctx, "P-1001", "BLR-A", "DEL-B", 200)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	source, _ := catalog.FindRow("P-1001", "BLR-A")
	assert.Equal(t, 130, source.Stock)
	assert.Equal(t, 120, source.Demand)
	dest, _ = catalog.FindRow("P-1001", "DEL-B")
	assert.Equal(t, 50, dest.Stock)
	assert.Equal(t, 120, dest.Demand)
}

// A una fila destino existente solo se le incrementa el stock; su demanda no
// se toca.
func TestTransferStock_DestinoExistenteIncrementa(t *testing.T) {
	uc, catalog, _ := newTransferFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 100, Demand: 60},
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "DEL-B", Stock: 20, Demand: 90},
	)

	_, err := uc.TransferStock(context.Background(), "P-1", "BLR-A", "DEL-B", 30)
	require.NoError(t, err)

	dest, _ := catalog.FindRow("P-1", "DEL-B")
	assert.Equal(t, 50, dest.Stock)
	assert.Equal(t, 90, dest.Demand, "la demanda del destino existente no se modifica")

	// Ninguna otra fila del producto cambió
	assert.Equal(t, 120, totalStock(t, catalog, "P-1"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Orden de validación (la primera falla gana)
// ──────────────────────────────────────────────────────────────────────────────

func TestTransferStock_OrdenDeValidacion(t *testing.T) {
	uc, _, _ := newTransferFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 10, Demand: 5},
	)
	ctx := context.Background()

	// 1. Fila origen inexistente gana incluso con qty inválida
	_, err := uc.TransferStock(ctx, "P-9", "BLR-A", "DEL-B", -1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.TransferStock(ctx, "P-1", "PNQ-C", "DEL-B", 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// 2. Cantidad no positiva
	_, err = uc.TransferStock(ctx, "P-1", "BLR-A", "DEL-B", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = uc.TransferStock(ctx, "P-1", "BLR-A", "DEL-B", -7)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// 3. Destino igual al origen
	_, err = uc.TransferStock(ctx, "P-1", "BLR-A", "BLR-A", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// 4. Destino fuera del conjunto de referencia de bodegas
	_, err = uc.TransferStock(ctx, "P-1", "BLR-A", "XXX-Z", 5)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// 5. Stock insuficiente
	_, err = uc.TransferStock(ctx, "P-1", "BLR-A", "DEL-B", 11)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}

// Un traslado rechazado no deja escritura parcial.
func TestTransferStock_RechazoNoMutaNada(t *testing.T) {
	uc, catalog, ledger := newTransferFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 10, Demand: 5},
	)

	_, err := uc.TransferStock(context.Background(), "P-1", "BLR-A", "DEL-B", 999)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	source, _ := catalog.FindRow("P-1", "BLR-A")
	assert.Equal(t, 10, source.Stock)
	dest, _ := catalog.FindRow("P-1", "DEL-B")
	assert.Nil(t, dest, "no debe crearse la fila destino")

	movs, _ := ledger.List()
	assert.Empty(t, movs, "un rechazo no se registra en la bitácora")
}

// ──────────────────────────────────────────────────────────────────────────────
// Conservación
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad: todo traslado exitoso conserva el stock total del producto,
// exista o no la fila destino de antemano.
func TestTransferStock_ConservaElStockTotal(t *testing.T) {
	uc, catalog, _ := newTransferFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 500, Demand: 100},
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "PNQ-C", Stock: 200, Demand: 80},
	)
	ctx := context.Background()
	before := totalStock(t, catalog, "P-1")

	steps := []struct {
		from, to string
		qty      int
	}{
		{"BLR-A", "DEL-B", 50}, // crea fila
		{"PNQ-C", "BLR-A", 75},
		{"DEL-B", "PNQ-C", 10},
		{"BLR-A", "PNQ-C", 125},
	}
	for _, s := range steps {
		_, err := uc.TransferStock(ctx, "P-1", s.from, s.to, s.qty)
		require.NoError(t, err)
		assert.Equal(t, before, totalStock(t, catalog, "P-1"), "conservación tras %s→%s", s.from, s.to)
	}
}

// Dos traslados concurrentes sobre la misma fila origen no deben pasar ambos
// la validación de stock contra un valor obsoleto: el total se conserva y
// ninguna fila queda negativa.
func TestTransferStock_ConcurrenciaSinCarreraLeerLuegoEscribir(t *testing.T) {
	uc, catalog, _ := newTransferFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 100, Demand: 50},
	)
	ctx := context.Background()

	const workers = 40 // 40 intentos de 5 unidades contra 100 disponibles
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = uc.TransferStock(ctx, "P-1", "BLR-A", "DEL-B", 5)
		}()
	}
	wg.Wait()

	assert.Equal(t, 100, totalStock(t, catalog, "P-1"))

	source, _ := catalog.FindRow("P-1", "BLR-A")
	assert.GreaterOrEqual(t, source.Stock, 0, "el stock origen nunca queda negativo")
	dest, _ := catalog.FindRow("P-1", "DEL-B")
	require.NotNil(t, dest)
	assert.Equal(t, 100-source.Stock, dest.Stock)
}

// Un lector caliente sumando el stock del producto mientras los traslados
// rebotan entre dos bodegas jamás observa un total no conservado: el par
// origen/destino se aplica como una sola mutación atómica del catálogo.
func TestTransferStock_LectoresNuncaVenTrasladoAMedias(t *testing.T) {
	uc, catalog, _ := newTransferFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 100, Demand: 50},
	)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 2000; i++ {
			_, _ = uc.TransferStock(ctx, "P-1", "BLR-A", "DEL-B", 1)
			_, _ = uc.TransferStock(ctx, "P-1", "DEL-B", "BLR-A", 1)
		}
	}()

	torn := 0
	for {
		select {
		case <-done:
			assert.Zero(t, torn, "un lector observó un traslado a medio aplicar")
			return
		default:
			rows, err := catalog.AllRows()
			require.NoError(t, err)
			total := 0
			for _, r := range rows {
				if r.ID == "P-1" {
					total += r.Stock
				}
			}
			if total != 100 {
				torn++
			}
		}
	}
}

// Cada traslado exitoso queda en la bitácora con su transaction id.
func TestTransferStock_RegistraEnBitacora(t *testing.T) {
	uc, _, ledger := newTransferFixture(
		entity.Product{ID: "P-1", Name: "X", SKU: "X-1", WarehouseCode: "BLR-A", Stock: 100, Demand: 50},
	)

	_, err := uc.TransferStock(context.Background(), "P-1", "BLR-A", "DEL-B", 25)
	require.NoError(t, err)

	movs, err := ledger.List()
	require.NoError(t, err)
	require.Len(t, movs, 1)
	assert.Equal(t, entity.MovementTypeTRANSFER, movs[0].Type)
	assert.Equal(t, "P-1", movs[0].ProductID)
	assert.Equal(t, "BLR-A", movs[0].FromWarehouse)
	assert.Equal(t, "DEL-B", movs[0].ToWarehouse)
	assert.Equal(t, 25, movs[0].Quantity)
	assert.NotEmpty(t, movs[0].TransactionID)
}
