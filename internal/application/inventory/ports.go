package inventory

import "context"

// RowLocker serializa el ciclo validar-luego-mutar sobre todas las filas de
// un producto. Garantiza que dos mutaciones concurrentes sobre el mismo id
// no validen contra stock obsoleto; el lock se libera en toda ruta de salida.
type RowLocker interface {
	RunLocked(ctx context.Context, productID string, fn func() error) error
}
