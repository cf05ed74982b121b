package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Toda falla de validación se detecta antes de aplicar cualquier mutación;
// el motor nunca deja una fila en estado inconsistente.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
)
