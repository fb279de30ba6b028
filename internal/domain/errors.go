package domain

import "errors"

// Errores de dominio. Las fallas de validación son recuperables y se reportan
// al caller con detalle suficiente para actuar; ninguna es fatal para el proceso.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
	ErrUnitMismatch      = errors.New("unidad de medida en conflicto")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrConsistency       = errors.New("inconsistencia de stock en fase de cobro")
	ErrOrderNotOpen      = errors.New("el pedido no está abierto")
	ErrOrderEmpty        = errors.New("el pedido no tiene ítems")
)
