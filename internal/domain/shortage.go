package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Shortage describe un faltante de un ingrediente detectado al validar
// requerimientos contra el stock. Available es cero si el ingrediente no existe
// (cantidad cero y ausencia se tratan igual).
type Shortage struct {
	Ingredient string          // nombre normalizado
	Required   decimal.Decimal // cantidad total requerida
	Available  decimal.Decimal // cantidad disponible al momento de la validación
}

// Missing devuelve cuánto falta para cubrir el requerimiento.
func (s Shortage) Missing() decimal.Decimal {
	return s.Required.Sub(s.Available)
}

// LineShortage identifica una línea del pedido que no puede prepararse.
type LineShortage struct {
	Item      string // nombre del ítem del menú
	Requested int64  // cantidad pedida
}

// ShortageError es el resultado de una validación de stock fallida: lleva la
// lista completa de faltantes (no solo el primero) para que el caller pueda
// reponer de una sola vez. Envuelve ErrInsufficientStock.
type ShortageError struct {
	Shortages []Shortage     // faltantes por ingrediente
	Lines     []LineShortage // líneas del pedido afectadas (vacío fuera de un checkout)
}

func (e *ShortageError) Error() string {
	parts := make([]string, 0, len(e.Shortages))
	for _, s := range e.Shortages {
		parts = append(parts, fmt.Sprintf("%s (faltan %s)", s.Ingredient, s.Missing().String()))
	}
	return "stock insuficiente: " + strings.Join(parts, ", ")
}

// Unwrap permite errors.Is(err, ErrInsufficientStock).
func (e *ShortageError) Unwrap() error { return ErrInsufficientStock }
