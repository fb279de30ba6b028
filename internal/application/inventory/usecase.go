// Package inventory expone las operaciones de administración del stock de
// ingredientes: altas, bajas, listado y carga masiva desde un origen externo.
package inventory

import (
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/domain"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

// UseCase administra el inventario de la sesión. El mutex se comparte con el
// caso de uso de pedidos: toda ruta que toca el stock se serializa, porque la
// secuencia verificar-luego-descontar del checkout es un clásico
// time-of-check/time-of-use bajo concurrencia.
type UseCase struct {
	mu    *sync.Mutex
	stock *entity.Stock
	log   *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(mu *sync.Mutex, stock *entity.Stock, log *logger.Logger) *UseCase {
	return &UseCase{mu: mu, stock: stock, log: log}
}

// AddIngredient suma stock de un ingrediente (o lo crea).
func (uc *UseCase) AddIngredient(name, unit string, qty decimal.Decimal) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if err := uc.stock.Add(name, unit, qty); err != nil {
		return err
	}
	uc.log.Info().Str("ingrediente", entity.NormalizeName(name)).Str("cantidad", qty.String()).Msg("stock agregado")
	return nil
}

// RemoveIngredient elimina la entrada del ingrediente. ErrNotFound si no existe.
func (uc *UseCase) RemoveIngredient(name string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stock.Remove(name)
}

// ListIngredients devuelve el inventario ordenado por nombre.
func (uc *UseCase) ListIngredients() []entity.Ingredient {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stock.List()
}

// ImportRow es una fila cruda del origen de importación masiva (ej. CSV):
// nombre, unidad y cantidad aún sin parsear.
type ImportRow struct {
	Line     int
	Name     string
	Unit     string
	Quantity string
}

// RowError reporta por qué se saltó una fila.
type RowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// BulkLoadReport resume una carga masiva.
type BulkLoadReport struct {
	Loaded  int        `json:"loaded"`
	Skipped []RowError `json:"skipped,omitempty"`
}

// BulkLoad aplica Add por cada fila. Es best-effort, no todo-o-nada: una fila
// con formato numérico malo o unidad en conflicto se registra en el reporte y
// se salta, sin abortar el resto.
func (uc *UseCase) BulkLoad(rows []ImportRow) BulkLoadReport {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var report BulkLoadReport
	for _, row := range rows {
		qty, err := decimal.NewFromString(row.Quantity)
		if err != nil {
			uc.skip(&report, row, fmt.Sprintf("cantidad no numérica: %q", row.Quantity))
			continue
		}
		if err := uc.stock.Add(row.Name, row.Unit, qty); err != nil {
			switch {
			case errors.Is(err, domain.ErrUnitMismatch):
				uc.skip(&report, row, "unidad en conflicto con la existente")
			case errors.Is(err, domain.ErrInvalidQuantity):
				uc.skip(&report, row, "cantidad inválida")
			default:
				uc.skip(&report, row, err.Error())
			}
			continue
		}
		report.Loaded++
	}
	uc.log.Info().Int("cargadas", report.Loaded).Int("saltadas", len(report.Skipped)).Msg("carga masiva de stock")
	return report
}

func (uc *UseCase) skip(report *BulkLoadReport, row ImportRow, reason string) {
	uc.log.Warn().Int("línea", row.Line).Str("ingrediente", row.Name).Str("motivo", reason).Msg("fila de importación saltada")
	report.Skipped = append(report.Skipped, RowError{Line: row.Line, Reason: reason})
}
