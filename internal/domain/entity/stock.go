package entity

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/domain"
)

// Requirements mapea nombre normalizado de ingrediente → cantidad requerida.
type Requirements map[string]decimal.Decimal

// Scale multiplica cada requerimiento por n. Función pura.
func (r Requirements) Scale(n int64) Requirements {
	factor := decimal.NewFromInt(n)
	out := make(Requirements, len(r))
	for name, qty := range r {
		out[name] = qty.Mul(factor)
	}
	return out
}

// MergeInto acumula los requerimientos de r sobre dst.
func (r Requirements) MergeInto(dst Requirements) {
	for name, qty := range r {
		dst[name] = dst[name].Add(qty)
	}
}

// Stock es el inventario autoritativo de ingredientes: responde preguntas de
// disponibilidad y es el único que escribe cantidades. Una sola entrada por
// nombre normalizado; la unidad de una entrada existente es inmutable.
//
// Stock no sincroniza: el caller (la sesión de la aplicación) serializa todo
// acceso, incluida la secuencia verificar-luego-descontar del checkout.
type Stock struct {
	ingredients map[string]*Ingredient
}

// NewStock crea un inventario vacío.
func NewStock() *Stock {
	return &Stock{ingredients: make(map[string]*Ingredient)}
}

// Add suma cantidad a un ingrediente existente o crea la entrada.
//
// Falla con ErrInvalidQuantity si qty <= 0 y con ErrUnitMismatch si la entrada
// existe con otra unidad (tras normalizar); en ambos casos no muta nada.
func (s *Stock) Add(name, unit string, qty decimal.Decimal) error {
	key := NormalizeName(name)
	normUnit := NormalizeUnit(unit)
	if key == "" {
		return fmt.Errorf("%w: nombre de ingrediente vacío", domain.ErrInvalidQuantity)
	}
	if !qty.IsPositive() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, qty.String())
	}
	if ing, ok := s.ingredients[key]; ok {
		if ing.Unit != normUnit {
			return fmt.Errorf("%w: %q ya está en %q, se recibió %q", domain.ErrUnitMismatch, key, ing.Unit, normUnit)
		}
		ing.Quantity = ing.Quantity.Add(qty)
		return nil
	}
	s.ingredients[key] = &Ingredient{Name: key, Unit: normUnit, Quantity: qty}
	return nil
}

// Remove elimina la entrada del nombre normalizado. La eliminación es
// idempotente: sobre un nombre ausente reporta ErrNotFound sin alterar nada,
// y los contextos masivos pueden ignorar ese error.
func (s *Stock) Remove(name string) error {
	key := NormalizeName(name)
	if _, ok := s.ingredients[key]; !ok {
		return domain.ErrNotFound
	}
	delete(s.ingredients, key)
	return nil
}

// Get devuelve una copia del ingrediente, si existe.
func (s *Stock) Get(name string) (Ingredient, bool) {
	ing, ok := s.ingredients[NormalizeName(name)]
	if !ok {
		return Ingredient{}, false
	}
	return *ing, true
}

// List devuelve los ingredientes ordenados por nombre (copias).
func (s *Stock) List() []Ingredient {
	out := make([]Ingredient, 0, len(s.ingredients))
	for _, ing := range s.ingredients {
		out = append(out, *ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len devuelve cuántos ingredientes distintos hay.
func (s *Stock) Len() int { return len(s.ingredients) }

// CanFulfill responde si todos los requerimientos pueden cubrirse con el stock
// actual. Un ingrediente ausente cuenta como cantidad cero. Solo lectura.
func (s *Stock) CanFulfill(req Requirements) bool {
	return len(s.Shortages(req)) == 0
}

// Shortages calcula los faltantes de un conjunto de requerimientos, ordenados
// por ingrediente. Vacío significa que todo alcanza. Solo lectura.
func (s *Stock) Shortages(req Requirements) []domain.Shortage {
	var out []domain.Shortage
	for name, required := range req {
		key := NormalizeName(name)
		available := decimal.Zero
		if ing, ok := s.ingredients[key]; ok {
			available = ing.Quantity
		}
		if available.LessThan(required) {
			out = append(out, domain.Shortage{Ingredient: key, Required: required, Available: available})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ingredient < out[j].Ingredient })
	return out
}

// Consume descuenta cada requerimiento del inventario.
//
// Primero re-verifica disponibilidad completa: si algo falta devuelve un
// *domain.ShortageError y no aplica ninguna mutación parcial: la atomicidad
// es "todo verificado antes de escribir". Si la verificación pasa, descuenta
// cada ingrediente; el orden es irrelevante porque la verificación previa
// garantiza que todas las líneas alcanzan.
//
// Política: una entrada que llega exactamente a cero se conserva, no se borra.
// Así Restore nunca necesita reaprender la unidad, y CanFulfill ya trata
// "cantidad cero" y "ausente" de forma idéntica.
func (s *Stock) Consume(req Requirements) error {
	if shortages := s.Shortages(req); len(shortages) > 0 {
		return &domain.ShortageError{Shortages: shortages}
	}
	for name, qty := range req {
		ing := s.ingredients[NormalizeName(name)]
		ing.Quantity = ing.Quantity.Sub(qty)
	}
	return nil
}

// Restore es el inverso de Consume: suma a cada ingrediente la cantidad dada.
// Se usa al anular una línea o un pedido ya descontado. Como Consume conserva
// las entradas en cero, el ingrediente siempre debería existir; si no existe
// (fue eliminado explícitamente entre medio) se reporta ErrNotFound sin
// inventar una unidad, y el resto de los ingredientes sí se repone.
func (s *Stock) Restore(req Requirements) error {
	var missing []string
	for name, qty := range req {
		key := NormalizeName(name)
		ing, ok := s.ingredients[key]
		if !ok {
			missing = append(missing, key)
			continue
		}
		ing.Quantity = ing.Quantity.Add(qty)
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: no se pudo reponer %v (entrada eliminada, unidad desconocida)", domain.ErrNotFound, missing)
	}
	return nil
}

// RestoreWithUnits repone requerimientos recreando las entradas ausentes con
// la unidad indicada en units. Para callers que retienen la unidad fuera de
// banda y necesitan reponer después de un Remove explícito.
func (s *Stock) RestoreWithUnits(req Requirements, units map[string]string) error {
	for name, qty := range req {
		key := NormalizeName(name)
		if ing, ok := s.ingredients[key]; ok {
			ing.Quantity = ing.Quantity.Add(qty)
			continue
		}
		unit, ok := units[key]
		if !ok {
			return fmt.Errorf("%w: unidad desconocida para %q", domain.ErrNotFound, key)
		}
		s.ingredients[key] = &Ingredient{Name: key, Unit: NormalizeUnit(unit), Quantity: qty}
	}
	return nil
}
