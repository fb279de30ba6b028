package entity

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/domain"
)

// Recipe mapea nombre de ingrediente → cantidad consumida por unidad vendida.
// Las cantidades quedan fijas al definir el ítem.
type Recipe map[string]decimal.Decimal

// MenuItem representa un plato o bebida de la carta, con su precio y receta.
// Available es una caché consultiva del último chequeo de stock para que la UI
// habilite o deshabilite el botón de compra; nunca es base de una mutación y
// siempre se re-deriva antes de decidir un consumo.
type MenuItem struct {
	Name      string
	Price     decimal.Decimal
	Recipe    Recipe
	ImagePath string
	Available bool
}

// NewMenuItem construye un ítem del menú validando precio y receta y
// normalizando los nombres de ingredientes de la receta.
func NewMenuItem(name string, price decimal.Decimal, recipe Recipe, imagePath string) (*MenuItem, error) {
	display := DisplayName(name)
	if display == "" {
		return nil, fmt.Errorf("%w: ítem del menú sin nombre", domain.ErrInvalidQuantity)
	}
	if price.IsNegative() {
		return nil, fmt.Errorf("%w: precio negativo para %q", domain.ErrInvalidQuantity, display)
	}
	normalized := make(Recipe, len(recipe))
	for ing, qty := range recipe {
		key := NormalizeName(ing)
		if key == "" {
			return nil, fmt.Errorf("%w: ingrediente sin nombre en la receta de %q", domain.ErrInvalidQuantity, display)
		}
		if qty.IsNegative() {
			return nil, fmt.Errorf("%w: cantidad negativa de %q en la receta de %q", domain.ErrInvalidQuantity, key, display)
		}
		normalized[key] = normalized[key].Add(qty)
	}
	return &MenuItem{
		Name:      display,
		Price:     price,
		Recipe:    normalized,
		ImagePath: imagePath,
		Available: true,
	}, nil
}

// Requirements escala la receta por la cantidad pedida. Función pura.
func (m *MenuItem) Requirements(qty int64) Requirements {
	return Requirements(m.Recipe).Scale(qty)
}

// IsAvailable responde si hay stock para preparar qty unidades del ítem y
// actualiza la caché Available. Nunca muta el stock.
func (m *MenuItem) IsAvailable(stock *Stock, qty int64) bool {
	m.Available = stock.CanFulfill(m.Requirements(qty))
	return m.Available
}

// ConsumeFor descuenta del stock los ingredientes para qty unidades del ítem.
// Devuelve el error tipado del Stock en lugar de colapsar a un booleano: el
// caller distingue "stock insuficiente" de un error de programación.
func (m *MenuItem) ConsumeFor(stock *Stock, qty int64) error {
	return stock.Consume(m.Requirements(qty))
}
