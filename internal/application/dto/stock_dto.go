package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// AddIngredientRequest body para POST /api/stock/ingredients.
type AddIngredientRequest struct {
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
}

// IngredientDTO un ingrediente del inventario.
type IngredientDTO struct {
	Name     string          `json:"name"`
	Unit     string          `json:"unit"`
	Quantity decimal.Decimal `json:"quantity"`
}

// FromIngredients mapea el listado del inventario.
func FromIngredients(ings []entity.Ingredient) []IngredientDTO {
	out := make([]IngredientDTO, 0, len(ings))
	for _, ing := range ings {
		out = append(out, IngredientDTO{Name: ing.Name, Unit: ing.Unit, Quantity: ing.Quantity})
	}
	return out
}
