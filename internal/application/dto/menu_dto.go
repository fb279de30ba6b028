package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// MenuItemDTO un ítem de la carta con su disponibilidad consultiva.
type MenuItemDTO struct {
	Name      string                     `json:"name"`
	Price     decimal.Decimal            `json:"price"`
	Available bool                       `json:"available"`
	Recipe    map[string]decimal.Decimal `json:"recipe"`
}

// FromMenuItems mapea la carta.
func FromMenuItems(items []entity.MenuItem) []MenuItemDTO {
	out := make([]MenuItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, MenuItemDTO{
			Name:      item.Name,
			Price:     item.Price,
			Available: item.Available,
			Recipe:    item.Recipe,
		})
	}
	return out
}
