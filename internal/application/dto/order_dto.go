package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/application/orders"
	"github.com/jhoicas/restaurante-pos/internal/domain"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// CreateOrderRequest body para POST /api/orders.
type CreateOrderRequest struct {
	Table string `json:"table"`
}

// AddItemRequest body para POST /api/orders/:id/items. Quantity por defecto 1.
type AddItemRequest struct {
	Item     string `json:"item"`
	Quantity *int64 `json:"quantity,omitempty"`
}

// OrderLineDTO una línea del pedido.
type OrderLineDTO struct {
	Item      string          `json:"item"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderDTO un pedido con sus líneas y subtotal.
type OrderDTO struct {
	ID       string          `json:"id"`
	Table    string          `json:"table,omitempty"`
	Status   string          `json:"status"`
	Lines    []OrderLineDTO  `json:"lines"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// FromOrder mapea un pedido de dominio.
func FromOrder(o *entity.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLineDTO{
			Item:      l.Item.Name,
			UnitPrice: l.Item.Price,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return OrderDTO{
		ID:       o.ID,
		Table:    o.Table,
		Status:   o.Status,
		Lines:    lines,
		Subtotal: o.Subtotal(),
	}
}

// CheckoutResponse resultado de un checkout exitoso.
type CheckoutResponse struct {
	Order      OrderDTO        `json:"order"`
	Neto       decimal.Decimal `json:"neto"`
	IVA        decimal.Decimal `json:"iva"`
	Total      decimal.Decimal `json:"total"`
	BoletaPath string          `json:"boleta_path,omitempty"`
}

// FromCheckout mapea el resultado del caso de uso.
func FromCheckout(r *orders.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Order:      FromOrder(r.Order),
		Neto:       r.Totals.Neto,
		IVA:        r.Totals.IVA,
		Total:      r.Totals.Total,
		BoletaPath: r.BoletaPath,
	}
}

// ShortageDTO un faltante de stock detectado en la validación del checkout.
type ShortageDTO struct {
	Ingredient string          `json:"ingredient"`
	Required   decimal.Decimal `json:"required"`
	Available  decimal.Decimal `json:"available"`
	Missing    decimal.Decimal `json:"missing"`
}

// LineShortageDTO una línea del pedido que no puede prepararse.
type LineShortageDTO struct {
	Item      string `json:"item"`
	Requested int64  `json:"requested"`
}

// ShortageResponse cuerpo del 409 de checkout con la lista completa de
// faltantes, para que el caller sepa qué reponer y cuánto.
type ShortageResponse struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Shortages []ShortageDTO     `json:"shortages"`
	Lines     []LineShortageDTO `json:"lines,omitempty"`
}

// FromShortageError mapea un *domain.ShortageError.
func FromShortageError(err *domain.ShortageError) ShortageResponse {
	resp := ShortageResponse{
		Code:    "INSUFFICIENT_STOCK",
		Message: err.Error(),
	}
	for _, s := range err.Shortages {
		resp.Shortages = append(resp.Shortages, ShortageDTO{
			Ingredient: s.Ingredient,
			Required:   s.Required,
			Available:  s.Available,
			Missing:    s.Missing(),
		})
	}
	for _, l := range err.Lines {
		resp.Lines = append(resp.Lines, LineShortageDTO{Item: l.Item, Requested: l.Requested})
	}
	return resp
}
