package orders

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// RestaurantInfo son los datos del emisor que encabezan la boleta.
type RestaurantInfo struct {
	Name    string
	RUT     string
	Address string
	Phone   string
}

// BoletaTotals son los montos de la boleta bajo la convención chilena: los
// precios de carta incluyen IVA, así que el neto se obtiene dividiendo el
// total por (1 + tasa) y redondeando a peso.
type BoletaTotals struct {
	Neto  decimal.Decimal
	IVA   decimal.Decimal
	Total decimal.Decimal
}

// ReceiptPDFGenerator renderiza la boleta de un pedido COMMITTED a un
// documento imprimible. El caso de uso no depende del formato del documento.
type ReceiptPDFGenerator interface {
	GenerateBoletaPDF(ctx context.Context, order *entity.Order, info RestaurantInfo, totals BoletaTotals) ([]byte, error)
}
