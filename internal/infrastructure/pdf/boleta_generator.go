// Package pdf implementa la generación de documentos imprimibles del
// restaurante con Maroto v2: la boleta de un pedido cobrado y la carta.
//
// Layout de la boleta (A4):
//
//	┌─────────────────────────────────────────────┐
//	│  RESTAURANTE  +  RUT / Dirección / Fono     │
//	│  ─────────────────────────────────────────  │
//	│  BOLETA ELECTRÓNICA + fecha y hora          │
//	│  ─────────────────────────────────────────  │
//	│  TABLA: Cant | Detalle | P. Unit | Total    │
//	│  ─────────────────────────────────────────  │
//	│  TOTALES: Neto / IVA / TOTAL                │
//	│  "Gracias por su preferencia"               │
//	└─────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/restaurante-pos/internal/application/orders"
	"github.com/jhoicas/restaurante-pos/internal/domain"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 70, Green: 130, Blue: 180}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorZebra   = &props.Color{Red: 245, Green: 245, Blue: 245}
)

// money formatea un monto en pesos con separador de miles chileno ("$1.000").
func money(d decimal.Decimal) string {
	p := message.NewPrinter(language.Spanish)
	return p.Sprintf("$%d", d.Round(0).IntPart())
}

// ── Generator ─────────────────────────────────────────────────────────────────

// BoletaGenerator implementa orders.ReceiptPDFGenerator usando Maroto v2.
type BoletaGenerator struct{}

// NewBoletaGenerator construye el generador.
func NewBoletaGenerator() *BoletaGenerator { return &BoletaGenerator{} }

// GenerateBoletaPDF genera el PDF de la boleta y devuelve sus bytes.
// El pedido debe estar COMMITTED y con al menos una línea.
func (g *BoletaGenerator) GenerateBoletaPDF(
	_ context.Context,
	order *entity.Order,
	info orders.RestaurantInfo,
	totals orders.BoletaTotals,
) ([]byte, error) {
	if order == nil || len(order.Lines) == 0 {
		return nil, fmt.Errorf("boleta: %w: el pedido no tiene líneas", domain.ErrOrderEmpty)
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Boleta Electrónica", true).
		WithAuthor(info.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRows(info)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(emissionRows()...)

	m.AddRows(tableHeaderRow())
	for i, l := range order.Lines {
		m.AddRows(lineRow(l, i%2 == 1))
	}

	m.AddRows(line.NewRow(2))
	m.AddRows(totalsRow(totals))

	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(10).Add(col.New(12).Add(
		text.New("Gracias por su preferencia", props.Text{
			Style: fontstyle.Italic, Size: 10, Align: align.Center, Top: 2, Color: colorGray,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("boleta: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRows: nombre del restaurante + RUT, dirección y fono.
func headerRows(info orders.RestaurantInfo) []core.Row {
	return []core.Row{
		row.New(12).Add(col.New(12).Add(
			text.New(info.Name, props.Text{
				Style: fontstyle.Bold, Size: 20, Align: align.Center, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(14).Add(col.New(12).Add(
			text.New("RUT: "+info.RUT, props.Text{Size: 9, Align: align.Center, Color: colorGray}),
			text.New(info.Address, props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 5}),
			text.New("Fono: "+info.Phone, props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 10}),
		)),
	}
}

// emissionRows: título de la boleta + fecha y hora de emisión.
func emissionRows() []core.Row {
	now := time.Now()
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New("BOLETA ELECTRÓNICA", props.Text{
				Style: fontstyle.Bold, Size: 13, Align: align.Center, Top: 1,
			}),
		)),
		row.New(10).Add(col.New(12).Add(
			text.New("Fecha de Emisión: "+now.Format("02-01-2006"), props.Text{Size: 10, Top: 1}),
			text.New("Hora: "+now.Format("15:04:05"), props.Text{Size: 10, Top: 6}),
		)),
	}
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: a, Color: colorWhite, Top: 2,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(9).Add(
		h("Cant.", 2, align.Center),
		h("Detalle", 6, align.Left),
		h("P. Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// lineRow: una fila por línea del pedido, con cebreado alternado.
func lineRow(l *entity.OrderLine, zebra bool) core.Row {
	cell := &props.Cell{}
	if zebra {
		cell.BackgroundColor = colorZebra
	}
	c := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{
			Size: 10, Align: a, Top: 1.5,
		})).WithStyle(cell)
	}
	return row.New(8).Add(
		c(fmt.Sprintf("%d", l.Quantity), 2, align.Center),
		c(l.Item.Name, 6, align.Left),
		c(money(l.Item.Price), 2, align.Right),
		c(money(l.Subtotal()), 2, align.Right),
	)
}

// totalsRow: neto, IVA y total alineados a la derecha. El precio al consumidor
// incluye IVA, así que el neto se obtuvo dividiendo por (1 + tasa).
func totalsRow(totals orders.BoletaTotals) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Size: 10, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 10, Align: align.Right})
	}
	return row.New(28).Add(
		col.New(6),
		col.New(4).Add(
			label("SUBTOTAL:"),
			text.New("IVA:", props.Text{Size: 10, Align: align.Right, Right: 2, Top: 7}),
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Right: 2, Top: 15, Color: colorPrimary,
			}),
		),
		col.New(2).Add(
			value(money(totals.Neto)),
			text.New(money(totals.IVA), props.Text{Size: 10, Align: align.Right, Top: 7}),
			text.New(money(totals.Total), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Right, Top: 15, Color: colorPrimary,
			}),
		),
	)
}
