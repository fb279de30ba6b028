package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

// CartaGenerator implementa menuuc.CartaPDFGenerator: la carta del
// restaurante como tabla Plato/Precio.
type CartaGenerator struct{}

// NewCartaGenerator construye el generador.
func NewCartaGenerator() *CartaGenerator { return &CartaGenerator{} }

// GenerateCartaPDF genera el PDF de la carta y devuelve sus bytes.
func (g *CartaGenerator) GenerateCartaPDF(_ context.Context, items []entity.MenuItem) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 12}).
		WithTitle("Menú del Restaurante", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(16).Add(col.New(12).Add(
		text.New("Menú del Restaurante", props.Text{
			Style: fontstyle.Bold, Size: 24, Align: align.Center, Top: 1,
		}),
	)))
	m.AddRows(row.New(6))

	m.AddRows(cartaHeaderRow())
	for _, item := range items {
		m.AddRows(cartaItemRow(item))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("carta: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func cartaHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 12, Align: a, Color: colorWhite, Top: 2,
		})).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	}
	return row.New(10).Add(
		h("Plato / Bebida", 9, align.Center),
		h("Precio", 3, align.Center),
	)
}

func cartaItemRow(item entity.MenuItem) core.Row {
	return row.New(10).Add(
		col.New(9).Add(text.New(item.Name, props.Text{Size: 12, Align: align.Left, Top: 2, Left: 2})),
		col.New(3).Add(text.New(money(item.Price), props.Text{Size: 12, Align: align.Right, Top: 2, Right: 2})),
	)
}
