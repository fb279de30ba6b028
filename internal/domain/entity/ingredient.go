package entity

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
)

// Ingredient representa una unidad de inventario: nombre normalizado, unidad de
// medida y cantidad disponible. La cantidad nunca queda negativa tras una
// mutación confirmada; toda operación que la dejaría negativa se rechaza antes
// de aplicarse.
type Ingredient struct {
	Name     string
	Unit     string
	Quantity decimal.Decimal
}

func (i Ingredient) String() string {
	return fmt.Sprintf("%s (%s %s)", i.Name, i.Quantity.String(), i.Unit)
}

// NormalizeName recorta espacios y aplica case folding Unicode. Los nombres de
// ingredientes llevan tildes y eñes ("azúcar flor", "lámina de queso"), por lo
// que un ToLower ASCII no basta.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// NormalizeUnit normaliza una unidad de medida ("Kg" y "kg" son la misma).
func NormalizeUnit(unit string) string {
	return cases.Fold().String(strings.TrimSpace(unit))
}

// DisplayName recorta y capitaliza la primera letra, para nombres de cara al
// usuario (ítems del menú en la carta y la boleta).
func DisplayName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r)) + strings.ToLower(name[size:])
}
