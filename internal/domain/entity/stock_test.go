package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/internal/domain"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newStockWith(t *testing.T, rows map[string]string) *entity.Stock {
	t.Helper()
	stock := entity.NewStock()
	for name, qty := range rows {
		require.NoError(t, stock.Add(name, "unidades", d(qty)))
	}
	return stock
}

func TestStockAdd_CreaYAcumula(t *testing.T) {
	stock := entity.NewStock()

	require.NoError(t, stock.Add("Papas", "kg", d("3")))
	require.NoError(t, stock.Add("  papas ", "KG", d("2")), "nombre y unidad deben normalizarse")

	ing, ok := stock.Get("PAPAS")
	require.True(t, ok)
	assert.Equal(t, "papas", ing.Name)
	assert.Equal(t, "kg", ing.Unit)
	assert.True(t, ing.Quantity.Equal(d("5")), "3 + 2 deben acumularse en una sola entrada")
	assert.Equal(t, 1, stock.Len())
}

func TestStockAdd_CantidadInvalida(t *testing.T) {
	stock := newStockWith(t, map[string]string{"tomate": "4"})

	for _, qty := range []string{"0", "-1"} {
		err := stock.Add("tomate", "unidades", d(qty))
		require.ErrorIs(t, err, domain.ErrInvalidQuantity, "cantidad %s debe rechazarse", qty)
	}

	ing, _ := stock.Get("tomate")
	assert.True(t, ing.Quantity.Equal(d("4")), "un rechazo no debe mutar la cantidad")
}

func TestStockAdd_UnidadEnConflicto(t *testing.T) {
	stock := newStockWith(t, map[string]string{"tomate": "4"})

	err := stock.Add("tomate", "kg", d("3"))
	require.ErrorIs(t, err, domain.ErrUnitMismatch)

	ing, ok := stock.Get("tomate")
	require.True(t, ok)
	assert.Equal(t, "unidades", ing.Unit, "la unidad de una entrada existente es inmutable")
	assert.True(t, ing.Quantity.Equal(d("4")), "la cantidad almacenada no debe cambiar")
}

func TestStockRemove_Idempotente(t *testing.T) {
	stock := newStockWith(t, map[string]string{"palta": "2"})

	require.NoError(t, stock.Remove("Palta"))
	assert.Equal(t, 0, stock.Len())

	// Remover lo ausente reporta NotFound pero no altera nada ni explota.
	err := stock.Remove("palta")
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, stock.Len())
}

func TestStockCanFulfill_IngredienteAusente(t *testing.T) {
	stock := newStockWith(t, map[string]string{"pan de completo": "10"})

	req := entity.Requirements{"pan de completo": d("1"), "vienesa": d("1")}
	assert.False(t, stock.CanFulfill(req), "un ingrediente ausente hace fallar el chequeo")

	shortages := stock.Shortages(req)
	require.Len(t, shortages, 1)
	assert.Equal(t, "vienesa", shortages[0].Ingredient)
	assert.True(t, shortages[0].Available.IsZero())
	assert.True(t, shortages[0].Missing().Equal(d("1")))
}

func TestStockConsume_SinDebitoParcial(t *testing.T) {
	stock := newStockWith(t, map[string]string{"papas": "3", "pepsi": "10"})

	// papas no alcanza: nada debe descontarse, ni siquiera pepsi que sí alcanza.
	err := stock.Consume(entity.Requirements{"papas": d("5"), "pepsi": d("2")})

	var shortage *domain.ShortageError
	require.ErrorAs(t, err, &shortage)
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	require.Len(t, shortage.Shortages, 1)
	assert.Equal(t, "papas", shortage.Shortages[0].Ingredient)

	papas, _ := stock.Get("papas")
	pepsi, _ := stock.Get("pepsi")
	assert.True(t, papas.Quantity.Equal(d("3")), "papas debe quedar exactamente como antes")
	assert.True(t, pepsi.Quantity.Equal(d("10")), "pepsi debe quedar exactamente como antes")
}

func TestStockConsume_ConservaEntradasEnCero(t *testing.T) {
	stock := newStockWith(t, map[string]string{"manjar": "2"})

	require.NoError(t, stock.Consume(entity.Requirements{"manjar": d("2")}))

	ing, ok := stock.Get("manjar")
	require.True(t, ok, "la entrada en cero se conserva, no se borra")
	assert.True(t, ing.Quantity.IsZero())

	// Cantidad cero y ausencia se tratan igual para la disponibilidad.
	assert.False(t, stock.CanFulfill(entity.Requirements{"manjar": d("1")}))
	assert.True(t, stock.CanFulfill(entity.Requirements{"manjar": d("0")}))
}

func TestStockConsumeRestore_Conservacion(t *testing.T) {
	stock := newStockWith(t, map[string]string{"lechuga": "7", "tomate": "5"})
	req := entity.Requirements{"lechuga": d("3"), "tomate": d("2")}

	require.NoError(t, stock.Consume(req))
	require.NoError(t, stock.Restore(req))

	lechuga, _ := stock.Get("lechuga")
	tomate, _ := stock.Get("tomate")
	assert.True(t, lechuga.Quantity.Equal(d("7")), "consume+restore debe devolver el valor original")
	assert.True(t, tomate.Quantity.Equal(d("5")), "consume+restore debe devolver el valor original")
}

func TestStockRestore_EntradaEliminada(t *testing.T) {
	stock := newStockWith(t, map[string]string{"palta": "2", "pan de completo": "4"})
	require.NoError(t, stock.Remove("palta"))

	// Sin unidad conocida no se inventa la entrada; el resto sí se repone.
	err := stock.Restore(entity.Requirements{"palta": d("1"), "pan de completo": d("1")})
	require.ErrorIs(t, err, domain.ErrNotFound)
	pan, _ := stock.Get("pan de completo")
	assert.True(t, pan.Quantity.Equal(d("5")))

	// Con la unidad fuera de banda, la entrada se recrea.
	require.NoError(t, stock.RestoreWithUnits(
		entity.Requirements{"palta": d("1")},
		map[string]string{"palta": "unidades"},
	))
	palta, ok := stock.Get("palta")
	require.True(t, ok)
	assert.Equal(t, "unidades", palta.Unit)
	assert.True(t, palta.Quantity.Equal(d("1")))
}

func TestRequirements_Scale(t *testing.T) {
	req := entity.Requirements{"papas": d("5"), "sal": d("0.5")}
	scaled := req.Scale(3)

	assert.True(t, scaled["papas"].Equal(d("15")))
	assert.True(t, scaled["sal"].Equal(d("1.5")))
	assert.True(t, req["papas"].Equal(d("5")), "Scale es una función pura")
}
