package inventory_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/internal/application/inventory"
	"github.com/jhoicas/restaurante-pos/internal/domain"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

func newUseCase() (*inventory.UseCase, *entity.Stock) {
	var mu sync.Mutex
	stock := entity.NewStock()
	return inventory.NewUseCase(&mu, stock, logger.Nop()), stock
}

func TestAddIngredient(t *testing.T) {
	uc, stock := newUseCase()

	require.NoError(t, uc.AddIngredient("Papas", "kg", decimal.NewFromInt(10)))
	ing, ok := stock.Get("papas")
	require.True(t, ok)
	assert.True(t, ing.Quantity.Equal(decimal.NewFromInt(10)))

	err := uc.AddIngredient("papas", "kg", decimal.Zero)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)
}

func TestRemoveIngredient(t *testing.T) {
	uc, _ := newUseCase()
	require.NoError(t, uc.AddIngredient("palta", "unidades", decimal.NewFromInt(3)))

	require.NoError(t, uc.RemoveIngredient("PALTA"))
	require.ErrorIs(t, uc.RemoveIngredient("palta"), domain.ErrNotFound)
}

func TestListIngredients_Ordenado(t *testing.T) {
	uc, _ := newUseCase()
	require.NoError(t, uc.AddIngredient("tomate", "unidades", decimal.NewFromInt(2)))
	require.NoError(t, uc.AddIngredient("lechuga", "unidades", decimal.NewFromInt(1)))

	list := uc.ListIngredients()
	require.Len(t, list, 2)
	assert.Equal(t, "lechuga", list[0].Name)
	assert.Equal(t, "tomate", list[1].Name)
}

func TestBulkLoad_BestEffort(t *testing.T) {
	uc, stock := newUseCase()
	require.NoError(t, uc.AddIngredient("tomate", "unidades", decimal.NewFromInt(4)))

	report := uc.BulkLoad([]inventory.ImportRow{
		{Line: 1, Name: "papas", Unit: "kg", Quantity: "12.5"},
		{Line: 2, Name: "pepsi", Unit: "unidades", Quantity: "abc"},       // no numérico
		{Line: 3, Name: "tomate", Unit: "kg", Quantity: "3"},              // unidad en conflicto
		{Line: 4, Name: "vienesa", Unit: "unidades", Quantity: "-2"},      // cantidad inválida
		{Line: 5, Name: "pan de completo", Unit: "unidades", Quantity: "8"},
	})

	assert.Equal(t, 2, report.Loaded, "papas y pan de completo")
	require.Len(t, report.Skipped, 3, "las filas malas se reportan y se saltan, no abortan")
	assert.Equal(t, 2, report.Skipped[0].Line)
	assert.Equal(t, 3, report.Skipped[1].Line)
	assert.Equal(t, 4, report.Skipped[2].Line)

	// La fila con unidad en conflicto no mutó la entrada existente.
	tomate, _ := stock.Get("tomate")
	assert.Equal(t, "unidades", tomate.Unit)
	assert.True(t, tomate.Quantity.Equal(decimal.NewFromInt(4)))

	papas, ok := stock.Get("papas")
	require.True(t, ok)
	assert.True(t, papas.Quantity.Equal(decimal.RequireFromString("12.5")))
}
