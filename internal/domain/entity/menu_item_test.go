package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
)

func mustItem(t *testing.T, name string, price int64, recipe entity.Recipe) *entity.MenuItem {
	t.Helper()
	item, err := entity.NewMenuItem(name, decimal.NewFromInt(price), recipe, "")
	require.NoError(t, err)
	return item
}

func TestNewMenuItem_NormalizaReceta(t *testing.T) {
	item := mustItem(t, "  completo ", 1800, entity.Recipe{
		" Vienesa ": d("1"),
		"TOMATE":    d("1"),
	})

	assert.Equal(t, "Completo", item.Name, "nombre de cara al usuario capitalizado")
	assert.True(t, item.Recipe["vienesa"].Equal(d("1")), "claves de receta normalizadas")
	assert.True(t, item.Recipe["tomate"].Equal(d("1")))
}

func TestNewMenuItem_PrecioNegativo(t *testing.T) {
	_, err := entity.NewMenuItem("Pepsi", decimal.NewFromInt(-1), entity.Recipe{"pepsi": d("1")}, "")
	require.Error(t, err)
}

func TestMenuItemIsAvailable_ActualizaCacheSinMutarStock(t *testing.T) {
	stock := newStockWith(t, map[string]string{"papas": "9"})
	item := mustItem(t, "Papas fritas", 500, entity.Recipe{"papas": d("5")})

	assert.True(t, item.IsAvailable(stock, 1))
	assert.True(t, item.Available)

	assert.False(t, item.IsAvailable(stock, 2), "para 2 unidades se necesitan 10 papas")
	assert.False(t, item.Available, "la caché refleja el último chequeo")

	papas, _ := stock.Get("papas")
	assert.True(t, papas.Quantity.Equal(d("9")), "el chequeo de disponibilidad nunca muta el stock")
}

func TestMenuItemConsumeFor(t *testing.T) {
	stock := newStockWith(t, map[string]string{"papas": "12"})
	item := mustItem(t, "Papas fritas", 500, entity.Recipe{"papas": d("5")})

	require.NoError(t, item.ConsumeFor(stock, 2))
	papas, _ := stock.Get("papas")
	assert.True(t, papas.Quantity.Equal(d("2")))
}
