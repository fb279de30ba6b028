package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/restaurante-pos/internal/application/inventory"
	"github.com/jhoicas/restaurante-pos/internal/application/menuuc"
	"github.com/jhoicas/restaurante-pos/internal/application/orders"
	"github.com/jhoicas/restaurante-pos/internal/domain/entity"
	"github.com/jhoicas/restaurante-pos/internal/domain/menu"
	apphttp "github.com/jhoicas/restaurante-pos/internal/interfaces/http"
	"github.com/jhoicas/restaurante-pos/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubBoletaGen evita generar un PDF real en los tests del handler.
type stubBoletaGen struct{}

func (stubBoletaGen) GenerateBoletaPDF(context.Context, *entity.Order, orders.RestaurantInfo, orders.BoletaTotals) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

type stubCartaGen struct{}

func (stubCartaGen) GenerateCartaPDF(context.Context, []entity.MenuItem) ([]byte, error) {
	return []byte("%PDF-stub"), nil
}

// buildTestApp arma la aplicación Fiber completa con estado en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	var mu sync.Mutex
	stock := entity.NewStock()
	catalog := menu.DefaultCarta()
	log := logger.Nop()
	outDir := t.TempDir()

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		StockUC: inventory.NewUseCase(&mu, stock, log),
		MenuUC:  menuuc.NewUseCase(&mu, stock, catalog, stubCartaGen{}, outDir, log),
		OrderUC: orders.NewUseCase(
			&mu, stock, catalog, stubBoletaGen{},
			orders.RestaurantInfo{Name: "RESTAURANTE"},
			decimal.RequireFromString("0.19"), outDir, log,
		),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: stock → pedido → checkout
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujoCompletoDePedido(t *testing.T) {
	app := buildTestApp(t)

	// Crear el pedido y agregar 2 × Papas fritas (receta: 5 papas c/u).
	resp, order := doJSON(t, app, http.MethodPost, "/api/orders", map[string]any{"table": "mesa 1"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID := order["id"].(string)
	require.NotEmpty(t, orderID)

	resp, _ = doJSON(t, app, http.MethodPost, "/api/orders/"+orderID+"/items",
		map[string]any{"item": "papas fritas", "quantity": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Sin stock el checkout responde 409 con la lista de faltantes.
	resp, conflict := doJSON(t, app, http.MethodPost, "/api/orders/"+orderID+"/checkout", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", conflict["code"])
	require.NotEmpty(t, conflict["shortages"])

	// Reponer papas y reintentar: el pedido volvió a OPEN.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/stock/ingredients",
		map[string]any{"name": "papas", "unit": "unidades", "quantity": 50})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, checkout := doJSON(t, app, http.MethodPost, "/api/orders/"+orderID+"/checkout", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1000", checkout["total"], "2 × $500")
	assert.Equal(t, "840", checkout["neto"])
	assert.Equal(t, "160", checkout["iva"])
	assert.NotEmpty(t, checkout["boleta_path"])

	// El stock quedó debitado: 50 - 10 = 40.
	req := httptest.NewRequest(http.MethodGet, "/api/stock/ingredients", nil)
	listResp, err := app.Test(req, -1)
	require.NoError(t, err)
	var ingredients []map[string]any
	require.NoError(t, json.NewDecoder(listResp.Body).Decode(&ingredients))
	require.Len(t, ingredients, 1)
	assert.Equal(t, "40", ingredients[0]["quantity"])

	// Un pedido COMMITTED ya no acepta mutaciones.
	resp, _ = doJSON(t, app, http.MethodPost, "/api/orders/"+orderID+"/items",
		map[string]any{"item": "pepsi"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestAgregarStockInvalido(t *testing.T) {
	app := buildTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/stock/ingredients",
		map[string]any{"name": "papas", "unit": "kg", "quantity": 0})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_QUANTITY", body["code"])

	resp, _ = doJSON(t, app, http.MethodPost, "/api/stock/ingredients",
		map[string]any{"name": "tomate", "unit": "unidades", "quantity": 3})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body = doJSON(t, app, http.MethodPost, "/api/stock/ingredients",
		map[string]any{"name": "tomate", "unit": "kg", "quantity": 3})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "UNIT_MISMATCH", body["code"])
}

func TestMenuConDisponibilidad(t *testing.T) {
	app := buildTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/stock/ingredients",
		map[string]any{"name": "pepsi", "unit": "unidades", "quantity": 1})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/menu/", nil)
	menuResp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, menuResp.StatusCode)

	var items []map[string]any
	require.NoError(t, json.NewDecoder(menuResp.Body).Decode(&items))
	require.Len(t, items, 7)

	byName := map[string]bool{}
	for _, item := range items {
		byName[item["name"].(string)] = item["available"].(bool)
	}
	assert.True(t, byName["Pepsi"], "hay pepsi en stock")
	assert.False(t, byName["Hamburguesa"], "sin ingredientes no hay hamburguesa")
}

func TestCancelarPedido(t *testing.T) {
	app := buildTestApp(t)

	_, order := doJSON(t, app, http.MethodPost, "/api/orders", nil)
	orderID := order["id"].(string)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/orders/"+orderID+"/cancel", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodPost, "/api/orders/"+orderID+"/cancel", nil)
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "ORDER_NOT_OPEN", body["code"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, "un pedido anulado sigue consultable")
}
