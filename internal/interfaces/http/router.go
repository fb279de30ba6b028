package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-pos/internal/application/inventory"
	"github.com/jhoicas/restaurante-pos/internal/application/menuuc"
	"github.com/jhoicas/restaurante-pos/internal/application/orders"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	StockUC *inventory.UseCase
	MenuUC  *menuuc.UseCase
	OrderUC *orders.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Stock de ingredientes
	stock := api.Group("/stock")
	stockHandler := NewStockHandler(deps.StockUC)
	stock.Post("/ingredients", stockHandler.AddIngredient)
	stock.Get("/ingredients", stockHandler.ListIngredients)
	stock.Delete("/ingredients/:name", stockHandler.RemoveIngredient)
	stock.Post("/import", stockHandler.ImportCSV)

	// Carta
	menuGroup := api.Group("/menu")
	menuHandler := NewMenuHandler(deps.MenuUC)
	menuGroup.Get("/", menuHandler.ListMenu)
	menuGroup.Get("/carta.pdf", menuHandler.CartaPDF)

	// Pedidos
	ordersGroup := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/:id", orderHandler.Get)
	ordersGroup.Post("/:id/items", orderHandler.AddItem)
	ordersGroup.Delete("/:id/items/:item", orderHandler.RemoveItem)
	ordersGroup.Post("/:id/checkout", orderHandler.Checkout)
	ordersGroup.Post("/:id/cancel", orderHandler.Cancel)
}

// decodeParam lee un parámetro de ruta que puede venir URL-escapado
// (los nombres de ingredientes e ítems llevan espacios y tildes).
func decodeParam(c *fiber.Ctx, name string) (string, error) {
	return url.PathUnescape(c.Params(name))
}
