package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/orders"
	"github.com/jhoicas/restaurante-pos/internal/domain"
)

// OrderHandler maneja las peticiones HTTP de pedidos: la capa de UI solo
// invoca agregar/quitar/checkout/cancelar y muestra el resultado.
type OrderHandler struct {
	uc *orders.UseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.UseCase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// Create godoc
// @Summary      Abrir un pedido nuevo
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  false  "mesa o etiqueta del cliente"
// @Success      201  {object}  dto.OrderDTO
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	_ = c.BodyParser(&in) // body vacío = pedido sin mesa
	order := h.uc.CreateOrder(in.Table)
	return c.Status(fiber.StatusCreated).JSON(dto.FromOrder(order))
}

// Get godoc
// @Summary      Consultar un pedido
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.OrderDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) Get(c *fiber.Ctx) error {
	order, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "pedido no encontrado"})
	}
	return c.JSON(dto.FromOrder(order))
}

// AddItem godoc
// @Summary      Agregar un ítem al pedido
// @Description  Si el ítem ya está en el pedido, incrementa su línea en lugar
//
//	de duplicarla.
//
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del pedido"
// @Param        body  body  dto.AddItemRequest  true  "item, quantity (default 1)"
// @Success      200  {object}  dto.OrderDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/items [post]
func (h *OrderHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	qty := int64(1)
	if in.Quantity != nil {
		qty = *in.Quantity
	}
	order, err := h.uc.AddItem(c.Params("id"), in.Item, qty)
	if err != nil {
		return h.mapOrderError(c, err)
	}
	return c.JSON(dto.FromOrder(order))
}

// RemoveItem godoc
// @Summary      Quitar un ítem del pedido
// @Description  Sin `quantity` (o con cantidad >= a la línea) elimina la línea
//
//	completa. Quitar un ítem ausente no es error.
//
// @Tags         orders
// @Produce      json
// @Param        id        path   string  true   "ID del pedido"
// @Param        item      path   string  true   "nombre del ítem"
// @Param        quantity  query  int     false  "unidades a quitar"
// @Success      200  {object}  dto.OrderDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/items/{item} [delete]
func (h *OrderHandler) RemoveItem(c *fiber.Ctx) error {
	item, err := decodeParam(c, "item")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "ítem inválido"})
	}
	var qty *int64
	if raw := c.Query("quantity"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "quantity no numérico"})
		}
		qty = &n
	}
	order, err := h.uc.RemoveItem(c.Params("id"), item, qty)
	if err != nil {
		return h.mapOrderError(c, err)
	}
	return c.JSON(dto.FromOrder(order))
}

// Checkout godoc
// @Summary      Cobrar el pedido
// @Description  Protocolo de dos fases: valida todas las líneas contra el
//
//	stock y solo si todas pasan descuenta los ingredientes y genera
//	la boleta. Con faltantes responde 409 con la lista completa y
//	el stock queda intacto.
//
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.CheckoutResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ShortageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/checkout [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	result, err := h.uc.Checkout(c.Context(), c.Params("id"))
	if err != nil {
		var shortage *domain.ShortageError
		if errors.As(err, &shortage) {
			return c.Status(fiber.StatusConflict).JSON(dto.FromShortageError(shortage))
		}
		if errors.Is(err, domain.ErrConsistency) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "CONSISTENCY", Message: err.Error()})
		}
		return h.mapOrderError(c, err)
	}
	return c.JSON(dto.FromCheckout(result))
}

// Cancel godoc
// @Summary      Anular un pedido abierto
// @Description  Solo desde OPEN; no toca el stock porque nada fue descontado.
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("id")); err != nil {
		return h.mapOrderError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "pedido anulado"})
}

// mapOrderError traduce errores de dominio a códigos HTTP.
func (h *OrderHandler) mapOrderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrOrderNotOpen):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_NOT_OPEN", Message: err.Error()})
	case errors.Is(err, domain.ErrOrderEmpty):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ORDER_EMPTY", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
