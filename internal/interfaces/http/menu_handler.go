package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/menuuc"
)

// MenuHandler maneja las peticiones HTTP de la carta.
type MenuHandler struct {
	uc *menuuc.UseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *menuuc.UseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// ListMenu godoc
// @Summary      Listar la carta con disponibilidad
// @Description  La bandera `available` es consultiva (para habilitar o
//
//	deshabilitar botones de compra); el checkout re-valida siempre.
//
// @Tags         menu
// @Produce      json
// @Success      200  {array}  dto.MenuItemDTO
// @Router       /api/menu [get]
func (h *MenuHandler) ListMenu(c *fiber.Ctx) error {
	return c.JSON(dto.FromMenuItems(h.uc.ListMenu()))
}

// CartaPDF godoc
// @Summary      Generar la carta en PDF
// @Tags         menu
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/menu/carta.pdf [get]
func (h *MenuHandler) CartaPDF(c *fiber.Ctx) error {
	path, err := h.uc.CartaPDF(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "PDF_ERROR", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"path": path})
}
