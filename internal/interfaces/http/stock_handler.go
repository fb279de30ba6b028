package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/restaurante-pos/internal/application/dto"
	"github.com/jhoicas/restaurante-pos/internal/application/inventory"
	"github.com/jhoicas/restaurante-pos/internal/domain"
	"github.com/jhoicas/restaurante-pos/internal/infrastructure/csvimport"
)

// StockHandler maneja las peticiones HTTP del inventario de ingredientes.
type StockHandler struct {
	uc *inventory.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// AddIngredient godoc
// @Summary      Agregar stock de un ingrediente
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddIngredientRequest  true  "name, unit, quantity (> 0)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/stock/ingredients [post]
func (h *StockHandler) AddIngredient(c *fiber.Ctx) error {
	var in dto.AddIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.AddIngredient(in.Name, in.Unit, in.Quantity); err != nil {
		if errors.Is(err, domain.ErrInvalidQuantity) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: err.Error()})
		}
		if errors.Is(err, domain.ErrUnitMismatch) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "UNIT_MISMATCH", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "stock agregado"})
}

// ListIngredients godoc
// @Summary      Listar el inventario
// @Tags         stock
// @Produce      json
// @Success      200  {array}  dto.IngredientDTO
// @Router       /api/stock/ingredients [get]
func (h *StockHandler) ListIngredients(c *fiber.Ctx) error {
	return c.JSON(dto.FromIngredients(h.uc.ListIngredients()))
}

// RemoveIngredient godoc
// @Summary      Eliminar un ingrediente del inventario
// @Tags         stock
// @Produce      json
// @Param        name  path  string  true  "nombre del ingrediente"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/ingredients/{name} [delete]
func (h *StockHandler) RemoveIngredient(c *fiber.Ctx) error {
	name, err := decodeParam(c, "name")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAM", Message: "nombre inválido"})
	}
	if err := h.uc.RemoveIngredient(name); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ingrediente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "ingrediente eliminado"})
}

// ImportCSV godoc
// @Summary      Carga masiva de stock desde CSV
// @Description  Filas `nombre,unidad,cantidad`. La carga es best-effort: las
//
//	filas malformadas o con unidad en conflicto se reportan y se saltan.
//
// @Tags         stock
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "archivo CSV"
// @Success      200  {object}  inventory.BulkLoadReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock/import [post]
func (h *StockHandler) ImportCSV(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "falta el archivo CSV (campo 'file')"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "no se pudo abrir el archivo"})
	}
	defer file.Close()

	rows, rowErrs, err := csvimport.Parse(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CSV", Message: err.Error()})
	}
	report := h.uc.BulkLoad(rows)
	report.Skipped = append(rowErrs, report.Skipped...)
	return c.JSON(report)
}
