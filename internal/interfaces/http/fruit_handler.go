package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/application/usecase"
	"github.com/jhoicas/fruteria-api/internal/domain"
)

// FruitHandler maneja las peticiones HTTP para el almacén de frutas.
type FruitHandler struct {
	uc *usecase.FruitUseCase
}

// NewFruitHandler construye el handler.
func NewFruitHandler(uc *usecase.FruitUseCase) *FruitHandler {
	return &FruitHandler{uc: uc}
}

// Create godoc
// @Summary      Crear fruta
// @Tags         fruits
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFruitRequest  true  "Datos de la fruta"
// @Success      201   {object}  dto.FruitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fruits [post]
func (h *FruitHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateFruitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Find godoc
// @Summary      Obtener fruta por nombre
// @Tags         fruits
// @Produce      json
// @Param        name  path  string  true  "Nombre de la fruta"
// @Success      200   {object}  dto.FruitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fruits/{name} [get]
func (h *FruitHandler) Find(c *fiber.Ctx) error {
	out, err := h.uc.Find(c.Params("name"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Store godoc
// @Summary      Almacenar stock de una fruta
// @Tags         fruits
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre de la fruta"
// @Param        body  body  dto.AmountRequest  true  "Cantidad a almacenar"
// @Success      200   {object}  dto.FruitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fruits/{name}/store [post]
func (h *FruitHandler) Store(c *fiber.Ctx) error {
	var in dto.AmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Store(c.Params("name"), in.Amount)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Remove godoc
// @Summary      Retirar stock de una fruta
// @Tags         fruits
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre de la fruta"
// @Param        body  body  dto.AmountRequest  true  "Cantidad a retirar"
// @Success      200   {object}  dto.FruitResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/fruits/{name}/remove [post]
func (h *FruitHandler) Remove(c *fiber.Ctx) error {
	var in dto.AmountRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Remove(c.Params("name"), in.Amount)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar descripción y límite
// @Tags         fruits
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Nombre de la fruta"
// @Param        body  body  dto.UpdateFruitRequest  true  "Datos a reemplazar"
// @Success      200   {object}  dto.FruitResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/fruits/{name} [put]
func (h *FruitHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateFruitRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Params("name"), in)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar fruta
// @Description  Sin force=true solo se permite con stock en cero. Devuelve el snapshot previo al borrado.
// @Tags         fruits
// @Produce      json
// @Param        name   path   string  true   "Nombre de la fruta"
// @Param        force  query  bool    false  "Forzar borrado con stock"
// @Success      200    {object}  dto.FruitResponse
// @Failure      404    {object}  dto.ErrorResponse
// @Failure      409    {object}  dto.ErrorResponse
// @Router       /api/fruits/{name} [delete]
func (h *FruitHandler) Delete(c *fiber.Ctx) error {
	force := c.QueryBool("force", false)
	out, err := h.uc.Delete(c.Params("name"), force)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// errorJSON traduce errores de dominio a respuestas HTTP. Los mensajes de
// las fallas de validación y de estado llegan tal cual al llamador.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicateName):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_NAME", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidDescription):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DESCRIPTION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidAmount):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_AMOUNT", Message: err.Error()})
	case errors.Is(err, domain.ErrCapacityExceeded):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CAPACITY_EXCEEDED", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrNonEmptyStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NON_EMPTY_STOCK", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
