package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/application/records"
)

// AdjustmentHandler maneja los ajustes de capital.
type AdjustmentHandler struct {
	svc *records.Service
}

// NewAdjustmentHandler construye el handler.
func NewAdjustmentHandler(svc *records.Service) *AdjustmentHandler {
	return &AdjustmentHandler{svc: svc}
}

// Create godoc
// @Summary      Crear ajuste de capital
// @Tags         adjustments
// @Accept       json
// @Produce      json
// @Param        userID  path  string                 true  "ID del usuario"
// @Param        body    body  dto.AdjustmentRequest  true  "Ajuste (monto con signo)"
// @Success      201  {object}  dto.AdjustmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users/{userID}/adjustments [post]
func (h *AdjustmentHandler) Create(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.ID = ""
	out, err := h.svc.SaveAdjustment(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar ajuste de capital
// @Tags         adjustments
// @Accept       json
// @Produce      json
// @Param        userID  path  string                 true  "ID del usuario"
// @Param        id      path  string                 true  "ID del ajuste"
// @Param        body    body  dto.AdjustmentRequest  true  "Ajuste"
// @Success      200  {object}  dto.AdjustmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{userID}/adjustments/{id} [put]
func (h *AdjustmentHandler) Update(c *fiber.Ctx) error {
	var in dto.AdjustmentRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	in.ID = utils.CopyString(c.Params("id"))
	out, err := h.svc.SaveAdjustment(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar ajuste de capital
// @Tags         adjustments
// @Param        userID  path  string  true  "ID del usuario"
// @Param        id      path  string  true  "ID del ajuste"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{userID}/adjustments/{id} [delete]
func (h *AdjustmentHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.DeleteAdjustment(c.UserContext(), GetUserID(c), utils.CopyString(c.Params("id"))); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary      Listar ajustes de capital
// @Tags         adjustments
// @Produce      json
// @Param        userID  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.ListResponse[dto.AdjustmentResponse]
// @Router       /api/users/{userID}/adjustments [get]
func (h *AdjustmentHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.ListAdjustments(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}
