package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/application/records"
)

// SaleHandler maneja las ventas.
type SaleHandler struct {
	svc *records.Service
}

// NewSaleHandler construye el handler.
func NewSaleHandler(svc *records.Service) *SaleHandler {
	return &SaleHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Falla con 404 si el producto no existe y con 409 si la cantidad supera el stock.
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        userID  path  string                 true  "ID del usuario"
// @Param        body    body  dto.CreateSaleRequest  true  "Datos de la venta"
// @Success      201  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{userID}/sales [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.AddSale(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         sales
// @Produce      json
// @Param        userID  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.ListResponse[dto.SaleResponse]
// @Router       /api/users/{userID}/sales [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.ListSales(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}
