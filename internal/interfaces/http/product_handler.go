package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/application/records"
)

// ProductHandler maneja las compras de productos.
type ProductHandler struct {
	svc *records.Service
}

// NewProductHandler construye el handler.
func NewProductHandler(svc *records.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// Create godoc
// @Summary      Registrar compra de producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        userID  path  string                    true  "ID del usuario"
// @Param        body    body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users/{userID}/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.AddProduct(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar productos con stock
// @Tags         products
// @Produce      json
// @Param        userID  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.ListResponse[dto.ProductResponse]
// @Router       /api/users/{userID}/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	items, err := h.svc.ListProducts(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}
