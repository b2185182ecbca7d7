package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-reventa/internal/application/analytics"
)

// LedgerHandler expone los totales y la serie de capital.
type LedgerHandler struct {
	svc *analytics.Service
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(svc *analytics.Service) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// Totals godoc
// @Summary      Totales financieros
// @Description  Capital actual, compras, ventas, ganancia, valor del inventario y movimientos ordenados por fecha.
// @Tags         ledger
// @Produce      json
// @Param        userID  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.TotalsResponse
// @Router       /api/users/{userID}/totals [get]
func (h *LedgerHandler) Totals(c *fiber.Ctx) error {
	out, err := h.svc.Totals(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Series godoc
// @Summary      Serie de capital
// @Tags         ledger
// @Produce      json
// @Param        userID  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.SeriesResponse
// @Router       /api/users/{userID}/series [get]
func (h *LedgerHandler) Series(c *fiber.Ctx) error {
	out, err := h.svc.Series(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
