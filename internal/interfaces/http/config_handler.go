package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/application/records"
)

// ConfigHandler maneja la configuración financiera del usuario.
type ConfigHandler struct {
	svc *records.Service
}

// NewConfigHandler construye el handler.
func NewConfigHandler(svc *records.Service) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

// Get godoc
// @Summary      Obtener configuración financiera
// @Tags         config
// @Produce      json
// @Param        userID  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.ConfigResponse
// @Router       /api/users/{userID}/config [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	out, err := h.svc.GetConfig(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Put godoc
// @Summary      Guardar configuración financiera
// @Description  Capital inicial y fecha de inicio (vacía = hoy).
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        userID  path  string             true  "ID del usuario"
// @Param        body    body  dto.ConfigRequest  true  "Configuración"
// @Success      200  {object}  dto.ConfigResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users/{userID}/config [put]
func (h *ConfigHandler) Put(c *fiber.Ctx) error {
	var in dto.ConfigRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.svc.SaveConfig(c.UserContext(), GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
