package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/application/records"
)

// BackupHandler exporta e importa el respaldo JSON completo.
type BackupHandler struct {
	svc *records.Service
}

// NewBackupHandler construye el handler.
func NewBackupHandler(svc *records.Service) *BackupHandler {
	return &BackupHandler{svc: svc}
}

// Export godoc
// @Summary      Exportar respaldo
// @Tags         backup
// @Produce      json
// @Param        userID  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.Backup
// @Router       /api/users/{userID}/backup [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	out, err := h.svc.Export(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Import godoc
// @Summary      Importar respaldo
// @Description  Reemplaza todos los registros del usuario. Requiere config y products.
// @Tags         backup
// @Accept       json
// @Produce      json
// @Param        userID  path  string      true  "ID del usuario"
// @Param        body    body  dto.Backup  true  "Respaldo"
// @Success      200  {object}  dto.ImportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users/{userID}/backup [put]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	var in dto.Backup
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	snap, err := h.svc.Import(c.UserContext(), GetUserID(c), &in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ImportResponse{
		Products:    len(snap.Products),
		Sales:       len(snap.Sales),
		Adjustments: len(snap.Adjustments),
	})
}
