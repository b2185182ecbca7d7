package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-reventa/internal/application/analytics"
	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/application/export"
)

// ReportHandler reportes de rentabilidad y descargas (CSV, PDF).
type ReportHandler struct {
	analytics *analytics.Service
	export    *export.Service
}

// NewReportHandler construye el handler.
func NewReportHandler(a *analytics.Service, e *export.Service) *ReportHandler {
	return &ReportHandler{analytics: a, export: e}
}

// Products godoc
// @Summary      Rentabilidad por producto
// @Tags         reports
// @Produce      json
// @Param        userID  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.ListResponse[dto.ProductReportItem]
// @Router       /api/users/{userID}/reports/products [get]
func (h *ReportHandler) Products(c *fiber.Ctx) error {
	items, err := h.analytics.ProductReport(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.NewList(items))
}

// ProductsCSV godoc
// @Summary      Rentabilidad por producto (CSV)
// @Tags         reports
// @Produce      text/csv
// @Param        userID    path   string  true   "ID del usuario"
// @Param        encoding  query  string  false  "utf-8 (defecto) o windows-1252"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users/{userID}/reports/products.csv [get]
func (h *ReportHandler) ProductsCSV(c *fiber.Ctx) error {
	enc, err := export.ParseEncoding(c.Query("encoding"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.export.ProductReportCSV(c.UserContext(), GetUserID(c), enc)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, out, enc.ContentType(), "productos.csv")
}

// MovementsCSV godoc
// @Summary      Movimientos (CSV)
// @Tags         reports
// @Produce      text/csv
// @Param        userID    path   string  true   "ID del usuario"
// @Param        encoding  query  string  false  "utf-8 (defecto) o windows-1252"
// @Success      200  {file}  file
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/users/{userID}/reports/movements.csv [get]
func (h *ReportHandler) MovementsCSV(c *fiber.Ctx) error {
	enc, err := export.ParseEncoding(c.Query("encoding"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	out, err := h.export.MovementsCSV(c.UserContext(), GetUserID(c), enc)
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, out, enc.ContentType(), "movimientos.csv")
}

// SummaryPDF godoc
// @Summary      Resumen financiero (PDF)
// @Tags         reports
// @Produce      application/pdf
// @Param        userID  path  string  true  "ID del usuario"
// @Success      200  {file}  file
// @Router       /api/users/{userID}/reports/summary.pdf [get]
func (h *ReportHandler) SummaryPDF(c *fiber.Ctx) error {
	out, err := h.export.SummaryPDF(c.UserContext(), GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, out, "application/pdf", "resumen.pdf")
}

func sendFile(c *fiber.Ctx, body []byte, contentType, filename string) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}
