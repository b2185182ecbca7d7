package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/finanzas-reventa/internal/application/analytics"
	"github.com/jhoicas/finanzas-reventa/internal/application/export"
	"github.com/jhoicas/finanzas-reventa/internal/application/records"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Records   *records.Service
	Analytics *analytics.Service
	Export    *export.Service
}

// Router registra las rutas de la API. Todas cuelgan de /api/users/:userID.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	users := api.Group("/users/:userID")
	scope := UserScope()

	configHandler := NewConfigHandler(deps.Records)
	users.Get("/config", scope, configHandler.Get)
	users.Put("/config", scope, configHandler.Put)

	productHandler := NewProductHandler(deps.Records)
	users.Get("/products", scope, productHandler.List)
	users.Post("/products", scope, productHandler.Create)

	saleHandler := NewSaleHandler(deps.Records)
	users.Get("/sales", scope, saleHandler.List)
	users.Post("/sales", scope, saleHandler.Create)

	adjustmentHandler := NewAdjustmentHandler(deps.Records)
	users.Get("/adjustments", scope, adjustmentHandler.List)
	users.Post("/adjustments", scope, adjustmentHandler.Create)
	users.Put("/adjustments/:id", scope, adjustmentHandler.Update)
	users.Delete("/adjustments/:id", scope, adjustmentHandler.Delete)

	ledgerHandler := NewLedgerHandler(deps.Analytics)
	users.Get("/totals", scope, ledgerHandler.Totals)
	users.Get("/series", scope, ledgerHandler.Series)

	reportHandler := NewReportHandler(deps.Analytics, deps.Export)
	users.Get("/reports/products", scope, reportHandler.Products)
	users.Get("/reports/products.csv", scope, reportHandler.ProductsCSV)
	users.Get("/reports/movements.csv", scope, reportHandler.MovementsCSV)
	users.Get("/reports/summary.pdf", scope, reportHandler.SummaryPDF)

	backupHandler := NewBackupHandler(deps.Records)
	users.Get("/backup", scope, backupHandler.Export)
	users.Put("/backup", scope, backupHandler.Import)
}
