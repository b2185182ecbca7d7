package dto

import (
	"time"

	"github.com/jhoicas/finanzas-reventa/pkg/numeric"
)

// BackupVersion versión actual del formato de respaldo.
const BackupVersion = 1

// Backup respaldo JSON completo de los registros de un usuario.
// Los campos numéricos son permisivos: vacío o no numérico vale cero.
type Backup struct {
	Version     int                `json:"version"`
	ExportedAt  *time.Time         `json:"exported_at,omitempty"`
	Config      *BackupConfig      `json:"config"`
	Products    []BackupProduct    `json:"products"`
	Sales       []BackupSale       `json:"sales"`
	Adjustments []BackupAdjustment `json:"adjustments"`
}

// BackupConfig configuración financiera dentro del respaldo.
type BackupConfig struct {
	InitialCapital numeric.Lenient `json:"initial_capital"`
	StartDate      string          `json:"start_date"`
	Notes          string          `json:"notes"`
}

// BackupProduct producto dentro del respaldo.
type BackupProduct struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	PurchaseDate      string          `json:"purchase_date"`
	UnitPurchasePrice numeric.Lenient `json:"unit_purchase_price"`
	QuantityPurchased numeric.Lenient `json:"quantity_purchased"`
	Supplier          string          `json:"supplier"`
	Notes             string          `json:"notes"`
}

// BackupSale venta dentro del respaldo.
type BackupSale struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	SaleDate      string          `json:"sale_date"`
	QuantitySold  numeric.Lenient `json:"quantity_sold"`
	UnitSalePrice numeric.Lenient `json:"unit_sale_price"`
	Customer      string          `json:"customer"`
	Notes         string          `json:"notes"`
}

// BackupAdjustment ajuste de capital dentro del respaldo.
type BackupAdjustment struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      numeric.Lenient `json:"amount"`
	Description string          `json:"description"`
}

// ImportResponse resumen de un respaldo importado.
type ImportResponse struct {
	Products    int `json:"products"`
	Sales       int `json:"sales"`
	Adjustments int `json:"adjustments"`
}
