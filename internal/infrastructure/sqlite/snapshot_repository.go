// Package sqlite guarda el snapshot de cada usuario como un documento JSON (clave = usuario).
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/repository"
)

const driverName = "sqlite"

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository almacén clave-valor sobre SQLite.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository abre (o crea) la base en dbPath y aplica las migraciones.
func NewSnapshotRepository(dbPath string) (*SnapshotRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// Un solo escritor: evita SQLITE_BUSY entre conexiones del pool.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &SnapshotRepository{db: db}, nil
}

// Close cierra la base.
func (r *SnapshotRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Get devuelve nil, nil si el usuario no tiene documento.
func (r *SnapshotRepository) Get(ctx context.Context, userID string) (*entity.Snapshot, error) {
	var data string
	err := r.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE user_id = ?`, userID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	var doc document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	s := doc.toEntity()
	return &s, nil
}

// Put reemplaza el documento del usuario.
func (r *SnapshotRepository) Put(ctx context.Context, userID string, s *entity.Snapshot) error {
	data, err := json.Marshal(fromEntity(s))
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO snapshots (user_id, data, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		userID, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("put snapshot: %w", err)
	}
	return nil
}

// ── documento JSON ────────────────────────────────────────────────────────────

type document struct {
	Config      configDoc       `json:"config"`
	Products    []productDoc    `json:"products"`
	Sales       []saleDoc       `json:"sales"`
	Adjustments []adjustmentDoc `json:"adjustments"`
}

type configDoc struct {
	InitialCapital decimal.Decimal `json:"initial_capital"`
	StartDate      string          `json:"start_date"`
	Notes          string          `json:"notes,omitempty"`
}

type productDoc struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category,omitempty"`
	PurchaseDate      string          `json:"purchase_date"`
	UnitPurchasePrice decimal.Decimal `json:"unit_purchase_price"`
	QuantityPurchased int             `json:"quantity_purchased"`
	Supplier          string          `json:"supplier,omitempty"`
	Notes             string          `json:"notes,omitempty"`
}

type saleDoc struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	SaleDate      string          `json:"sale_date"`
	QuantitySold  int             `json:"quantity_sold"`
	UnitSalePrice decimal.Decimal `json:"unit_sale_price"`
	Customer      string          `json:"customer,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type adjustmentDoc struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

func fromEntity(s *entity.Snapshot) document {
	doc := document{
		Config: configDoc{
			InitialCapital: s.Config.InitialCapital,
			StartDate:      s.Config.StartDate,
			Notes:          s.Config.Notes,
		},
		Products:    make([]productDoc, 0, len(s.Products)),
		Sales:       make([]saleDoc, 0, len(s.Sales)),
		Adjustments: make([]adjustmentDoc, 0, len(s.Adjustments)),
	}
	for _, p := range s.Products {
		doc.Products = append(doc.Products, productDoc(p))
	}
	for _, v := range s.Sales {
		doc.Sales = append(doc.Sales, saleDoc(v))
	}
	for _, a := range s.Adjustments {
		doc.Adjustments = append(doc.Adjustments, adjustmentDoc(a))
	}
	return doc
}

func (d document) toEntity() entity.Snapshot {
	s := entity.Snapshot{
		Config: entity.FinancialConfig{
			InitialCapital: d.Config.InitialCapital,
			StartDate:      d.Config.StartDate,
			Notes:          d.Config.Notes,
		},
		Products:    make([]entity.Product, 0, len(d.Products)),
		Sales:       make([]entity.Sale, 0, len(d.Sales)),
		Adjustments: make([]entity.CapitalAdjustment, 0, len(d.Adjustments)),
	}
	for _, p := range d.Products {
		s.Products = append(s.Products, entity.Product(p))
	}
	for _, v := range d.Sales {
		s.Sales = append(s.Sales, entity.Sale(v))
	}
	for _, a := range d.Adjustments {
		s.Adjustments = append(s.Adjustments, entity.CapitalAdjustment(a))
	}
	return s
}
