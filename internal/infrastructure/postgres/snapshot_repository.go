package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// SnapshotRepo implementación de SnapshotRepository sobre tablas normalizadas.
// La columna position conserva el orden de inserción de cada lista.
type SnapshotRepo struct {
	q  Querier
	tx *TxRunner
}

// NewSnapshotRepository construye el repositorio. q se usa para lecturas; tx para Put.
func NewSnapshotRepository(q Querier, tx *TxRunner) *SnapshotRepo {
	return &SnapshotRepo{q: q, tx: tx}
}

// Get devuelve nil, nil si el usuario no tiene configuración guardada.
func (r *SnapshotRepo) Get(ctx context.Context, userID string) (*entity.Snapshot, error) {
	var s entity.Snapshot
	err := r.q.QueryRow(ctx,
		`SELECT initial_capital, start_date, notes FROM financial_configs WHERE user_id = $1`,
		userID,
	).Scan(&s.Config.InitialCapital, &s.Config.StartDate, &s.Config.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial config: %w", err)
	}

	if s.Products, err = r.listProducts(ctx, userID); err != nil {
		return nil, err
	}
	if s.Sales, err = r.listSales(ctx, userID); err != nil {
		return nil, err
	}
	if s.Adjustments, err = r.listAdjustments(ctx, userID); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SnapshotRepo) listProducts(ctx context.Context, userID string) ([]entity.Product, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, category, purchase_date, unit_purchase_price, quantity_purchased, supplier, notes
		FROM products WHERE user_id = $1 ORDER BY position`, userID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	list := []entity.Product{}
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.PurchaseDate,
			&p.UnitPurchasePrice, &p.QuantityPurchased, &p.Supplier, &p.Notes); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

func (r *SnapshotRepo) listSales(ctx context.Context, userID string) ([]entity.Sale, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, product_id, sale_date, quantity_sold, unit_sale_price, customer, notes
		FROM sales WHERE user_id = $1 ORDER BY position`, userID)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()

	list := []entity.Sale{}
	for rows.Next() {
		var v entity.Sale
		if err := rows.Scan(&v.ID, &v.ProductID, &v.SaleDate, &v.QuantitySold,
			&v.UnitSalePrice, &v.Customer, &v.Notes); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	return list, nil
}

func (r *SnapshotRepo) listAdjustments(ctx context.Context, userID string) ([]entity.CapitalAdjustment, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, date, amount, description
		FROM capital_adjustments WHERE user_id = $1 ORDER BY position`, userID)
	if err != nil {
		return nil, fmt.Errorf("list capital adjustments: %w", err)
	}
	defer rows.Close()

	list := []entity.CapitalAdjustment{}
	for rows.Next() {
		var a entity.CapitalAdjustment
		if err := rows.Scan(&a.ID, &a.Date, &a.Amount, &a.Description); err != nil {
			return nil, fmt.Errorf("scan capital adjustment: %w", err)
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list capital adjustments: %w", err)
	}
	return list, nil
}

// Put reemplaza todas las filas del usuario en una sola transacción.
func (r *SnapshotRepo) Put(ctx context.Context, userID string, s *entity.Snapshot) error {
	return r.tx.Run(ctx, func(q Querier) error {
		_, err := q.Exec(ctx, `
			INSERT INTO financial_configs (user_id, initial_capital, start_date, notes, updated_at)
			VALUES ($1, $2, $3, $4, now())
			ON CONFLICT (user_id) DO UPDATE
			SET initial_capital = EXCLUDED.initial_capital, start_date = EXCLUDED.start_date,
			    notes = EXCLUDED.notes, updated_at = now()`,
			userID, s.Config.InitialCapital, s.Config.StartDate, s.Config.Notes,
		)
		if err != nil {
			return fmt.Errorf("upsert financial config: %w", err)
		}

		b := &pgx.Batch{}
		b.Queue(`DELETE FROM products WHERE user_id = $1`, userID)
		b.Queue(`DELETE FROM sales WHERE user_id = $1`, userID)
		b.Queue(`DELETE FROM capital_adjustments WHERE user_id = $1`, userID)
		for i, p := range s.Products {
			b.Queue(`
				INSERT INTO products (user_id, position, id, name, category, purchase_date, unit_purchase_price, quantity_purchased, supplier, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
				userID, i, p.ID, p.Name, p.Category, p.PurchaseDate, p.UnitPurchasePrice, p.QuantityPurchased, p.Supplier, p.Notes,
			)
		}
		for i, v := range s.Sales {
			b.Queue(`
				INSERT INTO sales (user_id, position, id, product_id, sale_date, quantity_sold, unit_sale_price, customer, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				userID, i, v.ID, v.ProductID, v.SaleDate, v.QuantitySold, v.UnitSalePrice, v.Customer, v.Notes,
			)
		}
		for i, a := range s.Adjustments {
			b.Queue(`
				INSERT INTO capital_adjustments (user_id, position, id, date, amount, description)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				userID, i, a.ID, a.Date, a.Amount, a.Description,
			)
		}

		br := q.SendBatch(ctx, b)
		for i := 0; i < b.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return fmt.Errorf("replace records (stmt %d): %w", i, err)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("replace records: %w", err)
		}
		return nil
	})
}
