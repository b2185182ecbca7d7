package entity

import "github.com/shopspring/decimal"

// Snapshot agrupa todos los registros de un usuario. El calculador solo lo lee.
type Snapshot struct {
	Config      FinancialConfig
	Products    []Product
	Sales       []Sale
	Adjustments []CapitalAdjustment
}

// DefaultSnapshot datos iniciales de un usuario sin registros: capital 0 desde hoy.
func DefaultSnapshot(today string) Snapshot {
	return Snapshot{
		Config:      FinancialConfig{InitialCapital: decimal.Zero, StartDate: today},
		Products:    []Product{},
		Sales:       []Sale{},
		Adjustments: []CapitalAdjustment{},
	}
}

// Clone devuelve una copia cuyos slices no comparten memoria con el original.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{Config: s.Config}
	out.Products = append(make([]Product, 0, len(s.Products)), s.Products...)
	out.Sales = append(make([]Sale, 0, len(s.Sales)), s.Sales...)
	out.Adjustments = append(make([]CapitalAdjustment, 0, len(s.Adjustments)), s.Adjustments...)
	return out
}

// FindProduct busca un producto por ID.
func (s Snapshot) FindProduct(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
