// Package cli implementa cfctl: consultas sobre un archivo de respaldo sin levantar el servidor.
package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/jhoicas/finanzas-reventa/internal/application/analytics"
	"github.com/jhoicas/finanzas-reventa/internal/application/dto"
	"github.com/jhoicas/finanzas-reventa/internal/application/records"
	"github.com/jhoicas/finanzas-reventa/internal/domain/entity"
	"github.com/jhoicas/finanzas-reventa/internal/domain/ledger"
	"github.com/jhoicas/finanzas-reventa/internal/infrastructure/memory"
	"github.com/jhoicas/finanzas-reventa/pkg/logger"
	"github.com/jhoicas/finanzas-reventa/pkg/money"
)

// localUser usuario bajo el que se importa el respaldo en memoria.
const localUser = "local"

// Register registra los subcomandos. out recibe la salida (os.Stdout en producción).
func Register(c *subcommands.Commander, out io.Writer) {
	c.Register(&totalsCmd{source: source{out: out}}, "ledger")
	c.Register(&movementsCmd{source: source{out: out}}, "ledger")
	c.Register(&seriesCmd{source: source{out: out}}, "ledger")
	c.Register(&reportCmd{source: source{out: out}}, "reports")
	c.Register(&checkCmd{source: source{out: out}}, "reports")
}

// source flags comunes: archivo de respaldo, moneda y salida sin estilos.
type source struct {
	out      io.Writer
	file     string
	currency string
	plain    bool
}

func (s *source) setFlags(f *flag.FlagSet) {
	f.StringVar(&s.file, "f", "backup.json", "Archivo de respaldo JSON")
	f.StringVar(&s.currency, "currency", money.DefaultCurrency, "Moneda ISO 4217 para formatear montos")
	f.BoolVar(&s.plain, "plain", false, "Imprimir markdown sin estilos")
}

// session registros cargados desde el respaldo.
type session struct {
	snap      entity.Snapshot
	money     *money.Formatter
	analytics *analytics.Service
}

func (s *source) readBackup() (*dto.Backup, error) {
	f, err := os.Open(s.file)
	if err != nil {
		return nil, fmt.Errorf("abrir respaldo: %w", err)
	}
	defer f.Close()
	var b dto.Backup
	if err := json.NewDecoder(f).Decode(&b); err != nil {
		return nil, fmt.Errorf("leer respaldo %s: %w", s.file, err)
	}
	return &b, nil
}

// open importa el respaldo en un almacén en memoria con las mismas reglas que la API.
func (s *source) open(ctx context.Context) (*session, error) {
	b, err := s.readBackup()
	if err != nil {
		return nil, err
	}
	currency := strings.ToUpper(strings.TrimSpace(s.currency))
	if !money.Supported(currency) {
		return nil, fmt.Errorf("moneda desconocida %q", s.currency)
	}
	fmtr := money.NewFormatter(currency)
	calc := ledger.NewCalculator(ledger.WithMoneyFormatter(fmtr))
	svc := records.NewService(memory.NewSnapshotRepository(), calc, logger.Nop())
	snap, err := svc.Import(ctx, localUser, b)
	if err != nil {
		return nil, err
	}
	return &session{
		snap:      *snap,
		money:     fmtr,
		analytics: analytics.NewService(svc, calc),
	}, nil
}

func (s *source) print(md string) error {
	if s.plain {
		_, err := io.WriteString(s.out, md)
		return err
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("crear renderer: %w", err)
	}
	styled, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("renderizar markdown: %w", err)
	}
	_, err = io.WriteString(s.out, styled)
	return err
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
