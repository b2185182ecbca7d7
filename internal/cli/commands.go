package cli

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type totalsCmd struct{ source }

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "muestra capital, compras, ventas, ganancia e inventario" }
func (*totalsCmd) Usage() string {
	return `cfctl totals [-f backup.json] [-currency COP] [-plain]

  Muestra los totales financieros calculados desde el respaldo.
`
}

func (c *totalsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *totalsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := c.open(ctx)
	if err != nil {
		return fail(err)
	}
	totals, err := sess.analytics.Totals(ctx, localUser)
	if err != nil {
		return fail(err)
	}
	if err := c.print(TotalsMarkdown(totals, sess.money)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type movementsCmd struct{ source }

func (*movementsCmd) Name() string     { return "movements" }
func (*movementsCmd) Synopsis() string { return "lista los movimientos ordenados por fecha" }
func (*movementsCmd) Usage() string {
	return `cfctl movements [-f backup.json] [-currency COP] [-plain]

  Lista compras, ventas y ajustes de capital en orden cronológico.
`
}

func (c *movementsCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *movementsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := c.open(ctx)
	if err != nil {
		return fail(err)
	}
	ms, err := sess.analytics.Movements(ctx, localUser)
	if err != nil {
		return fail(err)
	}
	if err := c.print(MovementsMarkdown(ms, sess.money)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type seriesCmd struct{ source }

func (*seriesCmd) Name() string     { return "series" }
func (*seriesCmd) Synopsis() string { return "muestra la evolución del capital" }
func (*seriesCmd) Usage() string {
	return `cfctl series [-f backup.json] [-currency COP] [-plain]

  Muestra el capital después de cada movimiento, partiendo del capital inicial.
`
}

func (c *seriesCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *seriesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := c.open(ctx)
	if err != nil {
		return fail(err)
	}
	series, err := sess.analytics.Series(ctx, localUser)
	if err != nil {
		return fail(err)
	}
	if err := c.print(SeriesMarkdown(series, sess.money)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type reportCmd struct{ source }

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "rentabilidad por producto" }
func (*reportCmd) Usage() string {
	return `cfctl report [-f backup.json] [-currency COP] [-plain]

  Costo, ventas, ganancia, margen, ROI, stock y estado de cada producto.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := c.open(ctx)
	if err != nil {
		return fail(err)
	}
	items, err := sess.analytics.ProductReport(ctx, localUser)
	if err != nil {
		return fail(err)
	}
	if err := c.print(ReportMarkdown(items, sess.money)); err != nil {
		return fail(err)
	}
	return subcommands.ExitSuccess
}

type checkCmd struct{ source }

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "revisa inconsistencias del respaldo" }
func (*checkCmd) Usage() string {
	return `cfctl check [-f backup.json] [-plain]

  Revisa fechas, IDs repetidos, ventas sin producto y stock negativo.
  Termina con error si encuentra problemas.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) { c.setFlags(f) }

func (c *checkCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sess, err := c.open(ctx)
	if err != nil {
		return fail(err)
	}
	issues := Check(sess.snap)
	if err := c.print(CheckMarkdown(issues)); err != nil {
		return fail(err)
	}
	if len(issues) > 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
