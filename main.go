package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"q.log/tableau/config"
	"q.log/tableau/instance"
	_ "q.log/tableau/instance/mps"
	"q.log/tableau/logging"
	"q.log/tableau/model"
	"q.log/tableau/prompt"
	"q.log/tableau/report"
	"q.log/tableau/simplex"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		slog.Error("tableau failed", "err", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		return err
	}
	log := logging.New(stderr, cfg.LogLevel, cfg.NoColor)
	slog.SetDefault(log)

	inst, err := instance.Load(cfg.Input)
	if err != nil {
		return err
	}
	p := inst.Problem
	log.Info("problem loaded", "rows", p.NumRows, "cols", p.NumCols, "input", cfg.Input)

	printer := report.NewPrinter(stdout)
	printer.Problem(p)

	console := prompt.New(stdin, stdout, p.NumRows, inst.Basis)
	solver := &simplex.Solver{
		Tolerance:     cfg.Epsilon,
		MaxIterations: cfg.MaxIterations,
		OnSnapshot:    printer.Snapshot,
		Logger:        log,
	}
	if !cfg.AssumeYes {
		solver.Confirmer = console
	}

	var provider simplex.BasisProvider = console
	if cfg.Basis != nil {
		provider = simplex.FixedBasis(cfg.Basis...)
	}
	provider = showSelected(provider, p, printer)

	res, err := solver.Solve(ctx, p, provider)
	if err != nil {
		return err
	}
	printer.Result(res)
	return printer.Err()
}

// showSelected prints the basis matrix of every valid candidate before
// the solver validates it.
func showSelected(next simplex.BasisProvider, p *model.Problem, printer *report.Printer) simplex.BasisProvider {
	return simplex.BasisProviderFunc(func(ctx context.Context, rejection error) ([]int, error) {
		idx, err := next.NextBasis(ctx, rejection)
		if err != nil {
			return nil, err
		}
		if bm, err := simplex.BasisMatrix(p, idx); err == nil {
			printer.Basis(bm)
		}
		return idx, nil
	})
}
