package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/routecov/internal/contract"
	"github.com/Alia5/routecov/internal/coverage"
)

// Check compares the contract with the router tree and prints a coverage
// report.
type Check struct {
	Project `embed:""`

	FailUnder   float64 `name:"fail-under" help:"Fail when coverage percent is below this threshold" default:"0" env:"ROUTECOV_FAIL_UNDER"`
	ShowMissing bool    `help:"List contract endpoints missing from the router" env:"ROUTECOV_SHOW_MISSING"`
	ShowExtra   bool    `help:"List router endpoints absent from the contract" env:"ROUTECOV_SHOW_EXTRA"`
	Format      string  `help:"Report format" enum:"text,json" default:"text" env:"ROUTECOV_FORMAT"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return c.Execute(ctx, logger, os.Stdout)
}

// Execute runs the check and writes the report to out. A coverage below
// FailUnder is returned as a *coverage.ThresholdError after the report has
// been written.
func (c *Check) Execute(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	want, err := contract.Load(c.ContractPath())
	if err != nil {
		return err
	}
	logger.Debug("contract loaded", "path", c.ContractPath(), "endpoints", want.Len())

	res, err := c.Walk(ctx, logger)
	if err != nil {
		return err
	}
	for _, u := range res.Unresolved {
		logger.Info("skipped unresolved router module", "file", u.File, "module", u.Module, "prefix", u.Prefix)
	}

	report := coverage.Compute(want, res.Endpoints)
	switch c.Format {
	case "json":
		err = report.WriteJSON(out)
	default:
		err = report.WriteText(out, coverage.Options{ShowMissing: c.ShowMissing, ShowExtra: c.ShowExtra})
	}
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return report.Check(c.FailUnder)
}
