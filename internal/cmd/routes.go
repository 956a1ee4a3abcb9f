package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/routecov/internal/routescan"
)

// Routes prints the endpoints resolved from the router tree.
type Routes struct {
	Project `embed:""`

	JSON           bool `name:"json" help:"Print JSON instead of one endpoint per line"`
	ShowUnresolved bool `help:"Also list delegations whose module could not be resolved"`
}

type routesOutput struct {
	Endpoints  []string               `json:"endpoints"`
	Files      []string               `json:"files"`
	Unresolved []routescan.Unresolved `json:"unresolved,omitempty"`
}

// Run is called by Kong when the routes command is executed.
func (r *Routes) Run(logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.Execute(ctx, logger, os.Stdout)
}

// Execute resolves the router tree and writes it to out.
func (r *Routes) Execute(ctx context.Context, logger *slog.Logger, out io.Writer) error {
	res, err := r.Walk(ctx, logger)
	if err != nil {
		return err
	}

	if r.JSON {
		o := routesOutput{Endpoints: res.Endpoints.Strings(), Files: res.Files}
		if r.ShowUnresolved {
			o.Unresolved = res.Unresolved
		}
		data, err := json.MarshalIndent(o, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal routes: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}

	for _, line := range res.Endpoints.Strings() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	if r.ShowUnresolved && len(res.Unresolved) > 0 {
		fmt.Fprintln(out, "\nunresolved:")
		for _, u := range res.Unresolved {
			fmt.Fprintf(out, "%s %s (%s)\n", u.Prefix, u.Module, u.File)
		}
	}
	return nil
}
