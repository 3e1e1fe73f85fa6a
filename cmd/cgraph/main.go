// Package main is the entry point for the cgraph CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cgraph/cmd/cgraph/commands"
	"go.trai.ch/cgraph/internal/adapters/linear"
	"go.trai.ch/cgraph/internal/app"
	"go.trai.ch/cgraph/internal/core/domain"
	_ "go.trai.ch/cgraph/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

// jsonSwitcher is implemented by loggers that can change format at runtime.
type jsonSwitcher interface {
	SetJSON(enable bool)
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, graftProvider))
}

func graftProvider(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// No logger yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	components.App.WithRenderer(linear.NewRenderer(stdout, stderr))

	cli := commands.New(components.App)
	if l, ok := components.Logger.(jsonSwitcher); ok {
		cli.OnJSONLogs(l.SetJSON)
	}
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		// The renderer has already reported the failing scenario.
		if errors.Is(err, domain.ErrScenarioFailed) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
