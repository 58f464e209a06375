// Package main is the entry point for the seek interpreter discovery tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/seek/cmd/seek/commands"
	"go.trai.ch/seek/internal/adapters/config"
	"go.trai.ch/seek/internal/adapters/metrics"
	"go.trai.ch/seek/internal/app"
	"go.trai.ch/seek/internal/core/domain"
	_ "go.trai.ch/seek/internal/wiring"
)

// exitInterrupted is the conventional exit code after SIGINT.
const exitInterrupted = 130

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// The config node reads its location from the environment before flags
	// are parsed.
	if path := configFlag(args); path != "" {
		if err := os.Setenv(config.EnvConfigPath, path); err != nil {
			_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
			return 1
		}
	}

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()
	if components.Telemetry != nil {
		defer func() { _ = components.Telemetry.Close() }()
	}

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	var cliOpts []commands.Option
	if components.Registry != nil {
		cliOpts = append(cliOpts, commands.WithMetricsHandler(metrics.Handler(components.Registry)))
	}
	if l, ok := components.Logger.(interface{ SetJSON(bool) }); ok {
		cliOpts = append(cliOpts, commands.WithLogFormat(l.SetJSON))
	}
	if r, ok := components.Telemetry.(interface{ Render(io.Writer) error }); ok {
		cliOpts = append(cliOpts, commands.WithProgress(r.Render))
	}

	cli := commands.New(components.App, cliOpts...)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if interrupted(err) {
			_, _ = fmt.Fprintln(stderr, "Interrupted")
			return exitInterrupted
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}

func interrupted(err error) bool {
	return errors.Is(err, domain.ErrDiscoveryCancelled) || errors.Is(err, context.Canceled)
}

// configFlag extracts the value of --config or -c from raw arguments.
func configFlag(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			return ""
		}
		for _, name := range []string{"--config", "-c"} {
			if arg == name && i+1 < len(args) {
				return args[i+1]
			}
			if v, ok := strings.CutPrefix(arg, name+"="); ok {
				return v
			}
		}
	}
	return ""
}
