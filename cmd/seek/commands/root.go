// Package commands implements the CLI commands for seek.
package commands

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/seek/internal/app"
	"go.trai.ch/seek/internal/build"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/engine/supervisor"
)

// Engine is the application surface driven by the CLI.
type Engine interface {
	DiscoverWith(ctx context.Context, opts app.DiscoverOptions) *supervisor.Handle
	ProbeVersions(ctx context.Context, path string) *supervisor.Handle
	CancelAll()
	ClearCache() error
	CacheStats() domain.CacheStats
	ExpireCache(d time.Duration) (int, error)
	CacheDir() string
	Watch(ctx context.Context, onResult func(domain.DiscoveryResult, error)) error
}

// CLI represents the command line interface for seek.
type CLI struct {
	engine    Engine
	rootCmd   *cobra.Command
	metrics   http.Handler
	logFormat func(json bool)
	progress  func(io.Writer) error
	jsonOut   bool
}

// Option configures a CLI.
type Option func(*CLI)

// WithMetricsHandler sets the handler served by watch --metrics-addr.
func WithMetricsHandler(h http.Handler) Option {
	return func(c *CLI) {
		c.metrics = h
	}
}

// WithLogFormat registers a hook told whether --json was requested, so logs
// can follow the output format.
func WithLogFormat(fn func(json bool)) Option {
	return func(c *CLI) {
		c.logFormat = fn
	}
}

// WithProgress sets the renderer of the recorded discovery phases used by
// discover --progress.
func WithProgress(render func(io.Writer) error) Option {
	return func(c *CLI) {
		c.progress = render
	}
}

// New creates a new CLI instance with the given engine.
func New(e Engine, opts ...Option) *CLI {
	rootCmd := &cobra.Command{
		Use:           "seek",
		Short:         "Discover and cache Python interpreters and their build tool versions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		engine:  e,
		rootCmd: rootCmd,
	}
	for _, opt := range opts {
		opt(c)
	}

	rootCmd.PersistentFlags().BoolVar(&c.jsonOut, "json", false, "Write machine-readable JSON output")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default $SEEK_CONFIG or the user config dir)")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.logFormat != nil {
			c.logFormat(c.jsonOut)
		}
	}

	rootCmd.AddCommand(c.newDiscoverCmd())
	rootCmd.AddCommand(c.newProbeCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error writers of the root command.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}
