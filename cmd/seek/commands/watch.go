package commands

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/zerr"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rediscover whenever an interpreter source changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			addr, _ := cmd.Flags().GetString("metrics-addr")
			if addr != "" {
				stop, err := c.serveMetrics(ctx, addr, cmd.ErrOrStderr())
				if err != nil {
					return err
				}
				defer stop()
			}

			err := c.engine.Watch(ctx, func(res domain.DiscoveryResult, err error) {
				if err != nil {
					c.printer(cmd.ErrOrStderr()).Line("discovery failed: %s", err)
					return
				}
				_ = c.printDiscovery(cmd, res)
			})
			c.engine.CancelAll()
			return err
		},
	}
	cmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address, for example :9464")
	return cmd
}

func (c *CLI) serveMetrics(ctx context.Context, addr string, errOut io.Writer) (func(), error) {
	if c.metrics == nil {
		return nil, zerr.New("metrics are not available in this build")
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to listen for metrics"), "addr", addr)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", c.metrics)
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.printer(errOut).Line("metrics server: %s", err)
		}
	}, nil
}
