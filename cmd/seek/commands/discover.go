package commands

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/seek/internal/app"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/engine/supervisor"
	"go.trai.ch/zerr"
)

func (c *CLI) newDiscoverCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List the interpreters found on this host",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			quick, _ := cmd.Flags().GetBool("quick")
			timeout, _ := cmd.Flags().GetDuration("timeout")
			progress, _ := cmd.Flags().GetBool("progress")

			opts := app.DiscoverOptions{Force: force}
			if quick {
				opts.Mode = domain.ModeQuick
			}

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			res, err := supervisor.Await[domain.DiscoveryResult](ctx, c.engine.DiscoverWith(ctx, opts))
			if progress && c.progress != nil {
				if perr := c.progress(cmd.ErrOrStderr()); perr != nil {
					return perr
				}
			}
			if err != nil {
				c.engine.CancelAll()
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					return zerr.With(zerr.Wrap(domain.ErrDiscoveryTimeout, "discover"), "timeout", timeout.String())
				}
				return err
			}
			return c.printDiscovery(cmd, res)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Bypass the cache and scan every source")
	cmd.Flags().BoolP("quick", "q", false, "Scan only PATH and environment managers")
	cmd.Flags().Duration("timeout", 0, "Abort the discovery after this long (default from config)")
	cmd.Flags().Bool("progress", false, "Print the discovery phases to stderr")
	return cmd
}

func (c *CLI) printDiscovery(cmd *cobra.Command, res domain.DiscoveryResult) error {
	p := c.printer(cmd.OutOrStdout())
	if p.json {
		return p.JSON(res)
	}

	for _, rec := range res.Interpreters {
		p.Item(rec.Path, string(rec.Provenance))
	}
	source := "scanned"
	if res.FromCache {
		source = "from cache"
	}
	p.Success("%d interpreters (%s, %s)", len(res.Interpreters), source, res.CompletedAt.Format(time.RFC3339))
	return nil
}
