package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/seek/internal/core/domain"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and maintain the discovery cache",
	}

	cmd.AddCommand(c.newCacheStatsCmd())
	cmd.AddCommand(c.newCacheClearCmd())
	cmd.AddCommand(c.newCacheExpireCmd())

	return cmd
}

func (c *CLI) newCacheStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show cache counters for this process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			stats := c.engine.CacheStats()
			p := c.printer(cmd.OutOrStdout())
			if p.json {
				return p.JSON(struct {
					Dir string `json:"dir"`
					domain.CacheStats
				}{c.engine.CacheDir(), stats})
			}
			p.Line("dir     %s", c.engine.CacheDir())
			p.Line("hits    %d", stats.Hits)
			p.Line("misses  %d", stats.Misses)
			p.Line("writes  %d", stats.Writes)
			p.Line("errors  %d", stats.Errors)
			return nil
		},
	}
}

func (c *CLI) newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every cached discovery and version entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.engine.ClearCache(); err != nil {
				return err
			}
			p := c.printer(cmd.OutOrStdout())
			if p.json {
				return p.JSON(map[string]bool{"cleared": true})
			}
			p.Success("cache cleared")
			return nil
		},
	}
}

func (c *CLI) newCacheExpireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expire",
		Short: "Remove cache entries older than a duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			olderThan, _ := cmd.Flags().GetDuration("older-than")
			removed, err := c.engine.ExpireCache(olderThan)
			if err != nil {
				return err
			}
			p := c.printer(cmd.OutOrStdout())
			if p.json {
				return p.JSON(map[string]int{"removed": removed})
			}
			p.Success("removed %d entries older than %s", removed, olderThan)
			return nil
		},
	}
	cmd.Flags().Duration("older-than", domain.DefaultDiscoveryTTL, "Remove entries strictly older than this")
	return cmd
}
