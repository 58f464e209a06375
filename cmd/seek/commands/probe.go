package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/seek/internal/core/domain"
	"go.trai.ch/seek/internal/engine/supervisor"
)

type probeRow struct {
	Path string `json:"path"`
	domain.Versions
}

func (c *CLI) newProbeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe <interpreter>...",
		Short: "Report interpreter and build tool versions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			rows := make([]probeRow, 0, len(args))
			for _, path := range args {
				v, err := supervisor.Await[domain.Versions](ctx, c.engine.ProbeVersions(ctx, path))
				if err != nil {
					c.engine.CancelAll()
					return err
				}
				rows = append(rows, probeRow{Path: path, Versions: v})
			}

			p := c.printer(cmd.OutOrStdout())
			if p.json {
				return p.JSON(rows)
			}
			for _, r := range rows {
				p.Item(r.Path, "python "+r.Interpreter+", tool "+r.Tool)
			}
			return nil
		},
	}
}
