package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/seek/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := c.printer(cmd.OutOrStdout())
			if p.json {
				return p.JSON(map[string]string{
					"version": build.Version,
					"commit":  build.Commit,
					"date":    build.Date,
				})
			}
			p.Line("seek version %s (%s, %s)", build.Version, build.Commit, build.Date)
			return nil
		},
	}
}
