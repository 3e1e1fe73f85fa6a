package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cgraph/internal/adapters/config" //nolint:depguard // default file name
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the scenarios of a configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			return c.app.Run(cmd.Context(), path)
		},
	}
	cmd.Flags().StringP("config", "c", config.DefaultFileName, "Path to the configuration file or its directory")
	return cmd
}
