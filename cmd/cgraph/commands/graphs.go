package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newGraphsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "graphs",
		Short: "List the graphs available for evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, name := range c.app.Graphs() {
				inputs, err := c.app.Inputs(name)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(out, "%-8s %s\n", name, strings.Join(inputs, ", "))
			}
			return nil
		},
	}
}
