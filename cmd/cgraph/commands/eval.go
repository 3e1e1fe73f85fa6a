package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cgraph/internal/core/domain"
)

func (c *CLI) newEvalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <graph>",
		Short: "Evaluate a graph once with the given inputs",
		Example: "  cgraph eval wave --set x1=1 --set x2=2 --set x3=3\n" +
			"  cgraph eval cube -s x=2 -p 2",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, _ := cmd.Flags().GetStringArray("set")
			precision, _ := cmd.Flags().GetInt("precision")
			return c.app.Eval(cmd.Context(), args[0], assignments, precision)
		},
	}
	cmd.Flags().StringArrayP("set", "s", nil, "Assign an input as name=value (repeatable)")
	cmd.Flags().IntP("precision", "p", domain.DefaultPrecision, "Decimal places to round the result to")
	return cmd
}
