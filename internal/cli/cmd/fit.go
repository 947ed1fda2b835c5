package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bytefit/bytesize"
	"bytefit/internal/cli"
)

func newFitCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "fit [bytes...]",
		Short:         "Show the best-fitting unit and divisor per value",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := assembleOptions(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			values, err := cli.ParseValues(args)
			if err != nil {
				return &ExitError{Code: ExitParseError, Err: err}
			}
			for _, v := range values {
				f := bytesize.Fit(v, opts.System)
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%d\n", v, f.Unit(), f.Divisor())
			}
			return nil
		},
	}
}
