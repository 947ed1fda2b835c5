package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bytefit/bytesize"
	"bytefit/internal/cli"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "table <bytes>",
		Short:         "Render one value at every magnitude of both systems",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := cli.ParseValues(args)
			if err != nil {
				return &ExitError{Code: ExitParseError, Err: err}
			}
			v := values[0]
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-10s  %-22s  %-22s\n", "magnitude", "binary", "decimal")
			for _, m := range bytesize.Magnitudes() {
				fmt.Fprintf(out, "%-10s  %-22s  %-22s\n", m,
					bytesize.New(bytesize.Binary, m).Format(v),
					bytesize.New(bytesize.Decimal, m).Format(v))
			}
			return nil
		},
	}
}
