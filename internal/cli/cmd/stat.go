package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bytefit/internal/util"
)

func newStatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "stat [paths...]",
		Short:         "Format sizes of files and directories on disk",
		Long:          "Stat prints the formatted size of each path. Directories are walked recursively and their regular-file sizes summed.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := assembleOptions(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			showTotal, _ := cmd.Flags().GetBool("total")

			out := cmd.OutOrStdout()
			var total uint64
			for _, path := range args {
				size, serr := util.PathSize(path)
				if serr != nil {
					return &ExitError{Code: ExitStatError, Err: fmt.Errorf("stat %s: %w", path, serr)}
				}
				total += size
				fmt.Fprintf(out, "%s\t%s\n", opts.Formatter(size).Format(size), path)
			}
			if showTotal {
				fmt.Fprintf(out, "%s\ttotal\n", opts.Formatter(total).Format(total))
			}
			return nil
		},
	}
	cmd.Flags().Bool("total", false, "Append a sum of all arguments")
	bindFormatFlags(cmd.Flags())
	return cmd
}
