package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bytefit/bytesize"
	"bytefit/internal/dirs"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "doctor",
		Short:         "Diagnose configuration and environment",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := assembleOptions(cmd)
			if err != nil {
				return &ExitError{Code: ExitCLIError, Err: err}
			}
			cfgDir, derr := dirs.ConfigDir()
			if derr != nil {
				cfgDir = fmt.Sprintf("(unresolved: %v)", derr)
			}
			cfgFile := viper.ConfigFileUsed()
			if cfgFile == "" {
				cfgFile = "(none)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config dir:  %s\n", cfgDir)
			fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n", cfgFile)
			fmt.Fprintf(cmd.OutOrStdout(), "System:      %s (base %d)\n", opts.System, opts.System.Base())
			fmt.Fprintf(cmd.OutOrStdout(), "Magnitudes:  %s through %s\n", bytesize.Kilo, bytesize.MaxMagnitude)
			fmt.Fprintf(cmd.OutOrStdout(), "Terminal:    %v\n", isTerminal())
			return nil
		},
	}
}
