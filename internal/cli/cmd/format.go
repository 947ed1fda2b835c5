package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bytefit/bytesize"
	"bytefit/internal/cli"
	"bytefit/internal/model"
	"bytefit/internal/ui"
)

// assembleOptions resolves runtime options with precedence flag > env >
// config file > default. The system flag is bound to viper, so reading the
// viper key covers all layers at once.
func assembleOptions(cmd *cobra.Command) (model.Options, error) {
	system, err := bytesize.ParseSystem(viper.GetString("system"))
	if err != nil {
		return model.Options{}, err
	}

	// Magnitude is per-command and optional; empty means auto-fit.
	var magnitude bytesize.Magnitude
	if name, ferr := cmd.Flags().GetString("magnitude"); ferr == nil && name != "" {
		if magnitude, err = bytesize.ParseMagnitude(name); err != nil {
			return model.Options{}, err
		}
	}

	return model.Options{
		System:    system,
		Magnitude: magnitude,
		Verbose:   viper.GetBool("verbose"),
	}, nil
}

// runFormat renders each positional byte count, one per line.
func runFormat(cmd *cobra.Command, args []string) error {
	opts, err := assembleOptions(cmd)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	values, err := cli.ParseValues(args)
	if err != nil {
		return &ExitError{Code: ExitParseError, Err: err}
	}
	for _, v := range values {
		fmt.Fprintln(cmd.OutOrStdout(), opts.Formatter(v).Format(v))
	}
	return nil
}

func runTUI(cmd *cobra.Command, initial string) error {
	opts, err := assembleOptions(cmd)
	if err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	if err := ui.Run(cmd.Context(), initial, opts); err != nil {
		return &ExitError{Code: ExitCLIError, Err: err}
	}
	return nil
}
