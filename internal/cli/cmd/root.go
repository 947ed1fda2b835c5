package cmd

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"bytefit/internal/config"
)

const (
	ExitOK         = 0
	ExitCLIError   = 1
	ExitParseError = 2
	ExitStatError  = 3
)

// ExitError wraps an error with a process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "bytefit [bytes...]",
		Short:         "Human-readable byte size formatting",
		Long:          "Bytefit turns raw byte counts into human-readable sizes like '1.50 MB' or '953.67 MiB'. It auto-fits the best magnitude per value, or pins a specific unit, in either the binary (1024, IEC) or decimal (1000, SI) numeral system.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			setupLogging(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare invocation on a terminal drops into the interactive converter.
			if len(args) == 0 {
				if isTerminal() {
					return runTUI(cmd, "")
				}
				return &ExitError{Code: ExitCLIError, Err: errors.New("no byte counts given (see 'bytefit --help')")}
			}
			return runFormat(cmd, args)
		},
	}

	// Persistent flags available to all subcommands
	root.PersistentFlags().StringP("system", "s", "binary", "Numeral system: binary (1024) or decimal (1000)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	// Also bind format flags on root, so `bytefit <bytes>` works directly.
	bindFormatFlags(root.Flags())

	// Env (BYTEFIT_*) and config-file layer
	_ = config.Init(root)

	// Subcommands
	root.AddCommand(newFitCmd())
	root.AddCommand(newTableCmd())
	root.AddCommand(newStatCmd())
	root.AddCommand(newTuiCmd())
	root.AddCommand(newDoctorCmd())
	root.AddCommand(newCompletionCmd())

	return root
}

func bindFormatFlags(fs *pflag.FlagSet) {
	fs.StringP("magnitude", "m", "", "Pin a magnitude (kilo|mega|giga|tera|peta|exa) instead of auto-fitting")
}

// Execute runs the CLI with the provided context.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	return root.ExecuteContext(ctx)
}

// setupLogging installs the default slog handler; --verbose raises the
// level to Debug.
func setupLogging(cmd *cobra.Command) {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	h := tint.NewHandler(cmd.ErrOrStderr(), &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	slog.SetDefault(slog.New(h))
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
