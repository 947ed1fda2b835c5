package config

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bytefit/internal/dirs"
)

// Init wires Viper with config paths, env, defaults, and flag bindings.
// It is non-fatal: a missing config file is fine, and any other error is
// returned for optional handling by the caller.
func Init(root *cobra.Command) error {
	// Setup config search path
	if cfgDir, err := dirs.ConfigDir(); err == nil {
		_ = dirs.Ensure(cfgDir)
		viper.AddConfigPath(cfgDir)
	}
	viper.SetConfigName("config") // supports config.{yaml|yml|json|toml}

	// Environment variables: BYTEFIT_*
	viper.SetEnvPrefix("BYTEFIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("system", "binary")

	// Bind root persistent flags to Viper keys
	_ = viper.BindPFlag("system", root.PersistentFlags().Lookup("system"))
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	// Read config file if present (ignore not found)
	_ = viper.ReadInConfig()

	return nil
}
