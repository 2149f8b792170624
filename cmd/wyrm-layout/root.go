package main

import (
	"github.com/spf13/cobra"

	"github.com/wirefish/Wyrm/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "wyrm-layout",
	Short: "Region layout compiler",
	Long:  "wyrm-layout compiles ASCII region layouts into entity definition files.",
	// Fatal errors are reported as "error: <message>" by main.
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "path to configuration file (optional)")
	rootCmd.PersistentFlags().String("log-level", "", "override logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "override logging format (json, console)")
}

// loadConfig resolves the tool configuration: file (if any), WYRM_*
// environment overrides, then command-line flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if format, _ := cmd.Flags().GetString("log-format"); format != "" {
		cfg.Logging.Format = format
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
