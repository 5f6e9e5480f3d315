package commands

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/rsdatabase/cli/internal/config"
	"github.com/satishbabariya/rsdatabase/cli/internal/ui"
	"github.com/satishbabariya/rsdatabase/cli/internal/version"
	"github.com/satishbabariya/rsdatabase/internal/debug"
)

var (
	cfgFile      string
	flagProvider string
	flagURL      string
	flagDebug    bool

	// settings is filled in before any subcommand runs.
	settings *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "rsdb",
	Short: "Collect single-column query results",
	Long: `rsdb runs a query and collects the first column of every row,
either as an ordered list or as a set of distinct values.

The database is configured with .rsdb.yaml, RSDB_* environment variables,
DATABASE_URL or the --provider and --url flags.`,
	Version:           version.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default searches ./.rsdb.yaml and $HOME)")
	rootCmd.PersistentFlags().StringVarP(&flagProvider, "provider", "p", "", "Database provider (sqlite, postgresql, mysql)")
	rootCmd.PersistentFlags().StringVarP(&flagURL, "url", "u", "", "Database URL or SQLite file path")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.SetVersionTemplate(version.Get().String() + "\n")
}

// Execute is the main entry point for the CLI
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		ui.PrintError("%v", err)
		return err
	}
	return nil
}

func loadSettings(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return err
	}

	if flagProvider != "" {
		cfg.Provider = flagProvider
	}
	if flagURL != "" {
		cfg.DatabaseURL = flagURL
	}
	if flagDebug {
		cfg.LogLevel = "debug"
	}

	if err := debug.Setup(debug.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
	}); err != nil {
		return err
	}

	settings = cfg
	debug.Debug("settings loaded", "provider", cfg.Provider, "config", cfgFile)
	return nil
}
