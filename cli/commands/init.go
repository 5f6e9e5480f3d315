package commands

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/rsdatabase/cli/internal/config"
	"github.com/satishbabariya/rsdatabase/cli/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an rsdb config file interactively",
	Long: `Ask for the database provider, URL and log level and write them to
$HOME/.config/rsdb/.rsdb.yaml, or to --output when given.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var initOutput string

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "", "Write the config to this path")

	rootCmd.AddCommand(initCmd)
}

func initQuestions(defaults *config.Config) []*survey.Question {
	provider := defaults.Provider
	if provider == "" {
		provider = "sqlite"
	}
	return []*survey.Question{
		{
			Name: "provider",
			Prompt: &survey.Select{
				Message: "Database provider:",
				Options: []string{"sqlite", "postgresql", "mysql"},
				Default: provider,
			},
		},
		{
			Name: "url",
			Prompt: &survey.Input{
				Message: "Database URL (file path for SQLite):",
				Default: defaults.DatabaseURL,
			},
			Validate: survey.Required,
		},
		{
			Name: "level",
			Prompt: &survey.Select{
				Message: "Log level:",
				Options: []string{"debug", "info", "warn", "error"},
				Default: "info",
			},
		},
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	ui.PrintHeader("rsdb", "Configure")

	answers := struct {
		Provider string `survey:"provider"`
		URL      string `survey:"url"`
		Level    string `survey:"level"`
	}{}
	if err := survey.Ask(initQuestions(settings), &answers); err != nil {
		return err
	}

	cfg := *settings
	cfg.Provider = answers.Provider
	cfg.DatabaseURL = answers.URL
	cfg.LogLevel = answers.Level

	path := initOutput
	var err error
	if path == "" {
		path, err = config.SaveConfig(&cfg)
	} else {
		err = config.SaveConfigAs(&cfg, path)
	}
	if err != nil {
		return err
	}

	ui.PrintSuccess("Wrote %s", path)
	return nil
}
