package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/rsdatabase/cli/internal/ui"
	"github.com/satishbabariya/rsdatabase/cli/internal/watch"
	"github.com/satishbabariya/rsdatabase/internal/adapters/database"
	"github.com/satishbabariya/rsdatabase/runtime/resultset"
	"github.com/satishbabariya/rsdatabase/runtime/table"
	"github.com/satishbabariya/rsdatabase/runtime/types"
)

var columnCmd = &cobra.Command{
	Use:   "column QUERY [ARGS...]",
	Short: "Print the first column of every row a query returns",
	Long: `Run QUERY and print the first column of each row in row order.

With --distinct the values are collected into a set and printed sorted.
Any ARGS are bound to the query's placeholders.`,
	Example: `  rsdb column "SELECT title FROM articles WHERE feed = ?" 12
  rsdb column --distinct --format json "SELECT tag FROM tags"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runColumn,
}

var (
	columnDistinct bool
	columnFormat   string
	columnWatch    bool
)

func init() {
	columnCmd.Flags().BoolVarP(&columnDistinct, "distinct", "d", false, "Collect distinct values only")
	columnCmd.Flags().StringVarP(&columnFormat, "format", "f", string(ui.FormatList), "Output format (list, json, table, markdown)")
	columnCmd.Flags().BoolVarP(&columnWatch, "watch", "w", false, "Re-run the query whenever the SQLite database file changes")

	rootCmd.AddCommand(columnCmd)
}

func runColumn(cmd *cobra.Command, args []string) error {
	format, err := ui.ParseFormat(columnFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	query, params := args[0], queryArgs(args[1:])
	collect := func() error {
		values, err := collectColumn(ctx, db, query, params, columnDistinct)
		if err != nil {
			return err
		}
		return ui.RenderValues(cmd.OutOrStdout(), format, values)
	}

	if columnWatch {
		if db.Dialect() != database.SQLite {
			return fmt.Errorf("--watch needs a SQLite database, got %s", db.Dialect())
		}
		path, err := sqliteFile(settings.DatabaseURL)
		if err != nil {
			return err
		}
		return runColumnWatch(path, collect)
	}

	return collect()
}

// collectColumn runs query and collects column 0 of its rows. Distinct
// results come back sorted.
func collectColumn(ctx context.Context, q table.Queryer, query string, args []any, distinct bool) ([]types.Value, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	if distinct {
		set, err := resultset.CollectSet(rows)
		if err != nil {
			return nil, err
		}
		return set.Values(), nil
	}
	return resultset.CollectSequence(rows)
}

func runColumnWatch(path string, collect func() error) error {
	ui.PrintHeader("rsdb", "Watch Mode")

	watcher, err := watch.NewWatcher(path, func() error {
		ui.PrintInfo("%s changed, collecting...", path)
		return collect()
	})
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Stop()

	if err := watcher.Start(); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	ui.PrintSuccess("Watching %s for changes... (Press Ctrl+C to stop)", path)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	ui.PrintInfo("Stopping watch mode...")
	return nil
}
