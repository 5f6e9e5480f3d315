package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/rsdatabase/runtime/resultset"
	"github.com/satishbabariya/rsdatabase/runtime/table"
)

var countCmd = &cobra.Command{
	Use:   "count [QUERY [ARGS...]]",
	Short: "Print the number a counting query returns",
	Long: `Run QUERY and print the first column of its first row as an integer,
or 0 when it returns no rows. With --table the rows of that table are counted.`,
	Example: `  rsdb count "SELECT COUNT(*) FROM articles WHERE read = 0"
  rsdb count --table articles`,
	RunE: runCount,
}

var countTable string

func init() {
	countCmd.Flags().StringVarP(&countTable, "table", "t", "", "Count the rows of this table")

	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	if (countTable == "") == (len(args) == 0) {
		return errors.New("pass either a QUERY or --table")
	}

	ctx := cmd.Context()
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	var n int64
	if countTable != "" {
		n, err = table.New(countTable, db.Dialect()).Count(ctx, db)
	} else {
		rows, qerr := db.QueryContext(ctx, args[0], queryArgs(args[1:])...)
		if qerr != nil {
			return fmt.Errorf("query failed: %w", qerr)
		}
		defer rows.Close()
		n, err = resultset.Count(rows)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), n)
	return nil
}
