package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/rsdatabase/runtime/table"
)

var hasColumnCmd = &cobra.Command{
	Use:   "has-column TABLE COLUMN",
	Short: "Report whether a table has a column",
	Long: `Print true when TABLE has a column named COLUMN (case-insensitive),
false otherwise.`,
	Args: cobra.ExactArgs(2),
	RunE: runHasColumn,
}

func init() {
	rootCmd.AddCommand(hasColumnCmd)
}

func runHasColumn(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	ok, err := table.New(args[0], db.Dialect()).ContainsColumn(ctx, db, args[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}
