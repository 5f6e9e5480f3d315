package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/rsdatabase/cli/internal/ui"
	"github.com/satishbabariya/rsdatabase/cli/internal/version"
	"github.com/satishbabariya/rsdatabase/internal/adapters/database"
	"github.com/satishbabariya/rsdatabase/runtime/resultset"
)

// serverVersions holds the query reporting the server version and the oldest
// version supported, per dialect.
var serverVersions = map[database.SQLDialect]struct {
	query   string
	minimum string
}{
	database.SQLite:     {"SELECT sqlite_version()", "3.8.0"},
	database.PostgreSQL: {"SHOW server_version", "9.5"},
	database.MySQL:      {"SELECT VERSION()", "5.7"},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Print the rsdb version. With --check the configured database is asked
for its version, which is compared with the oldest supported release.`,
	Args: cobra.NoArgs,
	RunE: runVersion,
}

var versionCheck bool

func init() {
	versionCmd.Flags().BoolVar(&versionCheck, "check", false, "Check the database server version")

	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, version.Get().FullString())
	if !versionCheck {
		return nil
	}

	ctx := cmd.Context()
	db, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	sv := serverVersions[db.Dialect()]
	rows, err := db.QueryContext(ctx, sv.query)
	if err != nil {
		return fmt.Errorf("failed to query server version: %w", err)
	}
	defer rows.Close()

	values, err := resultset.CollectSequence(rows)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("%s did not report a version", db.Dialect())
	}

	// PostgreSQL appends build details after a space
	current := values[0].String()
	if fields := strings.Fields(current); len(fields) > 0 {
		current = fields[0]
	}

	ok, err := version.AtLeast(current, sv.minimum)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Server: %s %s\n", db.Dialect(), current)
	if !ok {
		ui.PrintWarning("%s %s is older than the minimum supported %s", db.Dialect(), current, sv.minimum)
		return fmt.Errorf("unsupported %s version %s", db.Dialect(), current)
	}
	return nil
}
