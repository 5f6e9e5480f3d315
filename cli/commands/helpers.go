package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/satishbabariya/rsdatabase/internal/adapters/database"
)

// openDatabase connects using the loaded settings.
func openDatabase(ctx context.Context) (*database.Adapter, error) {
	if settings == nil || settings.DatabaseURL == "" {
		return nil, fmt.Errorf("no database configured: set DATABASE_URL, pass --url or run 'rsdb init'")
	}

	db, err := database.Open(ctx, settings.Database())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// queryArgs turns positional CLI arguments into query parameters.
func queryArgs(args []string) []any {
	out := make([]any, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

// sqliteFile returns the file behind a SQLite URL such as
// "file:feeds.db?cache=shared" or "/var/db/feeds.db".
func sqliteFile(url string) (string, error) {
	path := strings.TrimPrefix(url, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return "", fmt.Errorf("database %q has no file to watch", url)
	}
	return path, nil
}
