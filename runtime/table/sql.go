package table

import (
	"fmt"
	"sort"
	"strings"

	"github.com/satishbabariya/rsdatabase/internal/adapters/database"
)

// InsertType selects how InsertRows treats rows that collide with an existing key.
type InsertType int

const (
	// InsertNormal fails on conflict.
	InsertNormal InsertType = iota
	// InsertOrReplace replaces the conflicting row.
	InsertOrReplace
	// InsertOrIgnore keeps the existing row.
	InsertOrIgnore
)

// String returns the name of the insert type.
func (t InsertType) String() string {
	switch t {
	case InsertNormal:
		return "normal"
	case InsertOrReplace:
		return "or-replace"
	case InsertOrIgnore:
		return "or-ignore"
	default:
		return fmt.Sprintf("InsertType(%d)", int(t))
	}
}

// sqlBuilder renders statements for a single dialect.
type sqlBuilder struct {
	dialect database.SQLDialect
	argN    int
}

func (b *sqlBuilder) placeholder() string {
	b.argN++
	if b.dialect == database.PostgreSQL {
		return fmt.Sprintf("$%d", b.argN)
	}
	return "?"
}

func (b *sqlBuilder) placeholders(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = b.placeholder()
	}
	return strings.Join(parts, ", ")
}

func (b *sqlBuilder) quote(name string) string {
	if b.dialect == database.MySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

func (b *sqlBuilder) insertPrefix(t InsertType) (string, string, error) {
	switch t {
	case InsertNormal:
		return "INSERT INTO", "", nil
	case InsertOrReplace:
		switch b.dialect {
		case database.SQLite:
			return "INSERT OR REPLACE INTO", "", nil
		case database.MySQL:
			return "REPLACE INTO", "", nil
		}
	case InsertOrIgnore:
		switch b.dialect {
		case database.SQLite:
			return "INSERT OR IGNORE INTO", "", nil
		case database.MySQL:
			return "INSERT IGNORE INTO", "", nil
		case database.PostgreSQL:
			return "INSERT INTO", " ON CONFLICT DO NOTHING", nil
		}
	}
	return "", "", fmt.Errorf("insert type %s is not supported for %s", t, b.dialect)
}

// sortedKeys returns the keys of m in ascending order so generated SQL is stable.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
