// Package table provides row-level helpers for a single named table.
package table

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/satishbabariya/rsdatabase/internal/adapters/database"
	"github.com/satishbabariya/rsdatabase/runtime/resultset"
	"github.com/satishbabariya/rsdatabase/runtime/types"
)

// Queryer runs statements. *sql.DB, *sql.Tx and *database.Adapter satisfy it.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Table names a table and the dialect used to address it.
type Table struct {
	Name    string
	Dialect database.SQLDialect
}

// New returns a Table. An empty dialect means SQLite.
func New(name string, dialect database.SQLDialect) Table {
	if dialect == "" {
		dialect = database.SQLite
	}
	return Table{Name: name, Dialect: dialect}
}

func (t Table) builder() *sqlBuilder {
	return &sqlBuilder{dialect: t.Dialect}
}

// SelectRowsWhere returns every row whose key column equals value.
func (t Table) SelectRowsWhere(ctx context.Context, q Queryer, key string, value any) (*sql.Rows, error) {
	b := t.builder()
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = %s", b.quote(t.Name), b.quote(key), b.placeholder())
	return q.QueryContext(ctx, query, value)
}

// SelectSingleRowWhere is SelectRowsWhere limited to one row.
func (t Table) SelectSingleRowWhere(ctx context.Context, q Queryer, key string, value any) (*sql.Rows, error) {
	b := t.builder()
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s = %s LIMIT 1", b.quote(t.Name), b.quote(key), b.placeholder())
	return q.QueryContext(ctx, query, value)
}

// SelectRowsWhereIn returns every row whose key column is one of values.
// With no values nothing is queried and both results are nil.
func (t Table) SelectRowsWhereIn(ctx context.Context, q Queryer, key string, values []any) (*sql.Rows, error) {
	if len(values) == 0 {
		return nil, nil
	}
	b := t.builder()
	query := fmt.Sprintf("SELECT * FROM %s WHERE %s IN (%s)", b.quote(t.Name), b.quote(key), b.placeholders(len(values)))
	return q.QueryContext(ctx, query, values...)
}

// DeleteRowsWhereIn deletes every row whose key column is one of values.
// It is a no-op when values is empty.
func (t Table) DeleteRowsWhereIn(ctx context.Context, q Queryer, key string, values []any) error {
	if len(values) == 0 {
		return nil
	}
	b := t.builder()
	query := fmt.Sprintf("DELETE FROM %s WHERE %s IN (%s)", b.quote(t.Name), b.quote(key), b.placeholders(len(values)))
	if _, err := q.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("failed to delete rows from %s: %w", t.Name, err)
	}
	return nil
}

// UpdateRowsWithValue sets valueKey to value on every row whose whereKey is
// one of matches. It is a no-op when matches is empty.
func (t Table) UpdateRowsWithValue(ctx context.Context, q Queryer, value any, valueKey, whereKey string, matches []any) error {
	if len(matches) == 0 {
		return nil
	}
	b := t.builder()
	query := fmt.Sprintf("UPDATE %s SET %s = %s WHERE %s IN (%s)",
		b.quote(t.Name), b.quote(valueKey), b.placeholder(), b.quote(whereKey), b.placeholders(len(matches)))

	args := append([]any{value}, matches...)
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update rows in %s: %w", t.Name, err)
	}
	return nil
}

// UpdateRowsWithMap sets every column in fields on the rows whose whereKey
// equals match. It is a no-op when fields is empty.
func (t Table) UpdateRowsWithMap(ctx context.Context, q Queryer, fields map[string]any, whereKey string, match any) error {
	if len(fields) == 0 {
		return nil
	}
	b := t.builder()
	keys := sortedKeys(fields)
	sets := make([]string, len(keys))
	args := make([]any, 0, len(keys)+1)
	for i, k := range keys {
		sets[i] = fmt.Sprintf("%s = %s", b.quote(k), b.placeholder())
		args = append(args, fields[k])
	}
	args = append(args, match)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
		b.quote(t.Name), strings.Join(sets, ", "), b.quote(whereKey), b.placeholder())
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to update rows in %s: %w", t.Name, err)
	}
	return nil
}

// InsertRows inserts each row, one statement per row.
func (t Table) InsertRows(ctx context.Context, q Queryer, rows []map[string]any, insertType InsertType) error {
	for _, row := range rows {
		if err := t.InsertRow(ctx, q, row, insertType); err != nil {
			return err
		}
	}
	return nil
}

// InsertRow inserts a single row described as column → value.
func (t Table) InsertRow(ctx context.Context, q Queryer, row map[string]any, insertType InsertType) error {
	if len(row) == 0 {
		return fmt.Errorf("cannot insert an empty row into %s", t.Name)
	}
	b := t.builder()
	prefix, suffix, err := b.insertPrefix(insertType)
	if err != nil {
		return err
	}

	keys := sortedKeys(row)
	cols := make([]string, len(keys))
	args := make([]any, len(keys))
	for i, k := range keys {
		cols[i] = b.quote(k)
		args[i] = row[k]
	}

	query := fmt.Sprintf("%s %s (%s) VALUES (%s)%s",
		prefix, b.quote(t.Name), strings.Join(cols, ", "), b.placeholders(len(keys)), suffix)
	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", t.Name, err)
	}
	return nil
}

// NumberWithSQL runs a counting query and returns column 0 of its first row.
func (t Table) NumberWithSQL(ctx context.Context, q Queryer, query string, args ...any) (int64, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to run count query on %s: %w", t.Name, err)
	}
	defer rows.Close()
	return resultset.Count(rows)
}

// Count returns the number of rows in the table.
func (t Table) Count(ctx context.Context, q Queryer) (int64, error) {
	return t.NumberWithSQL(ctx, q, fmt.Sprintf("SELECT COUNT(*) FROM %s", t.builder().quote(t.Name)))
}

// ContainsColumn reports whether the table has a column with the given name,
// compared case-insensitively.
func (t Table) ContainsColumn(ctx context.Context, q Queryer, column string) (bool, error) {
	rows, err := q.QueryContext(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT 1", t.builder().quote(t.Name)))
	if err != nil {
		return false, fmt.Errorf("failed to read columns of %s: %w", t.Name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return false, fmt.Errorf("failed to read columns of %s: %w", t.Name, err)
	}
	for _, c := range cols {
		if strings.EqualFold(c, column) {
			return true, nil
		}
	}
	return false, nil
}

// ColumnValues returns every value of column in row order.
func (t Table) ColumnValues(ctx context.Context, q Queryer, column string) ([]types.Value, error) {
	rows, err := t.selectColumn(ctx, q, column)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return resultset.CollectSequence(rows)
}

// DistinctColumnValues returns the distinct values of column.
func (t Table) DistinctColumnValues(ctx context.Context, q Queryer, column string) (types.Set, error) {
	rows, err := t.selectColumn(ctx, q, column)
	if err != nil {
		return types.Set{}, err
	}
	defer rows.Close()
	return resultset.CollectSet(rows)
}

func (t Table) selectColumn(ctx context.Context, q Queryer, column string) (*sql.Rows, error) {
	b := t.builder()
	rows, err := q.QueryContext(ctx, fmt.Sprintf("SELECT %s FROM %s", b.quote(column), b.quote(t.Name)))
	if err != nil {
		return nil, fmt.Errorf("failed to select %s from %s: %w", column, t.Name, err)
	}
	return rows, nil
}
