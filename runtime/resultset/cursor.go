// Package resultset collects values out of forward-only database result cursors.
//
// The collectors drain a cursor and keep the first column of every row. They
// never close the cursor; ownership stays with the caller.
package resultset

import (
	"github.com/satishbabariya/rsdatabase/runtime/types"
)

// Cursor is a forward-only iteration over the rows of an executed query.
// *sql.Rows satisfies it.
type Cursor interface {
	// Next advances to the next row and reports whether one is available.
	Next() bool

	// Scan copies the columns of the current row into dest.
	Scan(dest ...any) error

	// Err returns the error, if any, that stopped iteration.
	Err() error
}

// columnLister is implemented by cursors that know their column count.
// When present the reader scans every column and keeps the first.
type columnLister interface {
	Columns() ([]string, error)
}

// columnReader reads column 0 from successive rows of a cursor.
type columnReader struct {
	cursor Cursor
	row    int
	values []any
	ptrs   []any
}

func newColumnReader(c Cursor) *columnReader {
	return &columnReader{cursor: c}
}

// next advances the cursor. It returns false with a nil error at end of data.
func (r *columnReader) next() (bool, error) {
	if r.cursor.Next() {
		r.row++
		return true, nil
	}
	if err := r.cursor.Err(); err != nil {
		return false, &CursorReadError{Op: OpAdvance, Row: r.row + 1, Err: err}
	}
	return false, nil
}

// value returns column 0 of the current row.
func (r *columnReader) value() (types.Value, error) {
	if r.ptrs == nil {
		if err := r.allocate(); err != nil {
			return types.Value{}, err
		}
	}

	for i := range r.values {
		r.values[i] = nil
	}
	if err := r.cursor.Scan(r.ptrs...); err != nil {
		return types.Value{}, &CursorReadError{Op: OpScan, Row: r.row, Err: err}
	}

	v, err := types.FromDriver(r.values[0])
	if err != nil {
		return types.Value{}, &CursorReadError{Op: OpConvert, Row: r.row, Err: err}
	}
	return v, nil
}

// allocate sizes the scan buffers. It runs after the first successful Next,
// since closed cursors refuse to report their columns.
func (r *columnReader) allocate() error {
	width := 1
	if lister, ok := r.cursor.(columnLister); ok {
		cols, err := lister.Columns()
		if err != nil {
			return &CursorReadError{Op: OpScan, Row: r.row, Err: err}
		}
		if len(cols) > 0 {
			width = len(cols)
		}
	}

	r.values = make([]any, width)
	r.ptrs = make([]any, width)
	for i := range r.values {
		r.ptrs[i] = &r.values[i]
	}
	return nil
}
