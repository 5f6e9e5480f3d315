package resultset

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/satishbabariya/rsdatabase/runtime/types"
)

// Map calls fn for every remaining row and gathers the kept results. fn
// returns false to skip a row.
//
// Unlike the collectors, Map closes c when it is done if c implements
// io.Closer. An error from fn or from the cursor aborts with no partial result.
func Map[T any](c Cursor, fn func(row Cursor) (T, bool, error)) (out []T, err error) {
	if closer, ok := c.(io.Closer); ok {
		defer func() {
			if cerr := closer.Close(); cerr != nil && err == nil {
				out, err = nil, fmt.Errorf("failed to close cursor: %w", cerr)
			}
		}()
	}

	out = make([]T, 0)
	row := 0
	for c.Next() {
		row++
		obj, keep, ferr := fn(c)
		if ferr != nil {
			return nil, fmt.Errorf("row %d: %w", row, ferr)
		}
		if keep {
			out = append(out, obj)
		}
	}
	if cerr := c.Err(); cerr != nil {
		return nil, &CursorReadError{Op: OpAdvance, Row: row + 1, Err: cerr}
	}
	return out, nil
}

// MapToSet is Map with the results deduplicated.
func MapToSet[T comparable](c Cursor, fn func(row Cursor) (T, bool, error)) (map[T]struct{}, error) {
	items, err := Map(c, fn)
	if err != nil {
		return nil, err
	}
	set := make(map[T]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set, nil
}

// Count reads column 0 of the first row as an integer, as produced by a
// SELECT COUNT(*) style query. A cursor with no rows counts as 0.
func Count(c Cursor) (int64, error) {
	r := newColumnReader(c)

	ok, err := r.next()
	if err != nil || !ok {
		return 0, err
	}

	v, err := r.value()
	if err != nil {
		return 0, err
	}

	switch v.Kind() {
	case types.Null:
		return 0, nil
	case types.Integer:
		n, _ := v.Int64()
		return n, nil
	case types.Real:
		f, _ := v.Float64()
		return int64(f), nil
	case types.Text:
		s, _ := v.Text()
		n, perr := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if perr != nil {
			return 0, &CursorReadError{Op: OpConvert, Row: r.row, Err: perr}
		}
		return n, nil
	default:
		return 0, &CursorReadError{Op: OpConvert, Row: r.row, Err: fmt.Errorf("cannot count a %s value", v.Kind())}
	}
}
