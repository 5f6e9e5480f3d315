package resultset

import (
	"github.com/satishbabariya/rsdatabase/internal/debug"
	"github.com/satishbabariya/rsdatabase/runtime/types"
)

// CollectSequence drains c and returns the first column of every remaining
// row, in row order.
//
// An empty, non-nil slice is returned when no rows are left, including when c
// was already exhausted. On failure the partial result is dropped and a
// *CursorReadError is returned. Date-like columns come back as stored, see
// types.FromDriver.
func CollectSequence(c Cursor) ([]types.Value, error) {
	r := newColumnReader(c)
	out := make([]types.Value, 0)

	for {
		ok, err := r.next()
		if err != nil {
			logFailure("sequence", err)
			return nil, err
		}
		if !ok {
			break
		}

		v, err := r.value()
		if err != nil {
			logFailure("sequence", err)
			return nil, err
		}
		out = append(out, v)
	}

	debug.Debug("collected column", "into", "sequence", "rows", r.row)
	return out, nil
}

// CollectSet drains c and returns the distinct values of the first column of
// every remaining row. It follows the same contract as CollectSequence.
func CollectSet(c Cursor) (types.Set, error) {
	r := newColumnReader(c)
	out := types.NewSet(0)

	for {
		ok, err := r.next()
		if err != nil {
			logFailure("set", err)
			return types.Set{}, err
		}
		if !ok {
			break
		}

		v, err := r.value()
		if err != nil {
			logFailure("set", err)
			return types.Set{}, err
		}
		out.Add(v)
	}

	debug.Debug("collected column", "into", "set", "rows", r.row, "distinct", out.Len())
	return out, nil
}

func logFailure(into string, err error) {
	debug.Debug("column collection failed", "into", into, "error", err)
}
