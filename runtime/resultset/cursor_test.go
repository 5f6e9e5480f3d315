package resultset

import (
	"errors"
)

// fakeCursor serves one value per row. When failAt is non-zero, the attempt
// to advance onto that 1-based row fails with err.
type fakeCursor struct {
	rows    []any
	pos     int
	failAt  int
	err     error
	scanErr error
	stopped error
}

func newFakeCursor(rows ...any) *fakeCursor {
	return &fakeCursor{rows: rows}
}

func (c *fakeCursor) Next() bool {
	if c.stopped != nil {
		return false
	}
	if c.failAt > 0 && c.pos+1 == c.failAt {
		c.stopped = c.err
		return false
	}
	if c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *fakeCursor) Scan(dest ...any) error {
	if c.scanErr != nil {
		return c.scanErr
	}
	if c.pos == 0 || c.pos > len(c.rows) {
		return errors.New("no current row")
	}
	p, ok := dest[0].(*any)
	if !ok {
		return errors.New("unexpected destination")
	}
	*p = c.rows[c.pos-1]
	return nil
}

func (c *fakeCursor) Err() error {
	return c.stopped
}
