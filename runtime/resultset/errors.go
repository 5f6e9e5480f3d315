package resultset

import (
	"errors"
	"fmt"
)

// ErrCursorRead matches every *CursorReadError with errors.Is.
var ErrCursorRead = errors.New("cursor read failed")

// Operations reported in CursorReadError.Op.
const (
	// OpAdvance means the cursor failed while moving to the next row.
	OpAdvance = "advance"
	// OpScan means reading the current row failed.
	OpScan = "scan"
	// OpConvert means the driver returned a value with no Value representation.
	OpConvert = "convert"
)

// CursorReadError is returned when a cursor fails mid-iteration.
// Values collected before the failure are discarded.
type CursorReadError struct {
	Op  string
	Row int
	Err error
}

// Error implements the error interface.
func (e *CursorReadError) Error() string {
	return fmt.Sprintf("cursor %s failed at row %d: %v", e.Op, e.Row, e.Err)
}

// Unwrap returns the underlying error.
func (e *CursorReadError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrCursorRead.
func (e *CursorReadError) Is(target error) bool {
	return target == ErrCursorRead
}

// IsCursorRead checks if an error is a cursor read failure.
func IsCursorRead(err error) bool {
	return errors.Is(err, ErrCursorRead)
}
