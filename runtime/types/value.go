// Package types provides the column value types returned by result cursors.
package types

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Kind identifies the storage class of a Value.
type Kind uint8

const (
	// Null is the SQL NULL value.
	Null Kind = iota
	// Integer is a signed 64-bit integer.
	Integer
	// Real is a 64-bit floating point number.
	Real
	// Text is a UTF-8 string.
	Text
	// Blob is an opaque byte sequence.
	Blob
)

// String returns the SQLite name of the storage class.
func (k Kind) String() string {
	switch k {
	case Null:
		return "NULL"
	case Integer:
		return "INTEGER"
	case Real:
		return "REAL"
	case Text:
		return "TEXT"
	case Blob:
		return "BLOB"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// TimestampLayout is the layout used to render driver-parsed timestamps back
// into their stored text form. It matches the first entry of
// sqlite3.SQLiteTimestampFormats, which is what the driver writes.
const TimestampLayout = "2006-01-02 15:04:05.999999999-07:00"

// Value is a single column value as stored by the database.
//
// Value is comparable: two Values are == when they have the same Kind and the
// same payload, so it can be used directly as a map key. Blob payloads are held
// as a string internally which gives byte-wise equality for free.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// NullValue returns the NULL value.
func NullValue() Value { return Value{} }

// IntegerValue returns an INTEGER value.
func IntegerValue(v int64) Value { return Value{kind: Integer, i: v} }

// RealValue returns a REAL value.
func RealValue(v float64) Value { return Value{kind: Real, f: v} }

// TextValue returns a TEXT value.
func TextValue(v string) Value { return Value{kind: Text, s: v} }

// BlobValue returns a BLOB value. The bytes are copied.
func BlobValue(v []byte) Value { return Value{kind: Blob, s: string(v)} }

// FromDriver converts a value produced by database/sql (scanned into an *any)
// into a Value.
//
// No temporal interpretation is applied. Drivers that already parsed a column
// into time.Time (mattn/go-sqlite3 does this for DATE/DATETIME/TIMESTAMP
// declared columns) get rendered back to text using TimestampLayout, and bool
// values become their stored integer form.
func FromDriver(src any) (Value, error) {
	switch v := src.(type) {
	case nil:
		return NullValue(), nil
	case int64:
		return IntegerValue(v), nil
	case int:
		return IntegerValue(int64(v)), nil
	case int32:
		return IntegerValue(int64(v)), nil
	case int16:
		return IntegerValue(int64(v)), nil
	case int8:
		return IntegerValue(int64(v)), nil
	case uint32:
		return IntegerValue(int64(v)), nil
	case uint16:
		return IntegerValue(int64(v)), nil
	case uint8:
		return IntegerValue(int64(v)), nil
	case float64:
		return RealValue(v), nil
	case float32:
		return RealValue(float64(v)), nil
	case string:
		return TextValue(v), nil
	case []byte:
		return BlobValue(v), nil
	case bool:
		if v {
			return IntegerValue(1), nil
		}
		return IntegerValue(0), nil
	case time.Time:
		return TextValue(v.Format(TimestampLayout)), nil
	default:
		return Value{}, fmt.Errorf("unsupported column value type %T", src)
	}
}

// Kind returns the storage class of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is NULL.
func (v Value) IsNull() bool { return v.kind == Null }

// Int64 returns the integer payload. ok is false unless v is an INTEGER.
func (v Value) Int64() (n int64, ok bool) {
	return v.i, v.kind == Integer
}

// Float64 returns the real payload. ok is false unless v is a REAL.
func (v Value) Float64() (f float64, ok bool) {
	return v.f, v.kind == Real
}

// Text returns the text payload. ok is false unless v is TEXT.
func (v Value) Text() (s string, ok bool) {
	if v.kind != Text {
		return "", false
	}
	return v.s, true
}

// Bytes returns a copy of the blob payload. ok is false unless v is a BLOB.
func (v Value) Bytes() (b []byte, ok bool) {
	if v.kind != Blob {
		return nil, false
	}
	return []byte(v.s), true
}

// Any returns the payload as the Go type database/sql would hand back:
// nil, int64, float64, string or []byte.
func (v Value) Any() any {
	switch v.kind {
	case Integer:
		return v.i
	case Real:
		return v.f
	case Text:
		return v.s
	case Blob:
		return []byte(v.s)
	default:
		return nil
	}
}

// String formats v for display. Blobs are rendered as hex literals.
func (v Value) String() string {
	switch v.kind {
	case Integer:
		return strconv.FormatInt(v.i, 10)
	case Real:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case Text:
		return v.s
	case Blob:
		return fmt.Sprintf("X'%X'", v.s)
	default:
		return "NULL"
	}
}

// Compare orders values by kind first (NULL < INTEGER < REAL < TEXT < BLOB),
// then by payload. It returns -1, 0 or +1.
func (v Value) Compare(o Value) int {
	if v.kind != o.kind {
		if v.kind < o.kind {
			return -1
		}
		return 1
	}
	switch v.kind {
	case Integer:
		switch {
		case v.i < o.i:
			return -1
		case v.i > o.i:
			return 1
		}
	case Real:
		switch {
		case v.f < o.f:
			return -1
		case v.f > o.f:
			return 1
		}
	case Text, Blob:
		return bytes.Compare([]byte(v.s), []byte(o.s))
	}
	return 0
}

// MarshalJSON encodes NULL as null, numbers as JSON numbers, text as a string
// and blobs as base64 strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case Integer:
		return json.Marshal(v.i)
	case Real:
		return json.Marshal(v.f)
	case Text:
		return json.Marshal(v.s)
	case Blob:
		return json.Marshal(base64.StdEncoding.EncodeToString([]byte(v.s)))
	default:
		return []byte("null"), nil
	}
}
