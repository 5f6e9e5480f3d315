package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_AddCollapsesDuplicates(t *testing.T) {
	s := NewSet(0)

	assert.True(t, s.Add(IntegerValue(1)))
	assert.True(t, s.Add(IntegerValue(2)))
	assert.False(t, s.Add(IntegerValue(2)))
	assert.True(t, s.Add(IntegerValue(3)))

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(IntegerValue(2)))
	assert.False(t, s.Contains(IntegerValue(4)))
}

func TestSet_BlobsAreComparedByteWise(t *testing.T) {
	s := SetOf(
		BlobValue([]byte{0x00, 0x01}),
		BlobValue([]byte{0x00, 0x01}),
		BlobValue([]byte{0x00, 0x02}),
		TextValue("\x00\x01"),
	)

	assert.Equal(t, 3, s.Len())
}

func TestSet_NullsCollapse(t *testing.T) {
	s := SetOf(NullValue(), NullValue(), IntegerValue(0))
	assert.Equal(t, 2, s.Len())
}

func TestSet_ValuesAreSorted(t *testing.T) {
	s := SetOf(TextValue("b"), IntegerValue(2), TextValue("a"), NullValue(), IntegerValue(1))

	assert.Equal(t, []Value{
		NullValue(),
		IntegerValue(1),
		IntegerValue(2),
		TextValue("a"),
		TextValue("b"),
	}, s.Values())
}

func TestSet_Equal(t *testing.T) {
	a := SetOf(IntegerValue(1), IntegerValue(2))
	b := SetOf(IntegerValue(2), IntegerValue(1), IntegerValue(1))
	c := SetOf(IntegerValue(1), IntegerValue(3))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(NewSet(0)))
}
