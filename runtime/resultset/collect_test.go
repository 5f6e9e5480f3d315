package resultset

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/rsdatabase/runtime/types"
)

func ints(values ...int64) []types.Value {
	out := make([]types.Value, len(values))
	for i, v := range values {
		out[i] = types.IntegerValue(v)
	}
	return out
}

func TestCollectSequence(t *testing.T) {
	tests := []struct {
		name string
		rows []any
		want []types.Value
	}{
		{
			name: "empty cursor",
			rows: nil,
			want: []types.Value{},
		},
		{
			name: "preserves order and duplicates",
			rows: []any{int64(1), int64(2), int64(2), int64(3)},
			want: ints(1, 2, 2, 3),
		},
		{
			name: "mixed storage classes",
			rows: []any{nil, "a", 1.5, []byte{0xff}},
			want: []types.Value{
				types.NullValue(),
				types.TextValue("a"),
				types.RealValue(1.5),
				types.BlobValue([]byte{0xff}),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectSequence(newFakeCursor(tt.rows...))
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.rows))
		})
	}
}

func TestCollectSet(t *testing.T) {
	tests := []struct {
		name string
		rows []any
		want types.Set
	}{
		{
			name: "empty cursor",
			rows: nil,
			want: types.NewSet(0),
		},
		{
			name: "collapses duplicates",
			rows: []any{int64(1), int64(2), int64(2), int64(3)},
			want: types.SetOf(ints(1, 2, 3)...),
		},
		{
			name: "equal text is one entry",
			rows: []any{"feed", "feed", "item"},
			want: types.SetOf(types.TextValue("feed"), types.TextValue("item")),
		},
		{
			name: "blobs compare byte-wise",
			rows: []any{[]byte("ab"), []byte("ab"), []byte("ac")},
			want: types.SetOf(types.BlobValue([]byte("ab")), types.BlobValue([]byte("ac"))),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectSet(newFakeCursor(tt.rows...))
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got.Values())
			assert.LessOrEqual(t, got.Len(), len(tt.rows))
		})
	}
}

func TestCollect_FailureDiscardsPartialResult(t *testing.T) {
	boom := errors.New("disk I/O error")

	t.Run("sequence", func(t *testing.T) {
		c := newFakeCursor(int64(1), int64(2), int64(3))
		c.failAt, c.err = 3, boom

		got, err := CollectSequence(c)
		require.Error(t, err)
		assert.Nil(t, got)

		var readErr *CursorReadError
		require.True(t, errors.As(err, &readErr))
		assert.Equal(t, OpAdvance, readErr.Op)
		assert.Equal(t, 3, readErr.Row)
		assert.ErrorIs(t, err, boom)
		assert.ErrorIs(t, err, ErrCursorRead)
	})

	t.Run("set", func(t *testing.T) {
		c := newFakeCursor(int64(1), int64(2), int64(3))
		c.failAt, c.err = 3, boom

		got, err := CollectSet(c)
		require.Error(t, err)
		assert.True(t, IsCursorRead(err))
		assert.Equal(t, 0, got.Len())
	})
}

func TestCollect_ScanFailure(t *testing.T) {
	c := newFakeCursor(int64(1))
	c.scanErr = errors.New("column index out of range")

	_, err := CollectSequence(c)

	var readErr *CursorReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, OpScan, readErr.Op)
	assert.Equal(t, 1, readErr.Row)
}

func TestCollect_UnsupportedDriverValue(t *testing.T) {
	_, err := CollectSet(newFakeCursor(struct{}{}))

	var readErr *CursorReadError
	require.True(t, errors.As(err, &readErr))
	assert.Equal(t, OpConvert, readErr.Op)
}

func TestCollect_ExhaustedCursorYieldsEmpty(t *testing.T) {
	c := newFakeCursor(int64(1), int64(2))

	first, err := CollectSequence(c)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	again, err := CollectSequence(c)
	require.NoError(t, err)
	assert.NotNil(t, again)
	assert.Empty(t, again)

	set, err := CollectSet(c)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
}

func TestCollect_MidIterationCollectsRemainder(t *testing.T) {
	c := newFakeCursor(int64(1), int64(2), int64(3))
	require.True(t, c.Next())

	got, err := CollectSequence(c)
	require.NoError(t, err)
	assert.Equal(t, ints(2, 3), got)
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestCollectSequence_SQLRows(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT articleID FROM statuses").
		WillReturnRows(sqlmock.NewRows([]string{"articleID"}).
			AddRow(int64(1)).
			AddRow(int64(2)).
			AddRow(int64(2)).
			AddRow(int64(3)))

	rows, err := db.Query("SELECT articleID FROM statuses")
	require.NoError(t, err)
	defer rows.Close()

	got, err := CollectSequence(rows)
	require.NoError(t, err)
	assert.Equal(t, ints(1, 2, 2, 3), got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectSet_SQLRows(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT articleID FROM statuses").
		WillReturnRows(sqlmock.NewRows([]string{"articleID"}).
			AddRow(int64(1)).
			AddRow(int64(2)).
			AddRow(int64(2)).
			AddRow(int64(3)))

	rows, err := db.Query("SELECT articleID FROM statuses")
	require.NoError(t, err)
	defer rows.Close()

	got, err := CollectSet(rows)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Len())
	assert.Equal(t, ints(1, 2, 3), got.Values())
}

func TestCollect_SQLRowsErrorAfterTwoRows(t *testing.T) {
	boom := errors.New("database disk image is malformed")

	for _, into := range []string{"sequence", "set"} {
		t.Run(into, func(t *testing.T) {
			db, mock := newMock(t)

			mock.ExpectQuery("SELECT").
				WillReturnRows(sqlmock.NewRows([]string{"v"}).
					AddRow(int64(10)).
					AddRow(int64(20)).
					AddRow(int64(30)).
					RowError(2, boom))

			rows, err := db.Query("SELECT v FROM t")
			require.NoError(t, err)
			defer rows.Close()

			switch into {
			case "sequence":
				got, err := CollectSequence(rows)
				assert.Nil(t, got)
				require.ErrorIs(t, err, boom)
			case "set":
				got, err := CollectSet(rows)
				assert.Equal(t, 0, got.Len())
				require.ErrorIs(t, err, boom)
			}
		})
	}
}

func TestCollect_SQLRowsKeepsFirstColumn(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"name", "id"}).
			AddRow("alpha", int64(1)).
			AddRow("beta", int64(2)))

	rows, err := db.Query("SELECT name, id FROM feeds")
	require.NoError(t, err)
	defer rows.Close()

	got, err := CollectSequence(rows)
	require.NoError(t, err)
	assert.Equal(t, []types.Value{types.TextValue("alpha"), types.TextValue("beta")}, got)
}

func TestCollect_SQLRowsReinvokeAfterExhaustion(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("SELECT").
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow(int64(1)))

	rows, err := db.Query("SELECT v FROM t")
	require.NoError(t, err)
	defer rows.Close()

	_, err = CollectSequence(rows)
	require.NoError(t, err)

	again, err := CollectSet(rows)
	require.NoError(t, err)
	assert.Equal(t, 0, again.Len())
}
