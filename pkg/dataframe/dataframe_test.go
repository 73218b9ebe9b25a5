package dataframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okano-tomoyuki/data-frame/pkg/errors"
)

func mustFrame(t *testing.T, header []string, rows [][]string) *DataFrame {
	t.Helper()
	df, err := FromRecords(header, rows)
	require.NoError(t, err)
	return df
}

func threeRows(t *testing.T) *DataFrame {
	return mustFrame(t, []string{"a", "b"}, [][]string{
		{"1", "2"},
		{"3", "4"},
		{"5", "6"},
	})
}

func TestFromRecords(t *testing.T) {
	df := threeRows(t)
	assert.Equal(t, []string{"a", "b"}, df.Header())
	assert.Equal(t, 3, df.RowCount())
	assert.Equal(t, 2, df.ColumnCount())
}

func TestFromRecordsRejectsRaggedRows(t *testing.T) {
	_, err := FromRecords([]string{"a", "b"}, [][]string{
		{"1", "2"},
		{"3"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeSchemaMismatch))
	assert.Equal(t, 1, errors.Detail(err, "record_index"))
	assert.Equal(t, 2, errors.Detail(err, "expected"))
	assert.Equal(t, 1, errors.Detail(err, "actual"))
}

func TestFromRecordsCopiesInput(t *testing.T) {
	header := []string{"a"}
	rows := [][]string{{"1"}}
	df := mustFrame(t, header, rows)

	header[0] = "mutated"
	rows[0][0] = "mutated"

	assert.Equal(t, []string{"a"}, df.Header())
	assert.Equal(t, [][]string{{"1"}}, df.Rows())
}

func TestColumn(t *testing.T) {
	df := threeRows(t)

	col, err := df.Column("b")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, col.Header())
	assert.Equal(t, [][]string{{"2"}, {"4"}, {"6"}}, col.Rows())
}

func TestColumnNotFound(t *testing.T) {
	df := threeRows(t)

	_, err := df.Column("missing")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeLabelNotFound))
	assert.Equal(t, "missing", errors.Detail(err, "column"))
}

func TestColumnsPreservesCallerOrder(t *testing.T) {
	df := threeRows(t)

	projected, err := df.Columns("b", "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, projected.Header())
	assert.Equal(t, [][]string{{"2", "1"}, {"4", "3"}, {"6", "5"}}, projected.Rows())
}

func TestColumnsFailFast(t *testing.T) {
	df := threeRows(t)

	_, err := df.Columns("a", "missing", "b")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeLabelNotFound))
}

func TestProjectionIdempotence(t *testing.T) {
	df := threeRows(t)

	projected, err := df.Columns(df.Header()...)
	require.NoError(t, err)
	assert.True(t, df.Equal(projected))
}

func TestRow(t *testing.T) {
	df := threeRows(t)

	row, err := df.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, row.Header())
	assert.Equal(t, [][]string{{"3", "4"}}, row.Rows())
}

func TestRowNegativeIndexEquivalence(t *testing.T) {
	df := threeRows(t)
	n := df.RowCount()

	for k := 1; k <= n; k++ {
		negative, err := df.Row(-k)
		require.NoError(t, err)
		positive, err := df.Row(n - k)
		require.NoError(t, err)
		assert.True(t, negative.Equal(positive), "Row(-%d) should equal Row(%d)", k, n-k)
	}
}

func TestRowOutOfRange(t *testing.T) {
	df := threeRows(t)

	for _, index := range []int{3, -4, 10} {
		_, err := df.Row(index)
		require.Error(t, err, "index %d", index)
		assert.True(t, errors.IsType(err, errors.ErrorTypeIndexOutOfRange))
	}
}

func TestSlice(t *testing.T) {
	df := threeRows(t)

	sliced, err := df.Slice(0, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "2"}, {"3", "4"}}, sliced.Rows())
	assert.Equal(t, []string{"a", "b"}, sliced.Header())
}

func TestSliceNegativeBounds(t *testing.T) {
	df := threeRows(t)

	// Scenario: slice(-2, -1) on a 3-row frame selects the single row at
	// original index 1.
	sliced, err := df.Slice(-2, -1)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"3", "4"}}, sliced.Rows())
}

func TestSliceEmptyRange(t *testing.T) {
	df := threeRows(t)

	sliced, err := df.Slice(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, sliced.RowCount())
	assert.Equal(t, 2, sliced.ColumnCount())
}

func TestSliceBoundaries(t *testing.T) {
	df := threeRows(t)
	n := df.RowCount()

	// end == RowCount() is rejected: both bounds share the strict
	// [0, RowCount()) range check, so a slice through the final row is not
	// expressible. Kept for compatibility; see the Slice doc comment.
	_, err := df.Slice(0, n)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeIndexOutOfRange))

	_, err = df.Slice(-n-1, 1)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeIndexOutOfRange))

	_, err = df.Slice(2, 1)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeIndexOutOfRange))
}

func TestSliceProducesIndependentCopy(t *testing.T) {
	df := threeRows(t)

	sliced, err := df.Slice(0, 1)
	require.NoError(t, err)

	renamed, err := sliced.Rename([]string{"x", "y"})
	require.NoError(t, err)
	assert.Same(t, sliced, renamed)
	assert.Equal(t, []string{"a", "b"}, df.Header(), "renaming a derived frame must not touch the source")
}

func TestRename(t *testing.T) {
	df := threeRows(t)

	renamed, err := df.Rename([]string{"x", "y"})
	require.NoError(t, err)
	assert.Same(t, df, renamed, "Rename returns the receiver for chaining")
	assert.Equal(t, []string{"x", "y"}, df.Header())
	assert.Equal(t, 3, df.RowCount(), "rename swaps labels only")
}

func TestRenameArityMismatch(t *testing.T) {
	df := threeRows(t)

	_, err := df.Rename([]string{"only-one"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeArityMismatch))
	assert.Equal(t, 2, errors.Detail(err, "expected"))
	assert.Equal(t, 1, errors.Detail(err, "actual"))
}

func TestCloneIndependence(t *testing.T) {
	df := threeRows(t)
	clone := df.Clone()

	_, err := df.Rename([]string{"x", "y"})
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, clone.Header())
	assert.True(t, clone.Equal(threeRows(t)))
}

func TestEqual(t *testing.T) {
	df := threeRows(t)

	assert.True(t, df.Equal(threeRows(t)))
	assert.False(t, df.Equal(nil))

	other := mustFrame(t, []string{"a", "b"}, [][]string{{"1", "2"}})
	assert.False(t, df.Equal(other))
}

func TestDescribe(t *testing.T) {
	df := threeRows(t)

	desc := df.Describe()
	assert.Equal(t, []string{"a", "b"}, desc.Header)
	assert.Equal(t, 3, desc.RowCount)
	assert.Equal(t, 2, desc.ColumnCount)

	doc, err := desc.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"header":["a","b"],"row_count":3,"column_count":2}`, doc)
}

func TestRowWidthInvariant(t *testing.T) {
	df := threeRows(t)

	derived := []*DataFrame{}

	col, err := df.Column("a")
	require.NoError(t, err)
	derived = append(derived, col)

	cols, err := df.Columns("b", "a")
	require.NoError(t, err)
	derived = append(derived, cols)

	row, err := df.Row(-1)
	require.NoError(t, err)
	derived = append(derived, row)

	sliced, err := df.Slice(0, 2)
	require.NoError(t, err)
	derived = append(derived, sliced)

	for _, frame := range derived {
		for _, r := range frame.Rows() {
			assert.Len(t, r, frame.ColumnCount())
		}
	}
}
