package dataframe

import (
	"github.com/okano-tomoyuki/data-frame/pkg/convert"
	"github.com/okano-tomoyuki/data-frame/pkg/errors"
)

// Axis selects the traversal direction when flattening a frame into a
// one-dimensional sequence.
type Axis int

const (
	// AxisColumn traverses down a single column, top to bottom
	AxisColumn Axis = iota
	// AxisRow traverses across a single row, left to right
	AxisRow
)

// As coerces a 1x1 frame's single cell to T. Any other shape fails with a
// shape-violation error. Coercion itself is best-effort textual parsing and
// never fails; see package convert.
func As[T convert.Primitive](df *DataFrame) (T, error) {
	var zero T
	if len(df.rows) != 1 || len(df.rows[0]) != 1 {
		return zero, errors.New(errors.ErrorTypeShapeViolation, "As can be used on a 1 row and 1 column frame only").
			WithDetail("row_count", len(df.rows)).
			WithDetail("column_count", len(df.header))
	}
	return convert.To[T](df.rows[0][0]), nil
}

// ToVector coerces the frame into a flat sequence of T along the given
// axis. AxisColumn requires exactly one column and yields one element per
// row; AxisRow requires exactly one row and yields one element per cell.
// A frame of the wrong shape fails with a shape-violation error.
func ToVector[T convert.Primitive](df *DataFrame, axis Axis) ([]T, error) {
	if axis == AxisRow && len(df.rows) != 1 {
		return nil, errors.New(errors.ErrorTypeShapeViolation, "ToVector along a row can be used on a 1 row frame only").
			WithDetail("row_count", len(df.rows))
	}
	if axis == AxisColumn && len(df.header) != 1 {
		return nil, errors.New(errors.ErrorTypeShapeViolation, "ToVector along a column can be used on a 1 column frame only").
			WithDetail("column_count", len(df.header))
	}

	if axis == AxisRow {
		return convert.ToSlice[T](df.rows[0]), nil
	}

	result := make([]T, 0, len(df.rows))
	for _, row := range df.rows {
		result = append(result, convert.To[T](row[0]))
	}
	return result, nil
}

// ToMatrix coerces every cell to T, preserving the row/column shape. It has
// no shape precondition.
func ToMatrix[T convert.Primitive](df *DataFrame) [][]T {
	result := make([][]T, 0, len(df.rows))
	for _, row := range df.rows {
		result = append(result, convert.ToSlice[T](row))
	}
	return result
}

// Flatten coerces the frame into a flat sequence with the axis inferred
// from the row count: exactly one row flattens along the row, anything else
// flattens along the column.
//
// The inference is ambiguous by design and kept for compatibility: a 1xN
// frame and an Nx1 frame both flatten successfully but traverse different
// axes, and on a 1x1 frame the row wins. Callers that care about the
// traversal direction must use ToVector with an explicit axis.
func Flatten[T convert.Primitive](df *DataFrame) ([]T, error) {
	if len(df.rows) == 1 {
		return ToVector[T](df, AxisRow)
	}
	return ToVector[T](df, AxisColumn)
}
