// Package dataframe implements an in-memory tabular-data container: an
// ordered header of column names over an ordered matrix of text cells.
//
// Every cell is stored as text and coerced on demand; there is no per-column
// type inference. Frames are immutable from the outside except for Rename:
// projection and slicing always build a fresh, independently owned frame.
// Access to a single frame from multiple goroutines is not synchronized.
package dataframe

import (
	"github.com/goccy/go-json"

	"github.com/okano-tomoyuki/data-frame/pkg/errors"
)

// DataFrame is the row/column container. The invariant maintained by every
// constructor and derivation is that each row holds exactly one cell per
// header entry.
type DataFrame struct {
	header []string
	rows   [][]string
}

// FromRecords builds a frame from an in-memory header and cell matrix. Both
// inputs are deep-copied. It fails with a schema-mismatch error when any
// row's cell count differs from the header's length.
func FromRecords(header []string, rows [][]string) (*DataFrame, error) {
	copied := make([][]string, 0, len(rows))
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, schemaMismatch(i, len(header), len(row))
		}
		copied = append(copied, cloneRow(row))
	}
	return &DataFrame{header: cloneRow(header), rows: copied}, nil
}

// Header returns a copy of the column names in order.
func (df *DataFrame) Header() []string {
	return cloneRow(df.header)
}

// Rows returns a deep copy of the cell matrix in row order.
func (df *DataFrame) Rows() [][]string {
	return cloneRows(df.rows)
}

// RowCount returns the number of records.
func (df *DataFrame) RowCount() int {
	return len(df.rows)
}

// ColumnCount returns the number of columns.
func (df *DataFrame) ColumnCount() int {
	return len(df.header)
}

// Clone returns a deep copy of the frame.
func (df *DataFrame) Clone() *DataFrame {
	return &DataFrame{header: cloneRow(df.header), rows: cloneRows(df.rows)}
}

// Equal reports whether both frames hold the same header and the same rows
// in the same order.
func (df *DataFrame) Equal(other *DataFrame) bool {
	if other == nil {
		return false
	}
	if !rowEqual(df.header, other.header) || len(df.rows) != len(other.rows) {
		return false
	}
	for i := range df.rows {
		if !rowEqual(df.rows[i], other.rows[i]) {
			return false
		}
	}
	return true
}

// Description carries the structural metadata of a frame.
type Description struct {
	Header      []string `json:"header" yaml:"header"`
	RowCount    int      `json:"row_count" yaml:"row_count"`
	ColumnCount int      `json:"column_count" yaml:"column_count"`
}

// Describe returns the frame's metadata.
func (df *DataFrame) Describe() Description {
	return Description{
		Header:      cloneRow(df.header),
		RowCount:    len(df.rows),
		ColumnCount: len(df.header),
	}
}

// JSON renders the description as a JSON document.
func (d Description) JSON() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Column projects a single column by name. It fails with a label-not-found
// error when the name is absent from the header.
func (df *DataFrame) Column(name string) (*DataFrame, error) {
	index := df.columnIndex(name)
	if index < 0 {
		return nil, errors.New(errors.ErrorTypeLabelNotFound, "target column '"+name+"' was not found").
			WithDetail("column", name)
	}

	rows := make([][]string, 0, len(df.rows))
	for _, row := range df.rows {
		rows = append(rows, []string{row[index]})
	}

	return &DataFrame{header: []string{df.header[index]}, rows: rows}, nil
}

// Columns projects multiple columns in the caller's requested order, which
// may differ from the header order. Resolution is fail-fast: the first name
// absent from the header aborts the projection.
func (df *DataFrame) Columns(names ...string) (*DataFrame, error) {
	indices := make([]int, 0, len(names))
	for _, name := range names {
		index := df.columnIndex(name)
		if index < 0 {
			return nil, errors.New(errors.ErrorTypeLabelNotFound, "target column '"+name+"' was not found").
				WithDetail("column", name)
		}
		indices = append(indices, index)
	}

	header := make([]string, 0, len(indices))
	for _, index := range indices {
		header = append(header, df.header[index])
	}

	rows := make([][]string, 0, len(df.rows))
	for _, row := range df.rows {
		cells := make([]string, 0, len(indices))
		for _, index := range indices {
			cells = append(cells, row[index])
		}
		rows = append(rows, cells)
	}

	return &DataFrame{header: header, rows: rows}, nil
}

// Row selects a single record by position. Negative indices count from the
// end, so Row(-1) on an N-row frame selects row N-1. The result keeps the
// full header over the one selected row.
func (df *DataFrame) Row(index int) (*DataFrame, error) {
	normalized, err := normalizeIndex(index, len(df.rows))
	if err != nil {
		return nil, err
	}
	return &DataFrame{
		header: cloneRow(df.header),
		rows:   [][]string{cloneRow(df.rows[normalized])},
	}, nil
}

// Slice selects the half-open row range [start, end). Both bounds support
// negative-index normalization independently and both must land inside
// [0, RowCount()) after normalization.
//
// Because the end bound is checked with the same strict range as the start,
// end == RowCount() is rejected: a slice through the final row is not
// expressible. That boundary is historical behavior kept for compatibility;
// do not rely on Slice to reach the last row.
func (df *DataFrame) Slice(start, end int) (*DataFrame, error) {
	s, err := normalizeIndex(start, len(df.rows))
	if err != nil {
		return nil, err
	}
	e, err := normalizeIndex(end, len(df.rows))
	if err != nil {
		return nil, err
	}
	if s > e {
		return nil, errors.New(errors.ErrorTypeIndexOutOfRange, "end index must not be smaller than start index").
			WithDetail("start", s).
			WithDetail("end", e)
	}

	rows := make([][]string, 0, e-s)
	for i := s; i < e; i++ {
		rows = append(rows, cloneRow(df.rows[i]))
	}

	return &DataFrame{header: cloneRow(df.header), rows: rows}, nil
}

// Rename replaces the header element-for-element and returns the receiver
// for chaining. It is the only mutating operation on a frame. It fails with
// an arity-mismatch error when the supplied length differs from the current
// column count.
func (df *DataFrame) Rename(header []string) (*DataFrame, error) {
	if len(header) != len(df.header) {
		return nil, errors.New(errors.ErrorTypeArityMismatch, "header size is different").
			WithDetail("expected", len(df.header)).
			WithDetail("actual", len(header))
	}
	df.header = cloneRow(header)
	return df, nil
}

func (df *DataFrame) columnIndex(name string) int {
	for i, column := range df.header {
		if column == name {
			return i
		}
	}
	return -1
}

// normalizeIndex applies the shared negative-index convention: a negative
// index counts from the end. Range checking happens after normalization.
func normalizeIndex(index, count int) (int, error) {
	normalized := index
	if normalized < 0 {
		normalized += count
	}
	if normalized < 0 || normalized >= count {
		return 0, errors.New(errors.ErrorTypeIndexOutOfRange, "index number was out of range").
			WithDetail("index", index).
			WithDetail("row_count", count)
	}
	return normalized, nil
}

func schemaMismatch(record, expected, actual int) error {
	return errors.New(errors.ErrorTypeSchemaMismatch, "record field count differs from header field count").
		WithDetail("record_index", record).
		WithDetail("expected", expected).
		WithDetail("actual", actual)
}

func cloneRow(row []string) []string {
	copied := make([]string, len(row))
	copy(copied, row)
	return copied
}

func cloneRows(rows [][]string) [][]string {
	copied := make([][]string, 0, len(rows))
	for _, row := range rows {
		copied = append(copied, cloneRow(row))
	}
	return copied
}

func rowEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
