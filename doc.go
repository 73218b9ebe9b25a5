// Package dataframe is the repository root for the data-frame module, a
// small in-memory tabular-data container for delimited text.
//
// The module loads CSV-like byte streams into a header/row structure,
// supports read-only projection and slicing by label or position, and
// coerces cell contents into typed values, vectors and matrices on demand.
//
// Packages:
//
//   - pkg/dataframe: the frame container, CSV load/save, projection,
//     slicing, renaming and typed conversion
//   - pkg/scalar: the tagged option-carrier value {boolean, number, text}
//   - pkg/convert: best-effort text-to-value coercion
//   - pkg/strings: delimiter splitting, joining, trimming and pooled
//     string builders
//   - pkg/config: read/write option sets and their defaults
//   - pkg/errors: structured errors with typed categories
//   - pkg/logger: zap-based logging for the CLI layer
//
// The cmd/dataframe CLI exposes describe, select, slice, row and convert
// operations over CSV files.
package dataframe
