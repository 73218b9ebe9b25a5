package dataframe

import (
	"os"

	"github.com/okano-tomoyuki/data-frame/pkg/config"
	"github.com/okano-tomoyuki/data-frame/pkg/errors"
	"github.com/okano-tomoyuki/data-frame/pkg/scalar"
	stringpool "github.com/okano-tomoyuki/data-frame/pkg/strings"
)

// Option keys for the option-map factory.
type Option int

const (
	// Header toggles first-line header consumption (boolean scalar)
	Header Option = iota
	// Separator overrides the field separator (text scalar)
	Separator
	// LineTerminator overrides the record separator (text scalar)
	LineTerminator
	// AutoTrim toggles post-split whitespace stripping (boolean scalar)
	AutoTrim
)

// ReadCSV slurps the file at path and parses it into a frame.
//
// The whole source is read into one buffer, split on the line terminator,
// and trailing empty lines are dropped so a final newline is not treated as
// a blank record. When a header is present the first remaining line supplies
// the column names; otherwise names "0","1",...,"N-1" are synthesized from
// the first data line's field count. Every record is validated against the
// header width; a frame under construction that fails validation is
// discarded in full.
func ReadCSV(path string, opts config.ReadOptions) (*DataFrame, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is caller-controlled by contract
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeSourceUnavailable, "file '"+path+"' could not be opened").
			WithDetail("path", path)
	}

	return parse(stringpool.BytesToString(data), opts)
}

// ReadCSVOptions is the option-map variant of ReadCSV: omitted keys fall
// back to the defaults, unknown keys are ignored.
func ReadCSVOptions(path string, options map[Option]scalar.Scalar) (*DataFrame, error) {
	opts := config.DefaultReadOptions()
	if v, ok := options[Header]; ok {
		opts.HeaderPresent = v.AsBool()
	}
	if v, ok := options[Separator]; ok {
		opts.Separator = v.AsString()
	}
	if v, ok := options[LineTerminator]; ok {
		opts.LineTerminator = v.AsString()
	}
	if v, ok := options[AutoTrim]; ok {
		opts.AutoTrim = v.AsBool()
	}
	return ReadCSV(path, opts)
}

// FromString parses delimited text already held in memory using the same
// algorithm as ReadCSV.
func FromString(text string, opts config.ReadOptions) (*DataFrame, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return parse(text, opts)
}

func parse(buffer string, opts config.ReadOptions) (*DataFrame, error) {
	lines := stringpool.Split(buffer, opts.LineTerminator)
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrorTypeSchemaMismatch, "source contains no records")
	}

	var header []string
	headerOffset := 0
	if opts.HeaderPresent {
		header = stringpool.SplitTrim(lines[0], opts.Separator, opts.AutoTrim)
		lines = lines[1:]
		headerOffset = 1
	} else {
		width := len(stringpool.SplitTrim(lines[0], opts.Separator, opts.AutoTrim))
		header = make([]string, 0, width)
		for i := 0; i < width; i++ {
			header = append(header, stringpool.Sprintf("%d", i))
		}
	}

	rows := make([][]string, 0, len(lines))
	for i, line := range lines {
		row := stringpool.SplitTrim(line, opts.Separator, opts.AutoTrim)
		if len(row) != len(header) {
			return nil, schemaMismatch(i+headerOffset, len(header), len(row))
		}
		rows = append(rows, row)
	}

	return &DataFrame{header: header, rows: rows}, nil
}

// WriteCSV serializes the frame to the file at path. Records are joined
// with the separator and terminated with "\n" regardless of the terminator
// used on read; the final line terminator is suppressed so no trailing blank
// line is written.
func WriteCSV(df *DataFrame, path string, opts config.WriteOptions) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if opts.Append {
		flags = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	}

	file, err := os.OpenFile(path, flags, 0644) //nolint:gosec // G302/G304: plain data file at caller-controlled path
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeDestinationUnavailable, "file '"+path+"' could not be opened").
			WithDetail("path", path)
	}

	builder := stringpool.GetBuilder(stringpool.Large)
	defer stringpool.PutBuilder(builder, stringpool.Large)

	if opts.HeaderPresent {
		builder.WriteString(stringpool.Join(df.header, opts.Separator))
		builder.WriteSingleByte('\n')
	}
	for _, row := range df.rows {
		builder.WriteString(stringpool.Join(row, opts.Separator))
		builder.WriteSingleByte('\n')
	}

	content := builder.Bytes()
	if len(content) > 0 && content[len(content)-1] == '\n' {
		content = content[:len(content)-1]
	}

	if _, err := file.Write(content); err != nil {
		_ = file.Close()
		return errors.Wrap(err, errors.ErrorTypeDestinationUnavailable, "file '"+path+"' could not be written").
			WithDetail("path", path)
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, errors.ErrorTypeDestinationUnavailable, "file '"+path+"' could not be closed").
			WithDetail("path", path)
	}
	return nil
}
