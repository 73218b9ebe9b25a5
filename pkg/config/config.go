// Package config defines the option sets for reading and writing delimited
// text, with defaults that mirror the historical behavior of the format.
//
// The default line terminator is deliberately not a compile-time platform
// branch: it resolves from the DATAFRAME_LINE_TERMINATOR environment variable
// and falls back to "\n". Callers always get an explicit value they can
// override per call.
package config

import (
	"os"

	"github.com/okano-tomoyuki/data-frame/pkg/errors"
)

// EnvLineTerminator names the environment variable consulted for the
// default line terminator. Accepted values: "\n", "\r\n", "lf", "crlf".
const EnvLineTerminator = "DATAFRAME_LINE_TERMINATOR"

// ReadOptions controls how delimited text is parsed into a frame.
type ReadOptions struct {
	// HeaderPresent treats the first line as column names
	HeaderPresent bool `yaml:"header_present" json:"header_present"`
	// Separator is the field separator
	Separator string `yaml:"separator" json:"separator"`
	// LineTerminator is the record separator
	LineTerminator string `yaml:"line_terminator" json:"line_terminator"`
	// AutoTrim strips whitespace from every field after splitting
	AutoTrim bool `yaml:"auto_trim" json:"auto_trim"`
}

// WriteOptions controls how a frame is serialized back to delimited text.
// Records are always joined with "\n" on write regardless of the terminator
// used on read; the asymmetry is part of the format's contract.
type WriteOptions struct {
	// Append opens the destination in append mode instead of truncating
	Append bool `yaml:"append" json:"append"`
	// HeaderPresent writes the header line before the records
	HeaderPresent bool `yaml:"header_present" json:"header_present"`
	// Separator is the field separator
	Separator string `yaml:"separator" json:"separator"`
}

// DefaultLineTerminator returns the environment-resolved default record
// separator, falling back to "\n".
func DefaultLineTerminator() string {
	switch os.Getenv(EnvLineTerminator) {
	case "\r\n", "crlf", "CRLF":
		return "\r\n"
	case "\n", "lf", "LF", "":
		return "\n"
	default:
		return "\n"
	}
}

// DefaultReadOptions returns the read defaults: header on, comma separator,
// environment-resolved line terminator, trimming on.
func DefaultReadOptions() ReadOptions {
	return ReadOptions{
		HeaderPresent:  true,
		Separator:      ",",
		LineTerminator: DefaultLineTerminator(),
		AutoTrim:       true,
	}
}

// DefaultWriteOptions returns the write defaults: truncate, header on,
// comma separator.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Append:        false,
		HeaderPresent: true,
		Separator:     ",",
	}
}

// Validate checks the read options for values the parser cannot work with.
func (o ReadOptions) Validate() error {
	if o.LineTerminator == "" {
		return errors.New(errors.ErrorTypeConfig, "line terminator must not be empty")
	}
	return nil
}
