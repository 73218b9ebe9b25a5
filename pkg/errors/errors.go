// Package errors provides structured error handling for data-frame
package errors

import (
	"errors"
	"runtime"

	stringpool "github.com/okano-tomoyuki/data-frame/pkg/strings"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeSourceUnavailable represents an input path that cannot be opened for reading
	ErrorTypeSourceUnavailable ErrorType = "source_unavailable"
	// ErrorTypeDestinationUnavailable represents an output path that cannot be opened for writing
	ErrorTypeDestinationUnavailable ErrorType = "destination_unavailable"
	// ErrorTypeSchemaMismatch represents a record whose field count disagrees with the header
	ErrorTypeSchemaMismatch ErrorType = "schema_mismatch"
	// ErrorTypeLabelNotFound represents a column name absent from the header
	ErrorTypeLabelNotFound ErrorType = "label_not_found"
	// ErrorTypeIndexOutOfRange represents a row index or slice bound outside the valid range
	ErrorTypeIndexOutOfRange ErrorType = "index_out_of_range"
	// ErrorTypeShapeViolation represents a conversion invoked on a frame of the wrong shape
	ErrorTypeShapeViolation ErrorType = "shape_violation"
	// ErrorTypeArityMismatch represents a rename with the wrong number of column names
	ErrorTypeArityMismatch ErrorType = "arity_mismatch"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
)

// Error represents a structured error with context
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
	Details map[string]interface{}
	Stack   []StackFrame
}

// StackFrame represents a single frame in the call stack
type StackFrame struct {
	Function string
	File     string
	Line     int
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return stringpool.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return stringpool.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithDetail adds a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// New creates a new error with the given type and message
func New(errType ErrorType, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Stack:   captureStack(2),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, errType ErrorType, message string) *Error {
	if err == nil {
		return nil
	}

	// If already our error type, preserve the stack
	var existingErr *Error
	if errors.As(err, &existingErr) {
		return &Error{
			Type:    errType,
			Message: message,
			Cause:   err,
			Stack:   existingErr.Stack,
		}
	}

	return &Error{
		Type:    errType,
		Message: message,
		Cause:   err,
		Stack:   captureStack(2),
	}
}

// IsType checks if the error is of the given type
func IsType(err error, errType ErrorType) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Type == errType
}

// Detail returns the value stored under key, or nil when absent
func Detail(err error, key string) interface{} {
	var e *Error
	if !errors.As(err, &e) || e.Details == nil {
		return nil
	}
	return e.Details[key]
}

// captureStack captures the current call stack
func captureStack(skip int) []StackFrame {
	const maxFrames = 32
	frames := make([]StackFrame, 0, maxFrames)

	for i := skip; i < maxFrames+skip; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}

		frames = append(frames, StackFrame{
			Function: fn.Name(),
			File:     file,
			Line:     line,
		})
	}

	return frames
}
