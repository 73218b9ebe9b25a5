// Package convert implements the text-to-value coercion used by the typed
// frame accessors.
//
// Coercion is best-effort by design, not strict type checking: text that
// cannot be parsed as the requested type coerces to the zero value instead
// of failing. Shape errors are the caller's concern; this package never
// returns an error.
package convert

import (
	"strconv"
)

// Primitive is the set of conversion target types.
type Primitive interface {
	~string | ~bool | ~int | ~int64 | ~float64
}

// To coerces text to T. Strings pass through unchanged. Booleans accept the
// strconv forms ("1", "0", "true", "false", ...). Integers fall back to a
// float parse with truncation so "3.0" coerces to 3. Unparsable text yields
// the zero value.
func To[T Primitive](text string) T {
	var result T

	switch p := any(&result).(type) {
	case *string:
		*p = text
	case *bool:
		if b, err := strconv.ParseBool(text); err == nil {
			*p = b
		}
	case *int:
		*p = int(parseInt(text))
	case *int64:
		*p = parseInt(text)
	case *float64:
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			*p = f
		}
	}

	return result
}

// ToSlice coerces every element of texts, preserving order.
func ToSlice[T Primitive](texts []string) []T {
	result := make([]T, 0, len(texts))
	for _, text := range texts {
		result = append(result, To[T](text))
	}
	return result
}

// FormatBool renders a boolean the way the option carrier does: "1" or "0".
func FormatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// FormatFloat renders a float with the shortest representation that
// round-trips, so whole numbers render without a fractional part.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseInt(text string) int64 {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return int64(f)
	}
	return 0
}
