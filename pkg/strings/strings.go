// Package strings provides the delimiter-splitting, joining and trimming
// primitives used by the data-frame parser, plus pooled string builders for
// serialization.
package strings

import (
	"fmt"
	"sync"
	"unsafe"
)

// BytesToString converts byte slice to string without allocation.
// WARNING: The returned string shares memory with the byte slice.
// Do not modify the byte slice after calling this function.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return *(*string)(unsafe.Pointer(&b))
}

// StringToBytes converts string to byte slice without allocation.
// WARNING: The returned byte slice shares memory with the string.
// Do not modify the returned slice.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Clone creates a copy of a string (useful when you need to own the memory)
func Clone(s string) string {
	if len(s) == 0 {
		return ""
	}
	b := make([]byte, len(s))
	copy(b, StringToBytes(s))
	return BytesToString(b)
}

// Index finds the index of substring in string without allocation
func Index(s, substr string) int {
	if len(substr) == 0 {
		return 0
	}
	if len(substr) > len(s) {
		return -1
	}
	for i := 0; i <= len(s)-len(substr); i++ {
		if s[i:i+len(substr)] == substr {
			return i
		}
	}
	return -1
}

// Split splits s on every occurrence of separator. An empty input yields a
// nil slice. An empty separator skips the search entirely and yields a
// single-element slice holding the whole input; it never iterates over
// zero-width matches.
func Split(s, separator string) []string {
	return SplitTrim(s, separator, false)
}

// SplitTrim behaves like Split and additionally trims whitespace from both
// ends of every element when trim is set.
func SplitTrim(s, separator string, trim bool) []string {
	if len(s) == 0 {
		return nil
	}
	if len(separator) == 0 {
		if trim {
			return []string{TrimSpace(s)}
		}
		return []string{s}
	}

	var result []string
	start := 0

	for {
		idx := Index(s[start:], separator)
		if idx == -1 {
			elem := s[start:]
			if trim {
				elem = TrimSpace(elem)
			}
			result = append(result, elem)
			break
		}

		elem := s[start : start+idx]
		if trim {
			elem = TrimSpace(elem)
		}
		result = append(result, elem)
		start = start + idx + len(separator)
	}

	return result
}

// Join joins elements using a separator with a single allocation. No
// trailing separator is produced and an empty slice yields an empty string.
func Join(elems []string, separator string) string {
	if len(elems) == 0 {
		return ""
	}
	if len(elems) == 1 {
		return elems[0]
	}

	totalLen := 0
	for _, s := range elems {
		totalLen += len(s)
	}
	totalLen += (len(elems) - 1) * len(separator)

	builder := NewBuilder(totalLen)
	builder.WriteString(elems[0])

	for i := 1; i < len(elems); i++ {
		builder.WriteString(separator)
		builder.WriteString(elems[i])
	}

	return builder.String()
}

// TrimSpace removes leading and trailing whitespace. The whitespace set is
// space, tab, newline, carriage return, form feed and vertical tab; an
// all-whitespace input yields an empty string.
func TrimSpace(s string) string {
	start := 0
	end := len(s)

	for start < end && isSpace(s[start]) {
		start++
	}
	for end > start && isSpace(s[end-1]) {
		end--
	}

	return s[start:end]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

// Builder provides efficient string building with zero-copy operations
type Builder struct {
	buf []byte
}

// NewBuilder creates a new string builder
func NewBuilder(capacity int) *Builder {
	return &Builder{
		buf: make([]byte, 0, capacity),
	}
}

// WriteString appends a string to the builder
func (b *Builder) WriteString(s string) {
	b.buf = append(b.buf, s...)
}

// WriteSingleByte appends a single byte
func (b *Builder) WriteSingleByte(c byte) {
	b.buf = append(b.buf, c)
}

// Write implements io.Writer interface
func (b *Builder) Write(p []byte) (n int, err error) {
	b.buf = append(b.buf, p...)
	return len(p), nil
}

// String returns the built string using zero-copy conversion
func (b *Builder) String() string {
	return BytesToString(b.buf)
}

// Bytes returns the underlying byte slice
func (b *Builder) Bytes() []byte {
	return b.buf
}

// Len returns the length of the built string
func (b *Builder) Len() int {
	return len(b.buf)
}

// Reset resets the builder for reuse
func (b *Builder) Reset() {
	b.buf = b.buf[:0]
}

// Global pools for different string building scenarios
var (
	// Small strings (< 1KB) - single rows, error messages
	smallBuilderPool = &sync.Pool{
		New: func() interface{} {
			return NewBuilder(1024)
		},
	}

	// Large strings (1KB+) - whole serialized tables
	largeBuilderPool = &sync.Pool{
		New: func() interface{} {
			return NewBuilder(64 * 1024)
		},
	}
)

// BuilderSize represents different builder sizes
type BuilderSize int

const (
	Small BuilderSize = iota // < 1KB
	Large                    // 1KB+
)

// GetBuilder retrieves a pooled builder of the specified size
func GetBuilder(size BuilderSize) *Builder {
	pool := smallBuilderPool
	if size == Large {
		pool = largeBuilderPool
	}

	builder := pool.Get().(*Builder)
	builder.Reset()
	return builder
}

// PutBuilder returns a builder to the appropriate pool
func PutBuilder(builder *Builder, size BuilderSize) {
	if builder == nil {
		return
	}

	pool := smallBuilderPool
	if size == Large {
		pool = largeBuilderPool
	}

	builder.Reset()
	pool.Put(builder)
}

// Sprintf provides a pooled alternative to fmt.Sprintf
func Sprintf(format string, args ...interface{}) string {
	if len(args) == 0 {
		return format
	}

	builder := GetBuilder(Small)
	defer PutBuilder(builder, Small)

	fmt.Fprintf(builder, format, args...)

	return Clone(builder.String())
}
