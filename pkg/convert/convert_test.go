package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", To[string]("abc"))
	assert.Equal(t, "", To[string](""))
	assert.Equal(t, " padded ", To[string](" padded "), "strings pass through verbatim")
}

func TestToBool(t *testing.T) {
	assert.True(t, To[bool]("1"))
	assert.True(t, To[bool]("true"))
	assert.False(t, To[bool]("0"))
	assert.False(t, To[bool]("false"))
	assert.False(t, To[bool]("not-a-bool"), "unparsable text coerces to the zero value")
}

func TestToInt(t *testing.T) {
	assert.Equal(t, 42, To[int]("42"))
	assert.Equal(t, -7, To[int]("-7"))
	assert.Equal(t, 3, To[int]("3.0"), "integral floats truncate")
	assert.Equal(t, 3, To[int]("3.9"))
	assert.Equal(t, 0, To[int]("abc"))
	assert.Equal(t, int64(42), To[int64]("42"))
}

func TestToFloat(t *testing.T) {
	assert.Equal(t, 1.5, To[float64]("1.5"))
	assert.Equal(t, -0.25, To[float64]("-0.25"))
	assert.Equal(t, 0.0, To[float64]("abc"))
}

func TestToSlice(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, ToSlice[int]([]string{"1", "2", "3"}))
	assert.Equal(t, []string{"a", "b"}, ToSlice[string]([]string{"a", "b"}))
	assert.Empty(t, ToSlice[int](nil))
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "1", FormatBool(true))
	assert.Equal(t, "0", FormatBool(false))
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "3", FormatFloat(3.0), "whole numbers render without a fractional part")
	assert.Equal(t, "3.5", FormatFloat(3.5))
}
