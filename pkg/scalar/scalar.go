// Package scalar implements the tagged value used to carry typed options.
//
// A Scalar holds exactly one of a boolean, a 64-bit float or a text payload,
// selected by its kind tag. It exists to pass typed configuration options
// (for example to the option-map CSV factory) and as a coercion carrier; it
// is not a general-purpose variant type.
package scalar

import (
	"github.com/okano-tomoyuki/data-frame/pkg/convert"
)

// Kind tags the active payload of a Scalar.
type Kind int

const (
	// KindBoolean marks a boolean payload
	KindBoolean Kind = iota
	// KindNumber marks a float64 payload
	KindNumber
	// KindText marks a text payload
	KindText
)

// Scalar is a tagged union over {boolean, number, text}. Only the payload
// selected by the kind is meaningful; the others stay at their zero values.
// The zero Scalar is a false boolean.
//
// Copying a Scalar copies the active payload: the text case is backed by an
// immutable Go string, so value copies never share mutable state.
type Scalar struct {
	kind    Kind
	boolean bool
	number  float64
	text    string
}

// Bool constructs a boolean Scalar.
func Bool(v bool) Scalar {
	return Scalar{kind: KindBoolean, boolean: v}
}

// Number constructs a numeric Scalar.
func Number(v float64) Scalar {
	return Scalar{kind: KindNumber, number: v}
}

// Text constructs a text Scalar.
func Text(v string) Scalar {
	return Scalar{kind: KindText, text: v}
}

// Kind returns the tag of the active payload.
func (s Scalar) Kind() Kind {
	return s.kind
}

// AsString returns the held text verbatim when the kind is Text, and an
// empty string otherwise. The Scalar is a typed option carrier, not a
// general converter; non-text payloads do not render through this method.
func (s Scalar) AsString() string {
	if s.kind == KindText {
		return s.text
	}
	return ""
}

// AsBool coerces the payload to a boolean: boolean payloads pass through,
// other payloads render to text and reparse best-effort.
func (s Scalar) AsBool() bool {
	if s.kind == KindBoolean {
		return s.boolean
	}
	return convert.To[bool](s.render())
}

// AsFloat coerces the payload to a float64 the same way.
func (s Scalar) AsFloat() float64 {
	if s.kind == KindNumber {
		return s.number
	}
	return convert.To[float64](s.render())
}

// AsInt coerces the payload to an int the same way.
func (s Scalar) AsInt() int {
	return convert.To[int](s.render())
}

// render produces the textual form of the active payload used by the
// best-effort coercions.
func (s Scalar) render() string {
	switch s.kind {
	case KindBoolean:
		return convert.FormatBool(s.boolean)
	case KindNumber:
		return convert.FormatFloat(s.number)
	default:
		return s.text
	}
}
