package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'inliner.style'
func tracer() tracing.Trace {
	return tracing.Select("inliner.style")
}

// Property is a raw value for a CSS property. For example, with
//
//	color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers without committing to any interpretation of
// the value (we never do unit math or shorthand expansion).
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// NormalizeName normalizes a CSS property name. Property names are
// case-insensitive per the CSS specification; we canonicalize them to
// lower case and trim surrounding whitespace, so that map lookups by
// property name behave consistently.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
