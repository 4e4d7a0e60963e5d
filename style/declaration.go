package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

// Declaration is a single CSS property declaration, e.g.
//
//	color: black !important
//
// Declarations are immutable value objects. A declaration either stems from
// a stylesheet rule, in which case it carries the specificity of the rule's
// selector as its origin, or from an element's own 'style' attribute, in
// which case it carries no origin specificity at all. This distinction is
// load-bearing: the cascade merger (package cssom) only ever sees
// stylesheet-origin declarations, while inline-origin declarations bypass
// it entirely and win unconditionally during reconciliation.
type Declaration struct {
	Property  string   // property name, normalized to lower case
	Value     Property // raw property value, uninterpreted
	Important bool     // flagged with '!important' ?
	origin    Specificity
	hasOrigin bool
}

// NewDeclaration creates a stylesheet-origin declaration, carrying the
// specificity of the selector of the rule it was found in.
func NewDeclaration(property string, value Property, important bool, origin Specificity) Declaration {
	return Declaration{
		Property:  NormalizeName(property),
		Value:     value,
		Important: important,
		origin:    origin,
		hasOrigin: true,
	}
}

// NewInlineDeclaration creates an inline-origin declaration, i.e. one parsed
// from an element's 'style' attribute. It has no origin specificity.
func NewInlineDeclaration(property string, value Property, important bool) Declaration {
	return Declaration{
		Property:  NormalizeName(property),
		Value:     value,
		Important: important,
	}
}

// Origin returns the specificity of the selector this declaration
// originated from. The second return value is false for inline-origin
// declarations.
func (d Declaration) Origin() (Specificity, bool) {
	return d.origin, d.hasOrigin
}

// IsInline is true for declarations parsed from a 'style' attribute.
func (d Declaration) IsInline() bool {
	return !d.hasOrigin
}

func (d Declaration) String() string {
	s := d.Property + ": " + d.Value.String()
	if d.Important {
		s += " !important"
	}
	return s
}
