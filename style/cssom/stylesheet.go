package cssom

import "github.com/styledown/inliner/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// cascade resolution, we introduce an interface for CSS stylesheets.
// Clients of the cascade engine will have to provide a concrete
// implementation of this interface (e.g., see package douceuradapter).
//
// Having this interface imposes a performance hit. However, this
// implementation of CSS-inlining will never trade modularity and
// clarity for performance. Clients in need of a production grade
// browser engine (where performance is key) should opt for headless
// versions of the main browser projects.
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// Declarations returns the rule's declarations in their textual order
// within the rule body, including repeated occurrences of the same
// property name. The cascade depends on that order (a later declaration
// of the same name within one rule body overrules an earlier one), so
// implementations must not deduplicate.
//
// Declarations returned by a Rule carry no origin specificity yet; the
// selector's specificity is attached during rule compilation, since a
// grouped selector prelude like "h1, .title" does not have a single
// specificity.
//
// See interface StyleSheet.
type Rule interface {
	Selectors() []string               // the rule's selectors, split on ','
	Declarations() []style.Declaration // the rule's declarations, in order
}
