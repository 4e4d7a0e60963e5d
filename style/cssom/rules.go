package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"sort"

	"github.com/andybalholm/cascadia"
	"github.com/styledown/inliner/style"
	"golang.org/x/net/html"
)

// StyleRule is a single-selector rule, ready for matching and cascading.
// Rules with grouped selectors ("h1, .title { … }") are split into one
// StyleRule per selector during compilation, because each selector of a
// group carries its own specificity.
//
// Sequence is the rule's position in the fully-concatenated stylesheet
// input. It is assigned once, at compile time, is unique per rule and
// never changes; together with the selector's specificity it gives the
// cascade a total tie-break order.
type StyleRule struct {
	Selector     string
	Declarations []style.Declaration
	Specificity  style.Specificity
	Sequence     int

	matcher cascadia.Sel
}

// Matches returns all elements of the tree rooted at root which this
// rule's selector applies to.
func (r *StyleRule) Matches(root *html.Node) []*html.Node {
	return cascadia.QueryAll(root, r.matcher)
}

// Compiler turns abstract stylesheets into sequenced StyleRules. A single
// compiler has to be used for all stylesheet fragments of one conversion
// run (style-tag content first, then any externally supplied CSS, in that
// order), so that sequence numbers increase strictly across the whole
// concatenation.
type Compiler struct {
	sequence int
}

// Compile appends the rules of sheet to the compiled rule list, splitting
// selector groups and attaching each selector's specificity to the rule's
// declarations.
//
// A selector which cascadia cannot translate into a matchable query makes
// us skip that rule silently (traced, but not surfaced): an unmatchable
// selector must never abort a whole conversion.
func (c *Compiler) Compile(sheet StyleSheet, rules []StyleRule) []StyleRule {
	if sheet == nil || sheet.Empty() {
		return rules
	}
	for _, rule := range sheet.Rules() {
		decls := rule.Declarations()
		for _, selector := range rule.Selectors() {
			sel, err := cascadia.Parse(selector)
			if err != nil {
				tracer().Debugf("skipping rule with selector %q: %v", selector, err)
				continue
			}
			spec := style.Specificity(sel.Specificity())
			r := StyleRule{
				Selector:     selector,
				Declarations: make([]style.Declaration, len(decls)),
				Specificity:  spec,
				Sequence:     c.sequence,
				matcher:      sel,
			}
			for i, d := range decls {
				r.Declarations[i] = style.NewDeclaration(d.Property, d.Value, d.Important, spec)
			}
			rules = append(rules, r)
			c.sequence++
		}
	}
	return rules
}

// Order sorts rules ascending by (specificity, sequence). Specificity is
// the primary key, the unique per-rule sequence number the secondary
// tie-break, so the resulting order is total: no two rules compare equal.
//
// Rules are later applied in this ascending order. For a given element
// and property, the last-applied matching rule is then the one whose
// declaration should win among rules of equal importance — which is what
// lets the cascade fold get by with a plain "does the candidate overrule
// the current winner" decision (see Merge). Encoding source order as an
// explicit numeric key avoids depending on any sort being stable and
// makes tie-breaking auditable.
func Order(rules []StyleRule) []StyleRule {
	sort.Slice(rules, func(i, j int) bool {
		if cmp := rules[i].Specificity.Compare(rules[j].Specificity); cmp != 0 {
			return cmp < 0
		}
		return rules[i].Sequence < rules[j].Sequence
	})
	return rules
}
