package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"

	"github.com/andybalholm/cascadia"
)

// Specificity is the cascade weight of a CSS selector, as defined in
// https://www.w3.org/TR/selectors/#specificity-rules, with the convention
// Specificity = [ids, classes/attributes/pseudo-classes, types/pseudo-elements].
//
// Specificities are immutable values and are compared lexicographically.
// They never encode '!important' nor source order; both are handled
// separately by the cascade (see package cssom).
type Specificity [3]int

// SpecificityOf computes the specificity of a single (non-grouped) selector.
// Selector parsing is delegated to cascadia, the same engine we use for
// matching, so that the weight of a selector and the set of elements it
// matches can never disagree.
//
// Selectors which cascadia refuses to parse yield an error; callers are
// expected to skip the corresponding rule (see package cssom).
func SpecificityOf(selector string) (Specificity, error) {
	sel, err := cascadia.Parse(selector)
	if err != nil {
		return Specificity{}, fmt.Errorf("cannot compute specificity of %q: %w", selector, err)
	}
	return Specificity(sel.Specificity()), nil
}

// Compare compares two specificities lexicographically. It returns -1 if
// s is less specific than other, 0 if both weigh the same, and +1 if s is
// more specific. The induced order is total and transitive; distinct
// selectors may well compare equal.
func (s Specificity) Compare(other Specificity) int {
	for i := range s {
		if s[i] < other[i] {
			return -1
		}
		if s[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Less returns true if s is strictly less specific than other.
func (s Specificity) Less(other Specificity) bool {
	return s.Compare(other) < 0
}

func (s Specificity) String() string {
	return fmt.Sprintf("(%d,%d,%d)", s[0], s[1], s[2])
}
