package cssom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"fmt"
	"sort"

	"github.com/styledown/inliner/style"
)

// Merge is the cascade's override decision: given the currently-winning
// declaration for a property name (or nil, if the property has not been
// set yet) and a new candidate for the same name, it returns the new
// winner. Merge is a pure function; accumulation state lives with the
// caller (see Accumulator).
//
// The decision table, evaluated in order:
//
//  1. no existing winner          → candidate wins
//  2. existing important only     → existing wins
//  3. candidate important only    → candidate wins
//  4. otherwise                   → candidate wins iff
//     existing.specificity <= candidate.specificity
//
// The '<=' in step 4 is deliberate: rules are folded in ascending
// (specificity, sequence) order, so a later-applied rule of equal
// specificity has the greater sequence number and must overrule an
// earlier one — "last rule wins on ties".
//
// Merge is only ever invoked with stylesheet-origin declarations; inline
// declarations bypass the cascade entirely and are handled during
// reconciliation. Feeding a declaration without origin specificity into
// Merge breaks that contract and panics.
func Merge(existing *style.Declaration, candidate style.Declaration) style.Declaration {
	cspec, ok := candidate.Origin()
	if !ok {
		panic(fmt.Sprintf("cssom: inline-origin declaration '%s' fed into cascade merge", candidate))
	}
	if existing == nil {
		return candidate
	}
	espec, ok := existing.Origin()
	if !ok {
		panic(fmt.Sprintf("cssom: inline-origin declaration '%s' fed into cascade merge", existing))
	}
	if existing.Important && !candidate.Important {
		return *existing
	}
	if candidate.Important && !existing.Important {
		return candidate
	}
	if espec.Compare(cspec) <= 0 {
		return candidate
	}
	return *existing
}

// Accumulator collects, per element, the currently-winning declaration
// for every property name set by some matching rule. Elements are
// identified by a stable index (see package dom), never by raw node
// identity, which keeps the winner store well-defined across tree
// mutations.
//
// Winner maps are created lazily: an element never matched by any rule
// never gets one.
type Accumulator struct {
	winners map[int]map[string]style.Declaration
}

// NewAccumulator creates an empty accumulator for one conversion run.
// Accumulators are not safe for concurrent use; the cascade requires all
// folds for an element to happen in rule order anyway.
func NewAccumulator() *Accumulator {
	return &Accumulator{winners: make(map[int]map[string]style.Declaration)}
}

// Apply folds the declarations of rule into the winner map of the element
// with the given index, one property name at a time, in the declarations'
// textual order within the rule. A later declaration of the same name
// within one rule body therefore overrules an earlier one unconditionally,
// independent of importance: within a single rule, last-one-wins.
func (acc *Accumulator) Apply(element int, rule *StyleRule) {
	m := acc.winners[element]
	if m == nil {
		m = make(map[string]style.Declaration)
		acc.winners[element] = m
	}
	for i, d := range rule.Declarations {
		if last(rule.Declarations, i) != i {
			continue // a later declaration in this rule re-sets the property
		}
		var existing *style.Declaration
		if e, ok := m[d.Property]; ok {
			existing = &e
		}
		m[d.Property] = Merge(existing, d)
	}
}

// last returns the index of the last declaration in decls sharing the
// property name of decls[i].
func last(decls []style.Declaration, i int) int {
	pos := i
	for j := i + 1; j < len(decls); j++ {
		if decls[j].Property == decls[i].Property {
			pos = j
		}
	}
	return pos
}

// Winners returns the accumulated winning declarations for an element,
// sorted ascending by property name. Sorting pins the otherwise arbitrary
// map iteration order, which keeps serialized output deterministic. The
// second return value is false if no rule ever matched the element.
func (acc *Accumulator) Winners(element int) ([]style.Declaration, bool) {
	m, ok := acc.winners[element]
	if !ok {
		return nil, false
	}
	decls := make([]style.Declaration, 0, len(m))
	for _, d := range m {
		decls = append(decls, d)
	}
	sort.Slice(decls, func(i, j int) bool { return decls[i].Property < decls[j].Property })
	return decls, true
}

// Elements returns the indexes of all elements holding a winner map, in
// ascending order.
func (acc *Accumulator) Elements() []int {
	elems := make([]int, 0, len(acc.winners))
	for e := range acc.winners {
		elems = append(elems, e)
	}
	sort.Ints(elems)
	return elems
}
