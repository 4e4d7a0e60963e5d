package cssom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/styledown/inliner/style"
)

func decl(property string, value string, important bool, spec style.Specificity) style.Declaration {
	return style.NewDeclaration(property, style.Property(value), important, spec)
}

func TestMergeAbsentExisting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cssom")
	defer teardown()
	//
	candidate := decl("color", "red", false, style.Specificity{0, 0, 1})
	winner := Merge(nil, candidate)
	if winner.Value != "red" {
		t.Errorf("expected candidate to win against absent existing, winner is '%s'", winner)
	}
}

func TestMergeImportance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cssom")
	defer teardown()
	//
	important := decl("color", "blue", true, style.Specificity{0, 0, 1})
	plain := decl("color", "red", false, style.Specificity{1, 0, 0})
	// important existing survives a plain candidate, even a more specific one
	winner := Merge(&important, plain)
	if winner.Value != "blue" {
		t.Errorf("expected important existing to survive, winner is '%s'", winner)
	}
	// important candidate overrules a plain existing, even a more specific one
	winner = Merge(&plain, important)
	if winner.Value != "blue" {
		t.Errorf("expected important candidate to win, winner is '%s'", winner)
	}
}

func TestMergeSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cssom")
	defer teardown()
	//
	weak := decl("color", "red", false, style.Specificity{0, 0, 1})
	strong := decl("color", "blue", false, style.Specificity{1, 0, 0})
	winner := Merge(&strong, weak)
	if winner.Value != "blue" {
		t.Errorf("expected more specific existing to survive, winner is '%s'", winner)
	}
}

func TestMergeEqualSpecificityLaterWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cssom")
	defer teardown()
	//
	// rules are folded in ascending order, so the candidate is the
	// later-applied rule and must win on specificity ties
	first := decl("color", "red", false, style.Specificity{0, 1, 0})
	second := decl("color", "green", false, style.Specificity{0, 1, 0})
	winner := Merge(&first, second)
	if winner.Value != "green" {
		t.Errorf("expected later candidate to win on a tie, winner is '%s'", winner)
	}
}

func TestMergeRejectsInlineOrigin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cssom")
	defer teardown()
	//
	defer func() {
		if recover() == nil {
			t.Error("expected merge of an inline-origin declaration to panic, didn't")
		}
	}()
	Merge(nil, style.NewInlineDeclaration("color", "red", false))
}

func TestAccumulatorLazyWinnerMaps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cssom")
	defer teardown()
	//
	acc := NewAccumulator()
	if _, ok := acc.Winners(7); ok {
		t.Error("expected unmatched element to have no winner map, has one")
	}
	acc.Apply(7, &StyleRule{Declarations: []style.Declaration{
		decl("color", "red", false, style.Specificity{0, 0, 1}),
	}})
	if _, ok := acc.Winners(7); !ok {
		t.Error("expected element 7 to have a winner map after apply, hasn't")
	}
	if elems := acc.Elements(); len(elems) != 1 || elems[0] != 7 {
		t.Errorf("expected accumulator to know exactly element 7, knows %v", elems)
	}
}

func TestAccumulatorWithinRuleLastOneWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cssom")
	defer teardown()
	//
	// a later declaration of the same name within one rule body overrules
	// an earlier one unconditionally, importance notwithstanding
	acc := NewAccumulator()
	acc.Apply(0, &StyleRule{Declarations: []style.Declaration{
		decl("color", "red", true, style.Specificity{0, 0, 1}),
		decl("color", "green", false, style.Specificity{0, 0, 1}),
	}})
	winners, _ := acc.Winners(0)
	if len(winners) != 1 || winners[0].Value != "green" {
		t.Errorf("expected last in-rule declaration to win, winners are %v", winners)
	}
}

func TestAccumulatorFoldAcrossRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "inliner.cssom")
	defer teardown()
	//
	acc := NewAccumulator()
	acc.Apply(0, &StyleRule{Declarations: []style.Declaration{
		decl("color", "red", false, style.Specificity{0, 0, 1}),
		decl("width", "10px", false, style.Specificity{0, 0, 1}),
	}})
	acc.Apply(0, &StyleRule{Declarations: []style.Declaration{
		decl("color", "blue", false, style.Specificity{1, 0, 0}),
	}})
	winners, _ := acc.Winners(0)
	if len(winners) != 2 {
		t.Fatalf("expected 2 winning declarations, have %d", len(winners))
	}
	// winners are sorted by property name
	if winners[0].Value != "blue" || winners[1].Value != "10px" {
		t.Errorf("expected winners [color: blue, width: 10px], are %v", winners)
	}
}
