package inliner

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"io"
	"strings"

	"github.com/styledown/inliner/dom"
	"github.com/styledown/inliner/style"
	"github.com/styledown/inliner/style/cssom"
	"github.com/styledown/inliner/style/cssom/douceuradapter"
)

// Engine converts HTML documents by inlining their stylesheets. The zero
// value is ready to use:
//
//	html, err := new(inliner.Engine).Convert(input)
//
// Engines carry no state across conversions; a single Engine may be used
// for any number of documents.
type Engine struct {
	// ExtraCSS is stylesheet text applied in addition to the document's
	// own <style> elements. It is appended after the style-tag content,
	// so its rules sequence-number behind them.
	ExtraCSS string

	// StripStyleElements removes <style> elements from the output
	// document after their rules have been inlined.
	StripStyleElements bool
}

// Convert parses an HTML document, resolves the cascade of its <style>
// elements (plus any ExtraCSS) for every element, folds the winning
// declarations into the elements' 'style' attributes and returns the
// re-serialized document.
//
// A document without stylesheet rules is returned structurally unchanged;
// in particular, no empty style="" attributes are ever introduced.
func (e *Engine) Convert(htmlText string) (string, error) {
	return e.ConvertFrom(strings.NewReader(htmlText))
}

// ConvertFrom is Convert for documents read from a stream.
func (e *Engine) ConvertFrom(r io.Reader) (string, error) {
	doc, err := dom.Parse(r)
	if err != nil {
		return "", err
	}
	rules, err := e.compileRules(doc)
	if err != nil {
		return "", err
	}
	if len(rules) > 0 {
		acc := resolve(doc, cssom.Order(rules))
		for _, i := range acc.Elements() {
			reconcile(doc.Element(i), acc)
		}
	}
	if e.StripStyleElements {
		doc.RemoveStyleElements()
	}
	return doc.HTML()
}

// Convert inlines the <style> elements of an HTML document, using a
// default Engine.
func Convert(htmlText string) (string, error) {
	return new(Engine).Convert(htmlText)
}

// ConvertWithCSS inlines the <style> elements of an HTML document plus an
// additional stylesheet, using a default Engine.
func ConvertWithCSS(htmlText string, cssText string) (string, error) {
	e := &Engine{ExtraCSS: cssText}
	return e.Convert(htmlText)
}

// compileRules collects the document's stylesheets — style-tag content
// first, externally supplied CSS second — and compiles them into one
// sequenced rule list. Sequence numbers increase strictly across the
// whole concatenation, giving the cascade its total tie-break order.
func (e *Engine) compileRules(doc *dom.Document) ([]cssom.StyleRule, error) {
	compiler := &cssom.Compiler{}
	var rules []cssom.StyleRule
	for _, sheet := range douceuradapter.ExtractStyleElements(doc.Root()) {
		rules = compiler.Compile(sheet, rules)
	}
	if strings.TrimSpace(e.ExtraCSS) != "" {
		sheet, err := douceuradapter.Parse(e.ExtraCSS)
		if err != nil {
			return nil, err
		}
		rules = compiler.Compile(sheet, rules)
	}
	tracer().Debugf("compiled %d style rule(s)", len(rules))
	return rules, nil
}

// resolve folds every rule, in ascending (specificity, sequence) order,
// into the winner maps of the elements it matches. After resolve returns,
// each matched element's winner map holds the final stylesheet-derived
// declaration per property name.
func resolve(doc *dom.Document, ordered []cssom.StyleRule) *cssom.Accumulator {
	acc := cssom.NewAccumulator()
	for r := range ordered {
		rule := &ordered[r]
		for _, n := range rule.Matches(doc.Root()) {
			i, ok := doc.IndexOf(n)
			if !ok {
				continue // matched a node outside the arena, e.g. after tree surgery
			}
			acc.Apply(i, rule)
		}
	}
	return acc
}

// reconcile merges an element's accumulated stylesheet winners with its
// pre-existing inline declarations and rewrites the 'style' attribute.
// An inline declaration always wins over a stylesheet-derived one for
// the same property name, regardless of value or importance — the
// document author's inline style is sacrosanct.
func reconcile(el *dom.Element, acc *cssom.Accumulator) {
	winners, ok := acc.Winners(el.Index)
	if !ok {
		return
	}
	attr, hadAttr := el.StyleAttr()
	if len(winners) == 0 && !hadAttr {
		return // a matched but declaration-less rule must not introduce style=""
	}
	inline := douceuradapter.ParseInline(attr)
	taken := make(map[string]bool, len(inline))
	for _, d := range inline {
		taken[d.Property] = true
	}
	parts := make([]string, 0, len(winners)+len(inline))
	for _, d := range winners {
		if taken[d.Property] {
			continue // shadowed by an inline declaration
		}
		parts = append(parts, douceuradapter.Format(d))
	}
	for _, d := range inline {
		parts = append(parts, douceuradapter.Format(d))
	}
	el.SetStyleAttr(strings.Join(parts, " "))
}

// GetInlineStyles parses an element's current 'style' attribute into its
// individual declarations, in attribute order. Elements without a style
// attribute yield nil.
func GetInlineStyles(el *dom.Element) []style.Declaration {
	attr, ok := el.StyleAttr()
	if !ok {
		return nil
	}
	return douceuradapter.ParseInline(attr)
}

// InlineCSSOnElement folds the given stylesheet-derived declarations into
// a single element's 'style' attribute, independent of full-document
// conversion. The declarations are folded in the given order under the
// usual cascade rules (importance, origin specificity, later-wins on
// ties), then reconciled with the element's pre-existing inline
// declarations, which win unconditionally per property name.
//
// Every declaration must carry an origin specificity; see
// style.NewDeclaration.
func InlineCSSOnElement(el *dom.Element, decls []style.Declaration) *dom.Element {
	if len(decls) == 0 {
		return el
	}
	acc := cssom.NewAccumulator()
	acc.Apply(el.Index, &cssom.StyleRule{Declarations: decls})
	reconcile(el, acc)
	return el
}
