/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet,
backed by the douceur CSS parser. It also exposes the inline-style
splitter/formatter the reconciliation step works with, so that every piece
of CSS text handling is concentrated behind one adapter.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/styledown/inliner/style"
	"github.com/styledown/inliner/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'inliner.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("inliner.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css css.Stylesheet
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper.
func Wrap(css *css.Stylesheet) *CSSStyles {
	sheet := &CSSStyles{*css}
	return sheet
}

// Parse parses CSS text into a stylesheet.
func Parse(cssText string) (*CSSStyles, error) {
	sheet, err := parser.Parse(cssText)
	if err != nil {
		return nil, fmt.Errorf("cannot parse stylesheet: %w", err)
	}
	return Wrap(sheet), nil
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	othercss := other.(*CSSStyles)
	for _, r := range othercss.css.Rules { // append every rule from other
		sheet.css.Rules = append(sheet.css.Rules, r)
	}
}

// Rules returns all the rules of a stylesheet. At-rules (media queries,
// font-face, …) carry no selector an element could match and are left out.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.Rule {
	rules := make([]cssom.Rule, 0, len(sheet.css.Rules))
	for i := range sheet.css.Rules {
		r := sheet.css.Rules[i]
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule{r})
	}
	return rules
}

var _ cssom.StyleSheet = &CSSStyles{}

// Rule is an adapter for interface cssom.Rule.
type Rule struct {
	rule *css.Rule
}

// Selectors returns the selectors of the rule's prelude, split on ','.
func (r Rule) Selectors() []string {
	return r.rule.Selectors
}

// Declarations returns the rule's declarations in their textual order,
// repeats included, without origin specificity attached (specificity is
// attached during rule compilation; see cssom.Compiler).
func (r Rule) Declarations() []style.Declaration {
	decls := make([]style.Declaration, len(r.rule.Declarations))
	for i, d := range r.rule.Declarations {
		decls[i] = style.NewInlineDeclaration(d.Property, style.Property(d.Value), d.Important)
	}
	return decls
}

var _ cssom.Rule = Rule{}

// ParseInline splits an element's raw 'style' attribute text into
// individual inline-origin declarations, preserving their attribute
// order. Unparseable attribute text yields no declarations.
func ParseInline(attributeText string) []style.Declaration {
	if strings.TrimSpace(attributeText) == "" {
		return nil
	}
	parsed, err := parser.ParseDeclarations(attributeText)
	if err != nil {
		tracer().Debugf("cannot parse inline style %q: %v", attributeText, err)
		return nil
	}
	decls := make([]style.Declaration, 0, len(parsed))
	for _, d := range parsed {
		decls = append(decls, style.NewInlineDeclaration(d.Property, style.Property(d.Value), d.Important))
	}
	return decls
}

// Format serializes a single declaration to CSS text, including the
// trailing ';' terminator, e.g.
//
//	color: black !important;
func Format(d style.Declaration) string {
	decl := css.Declaration{
		Property:  d.Property,
		Value:     d.Value.String(),
		Important: d.Important,
	}
	return decl.StringWithImportant(true)
}

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets.
func ExtractStyleElements(htmldoc *html.Node) []*CSSStyles {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	css := extractStyles(head)
	css2 := extractStyles(body)
	for _, c := range css2 {
		css = append(css, c)
	}
	return css
}

func extractStyles(h *html.Node) []*CSSStyles {
	if h == nil {
		return nil
	}
	var css []*CSSStyles
	ch := h.FirstChild
	for ch != nil {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			c, err := parser.Parse(ch.FirstChild.Data)
			if err != nil {
				tracer().Debugf("cannot parse <style> element: %v", err)
				ch = ch.NextSibling
				continue
			}
			css = append(css, Wrap(c))
		}
		ch = ch.NextSibling
	}
	return css
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	ch := h.FirstChild
	for ch != nil {
		r := findElement(a, ch)
		if r != nil && r.DataAtom == a {
			return r
		}
		ch = ch.NextSibling
	}
	return nil
}
