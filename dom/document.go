package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is one element node of a parsed document, identified by a
// stable, document-scoped index. The index is assigned in document order
// during parsing and never changes.
type Element struct {
	Index int
	node  *html.Node
}

// ErrNoDocument flags an absent or unusable document tree.
var ErrNoDocument = errors.New("dom: no document to work on")

// Document wraps a parsed HTML tree together with its element arena.
type Document struct {
	root     *html.Node
	elements []*Element
	index    map[*html.Node]int
}

// Parse reads and parses an HTML document. Parsing is delegated to
// golang.org/x/net/html, which builds a well-formed tree for just about
// any input, so errors are restricted to broken readers.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return FromHTMLTree(root)
}

// ParseString parses an HTML document given as a string.
func ParseString(htmlText string) (*Document, error) {
	return Parse(strings.NewReader(htmlText))
}

// FromHTMLTree wraps an already parsed HTML tree, enumerating its element
// nodes into the arena in document order.
func FromHTMLTree(root *html.Node) (*Document, error) {
	if root == nil {
		return nil, ErrNoDocument
	}
	doc := &Document{
		root:  root,
		index: make(map[*html.Node]int),
	}
	doc.enumerate(root)
	tracer().Debugf("document with %d elements", len(doc.elements))
	return doc, nil
}

func (doc *Document) enumerate(n *html.Node) {
	if n.Type == html.ElementNode {
		e := &Element{Index: len(doc.elements), node: n}
		doc.elements = append(doc.elements, e)
		doc.index[n] = e.Index
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		doc.enumerate(ch)
	}
}

// Root returns the root node of the document tree.
func (doc *Document) Root() *html.Node {
	return doc.root
}

// Elements returns all element nodes of the document, in document order.
func (doc *Document) Elements() []*Element {
	return doc.elements
}

// Element returns the element with the given arena index.
func (doc *Document) Element(i int) *Element {
	if i < 0 || i >= len(doc.elements) {
		return nil
	}
	return doc.elements[i]
}

// IndexOf returns the arena index for an HTML node, if the node is an
// element of this document.
func (doc *Document) IndexOf(n *html.Node) (int, bool) {
	i, ok := doc.index[n]
	return i, ok
}

// HTML re-serializes the document to HTML text. Structure, doctype and
// attributes other than the rewritten 'style' attributes are preserved
// as the parser built them.
func (doc *Document) HTML() (string, error) {
	if doc.root == nil {
		return "", ErrNoDocument
	}
	var b strings.Builder
	if err := html.Render(&b, doc.root); err != nil {
		return "", err
	}
	return b.String(), nil
}

// RemoveStyleElements drops all <style> elements from the document tree.
// The element arena keeps its indexes; removed elements simply no longer
// appear in the serialized output.
func (doc *Document) RemoveStyleElements() {
	var styles []*html.Node
	for _, e := range doc.elements {
		if e.node.DataAtom == atom.Style {
			styles = append(styles, e.node)
		}
	}
	for _, n := range styles {
		if n.Parent != nil {
			n.Parent.RemoveChild(n)
		}
	}
}

// HTMLNode returns the underlying HTML node of an element.
func (e *Element) HTMLNode() *html.Node {
	return e.node
}

// NodeName returns the tag name of the element, e.g. "div".
func (e *Element) NodeName() string {
	return e.node.Data
}

// StyleAttr returns the element's current 'style' attribute text. The
// second return value is false if the element carries no such attribute.
func (e *Element) StyleAttr() (string, bool) {
	for _, a := range e.node.Attr {
		if a.Key == "style" && a.Namespace == "" {
			return a.Val, true
		}
	}
	return "", false
}

// SetStyleAttr sets the element's 'style' attribute, replacing an
// existing one in place (keeping its position among the attributes) or
// appending a new one.
func (e *Element) SetStyleAttr(value string) {
	for i, a := range e.node.Attr {
		if a.Key == "style" && a.Namespace == "" {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: "style", Val: value})
}
