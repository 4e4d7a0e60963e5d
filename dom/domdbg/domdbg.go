/*
Package domdbg implements helpers to debug a document's cascade state.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/
package domdbg

import (
	"fmt"
	"io"
	"strings"

	"github.com/styledown/inliner/dom"
	"github.com/styledown/inliner/style/cssom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump writes a textual tree diagram of a document to w. For every
// element node the diagram shows the tag, the element's arena index and,
// if an accumulator is given, the accumulated winning declarations.
// Helpful output for tests working on the cascade.
//
// acc may be nil, in which case just the element structure is printed.
func Dump(doc *dom.Document, acc *cssom.Accumulator, w io.Writer) error {
	if doc == nil {
		return dom.ErrNoDocument
	}
	tree := tp.New()
	node(doc, doc.Root(), acc, tree)
	_, err := io.WriteString(w, tree.String())
	return err
}

func node(doc *dom.Document, n *html.Node, acc *cssom.Accumulator, branch tp.Tree) {
	b := branch
	if n.Type == html.ElementNode {
		label := n.Data
		if i, ok := doc.IndexOf(n); ok {
			label = fmt.Sprintf("%s #%d", n.Data, i)
			if acc != nil {
				if winners, ok := acc.Winners(i); ok {
					decls := make([]string, len(winners))
					for j, d := range winners {
						decls[j] = d.String()
					}
					label += " [" + strings.Join(decls, "; ") + "]"
				}
			}
		}
		b = branch.AddBranch(label)
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		node(doc, ch, acc, b)
	}
}
