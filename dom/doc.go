/*
Package dom is a thin adapter around golang.org/x/net/html parse trees.

Overview

The cascade engine never works on raw HTML nodes. Instead, a parsed
document exposes its elements through an arena of stable indexes: element
i of a document stays element i for the whole conversion run, no matter
what happens to the underlying tree. Winner maps (package cssom) are
keyed by these indexes, never by node identity, which removes any
ambiguity about node identity across tree mutations.

Besides enumeration, the adapter reads and writes 'style' attributes and
re-serializes the document, leaving structure and doctype otherwise
unchanged.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'inliner.dom'.
func tracer() tracing.Trace {
	return tracing.Select("inliner.dom")
}
