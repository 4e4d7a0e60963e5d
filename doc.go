/*
Package inliner converts stylesheet-driven presentation into literal,
per-element inline style attributes.

Overview

HTML mail is the classic consumer: most mail clients ignore or strip
<style> blocks, so a document's stylesheets have to be folded into each
element's own 'style' attribute before sending. Doing that correctly
means resolving the CSS cascade for every element — importance,
selector specificity and source order all taken into account — and then
merging the result with whatever the element already carries inline.
Pre-existing inline declarations are never overridden by
stylesheet-derived ones.

The hard part, cascade resolution, lives in package style/cssom. CSS
parsing is delegated to the douceur parser (see package douceuradapter),
selector matching and specificity to cascadia, and HTML tree handling to
golang.org/x/net/html (see package dom). This package wires the
collaborators into the conversion pipeline:

	parse document → extract & compile rules → order rules →
	fold matching rules per element → reconcile with inline styles →
	rewrite 'style' attributes → serialize

A complete conversion is a single synchronous pass; all state is scoped
to one call and discarded afterwards. For fixed input, output is
byte-identical across runs.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package inliner

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'inliner'.
func tracer() tracing.Trace {
	return tracing.Select("inliner")
}
