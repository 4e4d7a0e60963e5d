/*
Package cssom implements the cascade-resolution core of the inliner.

Overview

Styling with CSS means resolving the cascade: whenever more than one rule
targets the same element and property, a single winning declaration has to
be chosen according to importance, selector specificity and source order.
This package models exactly that arithmetic and nothing else — no box
model, no computed styles, no inheritance. A good explanation of styling
may be found in

	https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

There is not very much open source Go code around for supporting us in
implementing a styling engine, except the great work of
https://godoc.org/github.com/andybalholm/cascadia, which we rely on for
selector matching and specificity. CSS parsing is de-coupled by
introducing appropriate interfaces StyleSheet and Rule. A concrete
implementation on top of the douceur parser may be found in sub-package
douceuradapter.

The cascade itself is expressed as a pure merge function over pairs of
declarations, invoked by an explicit fold over (ordered rules × matched
elements). Keeping the arithmetic free of incidental mutation makes it
directly unit-testable.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'inliner.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("inliner.cssom")
}
