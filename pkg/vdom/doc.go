// Package vdom provides the element model for soda.
//
// An Element is an immutable description of what to render: a host node
// (KindHost), a nested component (KindComponent), a scalar child (KindText)
// or a keyed sequence of elements (KindList). Components are plain functions
// that receive a Ctx and return the Element tree for their instance.
//
// # Building Trees
//
// H is the createElement primitive:
//
//	H("div", Attrs{"onClick": inc}, "Count: ", count)
//
// The tag factories offer the same with variadic attribute helpers:
//
//	Div(Class("card"), OnClick(inc),
//	    Span(Text("Count: "), count),
//	)
//
// A []*Element child (for example the result of Range) is kept as one
// keyed sequence so the renderer can reconcile it by key.
//
// # Attribute Names
//
// Component-facing attribute names are camel-case; TranslateAttr maps them
// to the host spelling (dash/colon separated, lower case).
package vdom
