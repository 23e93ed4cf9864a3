// Package vtree provides the typed view-tree node model for Arbor.
//
// A VNode is an immutable, statically-checked description of one piece of
// UI: an element, text, fragment, component, tagged conditional branch,
// or keyed child list. VNodes describe WHAT the output should look like;
// they know nothing about any concrete rendering target. The mount package
// materializes them through a backend.Backend.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// # Reactive leaves
//
// DynText and BindAttr attach a TextSource to a text leaf or attribute.
// The mount engine subscribes to the source so a change rewrites only the
// affected output node, without diffing ancestors.
//
// # Keys
//
// Keyed (and the Key attribute) opt a child list into identity-preserving
// reconciliation. Keys must be unique among siblings; duplicates are a
// documented caller error.
package vtree
