// Package backend defines the renderer capability interface.
//
// Backend decouples the view-tree engine from any concrete rendering
// target: the engine calls node creation, attribute mutation, and tree
// insertion/removal primitives through this interface only. memdom
// provides an in-memory implementation used as a test double and as the
// hydration source in tests; htmlenc serializes trees to HTML without a
// live backend at all.
package backend
