// Package htmlenc serializes view trees to HTML.
//
// This is the server-side rendering path: it walks a vtree.VNode tree
// and writes escaped HTML to an io.Writer. It implements no live
// mutation primitives - removal, reordering, and attribute patching are
// meaningless for a string buffer, so the whole document is computed at
// serialization time. The output of htmlenc is what a client-side
// hydration pass (pkg/mount) attaches behavior to.
package htmlenc
