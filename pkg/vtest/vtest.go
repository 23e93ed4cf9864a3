package vtest

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arbor-ui/arbor/pkg/backend/htmlenc"
	"github.com/arbor-ui/arbor/pkg/backend/memdom"
	"github.com/arbor-ui/arbor/pkg/mount"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

// Harness drives a tree through mount, patch, and unmount against an
// in-memory document, with assertions on the resulting markup and on
// the platform operations each step performed.
//
// Example:
//
//	h := vtest.New(t)
//	h.Mount(Counter(0))
//	h.ExpectHTML(`<div><span>0</span></div>`)
//	h.Patch(Counter(1))
//	h.ExpectMaxMutations(1)
type Harness struct {
	t     *testing.T
	dom   *memdom.DOM
	state *mount.State
}

// New creates a harness around a fresh document.
func New(t *testing.T) *Harness {
	t.Helper()
	return &Harness{t: t, dom: memdom.New()}
}

// DOM exposes the underlying document for direct inspection.
func (h *Harness) DOM() *memdom.DOM {
	return h.dom
}

// State returns the current mounted state, nil before Mount.
func (h *Harness) State() *mount.State {
	return h.state
}

// Mount mounts tree at the document root and clears the op counters so
// later assertions see only post-mount operations.
func (h *Harness) Mount(tree *vtree.VNode) *Harness {
	h.t.Helper()
	if h.state != nil {
		h.t.Fatal("Mount called twice; use Patch")
	}
	h.state = mount.Mount(h.dom, tree, h.dom.Root(), nil)
	h.dom.ResetOps()
	return h
}

// Patch converges the mounted tree onto next. Op counters are reset
// first, so Ops() afterwards covers exactly this pass.
func (h *Harness) Patch(next *vtree.VNode) *Harness {
	h.t.Helper()
	if h.state == nil {
		h.t.Fatal("Patch before Mount")
	}
	h.dom.ResetOps()
	h.state = mount.Patch(h.dom, h.state, next)
	return h
}

// Unmount tears the mounted tree down.
func (h *Harness) Unmount() *Harness {
	h.t.Helper()
	if h.state == nil {
		h.t.Fatal("Unmount before Mount")
	}
	h.dom.ResetOps()
	mount.Unmount(h.dom, h.state)
	h.state = nil
	return h
}

// Hydrate prerenders prev into the document, then hydrates next
// against it, failing the test on mismatch.
func (h *Harness) Hydrate(prev, next *vtree.VNode) *Harness {
	h.t.Helper()
	if h.state != nil {
		h.t.Fatal("Hydrate on a mounted harness")
	}
	mount.Mount(h.dom, prev, h.dom.Root(), nil)
	h.dom.ResetOps()
	st, err := mount.Hydrate(h.dom, next, h.dom.Root())
	if err != nil {
		h.t.Fatalf("hydration failed: %v", err)
	}
	h.state = st
	return h
}

// HTML returns the document's current markup.
func (h *Harness) HTML() string {
	return h.dom.InnerHTML(h.dom.Root())
}

// Ops returns the operation counters accumulated since the last step.
func (h *Harness) Ops() memdom.OpCounts {
	return h.dom.Ops()
}

// ExpectHTML asserts the document markup exactly.
func (h *Harness) ExpectHTML(want string) *Harness {
	h.t.Helper()
	if got := h.HTML(); got != want {
		h.t.Errorf("document markup mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
	return h
}

// ExpectContains asserts the document markup contains substr.
func (h *Harness) ExpectContains(substr string) *Harness {
	h.t.Helper()
	if got := h.HTML(); !strings.Contains(got, substr) {
		h.t.Errorf("document markup does not contain %q:\n%s", substr, truncate(got, 500))
	}
	return h
}

// ExpectNotContains asserts the document markup does not contain substr.
func (h *Harness) ExpectNotContains(substr string) *Harness {
	h.t.Helper()
	if got := h.HTML(); strings.Contains(got, substr) {
		h.t.Errorf("document markup should not contain %q:\n%s", substr, truncate(got, 500))
	}
	return h
}

// ExpectOps asserts the exact operation counts of the last step.
func (h *Harness) ExpectOps(want memdom.OpCounts) *Harness {
	h.t.Helper()
	if got := h.dom.Ops(); got != want {
		h.t.Errorf("operation counts mismatch (-want +got):\n%s", cmp.Diff(want, got))
	}
	return h
}

// ExpectMutations asserts how many mutating calls the last step made.
func (h *Harness) ExpectMutations(want int) *Harness {
	h.t.Helper()
	if got := h.dom.Ops().Mutations(); got != want {
		h.t.Errorf("mutations = %d, want %d (%+v)", got, want, h.dom.Ops())
	}
	return h
}

// ExpectMaxMutations asserts an upper bound on mutating calls.
func (h *Harness) ExpectMaxMutations(max int) *Harness {
	h.t.Helper()
	if got := h.dom.Ops().Mutations(); got > max {
		h.t.Errorf("mutations = %d, want at most %d (%+v)", got, max, h.dom.Ops())
	}
	return h
}

// RenderToString encodes a tree to markup, failing the test on error.
func RenderToString(t *testing.T, node *vtree.VNode) string {
	t.Helper()
	enc := htmlenc.New(htmlenc.Config{})
	out, err := enc.EncodeToString(node)
	if err != nil {
		t.Fatalf("encoding failed: %v", err)
	}
	return out
}

// ExpectContains asserts that encoded markup contains expected.
//
// Example:
//
//	vtest.ExpectContains(t, page.Render(), "Welcome")
func ExpectContains(t *testing.T, node *vtree.VNode, expected string) {
	t.Helper()
	out := RenderToString(t, node)
	if !strings.Contains(out, expected) {
		t.Errorf("expected markup to contain %q, got:\n%s", expected, truncate(out, 500))
	}
}

// ExpectNotContains asserts that encoded markup does not contain
// unexpected.
func ExpectNotContains(t *testing.T, node *vtree.VNode, unexpected string) {
	t.Helper()
	out := RenderToString(t, node)
	if strings.Contains(out, unexpected) {
		t.Errorf("expected markup to NOT contain %q, got:\n%s", unexpected, truncate(out, 500))
	}
}

// ExpectElement asserts that encoded markup contains a tag.
func ExpectElement(t *testing.T, node *vtree.VNode, tag string) {
	t.Helper()
	out := RenderToString(t, node)
	if !strings.Contains(out, "<"+tag) {
		t.Errorf("expected markup to contain <%s>, got:\n%s", tag, truncate(out, 500))
	}
}

// ExpectAttribute asserts that encoded markup contains an attribute
// with the given value.
func ExpectAttribute(t *testing.T, node *vtree.VNode, attr, value string) {
	t.Helper()
	out := RenderToString(t, node)
	needle := attr + `="` + value + `"`
	if !strings.Contains(out, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(out, 500))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
