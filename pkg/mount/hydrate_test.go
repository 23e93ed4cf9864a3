package mount

import (
	"errors"
	"testing"

	arberr "github.com/arbor-ui/arbor/internal/errors"
	"github.com/arbor-ui/arbor/pkg/backend/memdom"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

func hydrationCode(t *testing.T, err error) string {
	t.Helper()
	var ae *arberr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("error %v is not an arbor error", err)
	}
	return ae.Code
}

// prerender mounts tree into a fresh document and returns it with the
// op counters cleared, standing in for markup produced on a previous
// run.
func prerender(tree *vtree.VNode) *memdom.DOM {
	d := memdom.New()
	Mount(d, tree, d.Root(), nil)
	d.ResetOps()
	return d
}

func TestHydrateMatchingTreeIsSilent(t *testing.T) {
	tree := func() *vtree.VNode {
		return vtree.Div(
			vtree.Class("page"),
			vtree.Ul(vtree.Keyed(
				vtree.WithKey(vtree.Li("one"), "1"),
				vtree.WithKey(vtree.Li("two"), "2"),
			)),
			vtree.P("footer"),
		)
	}

	d := prerender(tree())
	st, err := Hydrate(d, tree(), d.Root())
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if n := d.Ops().Mutations(); n != 0 {
		t.Errorf("mutations during hydration = %d, want 0 (%+v)", n, d.Ops())
	}
	if ops := d.Ops(); ops.CreateElement != 0 || ops.CreateText != 0 {
		t.Errorf("hydration created nodes: %+v", ops)
	}

	// The adopted state must patch exactly like a mounted one.
	d.ResetOps()
	Patch(d, st, tree())
	if n := d.Ops().Mutations(); n != 0 {
		t.Errorf("mutations patching identical tree = %d, want 0", n)
	}
}

func TestHydrateAdoptsExistingNodes(t *testing.T) {
	tree := vtree.Div(vtree.Span("x"))
	d := prerender(tree)
	div := d.FirstChild(d.Root())

	st, err := Hydrate(d, vtree.Div(vtree.Span("x")), d.Root())
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if st.Node() != div {
		t.Error("hydrated state does not hold the pre-existing node")
	}
}

func TestHydrateCorrectsDriftedText(t *testing.T) {
	d := prerender(vtree.P("stale"))

	_, err := Hydrate(d, vtree.P("fresh"), d.Root())
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if got := d.InnerHTML(d.Root()); got != `<p>fresh</p>` {
		t.Errorf("InnerHTML = %q", got)
	}
	if ops := d.Ops(); ops.SetText != 1 {
		t.Errorf("SetText = %d, want 1", ops.SetText)
	}
}

func TestHydrateInstallsBindings(t *testing.T) {
	src := &fakeSource{value: "init"}
	d := prerender(vtree.Span(vtree.Text("init")))

	st, err := Hydrate(d, vtree.Span(vtree.DynText(src)), d.Root())
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if src.live() != 1 {
		t.Fatalf("live subscriptions = %d, want 1", src.live())
	}

	src.set("updated")
	if got := d.InnerHTML(d.Root()); got != `<span>updated</span>` {
		t.Errorf("InnerHTML = %q", got)
	}

	Unmount(d, st)
	if src.live() != 0 {
		t.Errorf("live after unmount = %d, want 0", src.live())
	}
}

func TestHydrateTagMismatch(t *testing.T) {
	d := prerender(vtree.Div(vtree.Span("x")))

	_, err := Hydrate(d, vtree.Div(vtree.P("x")), d.Root())
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	if code := hydrationCode(t, err); code != "A002" {
		t.Errorf("code = %s, want A002", code)
	}
}

func TestHydrateMissingNodeMismatch(t *testing.T) {
	d := prerender(vtree.Div(vtree.Span("only")))

	_, err := Hydrate(d, vtree.Div(vtree.Span("only"), vtree.Span("extra")), d.Root())
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	if code := hydrationCode(t, err); code != "A002" {
		t.Errorf("code = %s, want A002", code)
	}
}

func TestHydrateMismatchReleasesPartialBindings(t *testing.T) {
	src := &fakeSource{value: "v"}
	d := prerender(vtree.Div(vtree.Span("v"), vtree.P("x")))

	_, err := Hydrate(d, vtree.Div(vtree.Span(vtree.DynText(src)), vtree.Section("x")), d.Root())
	if err == nil {
		t.Fatal("expected mismatch error")
	}
	if src.live() != 0 {
		t.Errorf("live subscriptions after failed hydration = %d, want 0", src.live())
	}
}

func TestHydrateSkipsWhitespaceBetweenElements(t *testing.T) {
	d := memdom.New()
	div := d.CreateElement("div")
	d.InsertBefore(d.Root(), div, nil)
	d.InsertBefore(div, d.CreateText("\n  "), nil)
	span := d.CreateElement("span")
	d.InsertBefore(div, span, nil)
	d.InsertBefore(span, d.CreateText("x"), nil)
	d.InsertBefore(div, d.CreateText("\n"), nil)
	d.ResetOps()

	st, err := Hydrate(d, vtree.Div(vtree.Span("x")), d.Root())
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	if st.children[0].Node() != span {
		t.Error("did not adopt the element past the indentation")
	}
}

func TestHydrateOrMountFallsBack(t *testing.T) {
	d := prerender(vtree.Div(vtree.Span("served")))

	st := HydrateOrMount(d, vtree.Ul(vtree.Li("client")), d.Root())

	if got := d.InnerHTML(d.Root()); got != `<ul><li>client</li></ul>` {
		t.Errorf("InnerHTML = %q", got)
	}

	// The fallback state is fully live.
	d.ResetOps()
	Patch(d, st, vtree.Ul(vtree.Li("patched")))
	if got := d.InnerHTML(d.Root()); got != `<ul><li>patched</li></ul>` {
		t.Errorf("after patch = %q", got)
	}
}

func TestHydrateThenPatchBehavesLikeMount(t *testing.T) {
	build := func(label string) *vtree.VNode {
		return vtree.Div(
			vtree.Ul(vtree.Keyed(
				vtree.WithKey(vtree.Li("a"), "a"),
				vtree.WithKey(vtree.Li(label), "b"),
			)),
		)
	}

	// Path 1: mount and patch.
	d1 := memdom.New()
	s1 := Mount(d1, build("one"), d1.Root(), nil)
	Patch(d1, s1, build("two"))

	// Path 2: hydrate the prerendered document, then patch.
	d2 := prerender(build("one"))
	s2, err := Hydrate(d2, build("one"), d2.Root())
	if err != nil {
		t.Fatalf("Hydrate: %v", err)
	}
	Patch(d2, s2, build("two"))

	if a, b := d1.InnerHTML(d1.Root()), d2.InnerHTML(d2.Root()); a != b {
		t.Errorf("mounted %q != hydrated %q", a, b)
	}
}
