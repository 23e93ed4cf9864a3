package mount

import (
	"testing"

	"github.com/arbor-ui/arbor/pkg/backend/memdom"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

func view(label, class string) *vtree.VNode {
	return vtree.Div(
		vtree.Class(class),
		vtree.Span(label),
		vtree.P("static"),
	)
}

func TestPatchIdenticalTreeIsSilent(t *testing.T) {
	d := memdom.New()
	st := Mount(d, view("hello", "card"), d.Root(), nil)

	d.ResetOps()
	st = Patch(d, st, view("hello", "card"))

	if n := d.Ops().Mutations(); n != 0 {
		t.Errorf("mutations for identical tree = %d, want 0 (%+v)", n, d.Ops())
	}

	// And again, from the patched state.
	d.ResetOps()
	Patch(d, st, view("hello", "card"))
	if n := d.Ops().Mutations(); n != 0 {
		t.Errorf("mutations on second pass = %d, want 0", n)
	}
}

func TestPatchTextOnly(t *testing.T) {
	d := memdom.New()
	st := Mount(d, view("hello", "card"), d.Root(), nil)

	d.ResetOps()
	Patch(d, st, view("goodbye", "card"))

	ops := d.Ops()
	if ops.SetText != 1 {
		t.Errorf("SetText = %d, want 1", ops.SetText)
	}
	if n := ops.Mutations(); n != 1 {
		t.Errorf("mutations = %d, want 1 (%+v)", n, ops)
	}
	want := `<div class="card"><span>goodbye</span><p>static</p></div>`
	if got := d.InnerHTML(d.Root()); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestPatchAttributes(t *testing.T) {
	d := memdom.New()
	st := Mount(d, vtree.Div(vtree.ID("a"), vtree.Class("old")), d.Root(), nil)

	d.ResetOps()
	Patch(d, st, vtree.Div(vtree.Class("new"), vtree.Data("x", "1")))

	ops := d.Ops()
	if ops.SetAttribute != 2 {
		t.Errorf("SetAttribute = %d, want 2 (class change + data add)", ops.SetAttribute)
	}
	if ops.RemoveAttribute != 1 {
		t.Errorf("RemoveAttribute = %d, want 1 (id)", ops.RemoveAttribute)
	}
	want := `<div class="new" data-x="1"></div>`
	if got := d.InnerHTML(d.Root()); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestPatchTagChangeReplacesSubtree(t *testing.T) {
	d := memdom.New()
	Mount(d, vtree.Span("before"), d.Root(), nil)
	st := Mount(d, vtree.Div("target"), d.Root(), nil)
	Mount(d, vtree.Span("after"), d.Root(), nil)

	st = Patch(d, st, vtree.Section("target"))

	want := `<span>before</span><section>target</section><span>after</span>`
	if got := d.InnerHTML(d.Root()); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
	if st.tag != "section" {
		t.Errorf("state tag = %q, want section", st.tag)
	}
}

func TestPatchKindChangeReplacesSubtree(t *testing.T) {
	d := memdom.New()
	st := Mount(d, vtree.Text("plain"), d.Root(), nil)

	Patch(d, st, vtree.Div("boxed"))

	want := `<div>boxed</div>`
	if got := d.InnerHTML(d.Root()); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestPatchReplaceReleasesOldBindings(t *testing.T) {
	d := memdom.New()
	src := &fakeSource{value: "v"}
	st := Mount(d, vtree.Span(vtree.DynText(src)), d.Root(), nil)
	if src.live() != 1 {
		t.Fatalf("live = %d, want 1", src.live())
	}

	Patch(d, st, vtree.Div("replaced"))

	if src.live() != 0 {
		t.Errorf("live after replace = %d, want 0", src.live())
	}
}

func TestPatchCondSwitchesBranch(t *testing.T) {
	d := memdom.New()
	on := vtree.IfElse(true, vtree.Span("yes"), vtree.P("no"))
	off := vtree.IfElse(false, vtree.Span("yes"), vtree.P("no"))

	st := Mount(d, vtree.Div(on), d.Root(), nil)
	if got := d.InnerHTML(d.Root()); got != `<div><span>yes</span></div>` {
		t.Fatalf("initial = %q", got)
	}

	Patch(d, st, vtree.Div(off))
	if got := d.InnerHTML(d.Root()); got != `<div><p>no</p></div>` {
		t.Errorf("after switch = %q", got)
	}

	// Same branch again: no churn.
	d.ResetOps()
	Patch(d, st, vtree.Div(off))
	if n := d.Ops().Mutations(); n != 0 {
		t.Errorf("mutations for same branch = %d, want 0", n)
	}
}

func TestPatchCondSameShapeDifferentBranch(t *testing.T) {
	// Both branches render a span; the branch tag must still force a
	// swap so per-branch state never bleeds across.
	d := memdom.New()
	a := vtree.IfElse(true, vtree.Span("a"), vtree.Span("b"))
	b := vtree.IfElse(false, vtree.Span("a"), vtree.Span("b"))

	st := Mount(d, a, d.Root(), nil)
	d.ResetOps()
	Patch(d, st, b)

	ops := d.Ops()
	if ops.CreateElement != 1 || ops.RemoveChild != 1 {
		t.Errorf("expected fresh mount of other branch, got %+v", ops)
	}
	if got := d.InnerHTML(d.Root()); got != `<span>b</span>` {
		t.Errorf("InnerHTML = %q", got)
	}
}

func TestPatchComponentRerenders(t *testing.T) {
	d := memdom.New()
	counter := func(label string) *vtree.VNode {
		return vtree.Fragment(vtree.Func(func() *vtree.VNode {
			return vtree.P(label)
		}))
	}

	st := Mount(d, counter("one"), d.Root(), nil)
	d.ResetOps()
	Patch(d, st, counter("two"))

	if got := d.InnerHTML(d.Root()); got != `<p>two</p>` {
		t.Errorf("InnerHTML = %q", got)
	}
	if ops := d.Ops(); ops.SetText != 1 || ops.CreateElement != 0 {
		t.Errorf("expected in-place text patch, got %+v", ops)
	}
}

func TestPatchRebindsToNewSource(t *testing.T) {
	d := memdom.New()
	first := &fakeSource{value: "first"}
	second := &fakeSource{value: "second"}

	st := Mount(d, vtree.Span(vtree.DynText(first)), d.Root(), nil)
	Patch(d, st, vtree.Span(vtree.DynText(second)))

	if first.live() != 0 {
		t.Errorf("old source live = %d, want 0", first.live())
	}
	if second.live() != 1 {
		t.Errorf("new source live = %d, want 1", second.live())
	}

	first.set("stale")
	if got := d.InnerHTML(d.Root()); got != `<span>second</span>` {
		t.Errorf("InnerHTML = %q, old source still wired", got)
	}
	second.set("fresh")
	if got := d.InnerHTML(d.Root()); got != `<span>fresh</span>` {
		t.Errorf("InnerHTML = %q", got)
	}
}
