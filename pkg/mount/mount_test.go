package mount

import (
	"strings"
	"testing"

	"github.com/arbor-ui/arbor/pkg/backend/memdom"
	"github.com/arbor-ui/arbor/pkg/vtree"
)

// fakeSource is a hand-cranked TextSource for exercising bindings
// without pulling in the reactive graph.
type fakeSource struct {
	value string
	subs  []func()
}

func (f *fakeSource) Get() string { return f.value }

func (f *fakeSource) Subscribe(fn func()) func() {
	f.subs = append(f.subs, fn)
	idx := len(f.subs) - 1
	return func() { f.subs[idx] = nil }
}

func (f *fakeSource) set(v string) {
	f.value = v
	for _, fn := range f.subs {
		if fn != nil {
			fn()
		}
	}
}

func (f *fakeSource) live() int {
	n := 0
	for _, fn := range f.subs {
		if fn != nil {
			n++
		}
	}
	return n
}

func TestMountElement(t *testing.T) {
	d := memdom.New()
	tree := vtree.Div(
		vtree.ID("app"),
		vtree.Class("main"),
		vtree.Span("hello"),
	)

	Mount(d, tree, d.Root(), nil)

	want := `<div class="main" id="app"><span>hello</span></div>`
	if got := d.InnerHTML(d.Root()); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestMountFragmentFlattens(t *testing.T) {
	d := memdom.New()
	tree := vtree.Fragment(
		vtree.Span("a"),
		vtree.Fragment(vtree.Span("b"), vtree.Span("c")),
		vtree.Span("d"),
	)

	Mount(d, tree, d.Root(), nil)

	want := `<span>a</span><span>b</span><span>c</span><span>d</span>`
	if got := d.InnerHTML(d.Root()); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestMountBooleanAttributes(t *testing.T) {
	d := memdom.New()
	Mount(d, vtree.Input(vtree.Disabled(), vtree.AttrIf(false, vtree.Checked())), d.Root(), nil)

	got := d.InnerHTML(d.Root())
	if !strings.Contains(got, "disabled") {
		t.Errorf("true boolean attribute missing: %q", got)
	}
	if strings.Contains(got, "checked") {
		t.Errorf("false boolean attribute present: %q", got)
	}
}

func TestMountNilRendersNothing(t *testing.T) {
	d := memdom.New()
	st := Mount(d, nil, d.Root(), nil)

	if got := d.InnerHTML(d.Root()); got != "" {
		t.Errorf("InnerHTML = %q, want empty", got)
	}
	if n := st.firstNode(); n != nil {
		t.Errorf("firstNode = %v, want nil", n)
	}
}

func TestMountBefore(t *testing.T) {
	d := memdom.New()
	Mount(d, vtree.Span("last"), d.Root(), nil)
	anchor := d.FirstChild(d.Root())
	Mount(d, vtree.Span("first"), d.Root(), anchor)

	want := `<span>first</span><span>last</span>`
	if got := d.InnerHTML(d.Root()); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestMountComponent(t *testing.T) {
	d := memdom.New()
	comp := vtree.Func(func() *vtree.VNode {
		return vtree.P("from component")
	})
	Mount(d, vtree.Fragment(comp), d.Root(), nil)

	want := `<p>from component</p>`
	if got := d.InnerHTML(d.Root()); got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}

func TestDynamicTextFollowsSource(t *testing.T) {
	d := memdom.New()
	src := &fakeSource{value: "one"}
	Mount(d, vtree.Div(vtree.DynText(src)), d.Root(), nil)

	if got := d.InnerHTML(d.Root()); got != `<div>one</div>` {
		t.Fatalf("initial InnerHTML = %q", got)
	}

	d.ResetOps()
	src.set("two")
	if got := d.InnerHTML(d.Root()); got != `<div>two</div>` {
		t.Errorf("after set InnerHTML = %q", got)
	}
	if ops := d.Ops(); ops.SetText != 1 {
		t.Errorf("SetText = %d, want 1", ops.SetText)
	}

	// Same value again: snapshot suppresses the write.
	d.ResetOps()
	src.set("two")
	if ops := d.Ops(); ops.SetText != 0 {
		t.Errorf("SetText after no-op notify = %d, want 0", ops.SetText)
	}
}

func TestBoundAttributeFollowsSource(t *testing.T) {
	d := memdom.New()
	src := &fakeSource{value: "red"}
	Mount(d, vtree.Div(vtree.BindAttr("class", src)), d.Root(), nil)

	if got := d.InnerHTML(d.Root()); got != `<div class="red"></div>` {
		t.Fatalf("initial InnerHTML = %q", got)
	}

	src.set("blue")
	if got := d.InnerHTML(d.Root()); got != `<div class="blue"></div>` {
		t.Errorf("after set InnerHTML = %q", got)
	}
}

func TestUnmountRemovesAndReleases(t *testing.T) {
	d := memdom.New()
	src := &fakeSource{value: "x"}
	st := Mount(d, vtree.Div(
		vtree.BindAttr("title", src),
		vtree.Span(vtree.DynText(src)),
	), d.Root(), nil)

	if src.live() != 2 {
		t.Fatalf("live subscriptions = %d, want 2", src.live())
	}

	Unmount(d, st)

	if got := d.InnerHTML(d.Root()); got != "" {
		t.Errorf("InnerHTML after unmount = %q, want empty", got)
	}
	if src.live() != 0 {
		t.Errorf("live subscriptions after unmount = %d, want 0", src.live())
	}

	// A notification after unmount must not touch the document.
	d.ResetOps()
	src.set("y")
	if n := d.Ops().Mutations(); n != 0 {
		t.Errorf("mutations after unmount = %d, want 0", n)
	}
}

func TestUnmountFragmentRemovesEachItem(t *testing.T) {
	d := memdom.New()
	keep := Mount(d, vtree.Span("keep"), d.Root(), nil)
	frag := Mount(d, vtree.Fragment(vtree.Span("a"), vtree.Span("b")), d.Root(), nil)

	Unmount(d, frag)

	if got := d.InnerHTML(d.Root()); got != `<span>keep</span>` {
		t.Errorf("InnerHTML = %q", got)
	}
	_ = keep
}

func TestDebugDuplicateKeyPanics(t *testing.T) {
	Debug = true
	defer func() {
		Debug = false
		r := recover()
		if r == nil {
			t.Fatal("expected panic for duplicate keys")
		}
		if !strings.Contains(r.(string), "A003") {
			t.Errorf("panic = %v, want A003", r)
		}
	}()

	d := memdom.New()
	Mount(d, vtree.Keyed(
		vtree.WithKey(vtree.Li("a"), "dup"),
		vtree.WithKey(vtree.Li("b"), "dup"),
	), d.Root(), nil)
}

func TestDebugDoubleUnmountPanics(t *testing.T) {
	Debug = true
	defer func() {
		Debug = false
		r := recover()
		if r == nil {
			t.Fatal("expected panic for double unmount")
		}
		if !strings.Contains(r.(string), "A004") {
			t.Errorf("panic = %v, want A004", r)
		}
	}()

	d := memdom.New()
	st := Mount(d, vtree.Div(), d.Root(), nil)
	Unmount(d, st)
	Unmount(d, st)
}
