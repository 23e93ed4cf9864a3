package vtree

import "testing"

type staticSource string

func (s staticSource) Get() string             { return string(s) }
func (s staticSource) Subscribe(func()) func() { return func() {} }

func TestDynText(t *testing.T) {
	node := DynText(staticSource("live"))

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Src == nil {
		t.Fatal("Src not set")
	}
	if node.Src.Get() != "live" {
		t.Errorf("Src.Get() = %q", node.Src.Get())
	}
	// Text carries the snapshot for encoders that ignore bindings.
	if node.Text != "live" {
		t.Errorf("Text = %q, want snapshot", node.Text)
	}
}

func TestBindAttr(t *testing.T) {
	node := Div(BindAttr("class", staticSource("busy")))

	src, ok := node.Props["class"].(TextSource)
	if !ok {
		t.Fatalf("class prop = %T, want TextSource", node.Props["class"])
	}
	if src.Get() != "busy" {
		t.Errorf("Get() = %q", src.Get())
	}
}
