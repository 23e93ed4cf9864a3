package vtree

import "testing"

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)

	if node.Text != "Count: 42" {
		t.Errorf("Text = %v, want 'Count: 42'", node.Text)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<strong>Bold</strong>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
	if node.Text != "<strong>Bold</strong>" {
		t.Errorf("Text = %v, want raw markup", node.Text)
	}
}

func TestFragment(t *testing.T) {
	t.Run("with VNodes", func(t *testing.T) {
		node := Fragment(Div(), Span(), P())
		if node.Kind != KindFragment {
			t.Errorf("Kind = %v, want KindFragment", node.Kind)
		}
		if len(node.Children) != 3 {
			t.Errorf("Children len = %v, want 3", len(node.Children))
		}
	})

	t.Run("skips nils", func(t *testing.T) {
		node := Fragment(Div(), nil, If(false, Span()))
		if len(node.Children) != 1 {
			t.Errorf("Children len = %v, want 1", len(node.Children))
		}
	})

	t.Run("string shorthand", func(t *testing.T) {
		node := Fragment("plain")
		if node.Children[0].Kind != KindText || node.Children[0].Text != "plain" {
			t.Errorf("child = %+v, want text node", node.Children[0])
		}
	})
}

func TestKeyed(t *testing.T) {
	node := Keyed(
		WithKey(Li("a"), "a"),
		WithKey(Li("b"), 2),
	)

	if node.Kind != KindKeyedList {
		t.Errorf("Kind = %v, want KindKeyedList", node.Kind)
	}
	if node.Children[0].Key != "a" {
		t.Errorf("Key = %q, want a", node.Children[0].Key)
	}
	if node.Children[1].Key != "2" {
		t.Errorf("Key = %q, want 2 (formatted)", node.Children[1].Key)
	}
}

func TestKeyAttributeLifted(t *testing.T) {
	node := Li(Key("row-7"), "content")

	if node.Key != "row-7" {
		t.Errorf("Key = %q, want row-7", node.Key)
	}
	if _, present := node.Props["key"]; present {
		t.Error("key must not appear as a real attribute")
	}
}

func TestIfElse(t *testing.T) {
	yes := IfElse(true, Span("y"), P("n"))
	no := IfElse(false, Span("y"), P("n"))

	if yes.Kind != KindCond || no.Kind != KindCond {
		t.Fatal("IfElse must produce conditional nodes")
	}
	if yes.CondTag == no.CondTag {
		t.Error("branches must carry distinct tags")
	}
	if yes.Children[0].Tag != "span" {
		t.Errorf("true branch = %q, want span", yes.Children[0].Tag)
	}
	if no.Children[0].Tag != "p" {
		t.Errorf("false branch = %q, want p", no.Children[0].Tag)
	}
}

func TestSwitchCase(t *testing.T) {
	render := func(status string) *VNode {
		return Switch(status,
			Case_("active", Span("on")),
			Case_("idle", Span("off")),
			Default[string](Span("unknown")),
		)
	}

	active := render("active")
	if active.Kind != KindCond {
		t.Fatalf("Kind = %v, want KindCond", active.Kind)
	}
	if active.Children[0].Children[0].Text != "on" {
		t.Errorf("active branch = %+v", active.Children[0])
	}

	other := render("gone")
	if other.CondTag == active.CondTag {
		t.Error("default branch must have its own tag")
	}
}

func TestRange(t *testing.T) {
	items := []string{"a", "b"}
	nodes := Range(items, func(s string, i int) *VNode {
		return WithKey(Li(s), i)
	})

	if len(nodes) != 2 {
		t.Fatalf("len = %d, want 2", len(nodes))
	}
	if nodes[1].Key != "1" {
		t.Errorf("Key = %q, want 1", nodes[1].Key)
	}
	if nodes[0].Children[0].Text != "a" {
		t.Errorf("first item = %+v", nodes[0])
	}
}

func TestElementArgs(t *testing.T) {
	node := Div(
		ID("main"),
		Class("a", "b"),
		Span("child"),
		"text child",
		nil,
	)

	if node.Tag != "div" {
		t.Errorf("Tag = %q", node.Tag)
	}
	if node.Props["id"] != "main" {
		t.Errorf("id = %v", node.Props["id"])
	}
	if node.Props["class"] != "a b" {
		t.Errorf("class = %v", node.Props["class"])
	}
	if len(node.Children) != 2 {
		t.Errorf("Children len = %d, want 2", len(node.Children))
	}
}

func TestIsVoidElement(t *testing.T) {
	for _, tag := range []string{"br", "img", "input", "meta"} {
		if !IsVoidElement(tag) {
			t.Errorf("IsVoidElement(%q) = false", tag)
		}
	}
	if IsVoidElement("div") {
		t.Error("IsVoidElement(div) = true")
	}
}
