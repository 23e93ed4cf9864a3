package htmlenc

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/arbor-ui/arbor/pkg/vtree"
)

// Config configures the HTML encoder.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty
	// mode. Defaults to two spaces.
	Indent string
}

// Encoder serializes view trees to HTML.
//
// The encoder is the "string-buffer renderer": it has no live node
// handles to mutate, so the tree-mutation primitives of a live backend
// have no equivalent here - everything is computed at serialization
// time. Bound text and attributes are serialized from their current
// source value, producing output a later hydration pass can attach to.
type Encoder struct {
	config Config
}

// New creates an Encoder with the given configuration.
func New(config Config) *Encoder {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Encoder{config: config}
}

// EncodeToString serializes a view tree to an HTML string.
func (e *Encoder) EncodeToString(node *vtree.VNode) (string, error) {
	var buf bytes.Buffer
	if err := e.Encode(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Encode streams a view tree to the given writer.
func (e *Encoder) Encode(w io.Writer, node *vtree.VNode) error {
	return e.encodeNode(w, node, 0)
}

// encodeNode dispatches on node kind.
func (e *Encoder) encodeNode(w io.Writer, node *vtree.VNode, depth int) error {
	if node == nil {
		return nil
	}

	switch node.Kind {
	case vtree.KindElement:
		return e.encodeElement(w, node, depth)
	case vtree.KindText:
		return e.encodeText(w, node)
	case vtree.KindFragment, vtree.KindKeyedList:
		return e.encodeChildren(w, node, depth)
	case vtree.KindCond:
		return e.encodeChildren(w, node, depth)
	case vtree.KindComponent:
		return e.encodeComponent(w, node, depth)
	case vtree.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	default:
		return fmt.Errorf("htmlenc: unknown node kind %d", node.Kind)
	}
}

func (e *Encoder) encodeElement(w io.Writer, node *vtree.VNode, depth int) error {
	tag := node.Tag

	if e.config.Pretty && depth > 0 {
		e.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := e.encodeAttributes(w, node); err != nil {
		return err
	}

	if vtree.IsVoidElement(tag) {
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if e.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(tag)
	if e.config.Pretty && hasBlockChildren {
		io.WriteString(w, "\n")
	}

	for _, child := range node.Children {
		if err := e.encodeNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if e.config.Pretty && hasBlockChildren {
		e.writeIndent(w, depth)
	}

	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	if e.config.Pretty {
		io.WriteString(w, "\n")
	}

	return nil
}

func (e *Encoder) encodeText(w io.Writer, node *vtree.VNode) error {
	text := node.Text
	if node.Src != nil {
		text = node.Src.Get()
	}
	_, err := io.WriteString(w, escapeHTML(text))
	return err
}

func (e *Encoder) encodeChildren(w io.Writer, node *vtree.VNode, depth int) error {
	for _, child := range node.Children {
		if err := e.encodeNode(w, child, depth); err != nil {
			return err
		}
	}
	return nil
}

func (e *Encoder) encodeComponent(w io.Writer, node *vtree.VNode, depth int) error {
	if node.Comp == nil {
		return nil
	}
	return e.encodeNode(w, node.Comp.Render(), depth)
}

// encodeAttributes writes all attributes for an element.
// Keys are sorted for deterministic output.
func (e *Encoder) encodeAttributes(w io.Writer, node *vtree.VNode) error {
	if len(node.Props) == 0 {
		return nil
	}

	keys := make([]string, 0, len(node.Props))
	for key := range node.Props {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := node.Props[key]

		if isBooleanAttr(key) {
			if b, ok := value.(bool); ok {
				if b {
					if _, err := io.WriteString(w, " "+key); err != nil {
						return err
					}
				}
				continue
			}
		}

		strValue := attrToString(value)
		if strValue == "" {
			continue
		}
		if _, err := io.WriteString(w, " "+key+`="`+escapeAttr(strValue)+`"`); err != nil {
			return err
		}
	}

	return nil
}

// attrToString converts an attribute value to its serialized form.
// Bound attributes serialize their current source value.
func attrToString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case vtree.TextSource:
		return v.Get()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return fmt.Sprintf("%d", v)
	case int64:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (e *Encoder) writeIndent(w io.Writer, depth int) {
	for i := 0; i < depth; i++ {
		io.WriteString(w, e.config.Indent)
	}
}
