// Package view defines a render-target independent UI tree and the two
// backends that draw it: HTML and the terminal.
//
// Nodes are plain values. Builder methods return modified copies, so a node
// can be shared as a template:
//
//	bar := view.Div().Class("progress")
//	live := bar.With(view.Div().Class("progress-bar").CSS("width", "44%"))
package view

import (
	"sort"
	"strings"
)

// Node is an element (Tag set) or a text leaf (Tag empty).
type Node struct {
	Tag      string            `json:"tag,omitempty"`
	Text     string            `json:"text,omitempty"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Style    map[string]string `json:"style,omitempty"`
	Children []Node            `json:"children,omitempty"`
}

// El creates an element.
func El(tag string, children ...Node) Node {
	return Node{Tag: tag, Children: children}
}

// Text creates a text leaf.
func Text(s string) Node {
	return Node{Text: s}
}

func Div(children ...Node) Node   { return El("div", children...) }
func H3(children ...Node) Node    { return El("h3", children...) }
func H4(children ...Node) Node    { return El("h4", children...) }
func Form(children ...Node) Node  { return El("form", children...) }
func Span(children ...Node) Node  { return El("span", children...) }
func Label(children ...Node) Node { return El("label", children...) }
func Hr() Node                    { return El("hr") }

// A creates a link that opens in a new tab and is skipped by tab navigation.
func A(href, text string) Node {
	return El("a", Text(text)).
		Attr("href", href).
		Attr("target", "_blank").
		Attr("tabindex", "-1")
}

// IsText reports whether n is a text leaf.
func (n Node) IsText() bool {
	return n.Tag == ""
}

// Attr returns a copy of n with attribute key set to value.
func (n Node) Attr(key, value string) Node {
	attrs := make(map[string]string, len(n.Attrs)+1)
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	attrs[key] = value
	n.Attrs = attrs
	return n
}

// Class returns a copy of n with the class attribute set. Multiple classes
// are space separated.
func (n Node) Class(classes ...string) Node {
	return n.Attr("class", strings.Join(classes, " "))
}

// CSS returns a copy of n with one inline style property set.
func (n Node) CSS(property, value string) Node {
	style := make(map[string]string, len(n.Style)+1)
	for k, v := range n.Style {
		style[k] = v
	}
	style[property] = value
	n.Style = style
	return n
}

// With returns a copy of n with children appended.
func (n Node) With(children ...Node) Node {
	kids := make([]Node, 0, len(n.Children)+len(children))
	kids = append(kids, n.Children...)
	kids = append(kids, children...)
	n.Children = kids
	return n
}

// HasClass reports whether n carries the given class.
func (n Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.Attrs["class"]) {
		if c == class {
			return true
		}
	}
	return false
}

// TextContent concatenates every text leaf under n.
func (n Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var sb strings.Builder
	for _, c := range n.Children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// FindAll returns every node under n (n included) matching pred, depth first.
func (n Node) FindAll(pred func(Node) bool) []Node {
	var out []Node
	var walk func(Node)
	walk = func(cur Node) {
		if pred(cur) {
			out = append(out, cur)
		}
		for _, c := range cur.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// ByClass returns every element under n with the given class.
func (n Node) ByClass(class string) []Node {
	return n.FindAll(func(c Node) bool { return c.HasClass(class) })
}

// StyleString serializes the inline style with properties in sorted order.
func (n Node) StyleString() string {
	if len(n.Style) == 0 {
		return ""
	}
	keys := make([]string, 0, len(n.Style))
	for k := range n.Style {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+n.Style[k])
	}
	return strings.Join(parts, "; ")
}
