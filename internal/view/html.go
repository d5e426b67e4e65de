package view

import (
	"io"
	"sort"

	"github.com/rileyhilliard/bmi/internal/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes n as HTML. Attributes are emitted in sorted order with
// the inline style last, so output is stable for a given tree.
func RenderHTML(w io.Writer, n Node) error {
	if err := html.Render(w, toHTML(n)); err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Failed to render HTML",
			"Check that void elements such as <hr> have no children.")
	}
	return nil
}

func toHTML(n Node) *html.Node {
	if n.IsText() {
		return &html.Node{Type: html.TextNode, Data: n.Text}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: n.Attrs[k]})
	}
	if style := n.StyleString(); style != "" {
		el.Attr = append(el.Attr, html.Attribute{Key: "style", Val: style})
	}

	for _, c := range n.Children {
		el.AppendChild(toHTML(c))
	}
	return el
}
