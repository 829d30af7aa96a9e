package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// RenderHTML serializes a node back to HTML markup. It is a thin adapter
// for callers that want to display or store the extracted content; the
// extraction engine itself never serializes.
func RenderHTML(n Node) string {
	hn := toHTMLNode(n)
	if hn == nil {
		return ""
	}
	var b strings.Builder
	if err := html.Render(&b, hn); err != nil {
		return ""
	}
	return b.String()
}

// toHTMLNode rebuilds a mutable x/net/html tree from the immutable one.
// The rebuilt tree is freshly allocated, so rendering can never touch the
// engine's input document.
func toHTMLNode(n Node) *html.Node {
	switch t := n.(type) {
	case Text:
		return &html.Node{Type: html.TextNode, Data: string(t)}
	case *Element:
		if t == nil {
			return nil
		}
		root := newHTMLNode(t)
		type frame struct {
			src    *Element
			parent *html.Node
		}
		stack := []frame{{src: t, parent: root}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for _, c := range f.src.Children {
				switch ct := c.(type) {
				case Text:
					f.parent.AppendChild(&html.Node{Type: html.TextNode, Data: string(ct)})
				case *Element:
					child := newHTMLNode(ct)
					f.parent.AppendChild(child)
					stack = append(stack, frame{src: ct, parent: child})
				}
			}
		}
		return root
	}
	return nil
}

func newHTMLNode(e *Element) *html.Node {
	hn := &html.Node{Type: html.ElementNode, Data: e.Tag}
	if len(e.Attr) > 0 {
		keys := make([]string, 0, len(e.Attr))
		for k := range e.Attr {
			keys = append(keys, k)
		}
		// Attribute order is stable across renders.
		sort.Strings(keys)
		for _, k := range keys {
			hn.Attr = append(hn.Attr, html.Attribute{Key: k, Val: e.Attr[k]})
		}
	}
	return hn
}
