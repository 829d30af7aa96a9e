package dom

import (
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Parse reads an HTML document and builds the immutable tree rooted at the
// <html> element. The underlying parser inserts html, head and body
// elements when the markup omits them, so a successful parse always yields
// a root.
func Parse(r io.Reader) (*Element, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	root := doc.Find("html").First()
	if root.Length() == 0 {
		// Unreachable with the html5 parser, but keep a defined value.
		return &Element{Tag: "html"}, nil
	}
	return fromHTMLNode(root.Get(0)), nil
}

// ParseString builds the immutable tree from an HTML string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// ParseFile builds the immutable tree from an HTML file on disk.
func ParseFile(path string) (*Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// fromHTMLNode converts a parsed x/net/html element into an immutable
// Element. Comments and doctypes are dropped; tags are lowercased; on
// duplicate attributes the first occurrence wins, matching browser
// behavior.
func fromHTMLNode(src *html.Node) *Element {
	if src == nil || src.Type != html.ElementNode {
		return nil
	}
	root := newElement(src)
	type frame struct {
		src    *html.Node
		parent *Element
	}
	var stack []frame
	for c := src.LastChild; c != nil; c = c.PrevSibling {
		stack = append(stack, frame{src: c, parent: root})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch f.src.Type {
		case html.TextNode:
			f.parent.Children = append(f.parent.Children, Text(f.src.Data))
		case html.ElementNode:
			el := newElement(f.src)
			f.parent.Children = append(f.parent.Children, el)
			for c := f.src.LastChild; c != nil; c = c.PrevSibling {
				stack = append(stack, frame{src: c, parent: el})
			}
		}
	}
	return root
}

func newElement(src *html.Node) *Element {
	el := &Element{Tag: strings.ToLower(src.Data)}
	if len(src.Attr) > 0 {
		el.Attr = make(map[string]string, len(src.Attr))
		for _, a := range src.Attr {
			key := strings.ToLower(a.Key)
			if _, ok := el.Attr[key]; !ok {
				el.Attr[key] = a.Val
			}
		}
	}
	return el
}
