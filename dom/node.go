// Package dom provides the immutable document tree consumed by the content
// extraction engine. Trees are built once by the parser adapter and never
// modified afterwards: the engine reads and re-selects nodes, it does not
// edit attributes or reparent children. Nodes carry no parent pointers, so
// a tree can never form a cycle.
package dom

import "strings"

// Node is either a Text node or an *Element node.
type Node interface {
	node()
}

// Text is a plain text node.
type Text string

func (Text) node() {}

// Element is an element node with a lowercased tag name, an attribute map
// and an ordered list of children.
type Element struct {
	Tag      string
	Attr     map[string]string
	Children []Node
}

func (*Element) node() {}

// GetAttr returns the value of the named attribute, or "" when absent.
func (e *Element) GetAttr(name string) string {
	if e == nil || e.Attr == nil {
		return ""
	}
	return e.Attr[name]
}

// HasAttr reports whether the named attribute is present, even when empty.
func (e *Element) HasAttr(name string) bool {
	if e == nil || e.Attr == nil {
		return false
	}
	_, ok := e.Attr[name]
	return ok
}

// ChildElements returns the direct element children of e in document order.
func (e *Element) ChildElements() []*Element {
	if e == nil {
		return nil
	}
	var out []*Element
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// FindChild returns the first direct child of e with the given tag, or nil.
func FindChild(e *Element, tag string) *Element {
	if e == nil {
		return nil
	}
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.Tag == tag {
			return el
		}
	}
	return nil
}

// FindDeep returns the first descendant of root with the given tag in
// document order, or nil. The root itself is not considered.
//
// Traversal uses an explicit work stack rather than recursion so that
// pathologically nested documents cannot overflow the goroutine stack.
func FindDeep(root *Element, tag string) *Element {
	if root == nil {
		return nil
	}
	stack := make([]Node, 0, len(root.Children))
	pushReversed(&stack, root.Children)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		el, ok := n.(*Element)
		if !ok {
			continue
		}
		if el.Tag == tag {
			return el
		}
		pushReversed(&stack, el.Children)
	}
	return nil
}

// FindAll returns every descendant of root whose tag is one of tags, in
// document order. The root itself is not considered.
func FindAll(root *Element, tags ...string) []*Element {
	if root == nil || len(tags) == 0 {
		return nil
	}
	want := make(map[string]bool, len(tags))
	for _, t := range tags {
		want[t] = true
	}
	var out []*Element
	stack := make([]Node, 0, len(root.Children))
	pushReversed(&stack, root.Children)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		el, ok := n.(*Element)
		if !ok {
			continue
		}
		if want[el.Tag] {
			out = append(out, el)
		}
		pushReversed(&stack, el.Children)
	}
	return out
}

// WalkElements visits root and every descendant element in document order.
// Returning false from fn prunes the subtree below the visited element.
func WalkElements(root *Element, fn func(*Element) bool) {
	if root == nil {
		return
	}
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		el, ok := n.(*Element)
		if !ok {
			continue
		}
		if !fn(el) {
			continue
		}
		pushReversed(&stack, el.Children)
	}
}

// nonTextTags are elements whose text content never counts as document
// text: script bodies, style sheets and inert templates.
var nonTextTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// InnerText returns the concatenated text of n and its descendants,
// skipping script, style, noscript and template subtrees. With normalize
// set, the text is NFKC-normalized, control characters are stripped and
// whitespace runs collapse to single spaces; otherwise it is only trimmed.
func InnerText(n Node, normalize bool) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	stack := []Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := cur.(type) {
		case Text:
			b.WriteString(string(t))
		case *Element:
			if nonTextTags[t.Tag] {
				continue
			}
			pushReversed(&stack, t.Children)
		}
	}
	if normalize {
		return NormalizeText(b.String())
	}
	return strings.TrimSpace(b.String())
}

func pushReversed(stack *[]Node, children []Node) {
	for i := len(children) - 1; i >= 0; i-- {
		*stack = append(*stack, children[i])
	}
}
