// Package dom provides node-level helpers over the golang.org/x/net/html
// node tree: predicates, cloning, detachment, attribute access, class token
// lists, inline style access, fragment parsing and selector matching. It is
// the layer the dq collection type is built on.
package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// IsElement reports whether n is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// IsUsable reports whether n is an element or the document itself, the only
// node kinds a collection may hold.
func IsUsable(n *html.Node) bool {
	return n != nil && (n.Type == html.ElementNode || n.Type == html.DocumentNode)
}

// Detach unlinks n from its parent. A node with no parent is left alone.
func Detach(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// CloneNode copies n. With deep set, descendants are cloned recursively.
// The clone is always parentless, whatever n was attached to.
// https://dom.spec.whatwg.org/#concept-node-clone
func CloneNode(n *html.Node, deep bool) *html.Node {
	clone := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		clone.Attr = make([]html.Attribute, len(n.Attr))
		copy(clone.Attr, n.Attr)
	}
	if deep {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			clone.AppendChild(CloneNode(c, true))
		}
	}
	return clone
}

// ElementChildren returns the element children of n in document order.
func ElementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// TextContent concatenates the text descendants of n in document order.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// GetAttr returns the value of the named attribute. Names are matched as
// given; no case normalization is applied at this layer.
func GetAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing an existing value in place so
// attribute order is stable.
func SetAttr(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttr drops the named attribute if present.
func RemoveAttr(n *html.Node, key string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}
