// Package dq is a small jQuery-style convenience layer over an in-process
// HTML document tree. A Collection is an ordered sequence of element
// handles built from a CSS selector, a node, a slice of nodes or another
// collection; every operation mutates the members in place and returns a
// collection so calls chain. A private identity-keyed data store associates
// side-channel records with individual elements without touching their
// visible attributes.
//
// The package operates on a single document tree and, like the tree itself,
// is not safe for concurrent use.
package dq

import (
	"golang.org/x/net/html"

	"github.com/dqkit/dq/dom"
)

// document is the whole-document collection, the default scope string
// selectors resolve against. Set once at process start.
var document *Collection

// SetDocument installs root as the process-wide document.
func SetDocument(root *html.Node) {
	document = &Collection{Selector: root, nodes: []*html.Node{root}}
}

// Document returns the whole-document collection. It panics when no
// document has been set.
func Document() *Collection {
	if document == nil {
		panic("dq: document has not been set")
	}
	return document
}

// Collection is an ordered, mutable sequence of element handles. Members
// are always elements or the document itself; insertion order is preserved
// and duplicates are kept.
type Collection struct {
	// Selector is whatever value the collection was constructed from.
	Selector any
	// Scope is the collection a string selector was resolved against.
	Scope *Collection

	nodes []*html.Node
}

// New builds a collection from selector. A *Collection passes through
// unchanged. A string is resolved with CSS selector semantics against the
// given scope, defaulting to the whole-document collection. Nodes, slices
// of nodes and slices of arbitrary values are added directly; anything else
// is dropped without error.
func New(selector any, scope ...*Collection) *Collection {
	if c, ok := selector.(*Collection); ok {
		return c
	}
	c := &Collection{Selector: selector}
	if s, ok := selector.(string); ok {
		sc := Document()
		if len(scope) > 0 && scope[0] != nil {
			sc = scope[0]
		}
		c.Scope = sc
		sel := dom.Compile(s)
		for _, m := range sc.nodes {
			for _, match := range dom.Match(m, sel) {
				c.Add(match)
			}
		}
		return c
	}
	return c.Add(selector)
}

// Add appends v to the collection. Element and document handles are
// appended as-is, slices and collections are added member by member, and
// every other value is silently dropped.
func (c *Collection) Add(v any) *Collection {
	switch item := v.(type) {
	case *html.Node:
		if dom.IsUsable(item) {
			c.nodes = append(c.nodes, item)
		}
	case []*html.Node:
		for _, n := range item {
			c.Add(n)
		}
	case []any:
		for _, n := range item {
			c.Add(n)
		}
	case *Collection:
		if item != nil {
			for _, n := range item.nodes {
				c.Add(n)
			}
		}
	}
	return c
}

// Len returns the number of members.
func (c *Collection) Len() int { return len(c.nodes) }

// Get returns the member at index, or nil when index is out of bounds. The
// upper bound is exactly index >= Len().
func (c *Collection) Get(index int) *html.Node {
	if index < 0 || index >= len(c.nodes) {
		return nil
	}
	return c.nodes[index]
}

// Each invokes fn once per member with the member and its position. There
// is no early exit.
func (c *Collection) Each(fn func(n *html.Node, i int)) *Collection {
	for i, n := range c.nodes {
		fn(n, i)
	}
	return c
}

// Find runs a scoped query on every member and merges all matches into a
// fresh collection. Results are not deduplicated across members.
func (c *Collection) Find(selector string) *Collection {
	out := &Collection{Selector: selector, Scope: c}
	sel := dom.Compile(selector)
	for _, n := range c.nodes {
		out.Add(dom.Match(n, sel))
	}
	return out
}
