package dq

import (
	"golang.org/x/net/html"

	"github.com/dqkit/dq/dom"
	"github.com/dqkit/dq/events"
)

// Detach unlinks every member from its parent without deleting the element
// or its data record, so the members can be reattached elsewhere.
func (c *Collection) Detach() *Collection {
	for _, n := range c.nodes {
		dom.Detach(n)
	}
	return c
}

// Clone deep-clones every member into a new collection. Clones are new
// identities, so they inherit neither data records nor listeners.
func (c *Collection) Clone() *Collection {
	out := &Collection{Selector: c.Selector, Scope: c.Scope}
	for _, n := range c.nodes {
		out.Add(dom.CloneNode(n, true))
	}
	return out
}

// Append inserts content into the collection's members. Markup text is
// parsed once and a clone of the parsed nodes is appended to every member,
// so each member gets its own independent copy. Anything else is wrapped
// with New and its members are moved into only the first member. The
// asymmetry between the two branches is deliberate; see DESIGN.md.
func (c *Collection) Append(content any) *Collection {
	switch v := content.(type) {
	case string:
		nodes, err := dom.ParseFragment(v)
		if err != nil {
			return c
		}
		for _, m := range c.nodes {
			for _, n := range nodes {
				m.AppendChild(dom.CloneNode(n, true))
			}
		}
	default:
		if len(c.nodes) == 0 {
			return c
		}
		first := c.nodes[0]
		for _, n := range New(v).nodes {
			dom.Detach(n)
			first.AppendChild(n)
		}
	}
	return c
}

// Remove deletes every member from the document. Descendant elements are
// fully removed first, depth-first, then each member's data record and
// listeners are purged and the node is unlinked. The collection is
// truncated to length zero afterwards.
func (c *Collection) Remove() *Collection {
	for _, n := range c.nodes {
		removeTree(n)
	}
	c.nodes = c.nodes[:0]
	return c
}

func removeTree(n *html.Node) {
	for _, child := range dom.ElementChildren(n) {
		removeTree(child)
	}
	purgeData(n)
	events.Release(n)
	dom.Detach(n)
}
