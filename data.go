package dq

import "golang.org/x/net/html"

// records is the private data store: a process-wide side table keyed by
// node identity, so entries never show up as attributes and vanish with
// their node. An entry exists only once a data access touched the node;
// Remove purges it.
var records = make(map[*html.Node]map[string]any)

// record returns the single member's data record, creating it lazily. The
// exactly-one rule of the get modes lives here.
func (c *Collection) record() (map[string]any, bool) {
	if len(c.nodes) != 1 {
		return nil, false
	}
	n := c.nodes[0]
	rec, ok := records[n]
	if !ok {
		rec = make(map[string]any)
		records[n] = rec
	}
	return rec, true
}

// Data returns the keyed value from the single member's data record. The
// second return is false when the collection does not hold exactly one
// member or the key is absent.
func (c *Collection) Data(key string) (any, bool) {
	rec, ok := c.record()
	if !ok {
		return nil, false
	}
	v, ok := rec[key]
	return v, ok
}

// DataRecord returns the single member's whole data record, creating it
// lazily.
func (c *Collection) DataRecord() (map[string]any, bool) {
	return c.record()
}

// SetData assigns key on every member's record, whatever the collection
// size, by routing each member through a single-member wrap's record fetch.
func (c *Collection) SetData(key string, value any) *Collection {
	for _, n := range c.nodes {
		rec, ok := New(n).record()
		if !ok {
			continue
		}
		rec[key] = value
	}
	return c
}

func purgeData(n *html.Node) {
	delete(records, n)
}
