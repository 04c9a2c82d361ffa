package dq

import (
	"strings"

	"github.com/dqkit/dq/events"
)

// On registers fn for each space-delimited event name on every member,
// non-capturing. A nil handler or empty event string is a silent no-op.
// Listeners are not deduplicated: registering the same function twice
// registers two listeners.
func (c *Collection) On(evts string, fn events.Handler) *Collection {
	if fn == nil || evts == "" {
		return c
	}
	for _, name := range strings.Fields(evts) {
		for _, n := range c.nodes {
			events.Add(n, name, fn)
		}
	}
	return c
}

// Off unregisters fn for each space-delimited event name on every member,
// matching listeners by function identity. A nil handler or empty event
// string is a silent no-op.
func (c *Collection) Off(evts string, fn events.Handler) *Collection {
	if fn == nil || evts == "" {
		return c
	}
	for _, name := range strings.Fields(evts) {
		for _, n := range c.nodes {
			events.Remove(n, name, fn)
		}
	}
	return c
}

// Trigger dispatches a bubbling event of the named type from every member.
func (c *Collection) Trigger(typ string) *Collection {
	for _, n := range c.nodes {
		events.Trigger(n, typ, nil)
	}
	return c
}
