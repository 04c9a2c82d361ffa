// Package events is the event boundary of the library: an identity-keyed
// listener registry plus synchronous dispatch with bubbling. There is no
// host browser to deliver events, so dispatch lives here; anything feeding
// events into the process (a test, the demo's websocket session) constructs
// an Event and dispatches it.
package events

import (
	"time"

	"golang.org/x/net/html"
)

// Event carries one dispatched occurrence through the tree.
// https://dom.spec.whatwg.org/#interface-event
type Event struct {
	Type          string
	Target        *html.Node
	CurrentTarget *html.Node
	Bubbles       bool
	Cancelable    bool
	Detail        map[string]any
	TimeStamp     time.Time

	stopped          bool
	defaultPrevented bool
}

// StopPropagation halts bubbling after the current target's listeners run.
func (e *Event) StopPropagation() { e.stopped = true }

// PreventDefault flags a cancelable event as prevented.
func (e *Event) PreventDefault() {
	if e.Cancelable {
		e.defaultPrevented = true
	}
}

// DefaultPrevented reports whether PreventDefault took effect.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Int reads a numeric detail field, tolerating the float64 shape JSON
// decoding produces.
func (e *Event) Int(key string) int {
	switch v := e.Detail[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}
