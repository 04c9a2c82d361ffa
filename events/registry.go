package events

import (
	"reflect"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

// Handler consumes one dispatched event.
type Handler func(*Event)

type listener struct {
	fn Handler
	id uintptr
}

// Registry associates listeners with nodes by identity. Like the node tree
// it serves, a Registry is not safe for concurrent use.
type Registry struct {
	listeners map[*html.Node]map[string][]listener
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{listeners: make(map[*html.Node]map[string][]listener)}
}

func funcID(fn Handler) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

// Add registers fn for the named event type on n. Registering the same
// function twice registers two listeners.
func (r *Registry) Add(n *html.Node, typ string, fn Handler) {
	if n == nil || typ == "" || fn == nil {
		return
	}
	byType, ok := r.listeners[n]
	if !ok {
		byType = make(map[string][]listener)
		r.listeners[n] = byType
	}
	byType[typ] = append(byType[typ], listener{fn: fn, id: funcID(fn)})
}

// Remove unregisters every listener on n for the named type whose function
// identity matches fn.
func (r *Registry) Remove(n *html.Node, typ string, fn Handler) {
	if n == nil || typ == "" || fn == nil {
		return
	}
	byType, ok := r.listeners[n]
	if !ok {
		return
	}
	id := funcID(fn)
	cur := byType[typ]
	kept := cur[:0]
	for _, l := range cur {
		if l.id != id {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		delete(byType, typ)
		if len(byType) == 0 {
			delete(r.listeners, n)
		}
		return
	}
	byType[typ] = kept
}

// Release drops every listener registered on n. Callers removing a node
// from the tree call this so the registry never outlives the node.
func (r *Registry) Release(n *html.Node) {
	delete(r.listeners, n)
}

// Dispatch delivers e to its target's listeners, then walks parent links
// while the event bubbles and propagation has not been stopped. Listeners
// run in registration order.
func (r *Registry) Dispatch(e *Event) {
	if e == nil || e.Target == nil || e.Type == "" {
		return
	}
	if e.TimeStamp.IsZero() {
		e.TimeStamp = time.Now()
	}
	logrus.WithFields(logrus.Fields{"type": e.Type}).Debug("dispatch")
	for cur := e.Target; cur != nil; cur = cur.Parent {
		e.CurrentTarget = cur
		// Snapshot so a listener may add or remove listeners mid-flight.
		queue := append([]listener(nil), r.listeners[cur][e.Type]...)
		for _, l := range queue {
			l.fn(e)
		}
		if e.stopped || !e.Bubbles {
			break
		}
	}
	e.CurrentTarget = nil
}

// Trigger dispatches a fresh bubbling event of the named type at n and
// returns it.
func (r *Registry) Trigger(n *html.Node, typ string, detail map[string]any) *Event {
	e := &Event{Type: typ, Target: n, Bubbles: true, Detail: detail}
	r.Dispatch(e)
	return e
}

// std is the process-wide registry backing the package-level functions, the
// way a page has one shared event plumbing.
var std = NewRegistry()

// Add registers fn on the standard registry.
func Add(n *html.Node, typ string, fn Handler) { std.Add(n, typ, fn) }

// Remove unregisters fn from the standard registry.
func Remove(n *html.Node, typ string, fn Handler) { std.Remove(n, typ, fn) }

// Release drops all of n's listeners from the standard registry.
func Release(n *html.Node) { std.Release(n) }

// Dispatch delivers e through the standard registry.
func Dispatch(e *Event) { std.Dispatch(e) }

// Trigger dispatches a bubbling event through the standard registry.
func Trigger(n *html.Node, typ string, detail map[string]any) *Event {
	return std.Trigger(n, typ, detail)
}
