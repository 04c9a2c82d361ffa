package dq

import (
	"strings"

	"github.com/dqkit/dq/dom"
)

// AddClass adds each space-delimited class name to every member's class
// set. Whitespace-only input yields an empty token list and is a no-op.
func (c *Collection) AddClass(classes string) *Collection {
	names := strings.Fields(classes)
	if len(names) == 0 {
		return c
	}
	for _, n := range c.nodes {
		if dom.IsElement(n) {
			dom.Classes(n).Add(names...)
		}
	}
	return c
}

// RemoveClass removes each space-delimited class name from every member.
func (c *Collection) RemoveClass(classes string) *Collection {
	names := strings.Fields(classes)
	if len(names) == 0 {
		return c
	}
	for _, n := range c.nodes {
		if dom.IsElement(n) {
			dom.Classes(n).Remove(names...)
		}
	}
	return c
}

// Css sets one inline style declaration on every member. Property names are
// consumed as given; callers holding camelCase names apply dom.Hyphenate
// themselves.
func (c *Collection) Css(rule, value string) *Collection {
	for _, n := range c.nodes {
		if dom.IsElement(n) {
			dom.SetStyle(n, rule, value)
		}
	}
	return c
}

// CssMap sets every declaration in rules, routing through Css once per key.
func (c *Collection) CssMap(rules map[string]string) *Collection {
	for rule, value := range rules {
		c.Css(rule, value)
	}
	return c
}

// Attr returns the named attribute of the collection's single member. When
// the collection does not hold exactly one member there is nothing
// unambiguous to report and the second return is false.
func (c *Collection) Attr(key string) (string, bool) {
	if len(c.nodes) != 1 {
		return "", false
	}
	return dom.GetAttr(c.nodes[0], key)
}

// SetAttr sets the named attribute on every member.
func (c *Collection) SetAttr(key, value string) *Collection {
	for _, n := range c.nodes {
		if dom.IsElement(n) {
			dom.SetAttr(n, key, value)
		}
	}
	return c
}
