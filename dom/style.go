package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// declaration is a single inline style property/value pair.
type declaration struct {
	prop, val string
}

func parseDeclarations(s string) []declaration {
	var out []declaration
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		out = append(out, declaration{
			prop: strings.TrimSpace(prop),
			val:  strings.TrimSpace(val),
		})
	}
	return out
}

func writeDeclarations(n *html.Node, decls []declaration) {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.prop+": "+d.val)
	}
	SetAttr(n, "style", strings.Join(parts, "; "))
}

// Style returns the inline value of a single style property. Property names
// are matched as given.
func Style(n *html.Node, prop string) (string, bool) {
	s, ok := GetAttr(n, "style")
	if !ok {
		return "", false
	}
	for _, d := range parseDeclarations(s) {
		if d.prop == prop {
			return d.val, true
		}
	}
	return "", false
}

// SetStyle sets a single inline style property, replacing an existing
// declaration in place so declaration order is stable.
func SetStyle(n *html.Node, prop, value string) {
	s, _ := GetAttr(n, "style")
	decls := parseDeclarations(s)
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].val = value
			writeDeclarations(n, decls)
			return
		}
	}
	writeDeclarations(n, append(decls, declaration{prop: prop, val: value}))
}

// Styles returns all inline declarations of n as a map.
func Styles(n *html.Node) map[string]string {
	s, ok := GetAttr(n, "style")
	if !ok {
		return nil
	}
	decls := parseDeclarations(s)
	out := make(map[string]string, len(decls))
	for _, d := range decls {
		out[d.prop] = d.val
	}
	return out
}

// Hyphenate converts a camelCase property name to its hyphenated CSS form,
// e.g. "backgroundColor" to "background-color". Callers holding camelCase
// names apply it themselves; Style and SetStyle consume names as given.
func Hyphenate(prop string) string {
	var b strings.Builder
	for _, r := range prop {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
