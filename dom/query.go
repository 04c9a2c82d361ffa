package dom

import (
	"github.com/andybalholm/cascadia"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
)

// Compile compiles a CSS selector. Malformed selector syntax panics, the
// same way the query engine throws in a browser; every other failure in
// this package degrades silently.
func Compile(selector string) cascadia.Selector {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		panic(errors.Wrapf(err, "dom: compile selector %q", selector))
	}
	return sel
}

// Match runs a compiled selector scoped to n. The context node itself is
// never part of the result, matching querySelectorAll semantics.
func Match(n *html.Node, sel cascadia.Selector) []*html.Node {
	matches := sel.MatchAll(n)
	out := make([]*html.Node, 0, len(matches))
	for _, m := range matches {
		if m != n {
			out = append(out, m)
		}
	}
	return out
}

// QueryAll compiles selector and matches it scoped to n.
func QueryAll(n *html.Node, selector string) []*html.Node {
	return Match(n, Compile(selector))
}
