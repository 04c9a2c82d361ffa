package dom

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseDocument parses a complete HTML document and returns its document
// node.
func ParseDocument(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse document")
	}
	return doc, nil
}

// ParseFragment parses markup into nodes using a div parsing context. The
// returned nodes are detached from the transient parse container before
// being handed back, so they can be appended anywhere.
func ParseFragment(markup string) ([]*html.Node, error) {
	ctx := &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "parse fragment %q", markup)
	}
	for _, n := range nodes {
		Detach(n)
	}
	return nodes, nil
}

// Render serializes n, descendants included. Serialization failures produce
// an empty string; the node kinds a collection holds always serialize.
func Render(n *html.Node) string {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return ""
	}
	return b.String()
}
