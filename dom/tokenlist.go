package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// TokenList is a live view of a space-delimited attribute value, the shape
// the class attribute takes.
// https://dom.spec.whatwg.org/#interface-domtokenlist
type TokenList struct {
	owner *html.Node
	attr  string
}

// Classes returns the token list backed by n's class attribute.
func Classes(n *html.Node) *TokenList {
	return &TokenList{owner: n, attr: "class"}
}

func (t *TokenList) tokens() []string {
	v, _ := GetAttr(t.owner, t.attr)
	return strings.Fields(v)
}

// Has reports whether token is present.
func (t *TokenList) Has(token string) bool {
	for _, tok := range t.tokens() {
		if tok == token {
			return true
		}
	}
	return false
}

// Add appends each token not already present.
func (t *TokenList) Add(tokens ...string) {
	cur := t.tokens()
	for _, token := range tokens {
		found := false
		for _, tok := range cur {
			if tok == token {
				found = true
				break
			}
		}
		if !found {
			cur = append(cur, token)
		}
	}
	t.write(cur)
}

// Remove drops every occurrence of each token.
func (t *TokenList) Remove(tokens ...string) {
	cur := t.tokens()
	kept := cur[:0]
	for _, tok := range cur {
		drop := false
		for _, token := range tokens {
			if tok == token {
				drop = true
				break
			}
		}
		if !drop {
			kept = append(kept, tok)
		}
	}
	t.write(kept)
}

func (t *TokenList) write(tokens []string) {
	SetAttr(t.owner, t.attr, strings.Join(tokens, " "))
}

func (t *TokenList) String() string {
	v, _ := GetAttr(t.owner, t.attr)
	return v
}
