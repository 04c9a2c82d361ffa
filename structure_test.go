package dq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/dqkit/dq/dom"
)

func TestDetachKeepsNodeAndData(t *testing.T) {
	loadPage(t)

	box := New("#box-1")
	box.SetData("x", 1)
	el := box.Get(0)
	require.NotNil(t, el.Parent)

	box.Detach()
	assert.Nil(t, el.Parent)
	assert.Equal(t, 1, box.Len())
	v, ok := New(el).Data("x")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// Detached members can be reattached elsewhere.
	New("#box-2").Append(box)
	assert.NotNil(t, el.Parent)
}

func TestCloneIsDeepAndIndependent(t *testing.T) {
	loadPage(t)

	box := New("#box-2")
	box.SetData("x", 1)
	clone := box.Clone()

	require.Equal(t, 1, clone.Len())
	cl := clone.Get(0)
	assert.NotSame(t, box.Get(0), cl)
	// Descendants came along.
	assert.Equal(t, 1, New(".tag", clone).Len())
	// Fresh identity: no inherited data record.
	_, ok := New(cl).Data("x")
	assert.False(t, ok)
	// Mutating the clone leaves the original alone.
	New(cl).AddClass("copy")
	assert.False(t, dom.Classes(box.Get(0)).Has("copy"))
}

func TestAppendMarkupBroadcastsClones(t *testing.T) {
	loadPage(t)

	boxes := New(".box")
	boxes.Append(`<span class="mark">x</span>`)

	marks := boxes.Find(".mark")
	require.Equal(t, 2, marks.Len())
	assert.NotSame(t, marks.Get(0), marks.Get(1))

	// Each member got its own copy: mutating one does not affect the other.
	marks.Get(0).FirstChild.Data = "changed"
	assert.Equal(t, "changed", dom.TextContent(marks.Get(0)))
	assert.Equal(t, "x", dom.TextContent(marks.Get(1)))
}

func TestAppendNodeTargetsOnlyFirstMember(t *testing.T) {
	loadPage(t)

	extra := dom.CloneNode(New("#box-1").Get(0), true)
	dom.RemoveAttr(extra, "id")
	dom.SetAttr(extra, "class", "extra")

	boxes := New(".box")
	boxes.Append(extra)

	assert.Same(t, boxes.Get(0), extra.Parent)
	assert.Equal(t, 1, New("#box-1").Find(".extra").Len())
	assert.Equal(t, 0, New("#box-2").Find(".extra").Len())
}

func TestAppendCollectionMovesMembers(t *testing.T) {
	loadPage(t)

	tag := New(".tag")
	el := tag.Get(0)
	New("#box-1").Append(tag)

	assert.Same(t, New("#box-1").Get(0), el.Parent)
	assert.Equal(t, 0, New("#box-2").Find(".tag").Len())
}

func TestAppendToEmptyCollection(t *testing.T) {
	loadPage(t)

	empty := &Collection{}
	empty.Append("<i>x</i>")
	empty.Append(New("#box-1"))
	assert.Equal(t, 0, empty.Len())
}

func TestRemoveFullScenario(t *testing.T) {
	root := loadPage(t)

	box := New("#box-2")
	box.Append("<b>deep</b>") // second descendant next to the span
	el := box.Get(0)
	span := box.Find(".tag").Get(0)
	b := box.Find("b").Get(0)
	box.SetData("x", 1)
	New(span).SetData("y", 2)
	New(b).SetData("z", 3)

	box.Remove()

	assert.Equal(t, 0, box.Len())
	assert.Nil(t, el.Parent)
	assert.Nil(t, span.Parent)
	assert.Nil(t, b.Parent)
	assert.Equal(t, 1, New(".box").Len())
	_, inDoc := findNode(root, el)
	assert.False(t, inDoc)

	// None of the three retains a private-data entry.
	for _, n := range []*html.Node{el, span, b} {
		_, ok := records[n]
		assert.False(t, ok)
	}
}

func findNode(root, target *html.Node) (*html.Node, bool) {
	if root == target {
		return root, true
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n, ok := findNode(c, target); ok {
			return n, true
		}
	}
	return nil, false
}
