// Package demo wires the draggable-boxes demo page. The page lives as an
// in-process document; browsers are thin clients that forward pointer
// events over a websocket and repaint from the HTML the server sends back.
package demo

import (
	_ "embed"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html"

	"github.com/dqkit/dq"
	"github.com/dqkit/dq/dom"
	"github.com/dqkit/dq/events"
)

//go:embed page.html
var defaultPage string

const defaultCopyTTL = 5 * time.Second

// App owns the demo document and its interaction handlers. The document
// tree and the dq side tables are not goroutine safe, so every entry point
// serializes on mu.
type App struct {
	mu       sync.Mutex
	log      *logrus.Logger
	pagePath string
	copyTTL  time.Duration
	root     *html.Node
}

// NewApp loads the page at pagePath, or the embedded demo page when the
// path is empty, and wires its draggable elements. Clones spawned by
// double-click are removed after copyTTL; zero means the default five
// seconds.
func NewApp(pagePath string, copyTTL time.Duration, log *logrus.Logger) (*App, error) {
	if copyTTL <= 0 {
		copyTTL = defaultCopyTTL
	}
	a := &App{log: log, pagePath: pagePath, copyTTL: copyTTL}
	if err := a.load(); err != nil {
		return nil, err
	}
	return a, nil
}

// load parses the page, installs it as the process document and wires the
// handlers. Callers after construction hold mu.
func (a *App) load() error {
	var r io.Reader = strings.NewReader(defaultPage)
	if a.pagePath != "" {
		f, err := os.Open(a.pagePath)
		if err != nil {
			return errors.Wrap(err, "open page")
		}
		defer f.Close()
		r = f
	}
	root, err := dom.ParseDocument(r)
	if err != nil {
		return err
	}
	a.root = root
	dq.SetDocument(root)
	a.wire()
	return nil
}

func (a *App) wire() {
	doc := dq.Document()
	doc.On("pointermove", a.onPointerMove)
	doc.On("pointerup", a.onPointerUp)
	dq.New(".box").Each(func(n *html.Node, i int) {
		a.wireBox(dq.New(n))
	})
}

func (a *App) wireBox(box *dq.Collection) {
	box.On("pointerdown", a.onPointerDown).On("dblclick", a.onDblClick)
}

func (a *App) onPointerDown(e *events.Event) {
	t := dq.New(e.Target)
	t.AddClass("dragging")
	t.SetData("grabX", e.Int("x")-styleInt(t, "left"))
	t.SetData("grabY", e.Int("y")-styleInt(t, "top"))
}

func (a *App) onPointerMove(e *events.Event) {
	drag := dq.New(".dragging")
	if drag.Len() != 1 {
		return
	}
	drag.CssMap(map[string]string{
		"left": px(e.Int("x") - dataInt(drag, "grabX")),
		"top":  px(e.Int("y") - dataInt(drag, "grabY")),
	})
}

func (a *App) onPointerUp(e *events.Event) {
	dq.New(".dragging").RemoveClass("dragging")
}

// onDblClick spawns a short-lived copy of the clicked box. The removal
// timer has no cancellation handle; firing after the copy is already gone
// is a benign no-op.
func (a *App) onDblClick(e *events.Event) {
	dup := dq.New(e.Target).Clone()
	dup.RemoveClass("dragging").AddClass("copy")
	dup.SetAttr("id", "copy-"+uuid.NewString()[:8])
	dup.Css("left", px(styleInt(dup, "left")+16))
	dup.Css("top", px(styleInt(dup, "top")+16))
	dq.New("#stage").Append(dup)
	a.wireBox(dup)

	n := dup.Get(0)
	a.log.WithField("id", mustAttr(dup, "id")).Debug("copy spawned")
	time.AfterFunc(a.copyTTL, func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		dq.New(n).Remove()
	})
}

// HandleEvent resolves the client's target selector and dispatches the
// event into the document. Unknown or empty targets fall back to the
// document itself, which still reaches the handlers bound there.
func (a *App) HandleEvent(ev ClientEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()
	target := a.root
	if ev.Target != "" {
		if n := dq.New(ev.Target).Get(0); n != nil {
			target = n
		}
	}
	events.Dispatch(&events.Event{
		Type:    ev.Type,
		Target:  target,
		Bubbles: true,
		Detail:  map[string]any{"x": ev.X, "y": ev.Y},
	})
}

// Render serializes the whole document.
func (a *App) Render() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return dom.Render(a.root)
}

// RenderStage serializes just the #stage subtree, the part the client
// repaints after every event.
func (a *App) RenderStage() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := dq.New("#stage").Get(0)
	if n == nil {
		return ""
	}
	return dom.Render(n)
}

func styleInt(c *dq.Collection, prop string) int {
	n := c.Get(0)
	if n == nil {
		return 0
	}
	v, ok := dom.Style(n, prop)
	if !ok {
		return 0
	}
	i, _ := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(v, "px")))
	return i
}

func dataInt(c *dq.Collection, key string) int {
	v, ok := c.Data(key)
	if !ok {
		return 0
	}
	i, _ := v.(int)
	return i
}

func mustAttr(c *dq.Collection, key string) string {
	v, _ := c.Attr(key)
	return v
}

func px(i int) string {
	return strconv.Itoa(i) + "px"
}
