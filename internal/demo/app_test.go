package demo

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dqkit/dq"
	"github.com/dqkit/dq/dom"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	app, err := NewApp("", 150*time.Millisecond, testLogger())
	require.NoError(t, err)
	return app
}

func TestAppLoadsEmbeddedPage(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, 2, dq.New(".box").Len())
	assert.Contains(t, app.Render(), `id="stage"`)
	assert.True(t, strings.HasPrefix(app.RenderStage(), `<div id="stage"`))
}

func TestAppMissingPageFile(t *testing.T) {
	_, err := NewApp("testdata/nope.html", 0, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open page")
}

func TestDragMovesBox(t *testing.T) {
	app := newTestApp(t)

	// box-1 starts at left 20, top 20; grab it at (30, 30).
	app.HandleEvent(ClientEvent{Type: "pointerdown", Target: "#box-1", X: 30, Y: 30})
	assert.Contains(t, app.RenderStage(), "dragging")

	app.HandleEvent(ClientEvent{Type: "pointermove", X: 100, Y: 80})
	box := dq.New("#box-1").Get(0)
	left, _ := dom.Style(box, "left")
	top, _ := dom.Style(box, "top")
	assert.Equal(t, "90px", left)
	assert.Equal(t, "70px", top)

	app.HandleEvent(ClientEvent{Type: "pointerup"})
	assert.NotContains(t, app.RenderStage(), "dragging")
}

func TestPointerMoveWithoutDragIsNoop(t *testing.T) {
	app := newTestApp(t)

	before := app.RenderStage()
	app.HandleEvent(ClientEvent{Type: "pointermove", X: 500, Y: 500})
	assert.Equal(t, before, app.RenderStage())
}

func TestDblClickSpawnsExpiringCopy(t *testing.T) {
	app := newTestApp(t)

	app.HandleEvent(ClientEvent{Type: "dblclick", Target: "#box-2"})

	stage := app.RenderStage()
	assert.Contains(t, stage, "copy-")
	// The copy is offset from its source.
	assert.Contains(t, stage, "left: 156px")

	assert.Eventually(t, func() bool {
		return !strings.Contains(app.RenderStage(), "copy-")
	}, time.Second, 10*time.Millisecond)
}

func TestCopyIsDraggable(t *testing.T) {
	app := newTestApp(t)

	app.HandleEvent(ClientEvent{Type: "dblclick", Target: "#box-1"})
	id, ok := dq.New(".copy").Attr("id")
	require.True(t, ok)

	app.HandleEvent(ClientEvent{Type: "pointerdown", Target: "#" + id, X: 40, Y: 40})
	app.HandleEvent(ClientEvent{Type: "pointermove", X: 240, Y: 240})
	left, _ := dom.Style(dq.New("#"+id).Get(0), "left")
	assert.Equal(t, "236px", left)
}

func TestUnknownTargetFallsBackToDocument(t *testing.T) {
	app := newTestApp(t)

	before := app.RenderStage()
	app.HandleEvent(ClientEvent{Type: "pointerdown", Target: "#missing", X: 1, Y: 1})
	// The document has no pointerdown handler, so nothing changes.
	assert.Equal(t, before, app.RenderStage())
}
