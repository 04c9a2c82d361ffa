package demo

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// ClientEvent is the JSON shape the page script sends for every pointer
// interaction. Target is a CSS selector, usually the id of the box under
// the pointer, or empty when the event hit the page background.
type ClientEvent struct {
	Type   string  `json:"type"`
	Target string  `json:"target"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
}

// Server exposes the demo app over HTTP: the rendered page on / and the
// event channel on /ws.
type Server struct {
	app      *App
	log      *logrus.Logger
	upgrader websocket.Upgrader
}

func NewServer(app *App, log *logrus.Logger) *Server {
	return &Server{
		app: app,
		log: log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	// A hostile target selector panics out of the query engine; keep that
	// from taking the process down with it.
	r.Use(middleware.Recoverer)
	r.Get("/", s.handleIndex)
	r.Get("/ws", s.handleSocket)
	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, s.app.Render())
}

func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	sess := &session{
		id:   uuid.NewString(),
		conn: conn,
		app:  s.app,
	}
	sess.log = s.log.WithField("session", sess.id)
	sess.readLoop()
}

// session is one connected browser tab: a read loop decoding client events,
// dispatching them into the document and writing the repainted stage back.
type session struct {
	id   string
	conn *websocket.Conn
	app  *App
	log  *logrus.Entry
}

func (s *session) readLoop() {
	defer s.conn.Close()
	s.log.Info("session opened")
	for {
		_, msg, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseNormalClosure,
				websocket.CloseAbnormalClosure) {
				s.log.WithError(err).Warn("read error")
			} else {
				s.log.Info("session closed")
			}
			return
		}

		var ev ClientEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			s.log.WithError(err).Debug("bad client event")
			continue
		}
		s.app.HandleEvent(ev)

		if err := s.conn.WriteMessage(websocket.TextMessage, []byte(s.app.RenderStage())); err != nil {
			s.log.WithError(err).Warn("write error")
			return
		}
	}
}
