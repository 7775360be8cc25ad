package site

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/ziadkadry99/docview/internal/nav"
	"github.com/ziadkadry99/docview/internal/render"
	"github.com/ziadkadry99/docview/internal/route"
)

// writeWait bounds a single websocket write. A client that stops reading
// fails its writes instead of holding the session.
const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Inbound message types.
const (
	msgRoute  = "route"
	msgLink   = "link"
	msgToggle = "toggle"
)

// Outbound message types.
const (
	msgSession  = "session"
	msgLoading  = "loading"
	msgActive   = "active"
	msgExpanded = "expanded"
	msgDocument = "document"
	msgError    = "error"
)

// clientMessage is the incoming WebSocket message format.
type clientMessage struct {
	Type    string `json:"type"`              // "route", "link" or "toggle"
	Hash    string `json:"hash,omitempty"`    // route
	Path    string `json:"path,omitempty"`    // link
	Section string `json:"section,omitempty"` // toggle
}

// serverMessage is the outgoing WebSocket message format.
type serverMessage struct {
	Type     string             `json:"type"`
	Session  string             `json:"session,omitempty"`
	Path     route.DocumentPath `json:"path,omitempty"`
	Sections []string           `json:"sections,omitempty"`
	Document *render.Document   `json:"document,omitempty"`
	Error    *nav.ErrorPanel    `json:"error,omitempty"`
	Message  string             `json:"message,omitempty"`
}

// session is one browser page's navigation state. It is the nav.Surface
// of its controller.
type session struct {
	id   string
	conn *websocket.Conn
	ctrl *nav.Controller
	log  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	writeMu sync.Mutex
}

func (s *session) send(msg serverMessage) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		s.log.Debug("websocket write", "error", err)
	}
}

func (s *session) ShowLoading(path route.DocumentPath) {
	s.send(serverMessage{Type: msgLoading, Path: path})
}

func (s *session) SetActive(path route.DocumentPath) {
	s.send(serverMessage{Type: msgActive, Path: path})
}

func (s *session) SetExpanded(sections []string) {
	if sections == nil {
		sections = []string{}
	}
	s.send(serverMessage{Type: msgExpanded, Sections: sections})
}

func (s *session) ShowDocument(doc *render.Document) {
	s.send(serverMessage{Type: msgDocument, Path: doc.Path, Document: doc})
}

func (s *session) ShowError(panel nav.ErrorPanel) {
	s.send(serverMessage{Type: msgError, Path: panel.Path, Error: &panel})
}

// current reports the document the session is showing.
func (s *session) current() (route.DocumentPath, bool) {
	st := s.ctrl.State()
	return st.Current, st.HasCurrent
}

// reload re-fetches the session's current document. It is a no-op once the
// session has started closing.
func (s *session) reload() {
	s.ctrl.Reload(s.ctx)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	sess := &session{
		id:   uuid.New().String(),
		conn: conn,
	}
	sess.log = s.log.With("session", sess.id)
	sess.ctx, sess.cancel = context.WithCancel(s.baseContext())
	sess.ctrl = nav.NewController(s.table, s.loader, s.renderer, sess,
		nav.WithLogger(sess.log),
		nav.WithExpanded(s.opts.Expanded),
	)

	s.hub.add(sess)
	defer func() {
		s.hub.remove(sess.id)
		sess.cancel()
		conn.Close()
		sess.ctrl.Close()
	}()

	sess.log.Debug("session opened")
	sess.send(serverMessage{Type: msgSession, Session: sess.id})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				sess.log.Warn("websocket read", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sess.send(serverMessage{Type: msgError, Message: "invalid message format"})
			continue
		}

		switch msg.Type {
		case msgRoute:
			sess.ctrl.Dispatch(sess.ctx, nav.RouteChanged{Hash: msg.Hash})
		case msgLink:
			if msg.Path == "" {
				sess.send(serverMessage{Type: msgError, Message: "path is required"})
				continue
			}
			sess.ctrl.Dispatch(sess.ctx, nav.LinkActivated{Target: route.DocumentPath(msg.Path)})
		case msgToggle:
			sess.ctrl.Dispatch(sess.ctx, nav.SectionToggled{Section: msg.Section})
		default:
			sess.send(serverMessage{Type: msgError, Message: "unknown message type: " + msg.Type})
		}
	}
}
