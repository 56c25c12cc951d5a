package session

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/gridguard/landing/internal/apperror"
	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/logger"
	"github.com/gridguard/landing/internal/metrics"
)

// Path is where the page script opens its session.
const Path = "/ws/session"

// RevealOffQuery is appended to Path by browsers that cannot observe the
// viewport. Such sessions reveal every target as soon as it is observed.
const RevealOffQuery = "reveal=off"

const (
	maxMessageSize = 4096
	writeWait      = 10 * time.Second
)

// Handler accepts session connections and tracks the live sessions.
type Handler struct {
	store    *content.Store
	opts     Options
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewHandler creates a handler serving sessions over the store's current
// registry. allowAllOrigins disables the same-origin check.
func NewHandler(store *content.Store, opts Options, allowAllOrigins bool) *Handler {
	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}
	h := &Handler{
		store:    store,
		opts:     opts,
		log:      log.With(logger.Scope("session")),
		sessions: make(map[string]*Session),
	}
	if allowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// RegisterRoutes mounts the session endpoint.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get(Path, h.handleWebSocket)
}

// Active returns the number of open sessions.
func (h *Handler) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// CloseAll tears down every open session.
func (h *Handler) CloseAll() {
	h.mu.Lock()
	sessions := make([]*Session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade", logger.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	var writeMu sync.Mutex
	write := func(msg Outbound) {
		writeMu.Lock()
		defer writeMu.Unlock()
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(msg); err != nil {
			h.log.Debug("websocket write", logger.Error(err))
		}
	}

	opts := h.opts
	if r.URL.Query().Get("reveal") == "off" {
		opts.Unsupported = true
	}

	var sess *Session
	sess, err = New(h.store.Current(), opts, func(st State) {
		write(Outbound{Type: MsgState, Session: sess.ID(), State: &st})
	})
	if err != nil {
		h.log.Error("creating session", logger.Error(err))
		_, body := apperror.ToBody(err)
		write(Outbound{Type: MsgError, Error: &body})
		return
	}

	h.track(sess)
	defer h.untrack(sess)

	st := sess.State()
	write(Outbound{Type: MsgState, Session: sess.ID(), State: &st})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.log.Debug("websocket read", logger.Error(err))
			}
			return
		}

		var msg Inbound
		if err := json.Unmarshal(data, &msg); err != nil {
			_, body := apperror.ToBody(apperror.NewBadRequest("invalid message format"))
			write(Outbound{Type: MsgError, Session: sess.ID(), Error: &body})
			continue
		}

		if err := sess.Handle(msg); err != nil {
			_, body := apperror.ToBody(err)
			write(Outbound{Type: MsgError, Session: sess.ID(), Error: &body})
		}
	}
}

func (h *Handler) track(s *Session) {
	h.mu.Lock()
	h.sessions[s.ID()] = s
	h.mu.Unlock()
	metrics.ActiveSessions.Inc()
	metrics.SessionsTotal.Inc()
}

func (h *Handler) untrack(s *Session) {
	s.Close()
	h.mu.Lock()
	delete(h.sessions, s.ID())
	h.mu.Unlock()
	metrics.ActiveSessions.Dec()
}
