package session

import (
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridguard/landing/internal/accordion"
	"github.com/gridguard/landing/internal/apperror"
	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/reveal"
	"github.com/gridguard/landing/internal/signup"
	"github.com/gridguard/landing/internal/signup/signuptest"
)

type published struct {
	mu     sync.Mutex
	states []State
}

func (p *published) add(s State) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.states = append(p.states, s)
}

func (p *published) last() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.states[len(p.states)-1]
}

func (p *published) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.states)
}

func newSession(t *testing.T) (*Session, *signuptest.ManualClock, *published) {
	t.Helper()
	clock := signuptest.NewManualClock()
	pub := &published{}
	opts := DefaultOptions()
	opts.Clock = clock
	s, err := New(content.Default(), opts, pub.add)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, clock, pub
}

func TestNewSessionState(t *testing.T) {
	s, _, _ := newSession(t)
	st := s.State()
	assert.Empty(t, st.Open)
	assert.Equal(t, -1, st.Focus)
	assert.Empty(t, st.Revealed)
	assert.Equal(t, signup.Idle, st.Form.State)
	assert.NotEmpty(t, s.ID())
}

func TestToggleAndKeys(t *testing.T) {
	s, _, pub := newSession(t)
	ids := content.Default().FAQ.IDs()
	require.GreaterOrEqual(t, len(ids), 3)

	require.NoError(t, s.Toggle(ids[2]))
	assert.Equal(t, []string{ids[2]}, pub.last().Open)

	res, err := s.Key(accordion.KeyEnd, 2)
	require.NoError(t, err)
	assert.True(t, res.Handled)
	assert.Equal(t, len(ids)-1, pub.last().Focus)
	assert.Equal(t, []string{ids[2]}, pub.last().Open)

	_, err = s.Key(accordion.KeyEnter, len(ids)-1)
	require.NoError(t, err)
	assert.Equal(t, []string{ids[2], ids[len(ids)-1]}, pub.last().Open)
}

func TestUnhandledKeyPublishesNothing(t *testing.T) {
	s, _, pub := newSession(t)
	before := pub.count()
	res, err := s.Key("Tab", 0)
	require.NoError(t, err)
	assert.False(t, res.Handled)
	assert.Equal(t, before, pub.count())
}

func TestFocusOnlyAnswersKeyPress(t *testing.T) {
	s, _, pub := newSession(t)
	ids := content.Default().FAQ.IDs()
	require.GreaterOrEqual(t, len(ids), 3)

	_, err := s.Key(accordion.KeyArrowDown, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, pub.last().Focus)

	s.Input("u")
	assert.Equal(t, -1, pub.last().Focus)

	require.NoError(t, s.Toggle(ids[2]))
	assert.Equal(t, -1, pub.last().Focus)
	assert.Equal(t, -1, s.State().Focus)

	_, err = s.Key(accordion.KeyEnter, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, pub.last().Focus)
	assert.Equal(t, []string{ids[1], ids[2]}, pub.last().Open)
}

func TestToggleUnknown(t *testing.T) {
	s, _, _ := newSession(t)
	err := s.Toggle("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, accordion.ErrUnknownItem)
	assert.Equal(t, "unknown_item", apperror.From(err).Code)
}

func TestRevealOneShot(t *testing.T) {
	s, _, pub := newSession(t)
	require.NoError(t, s.Observe("features", []string{"feature-a", "feature-b"}))

	assert.False(t, s.Intersect("features", reveal.Entry{ID: "feature-a", Top: 900, Height: 200, Viewport: 800}))
	assert.True(t, s.Intersect("features", reveal.Entry{ID: "feature-a", Top: 500, Height: 200, Viewport: 800}))
	assert.False(t, s.Intersect("features", reveal.Entry{ID: "feature-a", Top: 100, Height: 200, Viewport: 800}))
	assert.Equal(t, []string{"feature-a"}, pub.last().Revealed)
}

// revealSeries counts the reveal counter series labelled with section.
func revealSeries(t *testing.T, section string) int {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	n := 0
	for _, f := range families {
		if f.GetName() != "gridguard_reveals_total" {
			continue
		}
		for _, m := range f.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "section" && l.GetValue() == section {
					n++
				}
			}
		}
	}
	return n
}

func TestObserveRejectsUnknownSection(t *testing.T) {
	pub := &published{}
	opts := DefaultOptions()
	opts.Unsupported = true
	s, err := New(content.Default(), opts, pub.add)
	require.NoError(t, err)
	defer s.Close()

	for _, section := range []string{"", "made-up", "made-up-2"} {
		err := s.Handle(Inbound{Type: MsgObserve, Section: section, IDs: []string{"x"}})
		require.Error(t, err, section)
		assert.Equal(t, "bad_request", apperror.From(err).Code)
	}
	assert.False(t, s.Intersect("made-up", reveal.Entry{ID: "x", Top: 0, Height: 100, Viewport: 800}))

	assert.Equal(t, 0, revealSeries(t, "made-up"))
	assert.Equal(t, 0, revealSeries(t, "made-up-2"))
	assert.Empty(t, s.State().Revealed)
	assert.Equal(t, 0, pub.count())
}

func TestObserveCapsTargets(t *testing.T) {
	s, _, _ := newSession(t)

	ids := make([]string, maxSectionTargets)
	for i := range ids {
		ids[i] = "spec-" + strconv.Itoa(i)
	}
	require.NoError(t, s.Observe("specs", ids[:maxSectionTargets-1]))

	err := s.Observe("specs", []string{"spec-extra-a", "spec-extra-b"})
	require.Error(t, err)
	assert.Equal(t, "bad_request", apperror.From(err).Code)

	require.NoError(t, s.Observe("specs", ids[maxSectionTargets-1:]))
	require.Error(t, s.Observe("specs", []string{"spec-one-more"}))
}

func TestUnsupportedRevealsOnObserve(t *testing.T) {
	pub := &published{}
	opts := DefaultOptions()
	opts.Unsupported = true
	s, err := New(content.Default(), opts, pub.add)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Observe("faq", []string{"faq-x", "faq-y"}))
	assert.Equal(t, []string{"faq-x", "faq-y"}, pub.last().Revealed)
}

func TestFormTimeline(t *testing.T) {
	s, clock, pub := newSession(t)

	s.Input("ada@example.com")
	assert.Equal(t, signup.Submitting, s.Submit())
	assert.Equal(t, signup.Submitting, pub.last().Form.State)

	clock.Advance(signup.DefaultSubmitDelay)
	assert.Equal(t, signup.Succeeded, pub.last().Form.State)
	assert.Equal(t, signup.MsgSuccess, pub.last().Form.Message)

	clock.Advance(signup.DefaultDismissAfter)
	assert.Equal(t, signup.Idle, pub.last().Form.State)
	assert.Empty(t, pub.last().Form.Value)
}

func TestCloseStopsEverything(t *testing.T) {
	s, clock, pub := newSession(t)
	require.NoError(t, s.Observe("cta", []string{"cta-body"}))
	s.Input("ada@example.com")
	s.Submit()
	before := pub.count()

	s.Close()
	s.Close()
	clock.Advance(time.Minute)

	assert.Equal(t, before, pub.count())
	assert.False(t, s.Intersect("cta", reveal.Entry{ID: "cta-body", Top: 0, Height: 100, Viewport: 800}))
	assert.NoError(t, s.Toggle(content.Default().FAQ.IDs()[0]))
	assert.Equal(t, before, pub.count())
}

func TestHandleDispatch(t *testing.T) {
	s, _, pub := newSession(t)
	id := content.Default().FAQ.IDs()[0]

	require.NoError(t, s.Handle(Inbound{Type: MsgToggle, ID: id}))
	assert.Equal(t, []string{id}, pub.last().Open)

	require.NoError(t, s.Handle(Inbound{Type: MsgInput, Value: "bad"}))
	require.NoError(t, s.Handle(Inbound{Type: MsgSubmit}))
	assert.Equal(t, signup.Failed, pub.last().Form.State)

	err := s.Handle(Inbound{Type: "dance"})
	require.Error(t, err)
	assert.Equal(t, "unknown_message", apperror.From(err).Code)

	err = s.Handle(Inbound{Type: MsgObserve})
	assert.Equal(t, "bad_request", apperror.From(err).Code)
}

func dial(t *testing.T, h *Handler) *websocket.Conn {
	t.Helper()
	return dialQuery(t, h, "")
}

func dialQuery(t *testing.T, h *Handler, query string) *websocket.Conn {
	t.Helper()
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + Path
	if query != "" {
		wsURL += "?" + query
	}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	return conn
}

func TestWebSocketSession(t *testing.T) {
	h := NewHandler(content.NewStaticStore(content.Default()), DefaultOptions(), false)
	conn := dial(t, h)

	var hello Outbound
	require.NoError(t, conn.ReadJSON(&hello))
	assert.Equal(t, MsgState, hello.Type)
	assert.NotEmpty(t, hello.Session)
	require.NotNil(t, hello.State)
	assert.Equal(t, -1, hello.State.Focus)

	id := content.Default().FAQ.IDs()[0]
	require.NoError(t, conn.WriteJSON(Inbound{Type: MsgToggle, ID: id}))

	var update Outbound
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, hello.Session, update.Session)
	assert.Equal(t, []string{id}, update.State.Open)
	assert.Equal(t, 1, h.Active())
}

func TestWebSocketRevealOff(t *testing.T) {
	h := NewHandler(content.NewStaticStore(content.Default()), DefaultOptions(), false)
	conn := dialQuery(t, h, RevealOffQuery)

	var hello Outbound
	require.NoError(t, conn.ReadJSON(&hello))
	require.NotNil(t, hello.State)
	assert.Empty(t, hello.State.Revealed)

	require.NoError(t, conn.WriteJSON(Inbound{Type: MsgObserve, Section: "features", IDs: []string{"feature-a", "feature-b"}}))

	var update Outbound
	require.NoError(t, conn.ReadJSON(&update))
	assert.Equal(t, MsgState, update.Type)
	require.NotNil(t, update.State)
	assert.Equal(t, []string{"feature-a", "feature-b"}, update.State.Revealed)
}

func TestWebSocketRevealOnByDefault(t *testing.T) {
	h := NewHandler(content.NewStaticStore(content.Default()), DefaultOptions(), false)
	conn := dial(t, h)

	var hello Outbound
	require.NoError(t, conn.ReadJSON(&hello))
	require.NoError(t, conn.WriteJSON(Inbound{Type: MsgObserve, Section: "features", IDs: []string{"feature-a"}}))

	var update Outbound
	require.NoError(t, conn.ReadJSON(&update))
	require.NotNil(t, update.State)
	assert.Empty(t, update.State.Revealed)
}

func TestWebSocketErrors(t *testing.T) {
	h := NewHandler(content.NewStaticStore(content.Default()), DefaultOptions(), false)
	conn := dial(t, h)

	var hello Outbound
	require.NoError(t, conn.ReadJSON(&hello))

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	var resp Outbound
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, MsgError, resp.Type)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "bad_request", resp.Error.Code)

	require.NoError(t, conn.WriteJSON(Inbound{Type: MsgToggle, ID: "missing"}))
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, MsgError, resp.Type)
	assert.Equal(t, "unknown_item", resp.Error.Code)
}

func TestWebSocketCloseTearsDown(t *testing.T) {
	h := NewHandler(content.NewStaticStore(content.Default()), DefaultOptions(), false)
	conn := dial(t, h)

	var hello Outbound
	require.NoError(t, conn.ReadJSON(&hello))
	require.Equal(t, 1, h.Active())

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	assert.Eventually(t, func() bool { return h.Active() == 0 }, 5*time.Second, 10*time.Millisecond)
}
