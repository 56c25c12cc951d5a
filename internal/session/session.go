// Package session runs one visitor's page interactions: reveal-on-scroll,
// the FAQ accordion and the notify form. A session lives exactly as long as
// its WebSocket connection; closing it disconnects every observer and stops
// every timer.
package session

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"github.com/gridguard/landing/internal/accordion"
	"github.com/gridguard/landing/internal/apperror"
	"github.com/gridguard/landing/internal/components"
	"github.com/gridguard/landing/internal/content"
	"github.com/gridguard/landing/internal/logger"
	"github.com/gridguard/landing/internal/metrics"
	"github.com/gridguard/landing/internal/reveal"
	"github.com/gridguard/landing/internal/signup"
)

// maxSectionTargets bounds the reveal targets one section may register.
const maxSectionTargets = 64

// Options configures new sessions.
type Options struct {
	Reveal reveal.Options
	Signup signup.Config
	// Clock drives the form timers; nil means wall-clock time.
	Clock signup.Clock
	// Unsupported sessions reveal every observed element at once.
	Unsupported bool
	Log         *slog.Logger
}

// DefaultOptions returns the page's standard timings.
func DefaultOptions() Options {
	return Options{
		Reveal: reveal.DefaultOptions(),
		Signup: signup.DefaultConfig(),
	}
}

// Session owns the interaction state for one page view. Its methods are safe
// to call from the read loop while form timers fire on other goroutines.
type Session struct {
	id  string
	log *slog.Logger

	mu  sync.Mutex
	faq *accordion.Accordion
	// focus is the index a key press moved to, held until one published
	// state carries it.
	focus  int
	closed bool

	reveals *reveal.Group
	form    *signup.Machine

	pubMu   sync.Mutex
	publish func(State)
}

// New creates a session over reg's FAQ. publish receives the full state after
// every change, including timed form transitions.
func New(reg *content.Registry, opts Options, publish func(State)) (*Session, error) {
	faq, err := accordion.New(reg.FAQ.IDs())
	if err != nil {
		return nil, fmt.Errorf("building faq: %w", err)
	}

	log := opts.Log
	if log == nil {
		log = logger.Discard()
	}

	s := &Session{
		id:      uuid.NewString(),
		faq:     faq,
		focus:   -1,
		publish: publish,
	}
	s.log = log.With(logger.Scope("session"), slog.String("session_id", s.id))

	s.reveals = reveal.NewGroup(opts.Reveal, !opts.Unsupported, func(section, id string) {
		metrics.Reveals.WithLabelValues(section).Inc()
	})
	s.form = signup.New(opts.Signup, opts.Clock, func(snap signup.Snapshot) {
		metrics.SignupTransitions.WithLabelValues(snap.State.String()).Inc()
		s.emit()
	})
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Observe registers reveal targets for section. Only the page's own
// sections are accepted, each with a bounded number of targets.
func (s *Session) Observe(section string, ids []string) error {
	if !slices.Contains(components.Sections, section) {
		return apperror.NewBadRequest("unknown section")
	}
	o := s.reveals.Section(section)
	if o == nil {
		return nil
	}
	if o.Pending()+len(o.RevealedIDs())+len(ids) > maxSectionTargets {
		return apperror.NewBadRequest(fmt.Sprintf("a section accepts at most %d reveal targets", maxSectionTargets))
	}
	for _, id := range ids {
		o.Observe(id)
	}
	s.emit()
	return nil
}

// Intersect feeds one geometry sample. The state is published only when the
// sample revealed the element.
func (s *Session) Intersect(section string, e reveal.Entry) bool {
	if !s.reveals.Intersect(section, e) {
		return false
	}
	s.emit()
	return true
}

// Toggle flips a FAQ item.
func (s *Session) Toggle(id string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	expanded, err := s.faq.Toggle(id)
	s.mu.Unlock()
	if err != nil {
		return apperror.NewUnknownItem("faq item", id).WithInternal(err)
	}
	metrics.FAQToggles.WithLabelValues(id, strconv.FormatBool(expanded)).Inc()
	s.emit()
	return nil
}

// Key applies a key press on the FAQ item at index.
func (s *Session) Key(key string, index int) (accordion.KeyResult, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return accordion.KeyResult{Focus: -1}, nil
	}
	res, err := s.faq.HandleKey(key, index)
	if err == nil && res.Handled {
		s.focus = res.Focus
	}
	var toggled string
	if res.Toggled {
		toggled, _ = s.faq.IDAt(res.Focus)
	}
	s.mu.Unlock()

	if err != nil {
		return res, fmt.Errorf("handling key %q: %w", key, err)
	}
	if toggled != "" {
		metrics.FAQToggles.WithLabelValues(toggled, strconv.FormatBool(res.Expanded)).Inc()
	}
	if res.Handled {
		s.emit()
	}
	return res, nil
}

// Input replaces the form value.
func (s *Session) Input(value string) {
	s.form.Edit(value)
}

// Submit submits the form.
func (s *Session) Submit() signup.State {
	return s.form.Submit()
}

// Handle dispatches one client message.
func (s *Session) Handle(msg Inbound) error {
	switch msg.Type {
	case MsgObserve:
		return s.Observe(msg.Section, msg.IDs)
	case MsgIntersect:
		s.Intersect(msg.Section, reveal.Entry{ID: msg.ID, Top: msg.Top, Height: msg.Height, Viewport: msg.Viewport})
	case MsgToggle:
		return s.Toggle(msg.ID)
	case MsgKey:
		_, err := s.Key(msg.Key, msg.Index)
		return err
	case MsgInput:
		s.Input(msg.Value)
	case MsgSubmit:
		s.Submit()
	default:
		return apperror.ErrUnknownMessage.WithMessage("unknown message type: " + msg.Type)
	}
	return nil
}

// State returns the current state without consuming a pending focus move.
func (s *Session) State() State {
	return s.state(false)
}

func (s *Session) state(takeFocus bool) State {
	s.mu.Lock()
	open := s.faq.OpenIDs()
	focus := s.focus
	if takeFocus {
		s.focus = -1
	}
	s.mu.Unlock()

	var revealed []string
	for _, ids := range s.reveals.Revealed() {
		revealed = append(revealed, ids...)
	}
	sort.Strings(revealed)
	if revealed == nil {
		revealed = []string{}
	}

	return State{
		Open:     open,
		Focus:    focus,
		Revealed: revealed,
		Form:     s.form.Snapshot(),
	}
}

// Close tears the session down. It is safe to call more than once.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.form.Close()
	s.reveals.Close()

	s.pubMu.Lock()
	s.publish = nil
	s.pubMu.Unlock()
	s.log.Debug("session closed")
}

// emit publishes the current state. pubMu keeps publishes in order when a
// form timer races the read loop.
func (s *Session) emit() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	if s.publish == nil {
		return
	}
	s.publish(s.state(true))
}
