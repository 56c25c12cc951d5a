// Package signup models the "Get Notified" email capture as an explicit state
// machine with timed transitions. Nothing is sent anywhere: a well-formed
// address always succeeds after the submit delay, and the value is dropped
// when the success message is dismissed.
package signup

import (
	"fmt"
	"sync"
	"time"
)

const (
	DefaultSubmitDelay  = time.Second
	DefaultDismissAfter = 5 * time.Second
)

// User-visible messages.
const (
	MsgEmpty   = "Please enter your email address."
	MsgInvalid = "Please enter a valid email address."
	MsgSuccess = "Thanks! We'll let you know when GridGuard is available."
)

// State is the form status.
type State int

const (
	Idle State = iota
	Submitting
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// MarshalText lets State travel as its name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Config holds the fixed delays.
type Config struct {
	SubmitDelay  time.Duration
	DismissAfter time.Duration
}

// DefaultConfig returns the delays the landing page uses.
func DefaultConfig() Config {
	return Config{SubmitDelay: DefaultSubmitDelay, DismissAfter: DefaultDismissAfter}
}

// Snapshot is the observable form state after a transition.
type Snapshot struct {
	State   State  `json:"state"`
	Value   string `json:"value"`
	Message string `json:"message,omitempty"`
}

// Machine is one form instance. Timer callbacks run on their own goroutines,
// so every transition takes the lock.
type Machine struct {
	mu       sync.Mutex
	cfg      Config
	clock    Clock
	state    State
	value    string
	message  string
	timer    Timer
	gen      uint64
	closed   bool
	onChange func(Snapshot)
}

// New creates an idle form. onChange, if non-nil, receives a snapshot after
// every transition, including timed ones.
func New(cfg Config, clock Clock, onChange func(Snapshot)) *Machine {
	if clock == nil {
		clock = RealClock{}
	}
	return &Machine{cfg: cfg, clock: clock, onChange: onChange}
}

// Snapshot returns the current state.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

func (m *Machine) snapshotLocked() Snapshot {
	return Snapshot{State: m.state, Value: m.value, Message: m.message}
}

// Edit replaces the input value. Editing a failed form clears the failure.
// Edits are ignored while a submission is in flight and while the success
// message is shown, since dismissing it clears the value.
func (m *Machine) Edit(value string) {
	m.mu.Lock()
	if m.closed || m.state == Submitting || m.state == Succeeded {
		m.mu.Unlock()
		return
	}
	m.value = value
	if m.state == Failed {
		m.state = Idle
		m.message = ""
	}
	m.commitLocked()
}

// Submit validates the input. A well-formed address starts the simulated
// submission; anything else fails with a validation message. Submit outside
// Idle is ignored.
func (m *Machine) Submit() State {
	m.mu.Lock()
	if m.closed || m.state != Idle {
		s := m.state
		m.mu.Unlock()
		return s
	}

	if msg := Problem(m.value); msg != "" {
		m.state, m.message = Failed, msg
	} else {
		m.state, m.message = Submitting, ""
		m.scheduleLocked(m.cfg.SubmitDelay, m.completeSubmit)
	}
	s := m.state
	m.commitLocked()
	return s
}

// Close stops any pending timer. The machine ignores all input afterwards.
func (m *Machine) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	m.closed = true
	m.gen++
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.onChange = nil
}

func (m *Machine) completeSubmit() {
	m.state, m.message = Succeeded, MsgSuccess
	m.scheduleLocked(m.cfg.DismissAfter, m.dismiss)
}

func (m *Machine) dismiss() {
	m.state, m.message, m.value = Idle, "", ""
}

// scheduleLocked arms step to run after d. A timer that fires after Close or
// after being superseded finds a stale generation and does nothing.
func (m *Machine) scheduleLocked(d time.Duration, step func()) {
	if m.timer != nil {
		m.timer.Stop()
	}
	m.gen++
	gen := m.gen
	m.timer = m.clock.AfterFunc(d, func() {
		m.mu.Lock()
		if m.closed || m.gen != gen {
			m.mu.Unlock()
			return
		}
		m.timer = nil
		step()
		m.commitLocked()
	})
}

// commitLocked releases the lock and publishes the new snapshot.
func (m *Machine) commitLocked() {
	snap := m.snapshotLocked()
	cb := m.onChange
	m.mu.Unlock()
	if cb != nil {
		cb(snap)
	}
}
