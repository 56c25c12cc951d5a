package signup_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridguard/landing/internal/signup"
	"github.com/gridguard/landing/internal/signup/signuptest"
)

type recorder struct {
	mu    sync.Mutex
	snaps []signup.Snapshot
}

func (r *recorder) record(s signup.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, s)
}

func (r *recorder) states() []signup.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]signup.State, len(r.snaps))
	for i, s := range r.snaps {
		out[i] = s.State
	}
	return out
}

func newMachine(t *testing.T) (*signup.Machine, *signuptest.ManualClock, *recorder) {
	t.Helper()
	clock := signuptest.NewManualClock()
	rec := &recorder{}
	m := signup.New(signup.DefaultConfig(), clock, rec.record)
	t.Cleanup(m.Close)
	return m, clock, rec
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"user@example.com", true},
		{"  user@example.com  ", true},
		{"a@b.c", true},
		{"first.last@sub.example.co.uk", true},
		{"not-an-email", false},
		{"", false},
		{"user@", false},
		{"@example.com", false},
		{"user@example", false},
		{"user@@example.com", false},
		{"us er@example.com", false},
		{"user@.com", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, signup.ValidEmail(tt.in))
		})
	}
}

func TestInvalidInputFails(t *testing.T) {
	m, clock, _ := newMachine(t)

	m.Edit("not-an-email")
	assert.Equal(t, signup.Failed, m.Submit())

	snap := m.Snapshot()
	assert.Equal(t, signup.Failed, snap.State)
	assert.Equal(t, signup.MsgInvalid, snap.Message)
	assert.Equal(t, 0, clock.Pending())
}

func TestEmptyInputFails(t *testing.T) {
	m, _, _ := newMachine(t)

	m.Edit("   ")
	assert.Equal(t, signup.Failed, m.Submit())
	assert.Equal(t, signup.MsgEmpty, m.Snapshot().Message)
}

func TestEditClearsFailure(t *testing.T) {
	m, _, _ := newMachine(t)

	m.Submit()
	require.Equal(t, signup.Failed, m.Snapshot().State)

	// A resubmission from Failed is ignored until the input changes.
	assert.Equal(t, signup.Failed, m.Submit())

	m.Edit("u")
	snap := m.Snapshot()
	assert.Equal(t, signup.Idle, snap.State)
	assert.Empty(t, snap.Message)
	assert.Equal(t, "u", snap.Value)
}

func TestSuccessfulSubmission(t *testing.T) {
	m, clock, rec := newMachine(t)

	m.Edit("user@example.com")
	assert.Equal(t, signup.Submitting, m.Submit())

	clock.Advance(signup.DefaultSubmitDelay - time.Millisecond)
	assert.Equal(t, signup.Submitting, m.Snapshot().State)

	clock.Advance(time.Millisecond)
	snap := m.Snapshot()
	assert.Equal(t, signup.Succeeded, snap.State)
	assert.Equal(t, signup.MsgSuccess, snap.Message)

	clock.Advance(signup.DefaultDismissAfter)
	snap = m.Snapshot()
	assert.Equal(t, signup.Idle, snap.State)
	assert.Empty(t, snap.Value)
	assert.Empty(t, snap.Message)

	assert.Equal(t, []signup.State{
		signup.Idle,       // edit
		signup.Submitting, // submit
		signup.Succeeded,  // delay elapsed
		signup.Idle,       // dismissed
	}, rec.states())
}

func TestSubmitIgnoredWhileBusy(t *testing.T) {
	m, clock, _ := newMachine(t)

	m.Edit("user@example.com")
	m.Submit()
	assert.Equal(t, signup.Submitting, m.Submit())
	m.Edit("other@example.com")
	assert.Equal(t, "user@example.com", m.Snapshot().Value)
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(signup.DefaultSubmitDelay)
	assert.Equal(t, signup.Succeeded, m.Submit())
}

func TestCloseStopsTimers(t *testing.T) {
	m, clock, rec := newMachine(t)

	m.Edit("user@example.com")
	m.Submit()
	m.Close()
	m.Close()

	assert.Equal(t, 0, clock.Pending())
	clock.Advance(time.Minute)
	assert.Equal(t, signup.Submitting, m.Snapshot().State)
	assert.Len(t, rec.states(), 2)

	m.Edit("x")
	assert.Equal(t, "user@example.com", m.Snapshot().Value)
}

func TestStateNames(t *testing.T) {
	text, err := signup.Succeeded.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "succeeded", string(text))
	assert.Equal(t, "state(9)", signup.State(9).String())
}

func TestRealClock(t *testing.T) {
	done := make(chan signup.Snapshot, 4)
	m := signup.New(signup.Config{SubmitDelay: time.Millisecond, DismissAfter: time.Hour}, nil, func(s signup.Snapshot) {
		done <- s
	})
	defer m.Close()

	m.Edit("user@example.com")
	m.Submit()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case s := <-done:
			if s.State == signup.Succeeded {
				return
			}
		case <-deadline:
			t.Fatal("submission did not complete")
		}
	}
}

func TestResolve(t *testing.T) {
	snap := signup.Resolve("  ")
	assert.Equal(t, signup.Failed, snap.State)
	assert.Equal(t, signup.MsgEmpty, snap.Message)

	snap = signup.Resolve("nope@")
	assert.Equal(t, signup.Failed, snap.State)
	assert.Equal(t, signup.MsgInvalid, snap.Message)
	assert.Equal(t, "nope@", snap.Value)

	snap = signup.Resolve("ada@example.com")
	assert.Equal(t, signup.Succeeded, snap.State)
	assert.Equal(t, signup.MsgSuccess, snap.Message)
	assert.Empty(t, snap.Value)
}

func TestEditIgnoredUntilDismissed(t *testing.T) {
	m, clock, _ := newMachine(t)

	m.Edit("first@example.com")
	m.Submit()
	clock.Advance(signup.DefaultSubmitDelay)
	require.Equal(t, signup.Succeeded, m.Snapshot().State)

	m.Edit("second@example.com")
	assert.Equal(t, "first@example.com", m.Snapshot().Value)

	clock.Advance(signup.DefaultDismissAfter)
	snap := m.Snapshot()
	assert.Equal(t, signup.Idle, snap.State)
	assert.Empty(t, snap.Value)

	m.Edit("second@example.com")
	assert.Equal(t, signup.Submitting, m.Submit())
}
