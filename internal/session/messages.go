package session

import (
	"github.com/gridguard/landing/internal/apperror"
	"github.com/gridguard/landing/internal/signup"
)

// Inbound message types, sent by the page script.
const (
	MsgObserve   = "observe"
	MsgIntersect = "intersect"
	MsgToggle    = "toggle"
	MsgKey       = "key"
	MsgInput     = "input"
	MsgSubmit    = "submit"
)

// Outbound message types.
const (
	MsgState = "state"
	MsgError = "error"
)

// Inbound is one client message. Fields beyond Type depend on the type:
// observe carries Section and IDs, intersect carries Section, ID and the
// geometry, toggle carries ID, key carries Key and Index, input carries Value.
type Inbound struct {
	Type     string   `json:"type"`
	Section  string   `json:"section,omitempty"`
	IDs      []string `json:"ids,omitempty"`
	ID       string   `json:"id,omitempty"`
	Top      float64  `json:"top,omitempty"`
	Height   float64  `json:"height,omitempty"`
	Viewport float64  `json:"viewport,omitempty"`
	Key      string   `json:"key,omitempty"`
	Index    int      `json:"index,omitempty"`
	Value    string   `json:"value,omitempty"`
}

// Outbound is one server message.
type Outbound struct {
	Type    string         `json:"type"`
	Session string         `json:"session"`
	State   *State         `json:"state,omitempty"`
	Error   *apperror.Body `json:"error,omitempty"`
}

// State is everything the page needs to mirror the session.
type State struct {
	// Open lists the expanded FAQ ids in list order.
	Open []string `json:"open"`
	// Focus is the FAQ index that should take keyboard focus, or -1. Only
	// the state answering a handled key press carries it.
	Focus int `json:"focus"`
	// Revealed lists every revealed element id.
	Revealed []string        `json:"revealed"`
	Form     signup.Snapshot `json:"form"`
}
