// Package accordion implements the FAQ disclosure list: an ordered set of
// independently expandable items with directional keyboard focus movement.
package accordion

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownItem is returned when an operation names an id the list was
	// not built with.
	ErrUnknownItem = errors.New("accordion: unknown item")
	// ErrDuplicateItem is returned by New when two items share an id.
	ErrDuplicateItem = errors.New("accordion: duplicate item id")
)

// Direction is a focus movement request.
type Direction int

const (
	Prev Direction = iota
	Next
	First
	Last
)

func (d Direction) String() string {
	switch d {
	case Prev:
		return "prev"
	case Next:
		return "next"
	case First:
		return "first"
	case Last:
		return "last"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Item is the presentation view of one entry.
type Item struct {
	ID        string
	Index     int
	Expanded  bool
	ButtonID  string
	ContentID string
}

// Accordion holds the open set for one list instance. It is not safe for
// concurrent use; the owning session serializes access.
type Accordion struct {
	ids   []string
	index map[string]int
	open  map[string]struct{}
}

// New builds an accordion over ids in the given order. The open set starts
// empty.
func New(ids []string) (*Accordion, error) {
	a := &Accordion{
		ids:   make([]string, 0, len(ids)),
		index: make(map[string]int, len(ids)),
		open:  make(map[string]struct{}),
	}
	for _, id := range ids {
		if _, dup := a.index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItem, id)
		}
		a.index[id] = len(a.ids)
		a.ids = append(a.ids, id)
	}
	return a, nil
}

// Len returns the number of items.
func (a *Accordion) Len() int { return len(a.ids) }

// Toggle flips the membership of id in the open set and returns the new
// expanded state.
func (a *Accordion) Toggle(id string) (bool, error) {
	if _, ok := a.index[id]; !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	if _, open := a.open[id]; open {
		delete(a.open, id)
		return false, nil
	}
	a.open[id] = struct{}{}
	return true, nil
}

// Activate handles Enter/Space on a focused item. It is Toggle by another name.
func (a *Accordion) Activate(id string) (bool, error) {
	return a.Toggle(id)
}

// IsOpen reports whether id is expanded.
func (a *Accordion) IsOpen(id string) bool {
	_, open := a.open[id]
	return open
}

// OpenIDs returns the expanded ids in list order.
func (a *Accordion) OpenIDs() []string {
	out := make([]string, 0, len(a.open))
	for _, id := range a.ids {
		if _, open := a.open[id]; open {
			out = append(out, id)
		}
	}
	return out
}

// IDAt returns the id at index i.
func (a *Accordion) IDAt(i int) (string, bool) {
	if i < 0 || i >= len(a.ids) {
		return "", false
	}
	return a.ids[i], true
}

// MoveFocus returns the index focus lands on when moving in dir from
// current. Movement clamps at both ends; it never wraps. An out-of-range
// current index is clamped first. Returns -1 for an empty list.
func (a *Accordion) MoveFocus(dir Direction, current int) int {
	n := len(a.ids)
	if n == 0 {
		return -1
	}
	current = clamp(current, 0, n-1)

	switch dir {
	case Prev:
		if current > 0 {
			return current - 1
		}
	case Next:
		if current < n-1 {
			return current + 1
		}
	case First:
		return 0
	case Last:
		return n - 1
	}
	return current
}

// Items returns the presentation view of every entry in list order.
func (a *Accordion) Items() []Item {
	items := make([]Item, len(a.ids))
	for i, id := range a.ids {
		items[i] = Item{
			ID:        id,
			Index:     i,
			Expanded:  a.IsOpen(id),
			ButtonID:  ButtonID(id),
			ContentID: ContentID(id),
		}
	}
	return items
}

// ButtonID is the DOM id of the trigger control for item id.
func ButtonID(id string) string { return "faq-button-" + id }

// ContentID is the DOM id of the content region for item id.
func ContentID(id string) string { return "faq-content-" + id }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
