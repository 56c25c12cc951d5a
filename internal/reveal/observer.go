// Package reveal implements the one-shot reveal-on-scroll trigger. An
// Observer watches a set of marked elements; the first time an element's
// visible share of the viewport crosses the threshold it is marked revealed
// for good and dropped from observation.
package reveal

import "sync"

const (
	DefaultThreshold    = 0.1
	DefaultBottomMargin = 50
)

// Options tunes when an element counts as entered.
type Options struct {
	// Threshold is the fraction of the element that must be visible, in [0,1].
	Threshold float64
	// BottomMargin shrinks the viewport's bottom edge by this many pixels so
	// elements trigger slightly before they are fully on screen.
	BottomMargin float64
}

// DefaultOptions returns the threshold and margin the landing page uses.
func DefaultOptions() Options {
	return Options{Threshold: DefaultThreshold, BottomMargin: DefaultBottomMargin}
}

// Entry is one geometry sample for an observed element, in CSS pixels
// relative to the top of the viewport.
type Entry struct {
	ID       string
	Top      float64
	Height   float64
	Viewport float64
}

// Ratio returns the visible fraction of the element inside the viewport
// shrunk by bottomMargin, and whether the element intersects it at all.
func (e Entry) Ratio(bottomMargin float64) (float64, bool) {
	rootBottom := e.Viewport - bottomMargin
	if rootBottom <= 0 {
		return 0, false
	}
	bottom := e.Top + e.Height
	if e.Height <= 0 {
		if e.Top >= 0 && e.Top <= rootBottom {
			return 1, true
		}
		return 0, false
	}
	visible := min(bottom, rootBottom) - max(e.Top, 0)
	if visible < 0 || bottom < 0 || e.Top > rootBottom {
		return 0, false
	}
	return visible / e.Height, true
}

// Observer tracks reveal state for the elements of one section.
type Observer struct {
	mu           sync.Mutex
	opts         Options
	supported    bool
	observed     map[string]struct{}
	revealed     map[string]struct{}
	onReveal     func(id string)
	disconnected bool
}

// New creates an observer. onReveal, if non-nil, is called once per element
// when it is revealed.
func New(opts Options, onReveal func(id string)) *Observer {
	return &Observer{
		opts:      opts,
		supported: true,
		observed:  make(map[string]struct{}),
		revealed:  make(map[string]struct{}),
		onReveal:  onReveal,
	}
}

// Unsupported creates an observer for an environment without viewport
// observation. Every element it is asked to observe is revealed at once.
func Unsupported(onReveal func(id string)) *Observer {
	o := New(DefaultOptions(), onReveal)
	o.supported = false
	return o
}

// Observe starts watching id. Ids already observed or revealed are ignored.
func (o *Observer) Observe(id string) {
	o.mu.Lock()
	if o.disconnected {
		o.mu.Unlock()
		return
	}
	if _, done := o.revealed[id]; done {
		o.mu.Unlock()
		return
	}
	if !o.supported {
		o.revealed[id] = struct{}{}
		cb := o.onReveal
		o.mu.Unlock()
		if cb != nil {
			cb(id)
		}
		return
	}
	o.observed[id] = struct{}{}
	o.mu.Unlock()
}

// Intersect feeds one geometry sample. It returns true only when this sample
// revealed the element; samples for unobserved or already revealed ids are
// ignored.
func (o *Observer) Intersect(e Entry) bool {
	o.mu.Lock()
	if _, watching := o.observed[e.ID]; !watching {
		o.mu.Unlock()
		return false
	}
	ratio, intersecting := e.Ratio(o.opts.BottomMargin)
	if !intersecting || ratio < o.opts.Threshold {
		o.mu.Unlock()
		return false
	}
	delete(o.observed, e.ID)
	o.revealed[e.ID] = struct{}{}
	cb := o.onReveal
	o.mu.Unlock()

	if cb != nil {
		cb(e.ID)
	}
	return true
}

// Revealed reports whether id has been revealed.
func (o *Observer) Revealed(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.revealed[id]
	return ok
}

// RevealedIDs returns every revealed id, in no particular order.
func (o *Observer) RevealedIDs() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	ids := make([]string, 0, len(o.revealed))
	for id := range o.revealed {
		ids = append(ids, id)
	}
	return ids
}

// Pending returns the number of elements still being watched.
func (o *Observer) Pending() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.observed)
}

// Disconnect stops all observation and drops the callback. Reveal state is
// discarded with the observer. Calling it more than once is a no-op.
func (o *Observer) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.disconnected {
		return
	}
	o.disconnected = true
	o.observed = make(map[string]struct{})
	o.onReveal = nil
}
