package reveal

import "sync"

// Group owns one Observer per page section so a whole page can be torn down
// with a single Close.
type Group struct {
	mu        sync.Mutex
	opts      Options
	supported bool
	onReveal  func(section, id string)
	sections  map[string]*Observer
	closed    bool
}

// NewGroup creates a group whose observers share opts. onReveal receives the
// section name along with the element id.
func NewGroup(opts Options, supported bool, onReveal func(section, id string)) *Group {
	return &Group{
		opts:      opts,
		supported: supported,
		onReveal:  onReveal,
		sections:  make(map[string]*Observer),
	}
}

// Section returns the observer for section, creating it on first use. It
// returns nil once the group is closed.
func (g *Group) Section(section string) *Observer {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return nil
	}
	if o, ok := g.sections[section]; ok {
		return o
	}

	var cb func(string)
	if g.onReveal != nil {
		notify := g.onReveal
		cb = func(id string) { notify(section, id) }
	}
	var o *Observer
	if g.supported {
		o = New(g.opts, cb)
	} else {
		o = Unsupported(cb)
	}
	g.sections[section] = o
	return o
}

// Intersect routes a sample to the section's observer. Unknown sections are
// ignored.
func (g *Group) Intersect(section string, e Entry) bool {
	g.mu.Lock()
	o, ok := g.sections[section]
	g.mu.Unlock()
	if !ok {
		return false
	}
	return o.Intersect(e)
}

// Revealed returns the revealed ids per section.
func (g *Group) Revealed() map[string][]string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make(map[string][]string, len(g.sections))
	for name, o := range g.sections {
		if ids := o.RevealedIDs(); len(ids) > 0 {
			out[name] = ids
		}
	}
	return out
}

// Close disconnects every section observer.
func (g *Group) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return
	}
	g.closed = true
	for _, o := range g.sections {
		o.Disconnect()
	}
	g.sections = make(map[string]*Observer)
}
