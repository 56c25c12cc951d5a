package content

import "sync/atomic"

// Store hands out the current registry. Swaps are atomic, so a reader sees
// either the old registry or the new one, never a mix.
type Store struct {
	current atomic.Pointer[Registry]
	path    string
}

// NewStore loads path (or the defaults when path is empty) into a new store.
func NewStore(path string) (*Store, error) {
	reg, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.current.Store(reg)
	return s, nil
}

// NewStaticStore wraps an already built registry.
func NewStaticStore(reg *Registry) *Store {
	s := &Store{}
	s.current.Store(reg)
	return s
}

// Current returns the registry in effect. Callers must not modify it.
func (s *Store) Current() *Registry {
	return s.current.Load()
}

// Path is the content file backing the store, empty for defaults.
func (s *Store) Path() string { return s.path }

// Reload re-reads the content file. On error the current registry stays.
func (s *Store) Reload() error {
	reg, err := Load(s.path)
	if err != nil {
		return err
	}
	s.current.Store(reg)
	return nil
}
