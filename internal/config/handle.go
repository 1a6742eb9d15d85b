package config

import "sync"

// Handle owns the single in-process Store instance. It is constructed once
// at startup and passed by reference to whichever commands need the record;
// the store itself is only opened on first use.
//
// A failed open is not cached, so a later call may retry once the
// filesystem condition is fixed.
type Handle struct {
	mu    sync.Mutex
	path  string
	store *Store
}

// NewHandle creates a handle bound to the given backing path. An empty path
// means the default per-user location.
func NewHandle(path string) *Handle {
	return &Handle{path: path}
}

// Get returns the process-wide store, opening it on first call. Repeated
// calls return the identical instance.
func (h *Handle) Get() (*Store, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.store != nil {
		return h.store, nil
	}

	store, err := Open(h.path)
	if err != nil {
		return nil, err
	}

	h.store = store
	return store, nil
}
