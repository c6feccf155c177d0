// Package store is the application state container: four independent
// slices folded by pure reducers over a closed action union. A Store
// is an explicitly constructed value, not a package singleton, so every
// test (and every embedding program) gets its own isolated instance.
package store

import (
	"sync"
	"sync/atomic"
)

// State is the full application state snapshot. Slice fields are
// treated as immutable: reducers copy before writing, so a snapshot
// stays valid after later dispatches.
type State struct {
	Catalog   CatalogState
	Session   SessionState
	Detail    DetailState
	Favorites FavoritesState
}

type Store struct {
	mu        sync.RWMutex
	state     State
	listeners map[int]func()
	nextID    int
	detailGen atomic.Uint64
}

func New() *Store {
	return &Store{
		state: State{
			Catalog:   initialCatalog(),
			Session:   initialSession(),
			Detail:    initialDetail(),
			Favorites: initialFavorites(),
		},
		listeners: make(map[int]func()),
	}
}

// Dispatch folds the action into every slice. Updates are applied in
// call order and each fold runs atomically with respect to the others.
func (s *Store) Dispatch(action Action) {
	s.mu.Lock()
	s.state.Catalog = reduceCatalog(s.state.Catalog, action)
	s.state.Session = reduceSession(s.state.Session, action)
	s.state.Detail = reduceDetail(s.state.Detail, action)
	s.state.Favorites = reduceFavorites(s.state.Favorites, action)
	notify := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		notify = append(notify, fn)
	}
	s.mu.Unlock()

	for _, fn := range notify {
		fn()
	}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers a listener invoked after every dispatch. The
// returned function removes it.
func (s *Store) Subscribe(listener func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// NextDetailGeneration allocates a monotonic tag for a detail
// navigation; stale results are recognized by comparing against it.
func (s *Store) NextDetailGeneration() uint64 {
	return s.detailGen.Add(1)
}
