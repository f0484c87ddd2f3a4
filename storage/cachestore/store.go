package cachestore

import (
	"sync"

	"github.com/trezcool/eduhub/core/cache"
)

type (
	// Store is an in-memory cache.Store. Writes to the same key follow
	// last-write-wins; responses for the same URL are expected to be
	// idempotent-enough duplicates.
	Store struct {
		mutex       sync.RWMutex
		generations map[string]*generation
	}

	generation struct {
		name    string
		mutex   sync.RWMutex
		entries map[cache.RequestKey]cache.StoredResponse
	}
)

var (
	_ cache.Store      = (*Store)(nil)
	_ cache.Generation = (*generation)(nil)
)

func Open() *Store {
	return &Store{generations: make(map[string]*generation)}
}

func (s *Store) Open(name string) (cache.Generation, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	gen, ok := s.generations[name]
	if !ok {
		gen = &generation{name: name, entries: make(map[cache.RequestKey]cache.StoredResponse)}
		s.generations[name] = gen
	}
	return gen, nil
}

func (s *Store) Names() ([]string, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	names := make([]string, 0, len(s.generations))
	for name := range s.generations {
		names = append(names, name)
	}
	return names, nil
}

func (s *Store) Delete(name string) (bool, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	_, ok := s.generations[name]
	delete(s.generations, name)
	return ok, nil
}

func (g *generation) Name() string { return g.name }

func (g *generation) Match(key cache.RequestKey) (cache.StoredResponse, bool) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	res, ok := g.entries[key]
	if !ok {
		return cache.StoredResponse{}, false
	}
	return res.Clone(), true
}

func (g *generation) Put(key cache.RequestKey, res cache.StoredResponse) error {
	if !key.Cacheable() {
		return cache.ErrNotCacheable
	}
	g.mutex.Lock()
	defer g.mutex.Unlock()
	g.entries[key] = res.Clone()
	return nil
}

func (g *generation) Keys() []cache.RequestKey {
	g.mutex.RLock()
	defer g.mutex.RUnlock()
	keys := make([]cache.RequestKey, 0, len(g.entries))
	for key := range g.entries {
		keys = append(keys, key)
	}
	return keys
}
