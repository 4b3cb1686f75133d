package store

import (
	"sync"
	"time"

	"github.com/ziadkadry99/homepage/internal/content"
)

// Store holds the most recently fetched content document in memory.
// Documents are replaced wholesale and never modified in place, so a
// pointer returned by Get stays valid and consistent.
type Store struct {
	mu       sync.RWMutex
	doc      *content.SiteContent
	loadedAt time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Put replaces the held document.
func (s *Store) Put(doc *content.SiteContent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = doc
	s.loadedAt = time.Now()
}

// Get returns the held document, or nil when nothing was loaded yet.
func (s *Store) Get() *content.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// LoadedAt returns when the held document was stored. It is the zero time
// when the store is empty.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
