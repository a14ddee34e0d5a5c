package report

import (
	"sync"
	"time"

	"fuelprice-validation/internal/validation"

	"github.com/google/uuid"
)

// Stored is a report kept for later download.
type Stored struct {
	ID        string
	Dataset   string
	CreatedAt time.Time
	ExpiresAt time.Time
	Report    *validation.Report
}

// Store keeps recent reports in memory. Entries expire after ttl.
type Store struct {
	mu    sync.RWMutex
	store map[string]*Stored
	ttl   time.Duration
	now   func() time.Time
	stop  chan struct{}
	once  sync.Once
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		store: make(map[string]*Stored),
		ttl:   ttl,
		now:   time.Now,
		stop:  make(chan struct{}),
	}
}

// Put stores rep under a new id.
func (s *Store) Put(dataset string, rep *validation.Report) *Stored {
	now := s.now()
	entry := &Stored{
		ID:        uuid.New().String(),
		Dataset:   dataset,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
		Report:    rep,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.store[entry.ID] = entry
	return entry
}

// Get returns a stored report if it exists and has not expired.
func (s *Store) Get(id string) (*Stored, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.store[id]
	if !exists {
		return nil, false
	}
	if s.now().After(entry.ExpiresAt) {
		return nil, false
	}
	return entry, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.store)
}

// Prune removes expired entries.
func (s *Store) Prune() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for id, entry := range s.store {
		if now.After(entry.ExpiresAt) {
			delete(s.store, id)
		}
	}
}

// StartCleanup prunes every interval until Close is called.
func (s *Store) StartCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.Prune()
			case <-s.stop:
				return
			}
		}
	}()
}

func (s *Store) Close() {
	s.once.Do(func() { close(s.stop) })
}
