package session

import (
	"container/list"
	"sync"
	"time"

	"github.com/nutmegai/nutmeg/internal/models"
)

const janitorInterval = time.Minute

// MemoryStore is an in-process Store: an LRU-ordered map with TTL eviction.
// Capacity bounds the number of live sessions and maxTurns bounds each
// session's history, so a long-running deployment cannot grow without limit.
type MemoryStore struct {
	capacity int
	maxTurns int
	ttl      time.Duration

	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List
	locks   map[string]*sessionLock

	done     chan struct{}
	stopOnce sync.Once
}

type sessionEntry struct {
	id        string
	turns     []models.Turn
	expiresAt time.Time
}

type sessionLock struct {
	mu   sync.Mutex
	refs int
}

// NewMemoryStore creates a store holding at most capacity sessions, each
// expiring ttl after its last access and keeping at most maxTurns turns.
// A background janitor sweeps expired sessions until Close is called.
func NewMemoryStore(capacity, maxTurns int, ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		capacity: capacity,
		maxTurns: maxTurns,
		ttl:      ttl,
		entries:  make(map[string]*list.Element),
		lru:      list.New(),
		locks:    make(map[string]*sessionLock),
		done:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

// Get returns a copy of the session's turns, refreshing its TTL.
func (s *MemoryStore) Get(id string) []models.Turn {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[id]
	if !ok {
		return nil
	}
	entry := elem.Value.(*sessionEntry)
	if time.Now().After(entry.expiresAt) {
		s.removeLocked(elem)
		return nil
	}
	entry.expiresAt = time.Now().Add(s.ttl)
	s.lru.MoveToFront(elem)
	return append([]models.Turn(nil), entry.turns...)
}

// Append adds turns to the session, creating it if needed. When the session
// exceeds maxTurns the oldest turns are dropped; when the store exceeds
// capacity the least recently used session is evicted.
func (s *MemoryStore) Append(id string, turns ...models.Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elem, ok := s.entries[id]
	if !ok {
		entry := &sessionEntry{id: id, expiresAt: time.Now().Add(s.ttl)}
		elem = s.lru.PushFront(entry)
		s.entries[id] = elem
		if s.capacity > 0 && s.lru.Len() > s.capacity {
			if oldest := s.lru.Back(); oldest != nil {
				s.removeLocked(oldest)
			}
		}
	}

	entry := elem.Value.(*sessionEntry)
	entry.turns = append(entry.turns, turns...)
	if s.maxTurns > 0 && len(entry.turns) > s.maxTurns {
		entry.turns = append([]models.Turn(nil), entry.turns[len(entry.turns)-s.maxTurns:]...)
	}
	entry.expiresAt = time.Now().Add(s.ttl)
	s.lru.MoveToFront(elem)
}

// Evict removes the session.
func (s *MemoryStore) Evict(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if elem, ok := s.entries[id]; ok {
		s.removeLocked(elem)
	}
}

// Lock acquires the per-session mutex. The refcount keeps the lock table from
// accumulating an entry per session id ever seen.
func (s *MemoryStore) Lock(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sessionLock{}
		s.locks[id] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, id)
		}
		s.mu.Unlock()
	}
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lru.Len()
}

// Close stops the janitor. The store remains usable but expired sessions are
// then only dropped lazily on access.
func (s *MemoryStore) Close() {
	s.stopOnce.Do(func() { close(s.done) })
}

func (s *MemoryStore) removeLocked(elem *list.Element) {
	entry := elem.Value.(*sessionEntry)
	s.lru.Remove(elem)
	delete(s.entries, entry.id)
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for elem := s.lru.Back(); elem != nil; {
		prev := elem.Prev()
		if now.After(elem.Value.(*sessionEntry).expiresAt) {
			s.removeLocked(elem)
		}
		elem = prev
	}
}
