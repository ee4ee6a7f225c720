package cart

import (
	"context"
	"sync"
)

// Store persists session carts keyed by an opaque session token. A missing
// session yields a fresh empty cart, never an error.
type Store interface {
	Get(ctx context.Context, session string) (*Cart, error)
	Save(ctx context.Context, session string, c *Cart) error
	Delete(ctx context.Context, session string) error
}

// MemoryStore keeps carts in process memory. Used in tests and when no
// Redis address is configured.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]*Cart)}
}

func (s *MemoryStore) Get(ctx context.Context, session string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[session]
	if !ok {
		return New(), nil
	}
	copied := New()
	for id, line := range c.Lines {
		l := *line
		copied.Lines[id] = &l
	}
	return copied, nil
}

func (s *MemoryStore) Save(ctx context.Context, session string, c *Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := New()
	for id, line := range c.Lines {
		l := *line
		copied.Lines[id] = &l
	}
	s.carts[session] = copied
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, session string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, session)
	return nil
}
