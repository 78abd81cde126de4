package cartrecords

import (
	"context"
	"log/slog"
	"sync"

	"storefront-cart/internal/domain/cart"
)

// MemoryStore keeps cart records in process memory. It shares the codec
// with RedisStore so tests exercise the same serialization path.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]byte)}
}

func (s *MemoryStore) Load(_ context.Context, userKey string) (cart.Cart, error) {
	s.mu.RLock()
	data, ok := s.records[userKey]
	s.mu.RUnlock()
	if !ok {
		return cart.Cart{}, nil
	}

	c, err := decode(data)
	if err != nil {
		slog.Warn("discarding malformed cart record", "user_key", userKey, "error", err.Error())
		return cart.Cart{}, nil
	}
	return c, nil
}

func (s *MemoryStore) Save(_ context.Context, userKey string, c cart.Cart) error {
	data, err := encode(c)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.records[userKey] = data
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, userKey string) error {
	s.mu.Lock()
	delete(s.records, userKey)
	s.mu.Unlock()
	return nil
}

// Corrupt overwrites a record with an undecodable payload. Test hook for
// the fail-open read path.
func (s *MemoryStore) Corrupt(userKey string) {
	s.mu.Lock()
	s.records[userKey] = []byte("{not json")
	s.mu.Unlock()
}
