package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"excursion-booking/internal/entity"
)

type memoryEntry struct {
	principal entity.Principal
	expiresAt time.Time
}

// MemoryStore is the default session backend for single-process runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		ttl:     normalizeTTL(ttl),
	}
}

func (s *MemoryStore) Create(ctx context.Context, principal *entity.Principal) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = memoryEntry{
		principal: *principal,
		expiresAt: time.Now().Add(s.ttl),
	}
	return token, nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (*entity.Principal, error) {
	s.mu.RLock()
	entry, ok := s.entries[token]
	s.mu.RUnlock()

	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries, token)
		s.mu.Unlock()
		return nil, nil
	}

	principal := entry.principal
	return &principal, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
	return nil
}
