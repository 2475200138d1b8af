package profiles

import (
	"context"
	"sync"

	"github.com/Maria-Villafuerte/MCP/internal/colorimetry"
)

// MemoryStore keeps everything in process memory. It is the backend for
// tests and for throwaway sessions.
type MemoryStore struct {
	keys *keyLock

	mu       sync.RWMutex
	profiles map[string]*colorimetry.Profile
	history  map[string][]colorimetry.Palette
	order    []string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		keys:     newKeyLock(),
		profiles: make(map[string]*colorimetry.Profile),
		history:  make(map[string][]colorimetry.Palette),
	}
}

func (s *MemoryStore) Put(_ context.Context, p *colorimetry.Profile) error {
	if err := ValidateUserID(p.UserID); err != nil {
		return err
	}
	unlock := s.keys.Lock(p.UserID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.profiles[p.UserID]; ok {
		p.CreatedAt = existing.CreatedAt
	} else {
		s.order = append(s.order, p.UserID)
	}
	s.profiles[p.UserID] = cloneProfile(p)
	return nil
}

func (s *MemoryStore) Get(_ context.Context, userID string) (*colorimetry.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, colorimetry.ProfileNotFound(userID)
	}
	return cloneProfile(p), nil
}

func (s *MemoryStore) List(_ context.Context) ([]colorimetry.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]colorimetry.Profile, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *cloneProfile(s.profiles[id]))
	}
	return out, nil
}

func (s *MemoryStore) Delete(_ context.Context, userID string) error {
	unlock := s.keys.Lock(userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[userID]; !ok {
		return colorimetry.ProfileNotFound(userID)
	}
	delete(s.profiles, userID)
	delete(s.history, userID)
	for i, id := range s.order {
		if id == userID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) AppendPalette(_ context.Context, userID string, p *colorimetry.Palette) error {
	unlock := s.keys.Lock(userID)
	defer unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[userID]; !ok {
		return colorimetry.ProfileNotFound(userID)
	}
	s.history[userID] = append(s.history[userID], clonePalette(p))
	return nil
}

func (s *MemoryStore) History(_ context.Context, userID string) ([]colorimetry.Palette, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.profiles[userID]; !ok {
		return nil, colorimetry.ProfileNotFound(userID)
	}
	h := s.history[userID]
	out := make([]colorimetry.Palette, len(h))
	for i := range h {
		out[i] = clonePalette(&h[i])
	}
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }
