// Package memory provides an in-memory profile source, used for demos
// and tests where no database is available.
package memory

import (
	"context"
	"sync"

	"github.com/grantu-labs/grantbot/internal/core/domain"
	"github.com/grantu-labs/grantbot/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ProfileSource = (*Source)(nil)

// Source holds a fixed set of mentor profiles in memory.
type Source struct {
	mu       sync.RWMutex
	profiles []domain.ProfileRecord
}

// NewSource creates a source over the given profiles.
func NewSource(profiles []domain.ProfileRecord) *Source {
	return &Source{profiles: profiles}
}

// Fetch returns a copy of the held profiles.
func (s *Source) Fetch(_ context.Context) ([]domain.ProfileRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ProfileRecord, len(s.profiles))
	copy(out, s.profiles)
	return out, nil
}

// Add appends profiles to the source.
func (s *Source) Add(profiles ...domain.ProfileRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append(s.profiles, profiles...)
}

// Close releases resources.
func (s *Source) Close() error {
	return nil
}
