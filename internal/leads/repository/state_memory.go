package repository

import (
	"context"
	"sync"
	"time"

	"github.com/engineers-planet/site/internal/leads/domain"
)

type memoryEntry struct {
	phase domain.Phase
	timer *time.Timer
}

// MemoryStateStore keeps form phases in process memory and resets submitted
// forms with time.AfterFunc.
type MemoryStateStore struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
}

func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{entries: make(map[string]*memoryEntry)}
}

func (s *MemoryStateStore) Begin(_ context.Context, formID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[formID]; ok {
		switch e.phase {
		case domain.PhaseSubmitting:
			return domain.ErrFormBusy
		case domain.PhaseSubmitted:
			return domain.ErrFormSubmitted
		}
	}
	s.entries[formID] = &memoryEntry{phase: domain.PhaseSubmitting}
	return nil
}

func (s *MemoryStateStore) Complete(_ context.Context, formID string, resetAfter time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := &memoryEntry{phase: domain.PhaseSubmitted}
	s.entries[formID] = e
	e.timer = time.AfterFunc(resetAfter, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// only clear the entry this timer was created for
		if s.entries[formID] == e {
			delete(s.entries, formID)
		}
	})
	return nil
}

func (s *MemoryStateStore) Abort(_ context.Context, formID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[formID]; ok && e.phase == domain.PhaseSubmitting {
		delete(s.entries, formID)
	}
	return nil
}

func (s *MemoryStateStore) Phase(_ context.Context, formID string) (domain.Phase, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, ok := s.entries[formID]; ok {
		return e.phase, nil
	}
	return domain.PhaseEditing, nil
}

// Close stops pending reset timers.
func (s *MemoryStateStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
		delete(s.entries, id)
	}
}
