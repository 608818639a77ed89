// Package memory is an in-process storage driver used by tests and as the
// session fallback when redis is not configured.
package memory

import (
	"context"
	"sync"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/domain/conversation"
	"salon-scheduler/internal/domain/schedule"
)

type Store struct {
	mu       sync.RWMutex
	hours    schedule.Config
	services []catalog.Service
	business catalog.BusinessInfo
	calendar map[string][]string
	records  []booking.Record
	sessions map[string]conversation.State
}

func NewStore() *Store {
	return &Store{
		business: catalog.BusinessInfo{},
		calendar: map[string][]string{},
		sessions: map[string]conversation.State{},
	}
}

// SeedHours, SeedServices and SeedBusiness replace the respective fixture
// wholesale.
func (s *Store) SeedHours(cfg schedule.Config) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hours = cfg
}

func (s *Store) SeedServices(services []catalog.Service) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services = append([]catalog.Service(nil), services...)
}

func (s *Store) SeedBusiness(info catalog.BusinessInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.business = info
}

// Records returns a copy of the booking log, for test assertions.
func (s *Store) Records() []booking.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]booking.Record(nil), s.records...)
}

func (s *Store) FindByName(ctx context.Context, name string) (*catalog.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.services {
		if catalog.MatchName(s.services[i].Name, name) {
			svc := s.services[i]
			return &svc, nil
		}
	}
	return nil, nil
}

func (s *Store) List(ctx context.Context) ([]catalog.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]catalog.Service(nil), s.services...), nil
}

func (s *Store) Read(ctx context.Context, date string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.calendar[date]...), nil
}

func (s *Store) Write(ctx context.Context, date string, intervals []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calendar[date] = append([]string(nil), intervals...)
	return nil
}

func (s *Store) Append(ctx context.Context, rec booking.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
	return nil
}

// The hours, business and session ports all name their accessor Get, so each
// gets its own facade over the shared store.
type HoursStore struct{ s *Store }

func (s *Store) Hours() *HoursStore { return &HoursStore{s: s} }

func (h *HoursStore) Get(ctx context.Context) (schedule.Config, error) {
	h.s.mu.RLock()
	defer h.s.mu.RUnlock()
	return h.s.hours, nil
}

type BusinessStore struct{ s *Store }

func (s *Store) Business() *BusinessStore { return &BusinessStore{s: s} }

func (b *BusinessStore) Get(ctx context.Context) (catalog.BusinessInfo, error) {
	b.s.mu.RLock()
	defer b.s.mu.RUnlock()
	return b.s.business, nil
}

type SessionStore struct{ s *Store }

func (s *Store) Sessions() *SessionStore { return &SessionStore{s: s} }

func (st *SessionStore) Get(ctx context.Context, sessionID string) (conversation.State, bool, error) {
	st.s.mu.RLock()
	defer st.s.mu.RUnlock()
	state, ok := st.s.sessions[sessionID]
	return state, ok, nil
}

func (st *SessionStore) Save(ctx context.Context, sessionID string, state conversation.State) error {
	st.s.mu.Lock()
	defer st.s.mu.Unlock()
	st.s.sessions[sessionID] = state
	return nil
}
