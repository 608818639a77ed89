// Package jsonfile is a flat-file storage driver. Each concern lives in its
// own JSON document under a data directory, in the layout small shops tend to
// hand-edit: working_hours.json, services.json, business_info.json,
// calendar.json and bookings.json.
package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/infra"
)

const (
	hoursFile    = "working_hours.json"
	servicesFile = "services.json"
	businessFile = "business_info.json"
	calendarFile = "calendar.json"
	bookingsFile = "bookings.json"
)

type servicesDoc struct {
	Services []catalog.Service `json:"services"`
}

type calendarDoc struct {
	Appointments map[string][]string `json:"appointments"`
}

type bookingsDoc struct {
	Bookings []booking.Record `json:"bookings"`
}

// Store implements every repository port over JSON files. All operations
// share one mutex; the files are small and contention is per-process only,
// so the booking command's date lock remains the real serialization point.
// Reads are served from an in-memory byte cache that every write refreshes
// under the same mutex, so a committed write is visible to the next read.
type Store struct {
	mu    sync.Mutex
	dir   string
	cache map[string][]byte
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, infra.WrapRepoErr(infra.KindIOFailure, "failed to create data dir", err)
	}
	s := &Store{dir: dir, cache: make(map[string][]byte)}
	if err := s.seedDefaults(); err != nil {
		return nil, err
	}
	return s, nil
}

// HoursStore and BusinessStore are facades over the same files; the hours
// and business ports both name their accessor Get, so they cannot share a
// receiver.
type HoursStore struct{ s *Store }

func (s *Store) Hours() *HoursStore { return &HoursStore{s: s} }

func (h *HoursStore) Get(ctx context.Context) (schedule.Config, error) {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()

	var cfg schedule.Config
	if err := h.s.readJSON(hoursFile, &cfg); err != nil {
		return schedule.Config{}, err
	}
	return cfg, nil
}

type BusinessStore struct{ s *Store }

func (s *Store) Business() *BusinessStore { return &BusinessStore{s: s} }

func (b *BusinessStore) Get(ctx context.Context) (catalog.BusinessInfo, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()

	var info catalog.BusinessInfo
	if err := b.s.readJSON(businessFile, &info); err != nil {
		return nil, err
	}
	return info, nil
}

func (s *Store) FindByName(ctx context.Context, name string) (*catalog.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc servicesDoc
	if err := s.readJSON(servicesFile, &doc); err != nil {
		return nil, err
	}
	for i := range doc.Services {
		if catalog.MatchName(doc.Services[i].Name, name) {
			svc := doc.Services[i]
			return &svc, nil
		}
	}
	return nil, nil
}

func (s *Store) List(ctx context.Context) ([]catalog.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc servicesDoc
	if err := s.readJSON(servicesFile, &doc); err != nil {
		return nil, err
	}
	return doc.Services, nil
}

func (s *Store) Read(ctx context.Context, date string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc calendarDoc
	if err := s.readJSON(calendarFile, &doc); err != nil {
		return nil, err
	}
	intervals, ok := doc.Appointments[date]
	if !ok {
		return []string{}, nil
	}
	return intervals, nil
}

func (s *Store) Write(ctx context.Context, date string, intervals []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc calendarDoc
	if err := s.readJSON(calendarFile, &doc); err != nil {
		return err
	}
	if doc.Appointments == nil {
		doc.Appointments = map[string][]string{}
	}
	doc.Appointments[date] = intervals
	return s.writeJSON(calendarFile, doc)
}

func (s *Store) Append(ctx context.Context, rec booking.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc bookingsDoc
	if err := s.readJSON(bookingsFile, &doc); err != nil {
		return err
	}
	doc.Bookings = append(doc.Bookings, rec)
	return s.writeJSON(bookingsFile, doc)
}

func (s *Store) readJSON(name string, out any) error {
	raw, ok := s.cache[name]
	if !ok {
		var err error
		raw, err = os.ReadFile(filepath.Join(s.dir, name))
		if err != nil {
			return infra.WrapRepoErr(infra.KindIOFailure, "failed to read "+name, err)
		}
		s.cache[name] = raw
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return infra.WrapRepoErr(infra.KindIOFailure, "malformed "+name, err)
	}
	return nil
}

// writeJSON goes through a temp file and rename so readers never observe a
// torn document, and swaps the cached bytes once the rename succeeds.
func (s *Store) writeJSON(name string, doc any) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return infra.WrapRepoErr(infra.KindIOFailure, "failed to encode "+name, err)
	}
	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp.*")
	if err != nil {
		return infra.WrapRepoErr(infra.KindIOFailure, "failed to stage "+name, err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return infra.WrapRepoErr(infra.KindIOFailure, "failed to write "+name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return infra.WrapRepoErr(infra.KindIOFailure, "failed to flush "+name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return infra.WrapRepoErr(infra.KindIOFailure, "failed to replace "+name, err)
	}
	s.cache[name] = raw
	return nil
}

func (s *Store) seedDefaults() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	seeds := []struct {
		name string
		doc  any
	}{
		{hoursFile, schedule.Config{
			Timezone:            "America/New_York",
			SlotIntervalMinutes: schedule.DefaultSlotIntervalMinutes,
			WeeklyHours: map[string][]string{
				"Mon": {"09:00-17:00"},
				"Tue": {"09:00-17:00"},
				"Wed": {"09:00-17:00"},
				"Thu": {"09:00-17:00"},
				"Fri": {"09:00-17:00"},
				"Sat": {"10:00-14:00"},
				"Sun": {},
			},
			Exceptions: map[string][]string{},
		}},
		{servicesFile, servicesDoc{Services: []catalog.Service{
			{Name: "Basic Haircut", DurationMinutes: 30, Price: 30.0, Description: "A classic cut and simple styling."},
			{Name: "Skin Fade", DurationMinutes: 45, Price: 45.0, Description: "Tight fade with clean transitions."},
			{Name: "Beard Trim", DurationMinutes: 20, Price: 20.0, Description: "Shape and trim with line cleanup."},
		}}},
		{businessFile, catalog.BusinessInfo{
			"Business Name": "Your Salon",
			"Address":       "",
			"Phone":         "",
			"Email":         "",
			"Timezone":      "America/New_York",
			"Policies":      map[string]any{},
			"Announcements": []any{},
		}},
		{calendarFile, calendarDoc{Appointments: map[string][]string{}}},
		{bookingsFile, bookingsDoc{Bookings: []booking.Record{}}},
	}
	for _, seed := range seeds {
		path := filepath.Join(s.dir, seed.name)
		if _, err := os.Stat(path); err == nil {
			continue
		} else if !os.IsNotExist(err) {
			return infra.WrapRepoErr(infra.KindIOFailure, "failed to stat "+seed.name, err)
		}
		if err := s.writeJSON(seed.name, seed.doc); err != nil {
			return err
		}
	}
	return nil
}
