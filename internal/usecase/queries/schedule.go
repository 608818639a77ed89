package queries

import (
	"context"
	"strings"
	"time"

	"salon-scheduler/internal/domain/catalog"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/errs"
)

var (
	ErrUnknownDaypart = errs.New("unknown daypart")

	// ErrStoreFailure marks store I/O failures; no scheduling answer can be
	// trusted without a readable store, so these surface as hard errors.
	ErrStoreFailure = errs.New("store operation failed")
)

// Read-side store ports. Implementations live in internal/infra/repository.
type HoursRepository interface {
	Get(ctx context.Context) (schedule.Config, error)
}

type ServiceReader interface {
	// FindByName matches case-insensitively and returns (nil, nil) for an
	// unknown service; the engine then falls back to the default duration.
	FindByName(ctx context.Context, name string) (*catalog.Service, error)
	List(ctx context.Context) ([]catalog.Service, error)
}

type CalendarReader interface {
	Read(ctx context.Context, date string) ([]string, error)
}

type AvailabilityParams struct {
	DatePhrase string
	Service    string
	Limit      int
	// Daypart optionally names a window ("morning", ...). When set it takes
	// precedence over a daypart embedded in the phrase.
	Daypart string
}

type AvailabilityView struct {
	Date            string
	Weekday         string
	Service         string
	DurationMinutes int
	Available       []string
	TotalAvailable  int
	Closed          bool
}

type HoursView struct {
	Date    string
	Weekday string
	Ranges  []string
	Opening string
	Closing string
	Closed  bool
}

type NowView struct {
	Timezone string
	ISO      string
	Date     string
	Time     string
	Weekday  string
}

type ScheduleQueries interface {
	CheckAvailability(ctx context.Context, p AvailabilityParams) (*AvailabilityView, error)
	GetHours(ctx context.Context, datePhrase string) (*HoursView, error)
	GetNow(ctx context.Context) (*NowView, error)
}

type scheduleQueriesImpl struct {
	hours    HoursRepository
	services ServiceReader
	calendar CalendarReader
	clock    clock.Clock
}

func NewScheduleQueries(hours HoursRepository, services ServiceReader, calendar CalendarReader, clk clock.Clock) ScheduleQueries {
	return &scheduleQueriesImpl{
		hours:    hours,
		services: services,
		calendar: calendar,
		clock:    clk,
	}
}

func (q *scheduleQueriesImpl) CheckAvailability(ctx context.Context, p AvailabilityParams) (*AvailabilityView, error) {
	cfg, err := q.hours.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	cleaned, embedded := schedule.ExtractDaypart(p.DatePhrase)

	var daypart *schedule.Daypart
	switch {
	case p.Daypart != "":
		dp, ok := schedule.DaypartByName(p.Daypart)
		if !ok {
			return nil, ErrUnknownDaypart
		}
		daypart = &dp
	case embedded != nil:
		daypart = embedded
	}

	now := q.clock.Now().In(cfg.Location())
	day, err := schedule.ParseNaturalDate(orToday(cleaned), now)
	if err != nil {
		return nil, err
	}

	hours := schedule.ResolveHours(day, cfg)
	view := &AvailabilityView{
		Date:      hours.Date,
		Weekday:   hours.Weekday,
		Service:   p.Service,
		Available: []string{},
		Closed:    hours.Closed,
	}
	if hours.Closed {
		return view, nil
	}

	serviceMinutes, err := q.serviceMinutes(ctx, p.Service)
	if err != nil {
		return nil, err
	}
	view.DurationMinutes = serviceMinutes

	slots := schedule.ExpandSlots(hours.Ranges, cfg.SlotInterval(), serviceMinutes)

	bookedRaw, err := q.calendar.Read(ctx, hours.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	free := schedule.RemoveConflicts(slots, serviceMinutes, schedule.ParseRanges(bookedRaw))

	if daypart != nil {
		narrowed := free[:0]
		for _, s := range free {
			if daypart.Contains(s, serviceMinutes) {
				narrowed = append(narrowed, s)
			}
		}
		free = narrowed
	}

	if hours.Date == now.Format(schedule.DateLayout) {
		nowMinute := now.Hour()*60 + now.Minute()
		upcoming := free[:0]
		for _, s := range free {
			if int(s)+serviceMinutes > nowMinute {
				upcoming = append(upcoming, s)
			}
		}
		free = upcoming
	}

	view.TotalAvailable = len(free)
	limit := p.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > len(free) {
		limit = len(free)
	}
	for _, s := range free[:limit] {
		view.Available = append(view.Available, s.String())
	}
	return view, nil
}

func (q *scheduleQueriesImpl) GetHours(ctx context.Context, datePhrase string) (*HoursView, error) {
	cfg, err := q.hours.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	now := q.clock.Now().In(cfg.Location())
	day, err := schedule.ParseNaturalDate(orToday(datePhrase), now)
	if err != nil {
		return nil, err
	}

	hours := schedule.ResolveHours(day, cfg)
	view := &HoursView{
		Date:    hours.Date,
		Weekday: hours.Weekday,
		Ranges:  hours.RangeStrings(),
		Closed:  hours.Closed,
	}
	if opening, ok := hours.Opening(); ok {
		view.Opening = opening.String()
	}
	if closing, ok := hours.Closing(); ok {
		view.Closing = closing.String()
	}
	return view, nil
}

func (q *scheduleQueriesImpl) GetNow(ctx context.Context) (*NowView, error) {
	cfg, err := q.hours.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	loc := cfg.Location()
	now := q.clock.Now().In(loc)
	return &NowView{
		Timezone: loc.String(),
		ISO:      now.Format(time.RFC3339),
		Date:     now.Format(schedule.DateLayout),
		Time:     now.Format("15:04"),
		Weekday:  schedule.WeekdayName(now),
	}, nil
}

func (q *scheduleQueriesImpl) serviceMinutes(ctx context.Context, name string) (int, error) {
	if strings.TrimSpace(name) == "" {
		return catalog.DefaultDurationMinutes, nil
	}
	svc, err := q.services.FindByName(ctx, name)
	if err != nil {
		return 0, errs.Mark(err, ErrStoreFailure)
	}
	return svc.Minutes(), nil
}

// orToday keeps the callers' "no date means today" convention without
// weakening the parser itself, which still rejects unrecognized phrases.
func orToday(phrase string) string {
	if strings.TrimSpace(phrase) == "" {
		return "today"
	}
	return phrase
}
