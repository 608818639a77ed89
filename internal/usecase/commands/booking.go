package commands

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"salon-scheduler/internal/domain/booking"
	"salon-scheduler/internal/domain/schedule"
	"salon-scheduler/internal/pkg/clock"
	"salon-scheduler/internal/pkg/config"
	"salon-scheduler/internal/pkg/errs"
	"salon-scheduler/internal/pkg/keylock"
	"salon-scheduler/internal/usecase/queries"
)

var (
	ErrClosedDay       = errs.New("closed that day")
	ErrSlotUnavailable = errs.New("slot not available")
)

// SlotUnavailableError rejects a booking whose start time is not in the
// freshly recomputed free set — the race-detection path — and carries
// alternatives so the caller never needs a second round trip.
type SlotUnavailableError struct {
	Date            string
	DurationMinutes int
	Alternatives    []string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot not available on %s", e.Date)
}

func (e *SlotUnavailableError) Unwrap() error {
	return ErrSlotUnavailable
}

// Write-side store ports.
type HoursRepository interface {
	Get(ctx context.Context) (schedule.Config, error)
}

type CalendarRepository interface {
	Read(ctx context.Context, date string) ([]string, error)
	// Write replaces the date's whole interval list; the engine never issues
	// partial updates.
	Write(ctx context.Context, date string, intervals []string) error
}

type BookingLogRepository interface {
	Append(ctx context.Context, rec booking.Record) error
}

type BookParams struct {
	Date      string
	StartTime string
	Service   string
	Client    booking.Client
}

type BookingCommands interface {
	Book(ctx context.Context, p BookParams) (*booking.Confirmation, error)
}

type bookingCommandsImpl struct {
	hours     HoursRepository
	calendar  CalendarRepository
	log       BookingLogRepository
	schedule  queries.ScheduleQueries
	dateLocks *keylock.KeyedMutex
	clock     clock.Clock
	altLimit  int
}

func NewBookingCommands(
	hours HoursRepository,
	calendar CalendarRepository,
	log BookingLogRepository,
	scheduleQueries queries.ScheduleQueries,
	dateLocks *keylock.KeyedMutex,
	clk clock.Clock,
	cfg config.Config,
) BookingCommands {
	return &bookingCommandsImpl{
		hours:     hours,
		calendar:  calendar,
		log:       log,
		schedule:  scheduleQueries,
		dateLocks: dateLocks,
		clock:     clk,
		altLimit:  cfg.Booking.AlternativesLimit,
	}
}

// unboundedLimit is larger than any possible slot count for one day.
const unboundedLimit = 24 * 60

// Book re-validates availability immediately before committing. The whole
// re-check + calendar write runs under the per-date lock, so two bookings
// for the same day cannot interleave between check and write.
func (c *bookingCommandsImpl) Book(ctx context.Context, p BookParams) (*booking.Confirmation, error) {
	// Booking should receive an already-resolved date, but tolerate a raw
	// phrase with an embedded daypart.
	cleanedDate, _ := schedule.ExtractDaypart(p.Date)

	start, err := schedule.NormalizeTime(p.StartTime)
	if err != nil {
		return nil, err
	}

	cfg, err := c.hours.Get(ctx)
	if err != nil {
		return nil, errs.Mark(err, queries.ErrStoreFailure)
	}
	now := c.clock.Now().In(cfg.Location())

	day, err := schedule.ParseNaturalDate(cleanedDate, now)
	if err != nil {
		return nil, err
	}
	date := day.Format(schedule.DateLayout)

	unlock := c.dateLocks.Lock(date)
	defer unlock()

	view, err := c.schedule.CheckAvailability(ctx, queries.AvailabilityParams{
		DatePhrase: date,
		Service:    p.Service,
		Limit:      unboundedLimit,
	})
	if err != nil {
		return nil, err
	}
	if view.Closed {
		return nil, errs.Mark(fmt.Errorf("%s is closed", date), ErrClosedDay)
	}

	if !contains(view.Available, start) {
		return nil, &SlotUnavailableError{
			Date:            view.Date,
			DurationMinutes: view.DurationMinutes,
			Alternatives:    firstN(view.Available, c.altLimit),
		}
	}

	startMinute, err := schedule.ParseMinute(start)
	if err != nil {
		return nil, err
	}
	interval := schedule.Range{
		Start: startMinute,
		End:   startMinute + schedule.Minute(view.DurationMinutes),
	}

	existing, err := c.calendar.Read(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, queries.ErrStoreFailure)
	}
	if err := c.calendar.Write(ctx, date, canonicalize(existing, interval.String())); err != nil {
		return nil, errs.Mark(err, queries.ErrStoreFailure)
	}

	// The calendar write above is the durable commit. The contact record is
	// best-effort relative to it: a failure here is logged, not returned,
	// and the slot stays booked.
	rec := booking.NewRecord(date, start, interval.End.String(), p.Service, view.DurationMinutes, p.Client, now)
	if err := c.log.Append(ctx, rec); err != nil {
		slog.Warn("booking record append failed after calendar commit",
			"date", date, "start", start, "error", err.Error())
	}

	return &booking.Confirmation{
		Date:            date,
		Start:           start,
		End:             interval.End.String(),
		Service:         p.Service,
		DurationMinutes: view.DurationMinutes,
		ClientName:      p.Client.Name,
	}, nil
}

// canonicalize inserts the interval, drops duplicates (re-inserting an
// identical interval is a no-op) and sorts by start time so stored state
// stays canonical regardless of insertion order.
func canonicalize(intervals []string, interval string) []string {
	seen := make(map[string]struct{}, len(intervals)+1)
	out := make([]string, 0, len(intervals)+1)
	for _, s := range append(append([]string{}, intervals...), interval) {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return startKey(out[i]) < startKey(out[j])
	})
	return out
}

func startKey(interval string) schedule.Minute {
	r, err := schedule.ParseRange(interval)
	if err != nil {
		return 0
	}
	return r.Start
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func firstN(list []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if n > len(list) {
		n = len(list)
	}
	return append([]string{}, list[:n]...)
}
