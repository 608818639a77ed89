package schedule

import "time"

// DefaultSlotIntervalMinutes is used when the stored config carries a
// non-positive slot interval.
const DefaultSlotIntervalMinutes = 15

// Config is the scheduler configuration as persisted by external tooling.
// Weekly hours are keyed by Monday-first three-letter weekday names;
// exceptions override the weekday default for a specific ISO date, where an
// empty list means closed.
type Config struct {
	Timezone            string              `json:"timezone"`
	SlotIntervalMinutes int                 `json:"slot_interval_minutes"`
	WeeklyHours         map[string][]string `json:"weekly_hours"`
	Exceptions          map[string][]string `json:"exceptions"`
}

// Location resolves the configured IANA timezone, falling back to UTC when
// it is missing or unknown.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c Config) SlotInterval() int {
	if c.SlotIntervalMinutes <= 0 {
		return DefaultSlotIntervalMinutes
	}
	return c.SlotIntervalMinutes
}

// DayHours is the resolved set of open intervals for one date.
type DayHours struct {
	Date    string
	Weekday string
	Ranges  []Range
	Closed  bool
}

// ResolveHours merges weekly recurring hours with date-specific exceptions.
// An exception entry wins even when empty (explicitly closed); otherwise the
// weekday default applies, where missing or empty also means closed.
// Unparseable range strings are skipped.
func ResolveHours(day time.Time, cfg Config) DayHours {
	date := day.Format(DateLayout)
	weekday := WeekdayName(day)

	raw, overridden := cfg.Exceptions[date]
	if !overridden {
		raw = cfg.WeeklyHours[weekday]
	}

	ranges := ParseRanges(raw)
	return DayHours{
		Date:    date,
		Weekday: weekday,
		Ranges:  ranges,
		Closed:  len(ranges) == 0,
	}
}

// Opening is the earliest start across all ranges; ok is false when closed.
func (d DayHours) Opening() (Minute, bool) {
	if len(d.Ranges) == 0 {
		return 0, false
	}
	min := d.Ranges[0].Start
	for _, r := range d.Ranges[1:] {
		if r.Start < min {
			min = r.Start
		}
	}
	return min, true
}

// Closing is the latest end across all ranges; ok is false when closed.
func (d DayHours) Closing() (Minute, bool) {
	if len(d.Ranges) == 0 {
		return 0, false
	}
	max := d.Ranges[0].End
	for _, r := range d.Ranges[1:] {
		if r.End > max {
			max = r.End
		}
	}
	return max, true
}

func (d DayHours) RangeStrings() []string {
	out := make([]string, len(d.Ranges))
	for i, r := range d.Ranges {
		out[i] = r.String()
	}
	return out
}
