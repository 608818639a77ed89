package schedule

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// ErrDateNotUnderstood is returned when a phrase matches none of the
// recognized date forms. Callers must ask for clarification instead of
// assuming "today".
var ErrDateNotUnderstood = errors.New("date phrase not understood")

// weekdayNames is Monday-first, matching the weekly hours config keys.
var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayName returns the three-letter, Monday-first weekday key for t.
func WeekdayName(t time.Time) string {
	return weekdayNames[weekdayIndex(t)]
}

func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// ParseNaturalDate resolves a user phrase to midnight of a concrete day in
// the anchor's location. Recognized forms, in precedence order: ISO
// YYYY-MM-DD, MM/DD (anchor's year), today/tomorrow aliases, a bare weekday
// (next occurrence, today included), and "next <weekday>" (always at least a
// full week out).
func ParseNaturalDate(phrase string, anchor time.Time) (time.Time, error) {
	s := strings.ToLower(strings.TrimSpace(phrase))
	if s == "" {
		return time.Time{}, ErrDateNotUnderstood
	}

	if len(s) == 10 && s[4] == '-' && s[7] == '-' {
		if t, err := time.ParseInLocation(DateLayout, s, anchor.Location()); err == nil {
			return t, nil
		}
	}

	if strings.Contains(s, "/") {
		if t, ok := parseMonthDay(s, anchor); ok {
			return t, nil
		}
	}

	switch s {
	case "today", "todays", "to day":
		return midnight(anchor), nil
	case "tomorrow", "tmrw", "tmr":
		return midnight(anchor.AddDate(0, 0, 1)), nil
	}

	tokens := strings.Fields(s)
	switch {
	case len(tokens) == 1:
		if idx, ok := namedWeekday(tokens[0]); ok {
			delta := (idx - weekdayIndex(anchor) + 7) % 7
			return midnight(anchor.AddDate(0, 0, delta)), nil
		}
	case len(tokens) == 2 && tokens[0] == "next":
		if idx, ok := namedWeekday(tokens[1]); ok {
			delta := (idx - weekdayIndex(anchor) + 7) % 7
			if delta == 0 {
				delta = 7
			}
			return midnight(anchor.AddDate(0, 0, delta)), nil
		}
	}

	return time.Time{}, ErrDateNotUnderstood
}

func parseMonthDay(s string, anchor time.Time) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 || !allDigits(parts[0]) || !allDigits(parts[1]) {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, false
	}
	t := time.Date(anchor.Year(), time.Month(month), day, 0, 0, 0, 0, anchor.Location())
	// time.Date normalizes out-of-range values (13/45 rolls over); treat any
	// rollover as not-a-date rather than a surprise month.
	if int(t.Month()) != month || t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}

// namedWeekday matches a weekday token by its first three letters, so
// "fri" and "friday" both resolve.
func namedWeekday(token string) (int, bool) {
	if len(token) < 3 {
		return 0, false
	}
	prefix := token[:3]
	for i, name := range weekdayNames {
		if strings.EqualFold(prefix, name) {
			return i, true
		}
	}
	return 0, false
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
