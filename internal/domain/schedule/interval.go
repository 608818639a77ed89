package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	ErrInvalidMinute = errors.New("invalid HH:MM value")
	ErrInvalidRange  = errors.New("invalid HH:MM-HH:MM range")
)

// Minute is an offset in minutes from midnight on a business day.
type Minute int

func ParseMinute(s string) (Minute, error) {
	h, m, ok := splitClock(strings.TrimSpace(s))
	if !ok {
		return 0, ErrInvalidMinute
	}
	return Minute(h*60 + m), nil
}

func (m Minute) String() string {
	return fmt.Sprintf("%02d:%02d", int(m)/60, int(m)%60)
}

// Range is a half-open [Start, End) interval within a single day.
type Range struct {
	Start Minute
	End   Minute
}

func ParseRange(s string) (Range, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return Range{}, ErrInvalidRange
	}
	start, err := ParseMinute(parts[0])
	if err != nil {
		return Range{}, ErrInvalidRange
	}
	end, err := ParseMinute(parts[1])
	if err != nil {
		return Range{}, ErrInvalidRange
	}
	return Range{Start: start, End: end}, nil
}

// ParseRanges parses every well-formed range in raw and silently drops the
// rest; a malformed entry in stored config must not take the whole day down.
func ParseRanges(raw []string) []Range {
	ranges := make([]Range, 0, len(raw))
	for _, s := range raw {
		r, err := ParseRange(s)
		if err != nil {
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges
}

func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// ranges (r.End == o.Start) do not overlap.
func (r Range) Overlaps(o Range) bool {
	return r.Start < o.End && r.End > o.Start
}

func splitClock(s string) (h, m int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 || !allDigits(parts[0]) || !allDigits(parts[1]) {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	m, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return h, m, true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
