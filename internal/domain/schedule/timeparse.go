package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidTime is returned for time strings NormalizeTime cannot interpret.
var ErrInvalidTime = errors.New("invalid time format")

// NormalizeTime canonicalizes common clock spellings to zero-padded 24h
// "HH:MM". Accepted inputs include "9", "09", "9:00", "9.00", "9am",
// "1:30 pm", "13:45". Hours above 23 or minutes above 59 are rejected.
// The function is pure and knows nothing about timezones.
func NormalizeTime(raw string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(raw))
	if t == "" {
		return "", ErrInvalidTime
	}
	t = strings.ReplaceAll(t, ".", ":")
	t = strings.ReplaceAll(t, " ", "")

	var meridiem string
	if strings.HasSuffix(t, "am") || strings.HasSuffix(t, "pm") {
		meridiem = t[len(t)-2:]
		t = t[:len(t)-2]
	}

	var hour, minute int
	switch {
	case allDigits(t):
		h, err := strconv.Atoi(t)
		if err != nil {
			return "", ErrInvalidTime
		}
		hour = h
	case strings.Contains(t, ":"):
		h, m, ok := splitClock(t)
		if !ok {
			return "", ErrInvalidTime
		}
		hour, minute = h, m
	default:
		return "", ErrInvalidTime
	}

	switch meridiem {
	case "am":
		if hour == 12 {
			hour = 0
		}
	case "pm":
		if hour != 12 {
			hour += 12
		}
	}

	if hour > 23 || minute > 59 {
		return "", ErrInvalidTime
	}
	return fmt.Sprintf("%02d:%02d", hour, minute), nil
}
