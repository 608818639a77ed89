//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"salon-scheduler/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.EquateEmpty(),
}

func weeklyConfig() schedule.Config {
	return schedule.Config{
		Timezone:            "America/New_York",
		SlotIntervalMinutes: 15,
		WeeklyHours: map[string][]string{
			"Mon": {"09:00-17:00"},
			"Sat": {"10:00-14:00"},
			"Sun": {},
		},
		Exceptions: map[string][]string{
			"2026-09-07": {"12:00-15:00"},
			"2026-12-25": {},
		},
	}
}

func TestResolveHours(t *testing.T) {
	cfg := weeklyConfig()

	t.Run("weekday default", func(t *testing.T) {
		got := schedule.ResolveHours(day(2026, 8, 31), cfg) // Monday
		expected := schedule.DayHours{
			Date:    "2026-08-31",
			Weekday: "Mon",
			Ranges:  schedule.ParseRanges([]string{"09:00-17:00"}),
		}
		if diff := cmp.Diff(expected, got, cmpOpts...); diff != "" {
			t.Errorf("DayHours mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty weekday means closed", func(t *testing.T) {
		got := schedule.ResolveHours(day(2026, 9, 6), cfg) // Sunday
		assert.True(t, got.Closed)
		assert.Empty(t, got.Ranges)
	})

	t.Run("missing weekday means closed", func(t *testing.T) {
		got := schedule.ResolveHours(day(2026, 9, 2), cfg) // Wednesday, not configured
		assert.True(t, got.Closed)
	})

	t.Run("exception overrides weekday", func(t *testing.T) {
		got := schedule.ResolveHours(day(2026, 9, 7), cfg) // Monday with exception
		expected := schedule.DayHours{
			Date:    "2026-09-07",
			Weekday: "Mon",
			Ranges:  schedule.ParseRanges([]string{"12:00-15:00"}),
		}
		if diff := cmp.Diff(expected, got, cmpOpts...); diff != "" {
			t.Errorf("DayHours mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty exception closes an open weekday", func(t *testing.T) {
		got := schedule.ResolveHours(day(2026, 12, 25), cfg) // Friday, explicitly closed
		assert.True(t, got.Closed)
	})

	t.Run("malformed ranges are skipped", func(t *testing.T) {
		cfg := weeklyConfig()
		cfg.WeeklyHours["Mon"] = []string{"garbage", "09:00-12:00"}
		got := schedule.ResolveHours(day(2026, 8, 31), cfg)
		assert.Equal(t, []string{"09:00-12:00"}, got.RangeStrings())
	})

	t.Run("all ranges malformed means closed", func(t *testing.T) {
		cfg := weeklyConfig()
		cfg.WeeklyHours["Mon"] = []string{"garbage"}
		got := schedule.ResolveHours(day(2026, 8, 31), cfg)
		assert.True(t, got.Closed)
	})
}

func TestDayHoursOpeningClosing(t *testing.T) {
	t.Run("split shift", func(t *testing.T) {
		hours := schedule.DayHours{Ranges: schedule.ParseRanges([]string{"14:00-18:00", "09:00-12:00"})}

		opening, ok := hours.Opening()
		require.True(t, ok)
		assert.Equal(t, "09:00", opening.String())

		closing, ok := hours.Closing()
		require.True(t, ok)
		assert.Equal(t, "18:00", closing.String())
	})

	t.Run("closed day", func(t *testing.T) {
		hours := schedule.DayHours{Closed: true}
		_, ok := hours.Opening()
		assert.False(t, ok)
		_, ok = hours.Closing()
		assert.False(t, ok)
	})
}

func TestConfigLocation(t *testing.T) {
	assert.Equal(t, "America/New_York", weeklyConfig().Location().String())

	assert.Equal(t, time.UTC, schedule.Config{}.Location())
	assert.Equal(t, time.UTC, schedule.Config{Timezone: "Not/AZone"}.Location())
}

func TestConfigSlotInterval(t *testing.T) {
	assert.Equal(t, 15, weeklyConfig().SlotInterval())
	assert.Equal(t, schedule.DefaultSlotIntervalMinutes, schedule.Config{}.SlotInterval())
	assert.Equal(t, schedule.DefaultSlotIntervalMinutes, schedule.Config{SlotIntervalMinutes: -5}.SlotInterval())
}
