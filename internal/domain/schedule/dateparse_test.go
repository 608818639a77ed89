//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"salon-scheduler/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// anchor is a Monday afternoon; parsing must ignore the time-of-day part.
var anchor = time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParseNaturalDate(t *testing.T) {
	tests := []struct {
		name   string
		phrase string
		want   time.Time
		errIs  error
	}{
		{name: "iso date", phrase: "2026-12-25", want: day(2026, 12, 25)},
		{name: "iso date keeps past dates", phrase: "2020-01-02", want: day(2020, 1, 2)},
		{name: "malformed iso falls through", phrase: "2026-13-99", errIs: schedule.ErrDateNotUnderstood},
		{name: "month slash day", phrase: "9/5", want: day(2026, 9, 5)},
		{name: "zero padded month slash day", phrase: "09/05", want: day(2026, 9, 5)},
		{name: "slash rollover rejected", phrase: "13/45", errIs: schedule.ErrDateNotUnderstood},
		{name: "slash with junk rejected", phrase: "9/5/2026", errIs: schedule.ErrDateNotUnderstood},
		{name: "today", phrase: "today", want: day(2026, 8, 31)},
		{name: "todays", phrase: "todays", want: day(2026, 8, 31)},
		{name: "to day", phrase: "to day", want: day(2026, 8, 31)},
		{name: "tomorrow", phrase: "tomorrow", want: day(2026, 9, 1)},
		{name: "tmrw", phrase: "tmrw", want: day(2026, 9, 1)},
		{name: "tmr", phrase: "tmr", want: day(2026, 9, 1)},
		{name: "bare weekday same day means today", phrase: "monday", want: day(2026, 8, 31)},
		{name: "bare weekday later this week", phrase: "friday", want: day(2026, 9, 4)},
		{name: "three letter weekday", phrase: "fri", want: day(2026, 9, 4)},
		{name: "weekday is case insensitive", phrase: "  SATURDAY ", want: day(2026, 9, 5)},
		{name: "next same weekday is a full week out", phrase: "next monday", want: day(2026, 9, 7)},
		{name: "next different weekday stays this week", phrase: "next fri", want: day(2026, 9, 4)},
		{name: "empty phrase", phrase: "", errIs: schedule.ErrDateNotUnderstood},
		{name: "blank phrase", phrase: "   ", errIs: schedule.ErrDateNotUnderstood},
		{name: "unknown phrase", phrase: "whenever works", errIs: schedule.ErrDateNotUnderstood},
		{name: "two letter weekday rejected", phrase: "fr", errIs: schedule.ErrDateNotUnderstood},
		{name: "next with unknown word", phrase: "next week", errIs: schedule.ErrDateNotUnderstood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := schedule.ParseNaturalDate(tt.phrase, anchor)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestParseNaturalDate_NeverReturnsTodayForNextWeekday(t *testing.T) {
	// Walk a full week of anchors; "next <that weekday>" must always land
	// strictly in the future.
	for i := 0; i < 7; i++ {
		a := anchor.AddDate(0, 0, i)
		phrase := "next " + schedule.WeekdayName(a)
		got, err := schedule.ParseNaturalDate(phrase, a)
		require.NoError(t, err, phrase)
		assert.Equal(t, a.AddDate(0, 0, 7).Format(schedule.DateLayout), got.Format(schedule.DateLayout), phrase)
	}
}

func TestParseNaturalDate_UsesAnchorLocation(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := schedule.ParseNaturalDate("tomorrow", time.Date(2026, 8, 31, 23, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Equal(t, "2026-09-01", got.Format(schedule.DateLayout))
	assert.Equal(t, loc, got.Location())
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Mon", schedule.WeekdayName(day(2026, 8, 31)))
	assert.Equal(t, "Sat", schedule.WeekdayName(day(2026, 9, 5)))
	assert.Equal(t, "Sun", schedule.WeekdayName(day(2026, 9, 6)))
}
