//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"consult-booking/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHourRange(t *testing.T) {
	cases := []struct {
		name    string
		start   int
		end     int
		wantErr bool
	}{
		{name: "standard business hours", start: 9, end: 17},
		{name: "full day", start: 0, end: 24},
		{name: "single hour", start: 12, end: 13},
		{name: "negative start", start: -1, end: 17, wantErr: true},
		{name: "end past midnight", start: 9, end: 25, wantErr: true},
		{name: "start equals end", start: 9, end: 9, wantErr: true},
		{name: "inverted range", start: 17, end: 9, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := schedule.ValidateHourRange(c.start, c.end)
			if c.wantErr {
				require.ErrorIs(t, err, schedule.ErrInvalidHourRange)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewWindow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	t.Run("valid window", func(t *testing.T) {
		w, err := schedule.NewWindow(loc, 9, 17)
		require.NoError(t, err)
		assert.Equal(t, 9, w.OpenHour)
		assert.Equal(t, 17, w.CloseHour)
		assert.Equal(t, loc, w.Loc)
	})

	t.Run("invalid range rejected", func(t *testing.T) {
		_, err := schedule.NewWindow(loc, 17, 9)
		require.ErrorIs(t, err, schedule.ErrInvalidHourRange)
	})
}

func TestSlot(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	t.Run("availability tracks booked against capacity", func(t *testing.T) {
		start := time.Date(2025, 3, 3, 10, 0, 0, 0, loc)

		assert.True(t, schedule.Slot{Start: start, Capacity: 3, Booked: 0}.Available())
		assert.True(t, schedule.Slot{Start: start, Capacity: 3, Booked: 2}.Available())
		assert.False(t, schedule.Slot{Start: start, Capacity: 3, Booked: 3}.Available())
		assert.False(t, schedule.Slot{Start: start, Capacity: 0, Booked: 0}.Available())
	})

	t.Run("label renders 12 hour clock", func(t *testing.T) {
		morning := schedule.Slot{Start: time.Date(2025, 3, 3, 9, 0, 0, 0, loc)}
		afternoon := schedule.Slot{Start: time.Date(2025, 3, 3, 16, 0, 0, 0, loc)}
		noon := schedule.Slot{Start: time.Date(2025, 3, 3, 12, 0, 0, 0, loc)}

		assert.Equal(t, "9:00 AM", morning.Label())
		assert.Equal(t, "4:00 PM", afternoon.Label())
		assert.Equal(t, "12:00 PM", noon.Label())
	})
}

func TestParseDay(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	t.Run("midnight in business timezone", func(t *testing.T) {
		day, err := schedule.ParseDay("2025-03-03", loc)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, loc), day)
		_, offset := day.Zone()
		assert.Equal(t, 5*3600, offset)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := schedule.ParseDay("03/03/2025", loc)
		require.Error(t, err)

		_, err = schedule.ParseDay("2025-13-40", loc)
		require.Error(t, err)
	})
}

func TestDayOf(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)

	// 21:30 UTC on March 2nd is already March 3rd in Karachi.
	instant := time.Date(2025, 3, 2, 21, 30, 0, 0, time.UTC)
	day := schedule.DayOf(instant, loc)

	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, loc), day)
}

func TestHourlyStarts(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Karachi")
	require.NoError(t, err)
	day := time.Date(2025, 3, 3, 0, 0, 0, 0, loc)

	t.Run("ascending hourly sequence", func(t *testing.T) {
		got := schedule.HourlyStarts(day, 9, 12)
		want := []time.Time{
			time.Date(2025, 3, 3, 9, 0, 0, 0, loc),
			time.Date(2025, 3, 3, 10, 0, 0, 0, loc),
			time.Date(2025, 3, 3, 11, 0, 0, 0, loc),
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("slot starts mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("close hour is exclusive", func(t *testing.T) {
		got := schedule.HourlyStarts(day, 9, 17)
		require.Len(t, got, 8)
		assert.Equal(t, 16, got[len(got)-1].Hour())
	})
}
