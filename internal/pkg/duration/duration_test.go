package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDayCount(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"same day", date(2024, 3, 10), date(2024, 3, 10), 1},
		{"next day", date(2024, 3, 10), date(2024, 3, 11), 2},
		{"full week", date(2024, 3, 4), date(2024, 3, 10), 7},
		{"across month boundary", date(2024, 1, 30), date(2024, 2, 2), 4},
		{"across leap day", date(2024, 2, 28), date(2024, 3, 1), 3},
		{"time components ignored", date(2024, 3, 10).Add(23 * time.Hour), date(2024, 3, 11), 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := DayCount(c.start, c.end)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestDayCountInverted(t *testing.T) {
	_, err := DayCount(date(2024, 3, 11), date(2024, 3, 10))
	require.Error(t, err)
}

func TestHourlySplit(t *testing.T) {
	base := date(2024, 3, 10)
	cases := []struct {
		name        string
		start, end  time.Time
		hours, mins int
	}{
		{"zero", base, base, 0, 0},
		{"exact hours", base.Add(8 * time.Hour), base.Add(16 * time.Hour), 8, 0},
		{"with remainder", base.Add(9 * time.Hour), base.Add(17*time.Hour + 45*time.Minute), 8, 45},
		{"under an hour", base, base.Add(25 * time.Minute), 0, 25},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h, m, err := HourlySplit(c.start, c.end)
			require.NoError(t, err)
			assert.Equal(t, c.hours, h)
			assert.Equal(t, c.mins, m)
		})
	}
}

func TestHourlySplitTotalMinutes(t *testing.T) {
	// hours*60+minutes must equal the elapsed minutes for arbitrary spans
	base := date(2024, 3, 10)
	for _, span := range []time.Duration{1 * time.Minute, 59 * time.Minute, 60 * time.Minute, 487 * time.Minute, 24 * time.Hour} {
		h, m, err := HourlySplit(base, base.Add(span))
		require.NoError(t, err)
		assert.Equal(t, int(span.Minutes()), h*60+m, "span %v", span)
	}
}

func TestHourlySplitInverted(t *testing.T) {
	base := date(2024, 3, 10)
	_, _, err := HourlySplit(base.Add(time.Hour), base)
	require.Error(t, err)
}

func TestFormatRange(t *testing.T) {
	base := date(2024, 3, 10)

	s, err := FormatRange(base, base, false)
	require.NoError(t, err)
	assert.Equal(t, "1 day", s)

	s, err = FormatRange(base, base.AddDate(0, 0, 4), false)
	require.NoError(t, err)
	assert.Equal(t, "5 days", s)

	s, err = FormatRange(base.Add(9*time.Hour), base.Add(12*time.Hour+30*time.Minute), true)
	require.NoError(t, err)
	assert.Equal(t, "3h 30m", s)

	_, err = FormatRange(base.AddDate(0, 0, 1), base, false)
	require.Error(t, err)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "8h 5m", FormatMinutes(485))
	assert.Equal(t, "0h 0m", FormatMinutes(0))
	assert.Equal(t, "0h 0m", FormatMinutes(-30))
}
