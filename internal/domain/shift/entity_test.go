package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExpectedWorkMinutes(t *testing.T) {
	tests := []struct {
		name     string
		shift    Shift
		expected int
		hasError bool
	}{
		{
			name:     "single segment",
			shift:    Shift{StartTime1: "08:00", EndTime1: "16:00"},
			expected: 480,
		},
		{
			name: "split shift sums both segments",
			shift: Shift{
				StartTime1: "06:00", EndTime1: "10:00",
				StartTime2: strPtr("14:00"), EndTime2: strPtr("18:00"),
			},
			expected: 480,
		},
		{
			name:     "night shift wraps midnight",
			shift:    Shift{StartTime1: "22:00", EndTime1: "06:00", IsNightShift: true},
			expected: 480,
		},
		{
			name:     "day shift ending before start is invalid",
			shift:    Shift{StartTime1: "16:00", EndTime1: "08:00"},
			hasError: true,
		},
		{
			name: "inverted second segment is invalid even on night shifts",
			shift: Shift{
				StartTime1: "22:00", EndTime1: "06:00", IsNightShift: true,
				StartTime2: strPtr("10:00"), EndTime2: strPtr("08:00"),
			},
			hasError: true,
		},
		{
			name:     "seconds in clock values are accepted",
			shift:    Shift{StartTime1: "08:00:00", EndTime1: "12:30:00"},
			expected: 270,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minutes, err := tt.shift.ExpectedWorkMinutes()
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, minutes)
		})
	}
}

func TestExpectedEnd(t *testing.T) {
	single := Shift{StartTime1: "08:00", EndTime1: "16:00"}
	assert.Equal(t, "16:00", single.ExpectedEnd())

	split := Shift{
		StartTime1: "06:00", EndTime1: "10:00",
		StartTime2: strPtr("14:00"), EndTime2: strPtr("18:00"),
	}
	assert.Equal(t, "18:00", split.ExpectedEnd())
}

func TestIsSplit(t *testing.T) {
	assert.False(t, Shift{StartTime1: "08:00", EndTime1: "16:00"}.IsSplit())
	assert.False(t, Shift{StartTime1: "08:00", EndTime1: "16:00", StartTime2: strPtr("17:00")}.IsSplit())
	assert.True(t, Shift{
		StartTime1: "08:00", EndTime1: "12:00",
		StartTime2: strPtr("13:00"), EndTime2: strPtr("17:00"),
	}.IsSplit())
}

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		clock    string
		expected int
		hasError bool
	}{
		{clock: "00:00", expected: 0},
		{clock: "08:15", expected: 495},
		{clock: "23:59", expected: 1439},
		{clock: "08:15:30", expected: 495},
		{clock: "25:00", hasError: true},
		{clock: "bogus", hasError: true},
		{clock: "", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			minutes, err := ParseMinutes(tt.clock)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, minutes)
		})
	}
}
