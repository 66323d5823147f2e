package workgroup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func weeklyGroup() WorkGroup {
	shiftA := "shift-a"
	shiftB := "shift-b"
	return WorkGroup{
		ID:                   "group-1",
		Name:                 "Weekly Rotation",
		RepetitionPeriodDays: 7,
		// 2026-04-06 is a Monday
		StartDate: time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC),
		Assignments: []ShiftAssignment{
			{DayOfCycle: 1, ShiftID: &shiftA},
			{DayOfCycle: 2, ShiftID: &shiftA},
			{DayOfCycle: 3, ShiftID: &shiftB},
			{DayOfCycle: 4, ShiftID: &shiftB},
			{DayOfCycle: 5, ShiftID: &shiftA},
			{DayOfCycle: 6, ShiftID: nil},
		},
	}
}

func TestDayOfCycle(t *testing.T) {
	g := weeklyGroup()

	tests := []struct {
		name     string
		date     time.Time
		expected int
	}{
		{name: "start date is day one", date: time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC), expected: 1},
		{name: "mid cycle", date: time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC), expected: 4},
		{name: "last day of cycle", date: time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC), expected: 7},
		{name: "wraps to next cycle", date: time.Date(2026, 4, 13, 0, 0, 0, 0, time.UTC), expected: 1},
		{name: "several cycles later", date: time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC), expected: 3},
		{name: "before start date", date: time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC), expected: 0},
		{name: "time of day is ignored", date: time.Date(2026, 4, 6, 23, 59, 0, 0, time.UTC), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.DayOfCycle(tt.date))
		})
	}
}

func TestDayOfCycleZeroPeriod(t *testing.T) {
	g := weeklyGroup()
	g.RepetitionPeriodDays = 0

	assert.Equal(t, 0, g.DayOfCycle(g.StartDate))
}

func TestShiftIDFor(t *testing.T) {
	g := weeklyGroup()

	t.Run("assigned day", func(t *testing.T) {
		id := g.ShiftIDFor(time.Date(2026, 4, 8, 0, 0, 0, 0, time.UTC))
		if assert.NotNil(t, id) {
			assert.Equal(t, "shift-b", *id)
		}
	})

	t.Run("explicit rest day", func(t *testing.T) {
		assert.Nil(t, g.ShiftIDFor(time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("unassigned cycle day", func(t *testing.T) {
		// Day 7 has no assignment row at all.
		assert.Nil(t, g.ShiftIDFor(time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)))
	})

	t.Run("before rotation start", func(t *testing.T) {
		assert.Nil(t, g.ShiftIDFor(time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)))
	})
}
