package workgroup

import "time"

// WorkGroup defines a repeating shift rotation. Day 1 of the cycle falls on
// StartDate; the cycle repeats every RepetitionPeriodDays days.
type WorkGroup struct {
	ID                   string
	Name                 string
	RepetitionPeriodDays int
	StartDate            time.Time
	CalendarID           *string
	CreatedAt            time.Time
	UpdatedAt            time.Time

	Assignments []ShiftAssignment
}

// ShiftAssignment binds one day of the cycle to a shift. A nil ShiftID marks
// a rest day.
type ShiftAssignment struct {
	ID          string
	WorkGroupID string
	DayOfCycle  int
	ShiftID     *string
}

// DayOfCycle resolves which cycle day the given date falls on, 1-based.
// Dates before StartDate are not part of the rotation and return 0.
func (g WorkGroup) DayOfCycle(date time.Time) int {
	if g.RepetitionPeriodDays <= 0 {
		return 0
	}
	start := truncateToDay(g.StartDate)
	date = truncateToDay(date)
	if date.Before(start) {
		return 0
	}
	days := int(date.Sub(start).Hours() / 24)
	return days%g.RepetitionPeriodDays + 1
}

// ShiftIDFor returns the shift assigned to the given date, or nil for rest
// days, unassigned days, and dates outside the rotation.
func (g WorkGroup) ShiftIDFor(date time.Time) *string {
	day := g.DayOfCycle(date)
	if day == 0 {
		return nil
	}
	for _, a := range g.Assignments {
		if a.DayOfCycle == day {
			return a.ShiftID
		}
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
