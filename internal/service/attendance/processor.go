package attendance

import (
	"fmt"
	"sort"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/google/uuid"
)

// fullDayCreditMinutes is the presence credited for a full-day approved
// leave or mission whose type counts as work.
const fullDayCreditMinutes = 480

// ApprovedAbsence is an approved leave or mission request reduced to what
// summary computation needs.
type ApprovedAbsence struct {
	IsHourly     bool
	StartTime    *string
	EndTime      *string
	CountsAsWork bool
	TypeName     string
}

// DayInput is everything needed to compute one (personnel, date) summary.
type DayInput struct {
	PersonnelID string
	Date        time.Time
	Shift       *shift.Shift
	IsHoliday   bool
	HolidayName string
	Logs        []attendance.AttendanceLog
	Leaves      []ApprovedAbsence
	Missions    []ApprovedAbsence
}

// ComputeDaily derives the daily summary from the current log set and
// schedule. It is a pure function of its input: the same input always
// yields the same summary (the generated ID and ProcessedAt aside), which
// is what makes reprocessing idempotent.
func ComputeDaily(in DayInput) (attendance.DailySummary, error) {
	summary := attendance.DailySummary{
		ID:           uuid.NewString(),
		PersonnelID:  in.PersonnelID,
		Date:         truncateToDay(in.Date),
		RawLogsCount: len(in.Logs),
		IsProcessed:  true,
		ProcessedAt:  time.Now(),
	}

	if in.IsHoliday {
		summary.Status = attendance.StatusHoliday
		if in.HolidayName != "" {
			notes := in.HolidayName
			summary.Notes = &notes
		}
		summary.PresenceMinutes = pairedPresence(in.Logs)
		first, last := boundaryLogs(in.Logs)
		summary.FirstIn = first
		summary.LastOut = last
		return summary, nil
	}

	if in.Shift == nil {
		summary.Status = attendance.StatusNoShift
		summary.PresenceMinutes = pairedPresence(in.Logs)
		first, last := boundaryLogs(in.Logs)
		summary.FirstIn = first
		summary.LastOut = last
		return summary, nil
	}

	summary.ShiftID = &in.Shift.ID
	expected, err := in.Shift.ExpectedWorkMinutes()
	if err != nil {
		return attendance.DailySummary{}, fmt.Errorf("compute expected work: %w", err)
	}
	summary.ExpectedWorkMinutes = expected

	if len(in.Logs) == 0 {
		return computeAbsentDay(in, summary)
	}

	logs := sortedLogs(in.Logs)
	first, last := boundaryLogs(logs)
	summary.FirstIn = first
	summary.LastOut = last
	summary.PresenceMinutes = pairedPresence(logs)

	if len(logs)%2 != 0 {
		summary.Status = attendance.StatusIncomplete
	} else {
		summary.Status = attendance.StatusComplete
	}

	// Hourly absences add their approved minutes to presence when the type
	// counts as work, and recolor the status.
	if minutes, name, ok := hourlyCredit(in.Leaves); ok {
		summary.PresenceMinutes += minutes
		summary.Status = attendance.StatusPartialLeave
		summary.Notes = &name
	} else if minutes, name, ok := hourlyCredit(in.Missions); ok {
		summary.PresenceMinutes += minutes
		summary.Status = attendance.StatusPartialMission
		summary.Notes = &name
	}

	shiftStart, err := clockOnDate(summary.Date, in.Shift.StartTime1)
	if err != nil {
		return attendance.DailySummary{}, err
	}
	shiftEnd, err := clockOnDate(summary.Date, in.Shift.ExpectedEnd())
	if err != nil {
		return attendance.DailySummary{}, err
	}
	if !shiftEnd.After(shiftStart) {
		// night shift wraps past midnight
		shiftEnd = shiftEnd.AddDate(0, 0, 1)
	}

	if first != nil {
		delay := int(first.Sub(shiftStart).Minutes()) - in.Shift.FloatDurationMinutes
		if delay > 0 {
			summary.DelayMinutes = delay
		}
	}
	if last != nil {
		overtime := int(last.Sub(shiftEnd).Minutes())
		if overtime > 0 {
			summary.OvertimeMinutes = overtime
		}
	}
	if undertime := expected - summary.PresenceMinutes; undertime > 0 && summary.Status == attendance.StatusComplete {
		summary.UndertimeMinutes = undertime
	}

	return summary, nil
}

// computeAbsentDay resolves a scheduled day with no punches: a full-day
// approved leave or mission explains the absence, otherwise it counts as
// absent.
func computeAbsentDay(in DayInput, summary attendance.DailySummary) (attendance.DailySummary, error) {
	if absence, ok := fullDayAbsence(in.Leaves); ok {
		summary.Status = attendance.StatusLeave
		summary.Notes = &absence.TypeName
		if absence.CountsAsWork {
			summary.PresenceMinutes = fullDayCreditMinutes
		}
		return summary, nil
	}
	if absence, ok := fullDayAbsence(in.Missions); ok {
		summary.Status = attendance.StatusMission
		summary.Notes = &absence.TypeName
		if absence.CountsAsWork {
			summary.PresenceMinutes = fullDayCreditMinutes
		}
		return summary, nil
	}

	summary.Status = attendance.StatusAbsent
	if summary.ExpectedWorkMinutes > 0 {
		summary.UndertimeMinutes = summary.ExpectedWorkMinutes
	}
	return summary, nil
}

func fullDayAbsence(absences []ApprovedAbsence) (ApprovedAbsence, bool) {
	for _, a := range absences {
		if !a.IsHourly {
			return a, true
		}
	}
	return ApprovedAbsence{}, false
}

// hourlyCredit returns the creditable minutes of the first hourly absence
// whose type counts as work.
func hourlyCredit(absences []ApprovedAbsence) (int, string, bool) {
	for _, a := range absences {
		if !a.IsHourly || a.StartTime == nil || a.EndTime == nil {
			continue
		}
		if !a.CountsAsWork {
			// still recolors the day, but credits nothing
			return 0, a.TypeName, true
		}
		start, err := shift.ParseMinutes(*a.StartTime)
		if err != nil {
			continue
		}
		end, err := shift.ParseMinutes(*a.EndTime)
		if err != nil || end <= start {
			continue
		}
		return end - start, a.TypeName, true
	}
	return 0, "", false
}

// pairedPresence pairs consecutive logs into presence intervals and sums
// them. A trailing unpaired log contributes nothing.
func pairedPresence(logs []attendance.AttendanceLog) int {
	logs = sortedLogs(logs)
	total := 0
	for i := 0; i+1 < len(logs); i += 2 {
		minutes := int(logs[i+1].LogTime.Sub(logs[i].LogTime).Minutes())
		if minutes > 0 {
			total += minutes
		}
	}
	return total
}

func boundaryLogs(logs []attendance.AttendanceLog) (first, last *time.Time) {
	if len(logs) == 0 {
		return nil, nil
	}
	logs = sortedLogs(logs)
	firstTime := logs[0].LogTime
	lastTime := logs[len(logs)-1].LogTime
	return &firstTime, &lastTime
}

func sortedLogs(logs []attendance.AttendanceLog) []attendance.AttendanceLog {
	sorted := make([]attendance.AttendanceLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LogTime.Before(sorted[j].LogTime)
	})
	return sorted
}

func clockOnDate(date time.Time, clock string) (time.Time, error) {
	minutes, err := shift.ParseMinutes(clock)
	if err != nil {
		return time.Time{}, err
	}
	return date.Add(time.Duration(minutes) * time.Minute), nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
