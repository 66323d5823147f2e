package attendance

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dayShift() *shift.Shift {
	return &shift.Shift{
		ID:                   "shift-1",
		Name:                 "Office",
		StartTime1:           "08:00",
		EndTime1:             "16:00",
		AllowedLogStartTime:  "06:00",
		FloatDurationMinutes: 15,
	}
}

func nightShift() *shift.Shift {
	return &shift.Shift{
		ID:           "shift-night",
		Name:         "Night",
		StartTime1:   "22:00",
		EndTime1:     "06:00",
		IsNightShift: true,
	}
}

func logAt(t *testing.T, date time.Time, clock string, logType attendance.LogType) attendance.AttendanceLog {
	t.Helper()
	parsed, err := time.Parse("15:04", clock)
	require.NoError(t, err)
	return attendance.AttendanceLog{
		ID:          "log-" + clock,
		PersonnelID: "personnel-1",
		LogTime:     date.Add(time.Duration(parsed.Hour())*time.Hour + time.Duration(parsed.Minute())*time.Minute),
		LogType:     logType,
	}
}

func TestComputeDailyCompleteDay(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	input := DayInput{
		PersonnelID: "personnel-1",
		Date:        date,
		Shift:       dayShift(),
		Logs: []attendance.AttendanceLog{
			logAt(t, date, "08:05", attendance.LogTypeIn),
			logAt(t, date, "16:10", attendance.LogTypeOut),
		},
	}

	summary, err := ComputeDaily(input)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusComplete, summary.Status)
	assert.Equal(t, 485, summary.PresenceMinutes)
	assert.Equal(t, 0, summary.DelayMinutes, "arrival within the grace window")
	assert.Equal(t, 10, summary.OvertimeMinutes)
	assert.Equal(t, 0, summary.UndertimeMinutes)
	assert.Equal(t, 480, summary.ExpectedWorkMinutes)
	assert.Equal(t, 2, summary.RawLogsCount)
	assert.True(t, summary.IsProcessed)
	require.NotNil(t, summary.FirstIn)
	require.NotNil(t, summary.LastOut)
	assert.Equal(t, date.Add(8*time.Hour+5*time.Minute), *summary.FirstIn)
}

func TestComputeDailyBreakPairReducesPresence(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	base := DayInput{
		PersonnelID: "personnel-1",
		Date:        date,
		Shift:       dayShift(),
		Logs: []attendance.AttendanceLog{
			logAt(t, date, "08:05", attendance.LogTypeIn),
			logAt(t, date, "16:10", attendance.LogTypeOut),
		},
	}
	before, err := ComputeDaily(base)
	require.NoError(t, err)

	base.Logs = append(base.Logs,
		logAt(t, date, "12:00", attendance.LogTypeBreakOut),
		logAt(t, date, "13:00", attendance.LogTypeBreakIn),
	)
	after, err := ComputeDaily(base)
	require.NoError(t, err)

	assert.Equal(t, before.PresenceMinutes-60, after.PresenceMinutes)
	assert.Equal(t, attendance.StatusComplete, after.Status)
	assert.Equal(t, before.FirstIn.Unix(), after.FirstIn.Unix(), "break logs do not move the day boundaries")
	assert.Equal(t, before.LastOut.Unix(), after.LastOut.Unix())
}

func TestComputeDailyOddLogCountIsIncomplete(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	input := DayInput{
		PersonnelID: "personnel-1",
		Date:        date,
		Shift:       dayShift(),
		Logs: []attendance.AttendanceLog{
			logAt(t, date, "08:00", attendance.LogTypeIn),
		},
	}

	summary, err := ComputeDaily(input)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusIncomplete, summary.Status)
	assert.Equal(t, 0, summary.PresenceMinutes, "an unpaired log contributes no presence")
	assert.Equal(t, 0, summary.UndertimeMinutes, "undertime only applies to complete days")
}

func TestComputeDailyDelayBeyondGrace(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	input := DayInput{
		PersonnelID: "personnel-1",
		Date:        date,
		Shift:       dayShift(),
		Logs: []attendance.AttendanceLog{
			logAt(t, date, "08:25", attendance.LogTypeIn),
			logAt(t, date, "16:00", attendance.LogTypeOut),
		},
	}

	summary, err := ComputeDaily(input)
	require.NoError(t, err)

	assert.Equal(t, 10, summary.DelayMinutes)
	assert.Equal(t, 455, summary.PresenceMinutes)
	assert.Equal(t, 25, summary.UndertimeMinutes)
}

func TestComputeDailyNoLogs(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		leaves       []ApprovedAbsence
		missions     []ApprovedAbsence
		wantStatus   attendance.SummaryStatus
		wantPresence int
	}{
		{
			name:         "absent without approvals",
			wantStatus:   attendance.StatusAbsent,
			wantPresence: 0,
		},
		{
			name:         "paid full-day leave",
			leaves:       []ApprovedAbsence{{CountsAsWork: true, TypeName: "Annual Leave"}},
			wantStatus:   attendance.StatusLeave,
			wantPresence: 480,
		},
		{
			name:         "unpaid full-day leave",
			leaves:       []ApprovedAbsence{{CountsAsWork: false, TypeName: "Unpaid Leave"}},
			wantStatus:   attendance.StatusLeave,
			wantPresence: 0,
		},
		{
			name:         "full-day mission",
			missions:     []ApprovedAbsence{{CountsAsWork: true, TypeName: "Client Visit"}},
			wantStatus:   attendance.StatusMission,
			wantPresence: 480,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := ComputeDaily(DayInput{
				PersonnelID: "personnel-1",
				Date:        date,
				Shift:       dayShift(),
				Leaves:      tt.leaves,
				Missions:    tt.missions,
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantStatus, summary.Status)
			assert.Equal(t, tt.wantPresence, summary.PresenceMinutes)
			if tt.wantStatus == attendance.StatusAbsent {
				assert.Equal(t, 480, summary.UndertimeMinutes)
			}
		})
	}
}

func TestComputeDailyHourlyLeaveRecolorsAndCredits(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	start, end := "13:00", "16:00"
	input := DayInput{
		PersonnelID: "personnel-1",
		Date:        date,
		Shift:       dayShift(),
		Logs: []attendance.AttendanceLog{
			logAt(t, date, "08:00", attendance.LogTypeIn),
			logAt(t, date, "13:00", attendance.LogTypeOut),
		},
		Leaves: []ApprovedAbsence{{
			IsHourly:     true,
			StartTime:    &start,
			EndTime:      &end,
			CountsAsWork: true,
			TypeName:     "Medical Appointment",
		}},
	}

	summary, err := ComputeDaily(input)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusPartialLeave, summary.Status)
	// 5h punched plus 3h approved
	assert.Equal(t, 480, summary.PresenceMinutes)
	require.NotNil(t, summary.Notes)
	assert.Equal(t, "Medical Appointment", *summary.Notes)
}

func TestComputeDailyHoliday(t *testing.T) {
	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	summary, err := ComputeDaily(DayInput{
		PersonnelID: "personnel-1",
		Date:        date,
		Shift:       dayShift(),
		IsHoliday:   true,
		HolidayName: "New Year",
		Logs: []attendance.AttendanceLog{
			logAt(t, date, "09:00", attendance.LogTypeIn),
			logAt(t, date, "12:00", attendance.LogTypeOut),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusHoliday, summary.Status)
	assert.Equal(t, 180, summary.PresenceMinutes, "holiday work still records presence")
	require.NotNil(t, summary.Notes)
	assert.Equal(t, "New Year", *summary.Notes)
	assert.Equal(t, 0, summary.ExpectedWorkMinutes)
}

func TestComputeDailyNoShift(t *testing.T) {
	date := time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC)
	summary, err := ComputeDaily(DayInput{
		PersonnelID: "personnel-1",
		Date:        date,
	})
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusNoShift, summary.Status)
	assert.Nil(t, summary.ShiftID)
	assert.Equal(t, 0, summary.UndertimeMinutes)
}

func TestComputeDailyNightShiftOvertimeWraps(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	out := attendance.AttendanceLog{
		ID:          "log-out",
		PersonnelID: "personnel-1",
		// 06:30 the following morning
		LogTime: date.Add(24*time.Hour + 6*time.Hour + 30*time.Minute),
		LogType: attendance.LogTypeOut,
	}
	input := DayInput{
		PersonnelID: "personnel-1",
		Date:        date,
		Shift:       nightShift(),
		Logs: []attendance.AttendanceLog{
			logAt(t, date, "22:00", attendance.LogTypeIn),
			out,
		},
	}

	summary, err := ComputeDaily(input)
	require.NoError(t, err)

	assert.Equal(t, attendance.StatusComplete, summary.Status)
	assert.Equal(t, 510, summary.PresenceMinutes)
	assert.Equal(t, 480, summary.ExpectedWorkMinutes)
	assert.Equal(t, 30, summary.OvertimeMinutes, "overtime measured against the wrapped shift end")
	assert.Equal(t, 0, summary.DelayMinutes)
}

func TestComputeDailyIsDeterministic(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	input := DayInput{
		PersonnelID: "personnel-1",
		Date:        date,
		Shift:       dayShift(),
		Logs: []attendance.AttendanceLog{
			logAt(t, date, "16:10", attendance.LogTypeOut),
			logAt(t, date, "08:05", attendance.LogTypeIn),
		},
	}

	first, err := ComputeDaily(input)
	require.NoError(t, err)
	second, err := ComputeDaily(input)
	require.NoError(t, err)

	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.PresenceMinutes, second.PresenceMinutes)
	assert.Equal(t, first.DelayMinutes, second.DelayMinutes)
	assert.Equal(t, first.OvertimeMinutes, second.OvertimeMinutes)
	assert.Equal(t, first.UndertimeMinutes, second.UndertimeMinutes)
}
