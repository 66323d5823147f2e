package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/personnel"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func testPersonnel() personnel.Personnel {
	return personnel.Personnel{
		ID:              "personnel-1",
		FirstName:       "Ari",
		LastName:        "Wibowo",
		PersonnelNumber: "EMP-001",
		UnitName:        strPtr("Engineering"),
	}
}

func TestAggregateRowSumsMinutes(t *testing.T) {
	summaries := []attendance.DailySummary{
		{Status: attendance.StatusComplete, PresenceMinutes: 480, OvertimeMinutes: 30},
		{Status: attendance.StatusComplete, PresenceMinutes: 450, DelayMinutes: 15, UndertimeMinutes: 30},
		{Status: attendance.StatusIncomplete, PresenceMinutes: 200},
	}

	row := aggregateRow(testPersonnel(), summaries)

	assert.Equal(t, "EMP-001", row.PersonnelNumber)
	assert.Equal(t, "Ari Wibowo", row.FullName)
	assert.Equal(t, "Engineering", row.UnitName)
	assert.Equal(t, 1130, row.PresenceMinutes)
	assert.Equal(t, 15, row.DelayMinutes)
	assert.Equal(t, 30, row.OvertimeMinutes)
	assert.Equal(t, 30, row.UndertimeMinutes)
	assert.Equal(t, 3, row.PresentDays)
	assert.Equal(t, 0, row.AdjustedOvertimeMinutes, "undertime cancels the overtime")
}

func TestAggregateRowDayCounters(t *testing.T) {
	summaries := []attendance.DailySummary{
		{Status: attendance.StatusComplete},
		{Status: attendance.StatusAbsent},
		{Status: attendance.StatusLeave},
		{Status: attendance.StatusPartialLeave, PresenceMinutes: 240},
		{Status: attendance.StatusMission},
		{Status: attendance.StatusPartialMission, PresenceMinutes: 240},
		{Status: attendance.StatusHoliday},
	}

	row := aggregateRow(testPersonnel(), summaries)

	assert.Equal(t, 3, row.PresentDays, "complete plus the two partial days")
	assert.Equal(t, 1, row.AbsentDays)
	assert.Equal(t, 2, row.LeaveDays)
	assert.Equal(t, 2, row.MissionDays)
}

func TestAggregateRowAdjustedOvertime(t *testing.T) {
	row := aggregateRow(testPersonnel(), []attendance.DailySummary{
		{Status: attendance.StatusComplete, OvertimeMinutes: 90, UndertimeMinutes: 20},
	})
	assert.Equal(t, 70, row.AdjustedOvertimeMinutes)

	row = aggregateRow(testPersonnel(), []attendance.DailySummary{
		{Status: attendance.StatusComplete, OvertimeMinutes: 10, UndertimeMinutes: 60},
	})
	assert.Equal(t, 0, row.AdjustedOvertimeMinutes, "never negative")
}

func TestAggregateRowNoSummaries(t *testing.T) {
	row := aggregateRow(testPersonnel(), nil)

	assert.Equal(t, 0, row.PresenceMinutes)
	assert.Equal(t, 0, row.PresentDays)
	assert.Equal(t, 0, row.AbsentDays)
}

func TestExportTemplateSelection(t *testing.T) {
	tests := []struct {
		format   string
		expected string
	}{
		{format: "", expected: "default"},
		{format: "default", expected: "default"},
		{format: "simple", expected: "simple"},
		{format: "detailed", expected: "detailed"},
		{format: "payroll", expected: "payroll"},
	}

	for _, tt := range tests {
		template, ok := exportTemplates[exportFormat(tt.format)]
		require.True(t, ok, "format %q", tt.format)
		assert.Equal(t, tt.expected, template.name)
	}

	_, ok := exportTemplates[exportFormat("xml")]
	assert.False(t, ok)
}

func TestWriteCSVPayrollTemplate(t *testing.T) {
	summary := report.SummaryReportResponse{
		Rows: []report.PersonnelSummary{
			{
				PersonnelNumber:         "EMP-001",
				FullName:                "Ari Wibowo",
				PresenceMinutes:         9600,
				AdjustedOvertimeMinutes: 120,
				AbsentDays:              1,
				LeaveDays:               2,
			},
			{
				PersonnelNumber: "EMP-002",
				FullName:        "Sari Dewi",
				PresenceMinutes: 8400,
			},
		},
	}

	var buf bytes.Buffer
	err := writeCSV(&buf, payrollTemplate, summary)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Personnel Number,Full Name,Presence (min),Adjusted Overtime (min),Absent Days,Leave Days", lines[0])
	assert.Equal(t, "EMP-001,Ari Wibowo,9600,120,1,2", lines[1])
	assert.Equal(t, "EMP-002,Sari Dewi,8400,0,0,0", lines[2])
}

func TestWriteCSVQuotesCommas(t *testing.T) {
	summary := report.SummaryReportResponse{
		Rows: []report.PersonnelSummary{
			{PersonnelNumber: "EMP-003", FullName: "Wibowo, Ari", PresenceMinutes: 100},
		},
	}

	var buf bytes.Buffer
	err := writeCSV(&buf, simpleTemplate, summary)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"Wibowo, Ari"`)
}

func TestWriteCSVDetailedIncludesFormattedPresence(t *testing.T) {
	summary := report.SummaryReportResponse{
		Rows: []report.PersonnelSummary{
			{PersonnelNumber: "EMP-001", FullName: "Ari Wibowo", PresenceMinutes: 485},
		},
	}

	var buf bytes.Buffer
	err := writeCSV(&buf, detailedTemplate, summary)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "8h 5m")
}
