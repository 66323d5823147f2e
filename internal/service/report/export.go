package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/duration"
)

type exportFormat string

const (
	formatDefault  exportFormat = "default"
	formatSimple   exportFormat = "simple"
	formatDetailed exportFormat = "detailed"
	formatPayroll  exportFormat = "payroll"
)

type exportColumn struct {
	header string
	value  func(row report.PersonnelSummary) string
}

type exportTemplate struct {
	name    string
	columns []exportColumn
}

// exportTemplates selects and orders the CSV columns per named format. An
// empty format falls back to default.
var exportTemplates = map[exportFormat]exportTemplate{
	"":             defaultTemplate,
	formatDefault:  defaultTemplate,
	formatSimple:   simpleTemplate,
	formatDetailed: detailedTemplate,
	formatPayroll:  payrollTemplate,
}

var defaultTemplate = exportTemplate{
	name: "default",
	columns: []exportColumn{
		colPersonnelNumber, colFullName, colUnit,
		colPresence, colDelay, colOvertime, colUndertime,
		colPresentDays, colAbsentDays, colLeaveDays, colMissionDays,
	},
}

var simpleTemplate = exportTemplate{
	name: "simple",
	columns: []exportColumn{
		colPersonnelNumber, colFullName, colPresence, colAbsentDays,
	},
}

var detailedTemplate = exportTemplate{
	name: "detailed",
	columns: []exportColumn{
		colPersonnelNumber, colFullName, colUnit,
		colPresence, colPresenceFormatted, colDelay, colOvertime, colUndertime,
		colAdjustedOvertime, colPresentDays, colAbsentDays, colLeaveDays,
		colMissionDays,
	},
}

var payrollTemplate = exportTemplate{
	name: "payroll",
	columns: []exportColumn{
		colPersonnelNumber, colFullName,
		colPresence, colAdjustedOvertime, colAbsentDays, colLeaveDays,
	},
}

var (
	colPersonnelNumber  = exportColumn{"Personnel Number", func(r report.PersonnelSummary) string { return r.PersonnelNumber }}
	colFullName         = exportColumn{"Full Name", func(r report.PersonnelSummary) string { return r.FullName }}
	colUnit             = exportColumn{"Unit", func(r report.PersonnelSummary) string { return r.UnitName }}
	colPresence         = exportColumn{"Presence (min)", intColumn(func(r report.PersonnelSummary) int { return r.PresenceMinutes })}
	colDelay            = exportColumn{"Delay (min)", intColumn(func(r report.PersonnelSummary) int { return r.DelayMinutes })}
	colOvertime         = exportColumn{"Overtime (min)", intColumn(func(r report.PersonnelSummary) int { return r.OvertimeMinutes })}
	colUndertime        = exportColumn{"Undertime (min)", intColumn(func(r report.PersonnelSummary) int { return r.UndertimeMinutes })}
	colAdjustedOvertime = exportColumn{"Adjusted Overtime (min)", intColumn(func(r report.PersonnelSummary) int { return r.AdjustedOvertimeMinutes })}
	colPresentDays      = exportColumn{"Present Days", intColumn(func(r report.PersonnelSummary) int { return r.PresentDays })}
	colAbsentDays       = exportColumn{"Absent Days", intColumn(func(r report.PersonnelSummary) int { return r.AbsentDays })}
	colLeaveDays        = exportColumn{"Leave Days", intColumn(func(r report.PersonnelSummary) int { return r.LeaveDays })}
	colMissionDays      = exportColumn{"Mission Days", intColumn(func(r report.PersonnelSummary) int { return r.MissionDays })}

	colPresenceFormatted = exportColumn{"Presence", func(r report.PersonnelSummary) string {
		return duration.FormatMinutes(r.PresenceMinutes)
	}}
)

func intColumn(get func(report.PersonnelSummary) int) func(report.PersonnelSummary) string {
	return func(r report.PersonnelSummary) string {
		return strconv.Itoa(get(r))
	}
}

func writeCSV(w io.Writer, template exportTemplate, summary report.SummaryReportResponse) error {
	writer := csv.NewWriter(w)

	headers := make([]string, 0, len(template.columns))
	for _, col := range template.columns {
		headers = append(headers, col.header)
	}
	if err := writer.Write(headers); err != nil {
		return err
	}

	for _, row := range summary.Rows {
		record := make([]string, 0, len(template.columns))
		for _, col := range template.columns {
			record = append(record, col.value(row))
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}
