package report

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type SummaryReportRequest struct {
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	PersonnelIDs   []string `json:"personnel_ids"`
	UnitID         *string  `json:"unit_id"`
	EmploymentType *string  `json:"employment_type"`
}

func (r *SummaryReportRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollExportRequest struct {
	SummaryReportRequest
	Format string `json:"format"`
}

func (r *PayrollExportRequest) Validate() error {
	return r.SummaryReportRequest.Validate()
}

// PersonnelSummary is one personnel row in the periodic report.
type PersonnelSummary struct {
	PersonnelID      string `json:"personnel_id"`
	PersonnelNumber  string `json:"personnel_number"`
	FullName         string `json:"full_name"`
	UnitName         string `json:"unit_name"`
	PresenceMinutes  int    `json:"presence_minutes"`
	DelayMinutes     int    `json:"delay_minutes"`
	OvertimeMinutes  int    `json:"overtime_minutes"`
	UndertimeMinutes int    `json:"undertime_minutes"`
	// AdjustedOvertime is overtime minus undertime, floored at zero.
	AdjustedOvertimeMinutes int `json:"adjusted_overtime_minutes"`
	AbsentDays              int `json:"absent_days"`
	PresentDays             int `json:"present_days"`
	LeaveDays               int `json:"leave_days"`
	MissionDays             int `json:"mission_days"`
}

type ReportTotals struct {
	PresenceMinutes  int     `json:"presence_minutes"`
	PresenceHours    float64 `json:"presence_hours"`
	DelayMinutes     int     `json:"delay_minutes"`
	OvertimeMinutes  int     `json:"overtime_minutes"`
	UndertimeMinutes int     `json:"undertime_minutes"`
	AbsentDays       int     `json:"absent_days"`
	LeaveDays        int     `json:"leave_days"`
	MissionDays      int     `json:"mission_days"`
}

type SummaryReportResponse struct {
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
	Rows      []PersonnelSummary `json:"rows"`
	Totals    ReportTotals       `json:"totals"`
}
