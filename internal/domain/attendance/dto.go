package attendance

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateLogRequest struct {
	PersonnelID string  `json:"personnel_id"`
	LogTime     string  `json:"log_time"`
	LogType     string  `json:"log_type"`
	DeviceID    *string `json:"device_id"`
}

func (r *CreateLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}
	if validator.IsEmpty(r.LogTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "log_time",
			Message: "log_time is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.LogTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "log_time",
			Message: "log_time must be an ISO8601 timestamp",
		})
	}
	if !validator.IsInSlice(r.LogType, LogTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "log_type",
			Message: "log_type must be one of IN, OUT, BREAK_IN, BREAK_OUT",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLogRequest struct {
	ID       string  `json:"-"`
	LogTime  *string `json:"log_time"`
	LogType  *string `json:"log_type"`
	DeviceID *string `json:"device_id"`
}

func (r *UpdateLogRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.LogTime != nil {
		if _, ok := validator.IsValidDateTime(*r.LogTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "log_time",
				Message: "log_time must be an ISO8601 timestamp",
			})
		}
	}
	if r.LogType != nil && !validator.IsInSlice(*r.LogType, LogTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "log_type",
			Message: "log_type must be one of IN, OUT, BREAK_IN, BREAK_OUT",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeviceLogEntry is one punch in a bulk device upload. Devices identify
// personnel by card number.
type DeviceLogEntry struct {
	CardNumber string `json:"card_number"`
	LogTime    string `json:"log_time"`
	LogType    string `json:"log_type"`
}

type DeviceLogBatchRequest struct {
	DeviceID string           `json:"device_id"`
	Entries  []DeviceLogEntry `json:"entries"`
}

func (r *DeviceLogBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DeviceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_id",
			Message: "device_id is required",
		})
	}
	if len(r.Entries) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "entries",
			Message: "entries must not be empty",
		})
	}
	for i, e := range r.Entries {
		if validator.IsEmpty(e.CardNumber) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + validator.Itoa(i) + "].card_number",
				Message: "card_number is required",
			})
		}
		if _, ok := validator.IsValidDateTime(e.LogTime); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + validator.Itoa(i) + "].log_time",
				Message: "log_time must be an ISO8601 timestamp",
			})
		}
		if !validator.IsInSlice(e.LogType, LogTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "entries[" + validator.Itoa(i) + "].log_type",
				Message: "log_type must be one of IN, OUT, BREAK_IN, BREAK_OUT",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReprocessRequest struct {
	PersonnelID string `json:"personnel_id"`
	Date        string `json:"date"`
}

func (r *ReprocessRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProcessRequest struct {
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	PersonnelIDs []string `json:"personnel_ids"`
	ShiftID      *string  `json:"shift_id"`
}

func (r *ProcessRequest) Validate() error {
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

type SummaryFilter struct {
	PersonnelIDs []string
	StartDate    *time.Time
	EndDate      *time.Time
	ShiftID      *string
	Status       *string
	Page         int
	Limit        int
}

func (f *SummaryFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 50
	}
}

func (f *SummaryFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, SummaryStatuses) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is invalid",
		})
	}
	if f.StartDate != nil && f.EndDate != nil && f.EndDate.Before(*f.StartDate) {
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

type LogResponse struct {
	ID          string    `json:"id"`
	PersonnelID string    `json:"personnel_id"`
	LogTime     time.Time `json:"log_time"`
	LogType     string    `json:"log_type"`
	DeviceID    string    `json:"device_id"`
	IsManual    bool      `json:"is_manual"`
}

type SummaryResponse struct {
	ID                  string     `json:"id"`
	PersonnelID         string     `json:"personnel_id"`
	Date                string     `json:"date"`
	ShiftID             *string    `json:"shift_id,omitempty"`
	Status              string     `json:"status"`
	PresenceMinutes     int        `json:"total_presence"`
	DelayMinutes        int        `json:"total_delay"`
	OvertimeMinutes     int        `json:"total_overtime"`
	UndertimeMinutes    int        `json:"total_undertime"`
	ExpectedWorkMinutes int        `json:"expected_work_minutes"`
	FirstIn             *time.Time `json:"first_in,omitempty"`
	LastOut             *time.Time `json:"last_out,omitempty"`
	RawLogsCount        int        `json:"raw_logs_count"`
	Notes               *string    `json:"notes,omitempty"`
	IsProcessed         bool       `json:"is_processed"`
	ProcessedAt         time.Time  `json:"processed_at"`
}

type ListSummariesResponse struct {
	Items      []SummaryResponse `json:"items"`
	TotalItems int64             `json:"total_items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type ProcessResponse struct {
	ProcessedCount int `json:"processed_count"`
}

type DeviceBatchResponse struct {
	AcceptedCount int      `json:"accepted_count"`
	UnknownCards  []string `json:"unknown_cards,omitempty"`
}
