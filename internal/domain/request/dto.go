package request

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	Type        RequestType `json:"-"`
	PersonnelID string      `json:"personnel_id"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	IsHourly    bool        `json:"is_hourly"`
	StartTime   *string     `json:"start_time"`
	EndTime     *string     `json:"end_time"`
	Description *string     `json:"description"`

	// leave variant
	LeaveTypeID *string `json:"leave_type_id"`

	// mission variant
	MissionTypeID *string  `json:"mission_type_id"`
	Destination   *string  `json:"destination"`
	EstimatedCost *float64 `json:"estimated_cost"`
	Purpose       *string  `json:"purpose"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.PersonnelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_id",
			Message: "personnel_id is required",
		})
	}

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
			Message: "end_date must not be empty and in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if r.IsHourly {
		if r.StartTime == nil || r.EndTime == nil {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time and end_time are required for hourly requests",
			})
		} else {
			startTime, sOK := validator.IsValidTime(*r.StartTime)
			endTime, eOK := validator.IsValidTime(*r.EndTime)
			if !sOK {
				errs = append(errs, validator.ValidationError{
					Field:   "start_time",
					Message: "start_time must be in HH:MM format",
				})
			}
			if !eOK {
				errs = append(errs, validator.ValidationError{
					Field:   "end_time",
					Message: "end_time must be in HH:MM format",
				})
			}
			if sOK && eOK && !endTime.After(startTime) {
				errs = append(errs, validator.ValidationError{
					Field:   "end_time",
					Message: "end_time must be after start_time",
				})
			}
		}
	}

	switch r.Type {
	case TypeLeave:
		if r.LeaveTypeID == nil || validator.IsEmpty(*r.LeaveTypeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type_id",
				Message: "leave_type_id is required",
			})
		}
	case TypeMission:
		if r.MissionTypeID == nil || validator.IsEmpty(*r.MissionTypeID) {
			errs = append(errs, validator.ValidationError{
				Field:   "mission_type_id",
				Message: "mission_type_id is required",
			})
		}
		if r.Destination == nil || validator.IsEmpty(*r.Destination) {
			errs = append(errs, validator.ValidationError{
				Field:   "destination",
				Message: "destination is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRequestRequest struct {
	ID          string  `json:"-"`
	StartDate   *string `json:"start_date"`
	EndDate     *string `json:"end_date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Description *string `json:"description"`

	Destination   *string  `json:"destination"`
	EstimatedCost *float64 `json:"estimated_cost"`
	Purpose       *string  `json:"purpose"`
}

func (r *UpdateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	for field, value := range map[string]*string{"start_date": r.StartDate, "end_date": r.EndDate} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidDate(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in YYYY-MM-DD format",
			})
		}
	}
	for field, value := range map[string]*string{"start_time": r.StartTime, "end_time": r.EndTime} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidTime(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateStatusRequest drives the PENDING -> APPROVED/REJECTED/CANCELLED
// transition endpoint.
type UpdateStatusRequest struct {
	ID           string `json:"-"`
	Type         RequestType
	Status       string  `json:"status"`
	RejectReason *string `json:"reject_reason"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	target := Status(r.Status)
	if target != StatusApproved && target != StatusRejected && target != StatusCancelled {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be APPROVED, REJECTED or CANCELLED",
		})
	}
	if target == StatusRejected && (r.RejectReason == nil || validator.IsEmpty(*r.RejectReason)) {
		errs = append(errs, validator.ValidationError{
			Field:   "reject_reason",
			Message: "reject_reason is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestFilter struct {
	Type         RequestType
	PersonnelIDs []string
	Status       *string
	StartDate    *time.Time
	EndDate      *time.Time
	Page         int
	Limit        int
}

func (f *RequestFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type RequestResponse struct {
	ID            string  `json:"id"`
	Type          string  `json:"request_type"`
	PersonnelID   string  `json:"personnel_id"`
	PersonnelName *string `json:"personnel_name,omitempty"`
	Status        string  `json:"status"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	IsHourly      bool    `json:"is_hourly"`
	StartTime     *string `json:"start_time,omitempty"`
	EndTime       *string `json:"end_time,omitempty"`
	Description   *string `json:"description,omitempty"`
	RejectReason  *string `json:"reject_reason,omitempty"`
	ApproverID    *string `json:"approver_id,omitempty"`
	Duration      string  `json:"duration"`

	LeaveTypeID   *string  `json:"leave_type_id,omitempty"`
	LeaveIsPaid   *bool    `json:"leave_type_is_paid,omitempty"`
	MissionTypeID *string  `json:"mission_type_id,omitempty"`
	Destination   *string  `json:"destination,omitempty"`
	EstimatedCost *float64 `json:"estimated_cost,omitempty"`
	Purpose       *string  `json:"purpose,omitempty"`
	TypeName      *string  `json:"type_name,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

type ListRequestsResponse struct {
	Items      []RequestResponse `json:"items"`
	TotalItems int64             `json:"total_items"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

type CreateTypeRequest struct {
	Name             string `json:"name"`
	IsPaid           *bool  `json:"is_paid"`
	CountsAsWork     bool   `json:"counts_as_work"`
	RequiresApproval bool   `json:"requires_approval"`
}

func (r *CreateTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TypeResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	IsPaid           *bool  `json:"is_paid,omitempty"`
	CountsAsWork     bool   `json:"counts_as_work"`
	RequiresApproval bool   `json:"requires_approval"`
}
