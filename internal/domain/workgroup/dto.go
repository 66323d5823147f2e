package workgroup

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type AssignmentInput struct {
	DayOfCycle int     `json:"day_of_cycle"`
	ShiftID    *string `json:"shift_id"`
}

type CreateWorkGroupRequest struct {
	Name                 string            `json:"name"`
	RepetitionPeriodDays int               `json:"repetition_period_days"`
	StartDate            string            `json:"start_date"`
	CalendarID           *string           `json:"calendar_id"`
	Assignments          []AssignmentInput `json:"assignments"`
}

func (r *CreateWorkGroupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if r.RepetitionPeriodDays < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "repetition_period_days",
			Message: "repetition_period_days must be at least 1",
		})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	errs = append(errs, validateAssignments(r.Assignments, r.RepetitionPeriodDays)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateWorkGroupRequest struct {
	ID                   string            `json:"-"`
	Name                 *string           `json:"name"`
	RepetitionPeriodDays *int              `json:"repetition_period_days"`
	StartDate            *string           `json:"start_date"`
	CalendarID           *string           `json:"calendar_id"`
	Assignments          []AssignmentInput `json:"assignments"`
}

func (r *UpdateWorkGroupRequest) Validate(currentPeriod int) error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	period := currentPeriod
	if r.RepetitionPeriodDays != nil {
		period = *r.RepetitionPeriodDays
		if period < 1 {
			errs = append(errs, validator.ValidationError{
				Field:   "repetition_period_days",
				Message: "repetition_period_days must be at least 1",
			})
		}
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.Assignments != nil {
		errs = append(errs, validateAssignments(r.Assignments, period)...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// validateAssignments enforces that every day_of_cycle fits within the
// repetition period and appears at most once.
func validateAssignments(assignments []AssignmentInput, period int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	seen := make(map[int]bool)
	for i, a := range assignments {
		field := fmt.Sprintf("assignments[%d].day_of_cycle", i)
		if a.DayOfCycle < 1 || (period >= 1 && a.DayOfCycle > period) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: fmt.Sprintf("day_of_cycle must be between 1 and %d", period),
			})
			continue
		}
		if seen[a.DayOfCycle] {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "day_of_cycle is duplicated",
			})
		}
		seen[a.DayOfCycle] = true
	}
	return errs
}

type AssignmentResponse struct {
	DayOfCycle int     `json:"day_of_cycle"`
	ShiftID    *string `json:"shift_id"`
}

type WorkGroupResponse struct {
	ID                   string               `json:"id"`
	Name                 string               `json:"name"`
	RepetitionPeriodDays int                  `json:"repetition_period_days"`
	StartDate            string               `json:"start_date"`
	CalendarID           *string              `json:"calendar_id,omitempty"`
	Assignments          []AssignmentResponse `json:"assignments"`
	CreatedAt            time.Time            `json:"created_at"`
}
