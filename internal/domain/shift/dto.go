package shift

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreateShiftRequest struct {
	Name                     string  `json:"name"`
	StartTime1               string  `json:"start_time_1"`
	EndTime1                 string  `json:"end_time_1"`
	StartTime2               *string `json:"start_time_2"`
	EndTime2                 *string `json:"end_time_2"`
	AllowedLogStartTime      string  `json:"allowed_log_start_time"`
	LogPeriodDurationMinutes int     `json:"log_period_duration_minutes"`
	FloatDurationMinutes     int     `json:"float_duration_minutes"`
	IsNightShift             bool    `json:"is_night_shift"`
}

func (r *CreateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	required := map[string]string{
		"start_time_1":           r.StartTime1,
		"end_time_1":             r.EndTime1,
		"allowed_log_start_time": r.AllowedLogStartTime,
	}
	for field, value := range required {
		if validator.IsEmpty(value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " is required",
			})
		} else if _, ok := validator.IsValidTime(value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	// second segment is all-or-nothing
	if (r.StartTime2 == nil) != (r.EndTime2 == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time_2",
			Message: "start_time_2 and end_time_2 must be provided together",
		})
	}
	for field, value := range map[string]*string{"start_time_2": r.StartTime2, "end_time_2": r.EndTime2} {
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

	if r.FloatDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "float_duration_minutes",
			Message: "float_duration_minutes must not be negative",
		})
	}
	if r.LogPeriodDurationMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "log_period_duration_minutes",
			Message: "log_period_duration_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateShiftRequest struct {
	ID                       string  `json:"-"`
	Name                     *string `json:"name"`
	StartTime1               *string `json:"start_time_1"`
	EndTime1                 *string `json:"end_time_1"`
	StartTime2               *string `json:"start_time_2"`
	EndTime2                 *string `json:"end_time_2"`
	AllowedLogStartTime      *string `json:"allowed_log_start_time"`
	LogPeriodDurationMinutes *int    `json:"log_period_duration_minutes"`
	FloatDurationMinutes     *int    `json:"float_duration_minutes"`
	IsNightShift             *bool   `json:"is_night_shift"`
}

func (r *UpdateShiftRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	clocks := map[string]*string{
		"start_time_1":           r.StartTime1,
		"end_time_1":             r.EndTime1,
		"start_time_2":           r.StartTime2,
		"end_time_2":             r.EndTime2,
		"allowed_log_start_time": r.AllowedLogStartTime,
	}
	for field, value := range clocks {
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

type ShiftResponse struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	StartTime1               string    `json:"start_time_1"`
	EndTime1                 string    `json:"end_time_1"`
	StartTime2               *string   `json:"start_time_2,omitempty"`
	EndTime2                 *string   `json:"end_time_2,omitempty"`
	AllowedLogStartTime      string    `json:"allowed_log_start_time"`
	LogPeriodDurationMinutes int       `json:"log_period_duration_minutes"`
	FloatDurationMinutes     int       `json:"float_duration_minutes"`
	IsNightShift             bool      `json:"is_night_shift"`
	CreatedAt                time.Time `json:"created_at"`
}
