package personnel

import (
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

type CreatePersonnelRequest struct {
	FirstName       string  `json:"first_name"`
	LastName        string  `json:"last_name"`
	CardNumber      string  `json:"card_number"`
	PersonnelNumber string  `json:"personnel_number"`
	UnitID          *string `json:"unit_id"`
	WorkGroupID     *string `json:"work_group_id"`
	EmploymentType  string  `json:"employment_type"`
	HireDate        *string `json:"hire_date"`
}

func (r *CreatePersonnelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.CardNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "card_number",
			Message: "card_number is required",
		})
	}
	if validator.IsEmpty(r.PersonnelNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "personnel_number",
			Message: "personnel_number is required",
		})
	}
	if r.EmploymentType != "" && !validator.IsInSlice(r.EmploymentType, EmploymentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type is invalid",
		})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdatePersonnelRequest struct {
	ID              string  `json:"-"`
	FirstName       *string `json:"first_name"`
	LastName        *string `json:"last_name"`
	CardNumber      *string `json:"card_number"`
	PersonnelNumber *string `json:"personnel_number"`
	UnitID          *string `json:"unit_id"`
	WorkGroupID     *string `json:"work_group_id"`
	EmploymentType  *string `json:"employment_type"`
	HireDate        *string `json:"hire_date"`
	TerminationDate *string `json:"termination_date"`
	IsActive        *bool   `json:"is_active"`
}

func (r *UpdatePersonnelRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name must not be empty",
		})
	}
	if r.EmploymentType != nil && !validator.IsInSlice(*r.EmploymentType, EmploymentTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "employment_type",
			Message: "employment_type is invalid",
		})
	}
	for field, value := range map[string]*string{"hire_date": r.HireDate, "termination_date": r.TerminationDate} {
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

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PersonnelFilter struct {
	UnitID   *string
	Search   *string
	IsActive *bool
	Page     int
	Limit    int
}

func (f *PersonnelFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}
}

type PersonnelResponse struct {
	ID              string    `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	FullName        string    `json:"full_name"`
	CardNumber      string    `json:"card_number"`
	PersonnelNumber string    `json:"personnel_number"`
	UnitID          *string   `json:"unit_id,omitempty"`
	UnitName        *string   `json:"unit_name,omitempty"`
	WorkGroupID     *string   `json:"work_group_id,omitempty"`
	EmploymentType  string    `json:"employment_type"`
	HireDate        *string   `json:"hire_date,omitempty"`
	TerminationDate *string   `json:"termination_date,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type ListPersonnelResponse struct {
	Items      []PersonnelResponse `json:"items"`
	TotalItems int64               `json:"total_items"`
	Page       int                 `json:"page"`
	Limit      int                 `json:"limit"`
}
