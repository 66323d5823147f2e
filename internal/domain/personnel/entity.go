package personnel

import "time"

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentPartTime   EmploymentType = "part_time"
	EmploymentContract   EmploymentType = "contract"
	EmploymentInternship EmploymentType = "internship"
)

var EmploymentTypes = []string{
	string(EmploymentFullTime),
	string(EmploymentPartTime),
	string(EmploymentContract),
	string(EmploymentInternship),
}

// Personnel entity
type Personnel struct {
	ID              string
	FirstName       string
	LastName        string
	CardNumber      string
	PersonnelNumber string
	UnitID          *string
	WorkGroupID     *string
	EmploymentType  EmploymentType
	HireDate        *time.Time
	TerminationDate *time.Time
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields for responses
	UnitName *string
}

func (p Personnel) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
