package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// CanManageRequests reports whether a role may approve or reject
// leave and mission requests.
func (r Role) CanManageRequests() bool {
	return r == RoleAdmin || r == RoleManager
}

// User entity
type User struct {
	ID           string
	Email        string
	PasswordHash string
	GoogleID     *string
	Role         Role
	PersonnelID  *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
