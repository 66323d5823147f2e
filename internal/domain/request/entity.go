package request

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
)

type RequestType string

const (
	TypeLeave   RequestType = "leave"
	TypeMission RequestType = "mission"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
)

var Statuses = []string{
	string(StatusPending),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusCancelled),
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected || s == StatusCancelled
}

// LeaveDetails carries the leave-specific variant fields.
type LeaveDetails struct {
	LeaveTypeID string
	IsPaid      bool
}

// MissionDetails carries the mission-specific variant fields.
type MissionDetails struct {
	MissionTypeID string
	Destination   string
	EstimatedCost *float64
	Purpose       *string
}

// Request is a leave or mission request, discriminated by Type. Exactly one
// of Leave and Mission is set, matching the discriminant.
type Request struct {
	ID          string
	Type        RequestType
	PersonnelID string
	Status      Status

	StartDate time.Time
	EndDate   time.Time
	IsHourly  bool
	StartTime *string
	EndTime   *string

	Description  *string
	RejectReason *string
	ApproverID   *string
	ApprovedAt   *time.Time

	Leave   *LeaveDetails
	Mission *MissionDetails

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields for responses
	PersonnelName *string
	TypeName      *string
}

// CanManage reports whether the role may approve or reject requests.
func CanManage(role user.Role) bool {
	return role.CanManageRequests()
}

// CanCancel reports whether a request in the given status may be cancelled.
// Only pending requests can be cancelled.
func CanCancel(status Status) bool {
	return status == StatusPending
}

// Approve transitions the request to APPROVED. The request must be pending.
func (r *Request) Approve(approverID string, now time.Time) error {
	if r.Status != StatusPending {
		return ErrRequestNotPending
	}
	r.Status = StatusApproved
	r.ApproverID = &approverID
	r.ApprovedAt = &now
	return nil
}

// Reject transitions the request to REJECTED. A non-empty reason is
// mandatory; whitespace-only reasons are refused.
func (r *Request) Reject(approverID string, reason string, now time.Time) error {
	if r.Status != StatusPending {
		return ErrRequestNotPending
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ErrRejectReasonRequired
	}
	r.Status = StatusRejected
	r.RejectReason = &reason
	r.ApproverID = &approverID
	r.ApprovedAt = &now
	return nil
}

// Cancel transitions the request to CANCELLED. Only the owner may cancel,
// admins excepted, and only while the request is pending.
func (r *Request) Cancel(actorPersonnelID *string, actorRole user.Role) error {
	if r.Status != StatusPending {
		return ErrRequestNotPending
	}
	isOwner := actorPersonnelID != nil && *actorPersonnelID == r.PersonnelID
	if !isOwner && actorRole != user.RoleAdmin {
		return ErrNotRequestOwner
	}
	r.Status = StatusCancelled
	return nil
}

// Overlaps reports whether the request's date range intersects [start, end].
func (r *Request) Overlaps(start, end time.Time) bool {
	return !r.EndDate.Before(start) && !r.StartDate.After(end)
}

// LeaveType is the leave classification reference.
type LeaveType struct {
	ID               string
	Name             string
	IsPaid           bool
	CountsAsWork     bool
	RequiresApproval bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// MissionType is the mission classification reference.
type MissionType struct {
	ID               string
	Name             string
	CountsAsWork     bool
	RequiresApproval bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
