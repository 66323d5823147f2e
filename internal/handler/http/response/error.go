package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/orgunit"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/personnel"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/workgroup"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrRefreshTokenCookieNotFound):
		Unauthorized(w, "Refresh token not provided")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired), errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, err.Error())

	// Org unit domain errors
	case errors.Is(err, orgunit.ErrOrgUnitNotFound):
		NotFound(w, "Organizational unit not found")
	case errors.Is(err, orgunit.ErrOrgUnitHasChildren), errors.Is(err, orgunit.ErrOrgUnitHasPersonnel):
		Conflict(w, err.Error())

	// Personnel domain errors
	case errors.Is(err, personnel.ErrPersonnelNotFound):
		NotFound(w, "Personnel not found")
	case errors.Is(err, personnel.ErrCardNumberExists):
		Conflict(w, "Card number already exists")
	case errors.Is(err, personnel.ErrPersonnelNumberExists):
		Conflict(w, "Personnel number already exists")
	case errors.Is(err, personnel.ErrPersonnelNotAssignable):
		BadRequest(w, "Personnel has no work group assignment", nil)

	// Shift and schedule domain errors
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is assigned to a work group")
	case errors.Is(err, calendar.ErrCalendarNotFound):
		NotFound(w, "Calendar not found")
	case errors.Is(err, calendar.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, calendar.ErrCalendarInUse):
		Conflict(w, "Calendar is assigned to a work group")
	case errors.Is(err, workgroup.ErrWorkGroupNotFound):
		NotFound(w, "Work group not found")
	case errors.Is(err, workgroup.ErrWorkGroupHasMember):
		Conflict(w, "Work group has assigned personnel")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrLogNotFound):
		NotFound(w, "Attendance log not found")
	case errors.Is(err, attendance.ErrSummaryNotFound):
		NotFound(w, "Daily summary not found")
	case errors.Is(err, attendance.ErrUnknownDevice):
		Unauthorized(w, "Unknown device")

	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, request.ErrMissionTypeNotFound):
		NotFound(w, "Mission type not found")
	case errors.Is(err, request.ErrRequestNotPending):
		Conflict(w, "Request is not pending")
	case errors.Is(err, request.ErrRequestOverlaps):
		Conflict(w, "Request overlaps an existing request")
	case errors.Is(err, request.ErrRejectReasonRequired):
		BadRequest(w, "Reject reason is required", nil)
	case errors.Is(err, request.ErrNotRequestOwner):
		Forbidden(w, "Not the request owner")
	case errors.Is(err, request.ErrManagerRoleRequired):
		Forbidden(w, "Manager role required")

	// Report domain errors
	case errors.Is(err, report.ErrUnknownExportFormat):
		BadRequest(w, "Unknown export format", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
