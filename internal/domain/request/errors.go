package request

import "errors"

var (
	ErrRequestNotFound      = errors.New("request not found")
	ErrRequestNotPending    = errors.New("request is not pending")
	ErrRejectReasonRequired = errors.New("reject reason is required")
	ErrNotRequestOwner      = errors.New("not the request owner")
	ErrRequestOverlaps      = errors.New("request overlaps an existing request")
	ErrLeaveTypeNotFound    = errors.New("leave type not found")
	ErrMissionTypeNotFound  = errors.New("mission type not found")
	ErrManagerRoleRequired  = errors.New("manager role required")
)
