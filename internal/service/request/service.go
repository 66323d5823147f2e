package request

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/personnel"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/duration"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type RequestServiceImpl struct {
	db *database.DB
	request.RequestRepository
	leaveTypeRepo     request.LeaveTypeRepository
	missionTypeRepo   request.MissionTypeRepository
	personnelRepo     personnel.PersonnelRepository
	attendanceService attendance.AttendanceService
}

func NewRequestService(
	db *database.DB,
	requestRepository request.RequestRepository,
	leaveTypeRepository request.LeaveTypeRepository,
	missionTypeRepository request.MissionTypeRepository,
	personnelRepository personnel.PersonnelRepository,
	attendanceService attendance.AttendanceService,
) request.RequestService {
	return &RequestServiceImpl{
		db:                db,
		RequestRepository: requestRepository,
		leaveTypeRepo:     leaveTypeRepository,
		missionTypeRepo:   missionTypeRepository,
		personnelRepo:     personnelRepository,
		attendanceService: attendanceService,
	}
}

type actor struct {
	UserID      string
	PersonnelID *string
	Role        user.Role
}

func actorFromContext(ctx context.Context) (actor, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return actor{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return actor{}, fmt.Errorf("user_id not found in token")
	}
	role, _ := claims["role"].(string)

	a := actor{UserID: userID, Role: user.Role(role)}
	if personnelID, ok := claims["personnel_id"].(string); ok && personnelID != "" {
		a.PersonnelID = &personnelID
	}
	return a, nil
}

// Create implements request.RequestService. Overlapping pending or approved
// requests of the same type are refused.
func (s *RequestServiceImpl) Create(ctx context.Context, req request.CreateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	if _, err := s.personnelRepo.GetByID(ctx, req.PersonnelID); err != nil {
		return request.RequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	entity := request.Request{
		ID:          uuid.NewString(),
		Type:        req.Type,
		PersonnelID: req.PersonnelID,
		Status:      request.StatusPending,
		StartDate:   startDate,
		EndDate:     endDate,
		IsHourly:    req.IsHourly,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}

	switch req.Type {
	case request.TypeLeave:
		leaveType, err := s.leaveTypeRepo.GetByID(ctx, *req.LeaveTypeID)
		if err != nil {
			return request.RequestResponse{}, err
		}
		entity.Leave = &request.LeaveDetails{
			LeaveTypeID: leaveType.ID,
			IsPaid:      leaveType.IsPaid,
		}
	case request.TypeMission:
		missionType, err := s.missionTypeRepo.GetByID(ctx, *req.MissionTypeID)
		if err != nil {
			return request.RequestResponse{}, err
		}
		entity.Mission = &request.MissionDetails{
			MissionTypeID: missionType.ID,
			Destination:   *req.Destination,
			EstimatedCost: req.EstimatedCost,
			Purpose:       req.Purpose,
		}
	default:
		return request.RequestResponse{}, fmt.Errorf("unknown request type: %s", req.Type)
	}

	overlapping, err := s.RequestRepository.ListOverlapping(ctx, req.Type, req.PersonnelID, startDate, endDate)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to check overlapping requests: %w", err)
	}
	if len(overlapping) > 0 {
		return request.RequestResponse{}, request.ErrRequestOverlaps
	}

	created, err := s.RequestRepository.Create(ctx, entity)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to create request: %w", err)
	}
	return mapToResponse(created)
}

// Get implements request.RequestService.
func (s *RequestServiceImpl) Get(ctx context.Context, id string, requestType request.RequestType) (request.RequestResponse, error) {
	entity, err := s.RequestRepository.GetByID(ctx, id, requestType)
	if err != nil {
		return request.RequestResponse{}, err
	}
	return mapToResponse(entity)
}

// List implements request.RequestService.
func (s *RequestServiceImpl) List(ctx context.Context, filter request.RequestFilter) (request.ListRequestsResponse, error) {
	filter.Normalize()

	items, total, err := s.RequestRepository.List(ctx, filter)
	if err != nil {
		return request.ListRequestsResponse{}, fmt.Errorf("failed to list requests: %w", err)
	}

	result := make([]request.RequestResponse, 0, len(items))
	for _, entity := range items {
		resp, err := mapToResponse(entity)
		if err != nil {
			return request.ListRequestsResponse{}, err
		}
		result = append(result, resp)
	}
	return request.ListRequestsResponse{
		Items:      result,
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements request.RequestService. Only pending requests can be
// edited.
func (s *RequestServiceImpl) Update(ctx context.Context, requestType request.RequestType, req request.UpdateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	entity, err := s.RequestRepository.GetByID(ctx, req.ID, requestType)
	if err != nil {
		return request.RequestResponse{}, err
	}
	if entity.Status != request.StatusPending {
		return request.RequestResponse{}, request.ErrRequestNotPending
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return request.RequestResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
		}
		entity.StartDate = startDate
	}
	if req.EndDate != nil {
		endDate, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			return request.RequestResponse{}, fmt.Errorf("failed to parse end_date: %w", err)
		}
		entity.EndDate = endDate
	}
	if entity.EndDate.Before(entity.StartDate) {
		return request.RequestResponse{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		}}
	}
	if req.StartTime != nil {
		entity.StartTime = req.StartTime
	}
	if req.EndTime != nil {
		entity.EndTime = req.EndTime
	}
	if req.Description != nil {
		entity.Description = req.Description
	}
	if entity.Mission != nil {
		if req.Destination != nil {
			entity.Mission.Destination = *req.Destination
		}
		if req.EstimatedCost != nil {
			entity.Mission.EstimatedCost = req.EstimatedCost
		}
		if req.Purpose != nil {
			entity.Mission.Purpose = req.Purpose
		}
	}

	if err := s.RequestRepository.Update(ctx, entity); err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to update request: %w", err)
	}
	return mapToResponse(entity)
}

// Delete implements request.RequestService. Only pending requests owned by
// the caller, or any pending request for admins, can be removed.
func (s *RequestServiceImpl) Delete(ctx context.Context, id string, requestType request.RequestType) error {
	caller, err := actorFromContext(ctx)
	if err != nil {
		return err
	}

	entity, err := s.RequestRepository.GetByID(ctx, id, requestType)
	if err != nil {
		return err
	}
	if entity.Status != request.StatusPending {
		return request.ErrRequestNotPending
	}
	isOwner := caller.PersonnelID != nil && *caller.PersonnelID == entity.PersonnelID
	if !isOwner && caller.Role != user.RoleAdmin {
		return request.ErrNotRequestOwner
	}

	if err := s.RequestRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete request: %w", err)
	}
	return nil
}

// UpdateStatus implements request.RequestService. Approval and rejection
// need a managing role; cancellation is reserved to the owner and admins.
// Approving reprocesses the summaries of every covered day so the absence
// shows up without a separate processing call.
func (s *RequestServiceImpl) UpdateStatus(ctx context.Context, req request.UpdateStatusRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	caller, err := actorFromContext(ctx)
	if err != nil {
		return request.RequestResponse{}, err
	}

	entity, err := s.RequestRepository.GetByID(ctx, req.ID, req.Type)
	if err != nil {
		return request.RequestResponse{}, err
	}

	now := time.Now()
	switch request.Status(req.Status) {
	case request.StatusApproved:
		if !request.CanManage(caller.Role) {
			return request.RequestResponse{}, request.ErrManagerRoleRequired
		}
		if err := entity.Approve(caller.UserID, now); err != nil {
			return request.RequestResponse{}, err
		}
	case request.StatusRejected:
		if !request.CanManage(caller.Role) {
			return request.RequestResponse{}, request.ErrManagerRoleRequired
		}
		if err := entity.Reject(caller.UserID, *req.RejectReason, now); err != nil {
			return request.RequestResponse{}, err
		}
	case request.StatusCancelled:
		if err := entity.Cancel(caller.PersonnelID, caller.Role); err != nil {
			return request.RequestResponse{}, err
		}
	}

	if err := s.RequestRepository.Update(ctx, entity); err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to update request status: %w", err)
	}

	if entity.Status == request.StatusApproved {
		s.reprocessCoveredDays(ctx, entity)
	}

	return mapToResponse(entity)
}

// reprocessCoveredDays refreshes the daily summaries the approval affects.
// Failures are logged, not returned: the approval itself already happened.
func (s *RequestServiceImpl) reprocessCoveredDays(ctx context.Context, entity request.Request) {
	for date := entity.StartDate; !date.After(entity.EndDate); date = date.AddDate(0, 0, 1) {
		_, err := s.attendanceService.Reprocess(ctx, attendance.ReprocessRequest{
			PersonnelID: entity.PersonnelID,
			Date:        date.Format("2006-01-02"),
		})
		if err != nil {
			slog.Error("failed to reprocess day after approval",
				"request_id", entity.ID, "personnel_id", entity.PersonnelID,
				"date", date.Format("2006-01-02"), "error", err)
		}
	}
}

// CreateLeaveType implements request.RequestService.
func (s *RequestServiceImpl) CreateLeaveType(ctx context.Context, req request.CreateTypeRequest) (request.TypeResponse, error) {
	if err := req.Validate(); err != nil {
		return request.TypeResponse{}, err
	}

	isPaid := true
	if req.IsPaid != nil {
		isPaid = *req.IsPaid
	}
	created, err := s.leaveTypeRepo.Create(ctx, request.LeaveType{
		ID:               uuid.NewString(),
		Name:             req.Name,
		IsPaid:           isPaid,
		CountsAsWork:     req.CountsAsWork,
		RequiresApproval: req.RequiresApproval,
	})
	if err != nil {
		return request.TypeResponse{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return request.TypeResponse{
		ID:               created.ID,
		Name:             created.Name,
		IsPaid:           &created.IsPaid,
		CountsAsWork:     created.CountsAsWork,
		RequiresApproval: created.RequiresApproval,
	}, nil
}

// ListLeaveTypes implements request.RequestService.
func (s *RequestServiceImpl) ListLeaveTypes(ctx context.Context) ([]request.TypeResponse, error) {
	types, err := s.leaveTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave types: %w", err)
	}

	result := make([]request.TypeResponse, 0, len(types))
	for i := range types {
		result = append(result, request.TypeResponse{
			ID:               types[i].ID,
			Name:             types[i].Name,
			IsPaid:           &types[i].IsPaid,
			CountsAsWork:     types[i].CountsAsWork,
			RequiresApproval: types[i].RequiresApproval,
		})
	}
	return result, nil
}

// DeleteLeaveType implements request.RequestService.
func (s *RequestServiceImpl) DeleteLeaveType(ctx context.Context, id string) error {
	if _, err := s.leaveTypeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.leaveTypeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete leave type: %w", err)
	}
	return nil
}

// CreateMissionType implements request.RequestService.
func (s *RequestServiceImpl) CreateMissionType(ctx context.Context, req request.CreateTypeRequest) (request.TypeResponse, error) {
	if err := req.Validate(); err != nil {
		return request.TypeResponse{}, err
	}

	created, err := s.missionTypeRepo.Create(ctx, request.MissionType{
		ID:               uuid.NewString(),
		Name:             req.Name,
		CountsAsWork:     req.CountsAsWork,
		RequiresApproval: req.RequiresApproval,
	})
	if err != nil {
		return request.TypeResponse{}, fmt.Errorf("failed to create mission type: %w", err)
	}
	return request.TypeResponse{
		ID:               created.ID,
		Name:             created.Name,
		CountsAsWork:     created.CountsAsWork,
		RequiresApproval: created.RequiresApproval,
	}, nil
}

// ListMissionTypes implements request.RequestService.
func (s *RequestServiceImpl) ListMissionTypes(ctx context.Context) ([]request.TypeResponse, error) {
	types, err := s.missionTypeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mission types: %w", err)
	}

	result := make([]request.TypeResponse, 0, len(types))
	for _, t := range types {
		result = append(result, request.TypeResponse{
			ID:               t.ID,
			Name:             t.Name,
			CountsAsWork:     t.CountsAsWork,
			RequiresApproval: t.RequiresApproval,
		})
	}
	return result, nil
}

// DeleteMissionType implements request.RequestService.
func (s *RequestServiceImpl) DeleteMissionType(ctx context.Context, id string) error {
	if _, err := s.missionTypeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.missionTypeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete mission type: %w", err)
	}
	return nil
}

func mapToResponse(r request.Request) (request.RequestResponse, error) {
	var formatted string
	var err error
	if r.IsHourly && r.StartTime != nil && r.EndTime != nil {
		start, parseErr := time.Parse("15:04", *r.StartTime)
		if parseErr != nil {
			start, parseErr = time.Parse("15:04:05", *r.StartTime)
		}
		end, endErr := time.Parse("15:04", *r.EndTime)
		if endErr != nil {
			end, endErr = time.Parse("15:04:05", *r.EndTime)
		}
		if parseErr == nil && endErr == nil {
			formatted, err = duration.FormatRange(start, end, true)
		}
	} else {
		formatted, err = duration.FormatRange(r.StartDate, r.EndDate, false)
	}
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to format duration: %w", err)
	}

	resp := request.RequestResponse{
		ID:            r.ID,
		Type:          string(r.Type),
		PersonnelID:   r.PersonnelID,
		PersonnelName: r.PersonnelName,
		Status:        string(r.Status),
		StartDate:     r.StartDate.Format("2006-01-02"),
		EndDate:       r.EndDate.Format("2006-01-02"),
		IsHourly:      r.IsHourly,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		Description:   r.Description,
		RejectReason:  r.RejectReason,
		ApproverID:    r.ApproverID,
		Duration:      formatted,
		TypeName:      r.TypeName,
		CreatedAt:     r.CreatedAt,
	}
	if r.Leave != nil {
		resp.LeaveTypeID = &r.Leave.LeaveTypeID
		resp.LeaveIsPaid = &r.Leave.IsPaid
	}
	if r.Mission != nil {
		resp.MissionTypeID = &r.Mission.MissionTypeID
		resp.Destination = &r.Mission.Destination
		resp.EstimatedCost = r.Mission.EstimatedCost
		resp.Purpose = r.Mission.Purpose
	}
	return resp, nil
}
