package workgroup

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/workgroup"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
)

type WorkGroupServiceImpl struct {
	db *database.DB
	workgroup.WorkGroupRepository
	shiftRepo    shift.ShiftRepository
	calendarRepo calendar.CalendarRepository
}

func NewWorkGroupService(db *database.DB, workGroupRepository workgroup.WorkGroupRepository, shiftRepository shift.ShiftRepository, calendarRepository calendar.CalendarRepository) workgroup.WorkGroupService {
	return &WorkGroupServiceImpl{
		db:                  db,
		WorkGroupRepository: workGroupRepository,
		shiftRepo:           shiftRepository,
		calendarRepo:        calendarRepository,
	}
}

// Create implements workgroup.WorkGroupService. The group and its cycle
// assignments are written in one transaction.
func (s *WorkGroupServiceImpl) Create(ctx context.Context, req workgroup.CreateWorkGroupRequest) (workgroup.WorkGroupResponse, error) {
	if err := req.Validate(); err != nil {
		return workgroup.WorkGroupResponse{}, err
	}

	if err := s.checkReferences(ctx, req.CalendarID, req.Assignments); err != nil {
		return workgroup.WorkGroupResponse{}, err
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return workgroup.WorkGroupResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
	}

	group := workgroup.WorkGroup{
		ID:                   uuid.NewString(),
		Name:                 req.Name,
		RepetitionPeriodDays: req.RepetitionPeriodDays,
		StartDate:            startDate,
		CalendarID:           req.CalendarID,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		created, err := s.WorkGroupRepository.Create(txCtx, group)
		if err != nil {
			return fmt.Errorf("failed to create work group: %w", err)
		}
		group = created

		assignments := mapAssignments(group.ID, req.Assignments)
		if err := s.WorkGroupRepository.ReplaceAssignments(txCtx, group.ID, assignments); err != nil {
			return fmt.Errorf("failed to store shift assignments: %w", err)
		}
		group.Assignments = assignments
		return nil
	})
	if err != nil {
		return workgroup.WorkGroupResponse{}, err
	}

	return mapToResponse(group), nil
}

// Get implements workgroup.WorkGroupService.
func (s *WorkGroupServiceImpl) Get(ctx context.Context, id string) (workgroup.WorkGroupResponse, error) {
	group, err := s.WorkGroupRepository.GetByID(ctx, id)
	if err != nil {
		return workgroup.WorkGroupResponse{}, err
	}
	return mapToResponse(group), nil
}

// List implements workgroup.WorkGroupService.
func (s *WorkGroupServiceImpl) List(ctx context.Context) ([]workgroup.WorkGroupResponse, error) {
	groups, err := s.WorkGroupRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work groups: %w", err)
	}

	result := make([]workgroup.WorkGroupResponse, 0, len(groups))
	for _, group := range groups {
		result = append(result, mapToResponse(group))
	}
	return result, nil
}

// Update implements workgroup.WorkGroupService. Passing assignments
// replaces the whole cycle.
func (s *WorkGroupServiceImpl) Update(ctx context.Context, req workgroup.UpdateWorkGroupRequest) (workgroup.WorkGroupResponse, error) {
	group, err := s.WorkGroupRepository.GetByID(ctx, req.ID)
	if err != nil {
		return workgroup.WorkGroupResponse{}, err
	}

	if err := req.Validate(group.RepetitionPeriodDays); err != nil {
		return workgroup.WorkGroupResponse{}, err
	}
	if err := s.checkReferences(ctx, req.CalendarID, req.Assignments); err != nil {
		return workgroup.WorkGroupResponse{}, err
	}

	if req.Name != nil {
		group.Name = *req.Name
	}
	if req.RepetitionPeriodDays != nil {
		group.RepetitionPeriodDays = *req.RepetitionPeriodDays
	}
	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			return workgroup.WorkGroupResponse{}, fmt.Errorf("failed to parse start_date: %w", err)
		}
		group.StartDate = startDate
	}
	if req.CalendarID != nil {
		group.CalendarID = req.CalendarID
	}

	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.WorkGroupRepository.Update(txCtx, group); err != nil {
			return fmt.Errorf("failed to update work group: %w", err)
		}
		if req.Assignments != nil {
			assignments := mapAssignments(group.ID, req.Assignments)
			if err := s.WorkGroupRepository.ReplaceAssignments(txCtx, group.ID, assignments); err != nil {
				return fmt.Errorf("failed to replace shift assignments: %w", err)
			}
			group.Assignments = assignments
		}
		return nil
	})
	if err != nil {
		return workgroup.WorkGroupResponse{}, err
	}

	return mapToResponse(group), nil
}

// Delete implements workgroup.WorkGroupService. Groups with assigned
// personnel cannot be removed.
func (s *WorkGroupServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.WorkGroupRepository.GetByID(ctx, id); err != nil {
		return err
	}

	members, err := s.WorkGroupRepository.CountPersonnel(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count personnel: %w", err)
	}
	if members > 0 {
		return workgroup.ErrWorkGroupHasMember
	}

	if err := s.WorkGroupRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete work group: %w", err)
	}
	return nil
}

func (s *WorkGroupServiceImpl) checkReferences(ctx context.Context, calendarID *string, assignments []workgroup.AssignmentInput) error {
	if calendarID != nil {
		if _, err := s.calendarRepo.GetByID(ctx, *calendarID); err != nil {
			return err
		}
	}
	for _, a := range assignments {
		if a.ShiftID == nil {
			continue
		}
		if _, err := s.shiftRepo.GetByID(ctx, *a.ShiftID); err != nil {
			return err
		}
	}
	return nil
}

func mapAssignments(groupID string, inputs []workgroup.AssignmentInput) []workgroup.ShiftAssignment {
	assignments := make([]workgroup.ShiftAssignment, 0, len(inputs))
	for _, input := range inputs {
		assignments = append(assignments, workgroup.ShiftAssignment{
			ID:          uuid.NewString(),
			WorkGroupID: groupID,
			DayOfCycle:  input.DayOfCycle,
			ShiftID:     input.ShiftID,
		})
	}
	return assignments
}

func mapToResponse(group workgroup.WorkGroup) workgroup.WorkGroupResponse {
	assignments := make([]workgroup.AssignmentResponse, 0, len(group.Assignments))
	for _, a := range group.Assignments {
		assignments = append(assignments, workgroup.AssignmentResponse{
			DayOfCycle: a.DayOfCycle,
			ShiftID:    a.ShiftID,
		})
	}
	return workgroup.WorkGroupResponse{
		ID:                   group.ID,
		Name:                 group.Name,
		RepetitionPeriodDays: group.RepetitionPeriodDays,
		StartDate:            group.StartDate.Format("2006-01-02"),
		CalendarID:           group.CalendarID,
		Assignments:          assignments,
		CreatedAt:            group.CreatedAt,
	}
}
