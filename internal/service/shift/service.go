package shift

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type ShiftServiceImpl struct {
	db *database.DB
	shift.ShiftRepository
}

func NewShiftService(db *database.DB, shiftRepository shift.ShiftRepository) shift.ShiftService {
	return &ShiftServiceImpl{
		db:              db,
		ShiftRepository: shiftRepository,
	}
}

// Create implements shift.ShiftService.
func (s *ShiftServiceImpl) Create(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	entity := shift.Shift{
		ID:                       uuid.NewString(),
		Name:                     req.Name,
		StartTime1:               req.StartTime1,
		EndTime1:                 req.EndTime1,
		StartTime2:               req.StartTime2,
		EndTime2:                 req.EndTime2,
		AllowedLogStartTime:      req.AllowedLogStartTime,
		LogPeriodDurationMinutes: req.LogPeriodDurationMinutes,
		FloatDurationMinutes:     req.FloatDurationMinutes,
		IsNightShift:             req.IsNightShift,
	}
	// reject segment combinations that cannot produce a working duration
	if _, err := entity.ExpectedWorkMinutes(); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("invalid shift times: %w", err)
	}

	created, err := s.ShiftRepository.Create(ctx, entity)
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}
	return mapToResponse(created), nil
}

// Get implements shift.ShiftService.
func (s *ShiftServiceImpl) Get(ctx context.Context, id string) (shift.ShiftResponse, error) {
	entity, err := s.ShiftRepository.GetByID(ctx, id)
	if err != nil {
		return shift.ShiftResponse{}, err
	}
	return mapToResponse(entity), nil
}

// List implements shift.ShiftService.
func (s *ShiftServiceImpl) List(ctx context.Context) ([]shift.ShiftResponse, error) {
	shifts, err := s.ShiftRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	result := make([]shift.ShiftResponse, 0, len(shifts))
	for _, entity := range shifts {
		result = append(result, mapToResponse(entity))
	}
	return result, nil
}

// Update implements shift.ShiftService.
func (s *ShiftServiceImpl) Update(ctx context.Context, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	entity, err := s.ShiftRepository.GetByID(ctx, req.ID)
	if err != nil {
		return shift.ShiftResponse{}, err
	}

	if req.Name != nil {
		entity.Name = *req.Name
	}
	if req.StartTime1 != nil {
		entity.StartTime1 = *req.StartTime1
	}
	if req.EndTime1 != nil {
		entity.EndTime1 = *req.EndTime1
	}
	if req.StartTime2 != nil {
		entity.StartTime2 = req.StartTime2
	}
	if req.EndTime2 != nil {
		entity.EndTime2 = req.EndTime2
	}
	if req.AllowedLogStartTime != nil {
		entity.AllowedLogStartTime = *req.AllowedLogStartTime
	}
	if req.LogPeriodDurationMinutes != nil {
		entity.LogPeriodDurationMinutes = *req.LogPeriodDurationMinutes
	}
	if req.FloatDurationMinutes != nil {
		entity.FloatDurationMinutes = *req.FloatDurationMinutes
	}
	if req.IsNightShift != nil {
		entity.IsNightShift = *req.IsNightShift
	}

	if _, err := entity.ExpectedWorkMinutes(); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("invalid shift times: %w", err)
	}

	if err := s.ShiftRepository.Update(ctx, entity); err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return mapToResponse(entity), nil
}

// Delete implements shift.ShiftService. Shifts still referenced by a work
// group cycle cannot be removed.
func (s *ShiftServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.ShiftRepository.GetByID(ctx, id); err != nil {
		return err
	}

	assignments, err := s.ShiftRepository.CountWorkGroupAssignments(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count work group assignments: %w", err)
	}
	if assignments > 0 {
		return shift.ErrShiftInUse
	}

	if err := s.ShiftRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

func mapToResponse(s shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:                       s.ID,
		Name:                     s.Name,
		StartTime1:               s.StartTime1,
		EndTime1:                 s.EndTime1,
		StartTime2:               s.StartTime2,
		EndTime2:                 s.EndTime2,
		AllowedLogStartTime:      s.AllowedLogStartTime,
		LogPeriodDurationMinutes: s.LogPeriodDurationMinutes,
		FloatDurationMinutes:     s.FloatDurationMinutes,
		IsNightShift:             s.IsNightShift,
		CreatedAt:                s.CreatedAt,
	}
}
