package personnel

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/orgunit"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/personnel"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/workgroup"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type PersonnelServiceImpl struct {
	db *database.DB
	personnel.PersonnelRepository
	orgUnitRepo   orgunit.OrgUnitRepository
	workGroupRepo workgroup.WorkGroupRepository
}

func NewPersonnelService(db *database.DB, personnelRepository personnel.PersonnelRepository, orgUnitRepository orgunit.OrgUnitRepository, workGroupRepository workgroup.WorkGroupRepository) personnel.PersonnelService {
	return &PersonnelServiceImpl{
		db:                  db,
		PersonnelRepository: personnelRepository,
		orgUnitRepo:         orgUnitRepository,
		workGroupRepo:       workGroupRepository,
	}
}

// Create implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) Create(ctx context.Context, req personnel.CreatePersonnelRequest) (personnel.PersonnelResponse, error) {
	if err := req.Validate(); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	if _, err := s.PersonnelRepository.GetByCardNumber(ctx, req.CardNumber); err == nil {
		return personnel.PersonnelResponse{}, personnel.ErrCardNumberExists
	} else if !errors.Is(err, personnel.ErrPersonnelNotFound) {
		return personnel.PersonnelResponse{}, fmt.Errorf("failed to check card number: %w", err)
	}
	if _, err := s.PersonnelRepository.GetByPersonnelNumber(ctx, req.PersonnelNumber); err == nil {
		return personnel.PersonnelResponse{}, personnel.ErrPersonnelNumberExists
	} else if !errors.Is(err, personnel.ErrPersonnelNotFound) {
		return personnel.PersonnelResponse{}, fmt.Errorf("failed to check personnel number: %w", err)
	}

	if req.UnitID != nil {
		if _, err := s.orgUnitRepo.GetByID(ctx, *req.UnitID); err != nil {
			return personnel.PersonnelResponse{}, err
		}
	}
	if req.WorkGroupID != nil {
		if _, err := s.workGroupRepo.GetByID(ctx, *req.WorkGroupID); err != nil {
			return personnel.PersonnelResponse{}, err
		}
	}

	employmentType := personnel.EmploymentFullTime
	if req.EmploymentType != "" {
		employmentType = personnel.EmploymentType(req.EmploymentType)
	}

	entity := personnel.Personnel{
		ID:              uuid.NewString(),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		CardNumber:      req.CardNumber,
		PersonnelNumber: req.PersonnelNumber,
		UnitID:          req.UnitID,
		WorkGroupID:     req.WorkGroupID,
		EmploymentType:  employmentType,
		IsActive:        true,
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return personnel.PersonnelResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
		}
		entity.HireDate = &hireDate
	}

	created, err := s.PersonnelRepository.Create(ctx, entity)
	if err != nil {
		return personnel.PersonnelResponse{}, fmt.Errorf("failed to create personnel: %w", err)
	}
	return mapToResponse(created), nil
}

// Get implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) Get(ctx context.Context, id string) (personnel.PersonnelResponse, error) {
	p, err := s.PersonnelRepository.GetByID(ctx, id)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}
	return mapToResponse(p), nil
}

// List implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) List(ctx context.Context, filter personnel.PersonnelFilter) (personnel.ListPersonnelResponse, error) {
	filter.Normalize()

	items, total, err := s.PersonnelRepository.List(ctx, filter)
	if err != nil {
		return personnel.ListPersonnelResponse{}, fmt.Errorf("failed to list personnel: %w", err)
	}

	result := make([]personnel.PersonnelResponse, 0, len(items))
	for _, p := range items {
		result = append(result, mapToResponse(p))
	}
	return personnel.ListPersonnelResponse{
		Items:      result,
		TotalItems: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// Update implements personnel.PersonnelService.
func (s *PersonnelServiceImpl) Update(ctx context.Context, req personnel.UpdatePersonnelRequest) (personnel.PersonnelResponse, error) {
	if err := req.Validate(); err != nil {
		return personnel.PersonnelResponse{}, err
	}

	p, err := s.PersonnelRepository.GetByID(ctx, req.ID)
	if err != nil {
		return personnel.PersonnelResponse{}, err
	}

	if req.CardNumber != nil && *req.CardNumber != p.CardNumber {
		if existing, err := s.PersonnelRepository.GetByCardNumber(ctx, *req.CardNumber); err == nil && existing.ID != p.ID {
			return personnel.PersonnelResponse{}, personnel.ErrCardNumberExists
		} else if err != nil && !errors.Is(err, personnel.ErrPersonnelNotFound) {
			return personnel.PersonnelResponse{}, fmt.Errorf("failed to check card number: %w", err)
		}
		p.CardNumber = *req.CardNumber
	}
	if req.PersonnelNumber != nil && *req.PersonnelNumber != p.PersonnelNumber {
		if existing, err := s.PersonnelRepository.GetByPersonnelNumber(ctx, *req.PersonnelNumber); err == nil && existing.ID != p.ID {
			return personnel.PersonnelResponse{}, personnel.ErrPersonnelNumberExists
		} else if err != nil && !errors.Is(err, personnel.ErrPersonnelNotFound) {
			return personnel.PersonnelResponse{}, fmt.Errorf("failed to check personnel number: %w", err)
		}
		p.PersonnelNumber = *req.PersonnelNumber
	}

	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.UnitID != nil {
		if _, err := s.orgUnitRepo.GetByID(ctx, *req.UnitID); err != nil {
			return personnel.PersonnelResponse{}, err
		}
		p.UnitID = req.UnitID
	}
	if req.WorkGroupID != nil {
		if _, err := s.workGroupRepo.GetByID(ctx, *req.WorkGroupID); err != nil {
			return personnel.PersonnelResponse{}, err
		}
		p.WorkGroupID = req.WorkGroupID
	}
	if req.EmploymentType != nil {
		p.EmploymentType = personnel.EmploymentType(*req.EmploymentType)
	}
	if req.HireDate != nil {
		hireDate, err := time.Parse("2006-01-02", *req.HireDate)
		if err != nil {
			return personnel.PersonnelResponse{}, fmt.Errorf("failed to parse hire_date: %w", err)
		}
		p.HireDate = &hireDate
	}
	if req.TerminationDate != nil {
		terminationDate, err := time.Parse("2006-01-02", *req.TerminationDate)
		if err != nil {
			return personnel.PersonnelResponse{}, fmt.Errorf("failed to parse termination_date: %w", err)
		}
		p.TerminationDate = &terminationDate
	}
	if req.IsActive != nil {
		p.IsActive = *req.IsActive
	}

	if err := s.PersonnelRepository.Update(ctx, p); err != nil {
		return personnel.PersonnelResponse{}, fmt.Errorf("failed to update personnel: %w", err)
	}
	return mapToResponse(p), nil
}

// Deactivate implements personnel.PersonnelService. Historical logs and
// summaries are kept.
func (s *PersonnelServiceImpl) Deactivate(ctx context.Context, id string) error {
	if _, err := s.PersonnelRepository.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.PersonnelRepository.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("failed to deactivate personnel: %w", err)
	}
	return nil
}

func mapToResponse(p personnel.Personnel) personnel.PersonnelResponse {
	resp := personnel.PersonnelResponse{
		ID:              p.ID,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		FullName:        p.FullName(),
		CardNumber:      p.CardNumber,
		PersonnelNumber: p.PersonnelNumber,
		UnitID:          p.UnitID,
		UnitName:        p.UnitName,
		WorkGroupID:     p.WorkGroupID,
		EmploymentType:  string(p.EmploymentType),
		IsActive:        p.IsActive,
		CreatedAt:       p.CreatedAt,
	}
	if p.HireDate != nil {
		formatted := p.HireDate.Format("2006-01-02")
		resp.HireDate = &formatted
	}
	if p.TerminationDate != nil {
		formatted := p.TerminationDate.Format("2006-01-02")
		resp.TerminationDate = &formatted
	}
	return resp
}
