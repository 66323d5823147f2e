package orgunit

import (
	"context"
	"fmt"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/orgunit"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type OrgUnitServiceImpl struct {
	db *database.DB
	orgunit.OrgUnitRepository
}

func NewOrgUnitService(db *database.DB, orgUnitRepository orgunit.OrgUnitRepository) orgunit.OrgUnitService {
	return &OrgUnitServiceImpl{
		db:                db,
		OrgUnitRepository: orgUnitRepository,
	}
}

// Create implements orgunit.OrgUnitService.
func (s *OrgUnitServiceImpl) Create(ctx context.Context, req orgunit.CreateOrgUnitRequest) (orgunit.OrgUnitResponse, error) {
	if err := req.Validate(); err != nil {
		return orgunit.OrgUnitResponse{}, err
	}

	if req.ParentID != nil {
		if _, err := s.OrgUnitRepository.GetByID(ctx, *req.ParentID); err != nil {
			return orgunit.OrgUnitResponse{}, err
		}
	}

	created, err := s.OrgUnitRepository.Create(ctx, orgunit.OrgUnit{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		ParentID:    req.ParentID,
	})
	if err != nil {
		return orgunit.OrgUnitResponse{}, fmt.Errorf("failed to create org unit: %w", err)
	}
	return mapToResponse(created), nil
}

// Get implements orgunit.OrgUnitService.
func (s *OrgUnitServiceImpl) Get(ctx context.Context, id string) (orgunit.OrgUnitResponse, error) {
	unit, err := s.OrgUnitRepository.GetByID(ctx, id)
	if err != nil {
		return orgunit.OrgUnitResponse{}, err
	}
	return mapToResponse(unit), nil
}

// List implements orgunit.OrgUnitService.
func (s *OrgUnitServiceImpl) List(ctx context.Context) ([]orgunit.OrgUnitResponse, error) {
	units, err := s.OrgUnitRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list org units: %w", err)
	}

	result := make([]orgunit.OrgUnitResponse, 0, len(units))
	for _, unit := range units {
		result = append(result, mapToResponse(unit))
	}
	return result, nil
}

// Tree implements orgunit.OrgUnitService.
func (s *OrgUnitServiceImpl) Tree(ctx context.Context) ([]orgunit.TreeNodeResponse, error) {
	units, err := s.OrgUnitRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list org units: %w", err)
	}
	return mapTree(orgunit.BuildTree(units)), nil
}

// Update implements orgunit.OrgUnitService.
func (s *OrgUnitServiceImpl) Update(ctx context.Context, req orgunit.UpdateOrgUnitRequest) (orgunit.OrgUnitResponse, error) {
	if err := req.Validate(); err != nil {
		return orgunit.OrgUnitResponse{}, err
	}

	unit, err := s.OrgUnitRepository.GetByID(ctx, req.ID)
	if err != nil {
		return orgunit.OrgUnitResponse{}, err
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Description != nil {
		unit.Description = req.Description
	}
	if req.ParentID != nil {
		if *req.ParentID == unit.ID {
			return orgunit.OrgUnitResponse{}, fmt.Errorf("org unit cannot be its own parent")
		}
		if _, err := s.OrgUnitRepository.GetByID(ctx, *req.ParentID); err != nil {
			return orgunit.OrgUnitResponse{}, err
		}
		unit.ParentID = req.ParentID
	}

	if err := s.OrgUnitRepository.Update(ctx, unit); err != nil {
		return orgunit.OrgUnitResponse{}, fmt.Errorf("failed to update org unit: %w", err)
	}
	return mapToResponse(unit), nil
}

// Delete implements orgunit.OrgUnitService. Units with children or assigned
// personnel cannot be removed.
func (s *OrgUnitServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.OrgUnitRepository.GetByID(ctx, id); err != nil {
		return err
	}

	children, err := s.OrgUnitRepository.CountChildren(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count child units: %w", err)
	}
	if children > 0 {
		return orgunit.ErrOrgUnitHasChildren
	}

	assigned, err := s.OrgUnitRepository.CountPersonnel(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count assigned personnel: %w", err)
	}
	if assigned > 0 {
		return orgunit.ErrOrgUnitHasPersonnel
	}

	if err := s.OrgUnitRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete org unit: %w", err)
	}
	return nil
}

func mapToResponse(unit orgunit.OrgUnit) orgunit.OrgUnitResponse {
	return orgunit.OrgUnitResponse{
		ID:          unit.ID,
		Name:        unit.Name,
		Description: unit.Description,
		ParentID:    unit.ParentID,
		CreatedAt:   unit.CreatedAt,
		UpdatedAt:   unit.UpdatedAt,
	}
}

func mapTree(nodes []*orgunit.TreeNode) []orgunit.TreeNodeResponse {
	result := make([]orgunit.TreeNodeResponse, 0, len(nodes))
	for _, node := range nodes {
		result = append(result, orgunit.TreeNodeResponse{
			OrgUnitResponse: mapToResponse(node.OrgUnit),
			Children:        mapTree(node.Children),
		})
	}
	return result
}
