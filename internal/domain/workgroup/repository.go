package workgroup

import "context"

type WorkGroupRepository interface {
	Create(ctx context.Context, g WorkGroup) (WorkGroup, error)
	// GetByID loads the group with its shift assignments.
	GetByID(ctx context.Context, id string) (WorkGroup, error)
	List(ctx context.Context) ([]WorkGroup, error)
	Update(ctx context.Context, g WorkGroup) error
	Delete(ctx context.Context, id string) error
	ReplaceAssignments(ctx context.Context, groupID string, assignments []ShiftAssignment) error
	CountPersonnel(ctx context.Context, id string) (int64, error)
}
