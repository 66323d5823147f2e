package workgroup

import "context"

type WorkGroupService interface {
	Create(ctx context.Context, req CreateWorkGroupRequest) (WorkGroupResponse, error)
	Get(ctx context.Context, id string) (WorkGroupResponse, error)
	List(ctx context.Context) ([]WorkGroupResponse, error)
	Update(ctx context.Context, req UpdateWorkGroupRequest) (WorkGroupResponse, error)
	Delete(ctx context.Context, id string) error
}
