package request

import "context"

// RequestService governs the request lifecycle. Status transitions are
// enforced here regardless of what the caller claims about current state.
type RequestService interface {
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)
	Get(ctx context.Context, id string, requestType RequestType) (RequestResponse, error)
	List(ctx context.Context, filter RequestFilter) (ListRequestsResponse, error)
	Update(ctx context.Context, requestType RequestType, req UpdateRequestRequest) (RequestResponse, error)
	Delete(ctx context.Context, id string, requestType RequestType) error
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (RequestResponse, error)

	CreateLeaveType(ctx context.Context, req CreateTypeRequest) (TypeResponse, error)
	ListLeaveTypes(ctx context.Context) ([]TypeResponse, error)
	DeleteLeaveType(ctx context.Context, id string) error
	CreateMissionType(ctx context.Context, req CreateTypeRequest) (TypeResponse, error)
	ListMissionTypes(ctx context.Context) ([]TypeResponse, error)
	DeleteMissionType(ctx context.Context, id string) error
}
