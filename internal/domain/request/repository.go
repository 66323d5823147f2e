package request

import (
	"context"
	"time"
)

type RequestRepository interface {
	Create(ctx context.Context, r Request) (Request, error)
	GetByID(ctx context.Context, id string, requestType RequestType) (Request, error)
	List(ctx context.Context, filter RequestFilter) ([]Request, int64, error)
	// ListOverlapping returns pending and approved requests of the given type
	// for the personnel whose date range intersects [start, end].
	ListOverlapping(ctx context.Context, requestType RequestType, personnelID string, start, end time.Time) ([]Request, error)
	// ListApprovedForDay returns approved requests of the given type covering
	// the date, for summary processing.
	ListApprovedForDay(ctx context.Context, requestType RequestType, personnelID string, date time.Time) ([]Request, error)
	Update(ctx context.Context, r Request) error
	Delete(ctx context.Context, id string) error
}

type LeaveTypeRepository interface {
	Create(ctx context.Context, t LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	List(ctx context.Context) ([]LeaveType, error)
	Delete(ctx context.Context, id string) error
}

type MissionTypeRepository interface {
	Create(ctx context.Context, t MissionType) (MissionType, error)
	GetByID(ctx context.Context, id string) (MissionType, error)
	List(ctx context.Context) ([]MissionType, error)
	Delete(ctx context.Context, id string) error
}
