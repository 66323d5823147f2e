package calendar

import (
	"context"
	"time"
)

type CalendarRepository interface {
	Create(ctx context.Context, c Calendar) (Calendar, error)
	GetByID(ctx context.Context, id string) (Calendar, error)
	List(ctx context.Context) ([]Calendar, error)
	Update(ctx context.Context, c Calendar) error
	Delete(ctx context.Context, id string) error
	CountWorkGroups(ctx context.Context, id string) (int64, error)
}

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)
	ListByCalendar(ctx context.Context, calendarID string) ([]Holiday, error)
	// ListForRange returns holidays on the calendar that could match dates in
	// [start, end], recurring ones included.
	ListForRange(ctx context.Context, calendarID string, start, end time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
