package calendar

import "context"

type CalendarService interface {
	Create(ctx context.Context, req CreateCalendarRequest) (CalendarResponse, error)
	Get(ctx context.Context, id string) (CalendarResponse, error)
	List(ctx context.Context) ([]CalendarResponse, error)
	Update(ctx context.Context, req UpdateCalendarRequest) (CalendarResponse, error)
	Delete(ctx context.Context, id string) error

	AddHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListHolidays(ctx context.Context, calendarID string) ([]HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
