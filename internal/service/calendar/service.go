package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type CalendarServiceImpl struct {
	db *database.DB
	calendar.CalendarRepository
	holidayRepo calendar.HolidayRepository
}

func NewCalendarService(db *database.DB, calendarRepository calendar.CalendarRepository, holidayRepository calendar.HolidayRepository) calendar.CalendarService {
	return &CalendarServiceImpl{
		db:                 db,
		CalendarRepository: calendarRepository,
		holidayRepo:        holidayRepository,
	}
}

// Create implements calendar.CalendarService.
func (s *CalendarServiceImpl) Create(ctx context.Context, req calendar.CreateCalendarRequest) (calendar.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.CalendarResponse{}, err
	}

	created, err := s.CalendarRepository.Create(ctx, calendar.Calendar{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return calendar.CalendarResponse{}, fmt.Errorf("failed to create calendar: %w", err)
	}
	return mapCalendarToResponse(created), nil
}

// Get implements calendar.CalendarService.
func (s *CalendarServiceImpl) Get(ctx context.Context, id string) (calendar.CalendarResponse, error) {
	c, err := s.CalendarRepository.GetByID(ctx, id)
	if err != nil {
		return calendar.CalendarResponse{}, err
	}
	return mapCalendarToResponse(c), nil
}

// List implements calendar.CalendarService.
func (s *CalendarServiceImpl) List(ctx context.Context) ([]calendar.CalendarResponse, error) {
	calendars, err := s.CalendarRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendars: %w", err)
	}

	result := make([]calendar.CalendarResponse, 0, len(calendars))
	for _, c := range calendars {
		result = append(result, mapCalendarToResponse(c))
	}
	return result, nil
}

// Update implements calendar.CalendarService.
func (s *CalendarServiceImpl) Update(ctx context.Context, req calendar.UpdateCalendarRequest) (calendar.CalendarResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.CalendarResponse{}, err
	}

	c, err := s.CalendarRepository.GetByID(ctx, req.ID)
	if err != nil {
		return calendar.CalendarResponse{}, err
	}

	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Description != nil {
		c.Description = req.Description
	}

	if err := s.CalendarRepository.Update(ctx, c); err != nil {
		return calendar.CalendarResponse{}, fmt.Errorf("failed to update calendar: %w", err)
	}
	return mapCalendarToResponse(c), nil
}

// Delete implements calendar.CalendarService. A calendar referenced by a
// work group cannot be removed.
func (s *CalendarServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.CalendarRepository.GetByID(ctx, id); err != nil {
		return err
	}

	assigned, err := s.CalendarRepository.CountWorkGroups(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to count work groups: %w", err)
	}
	if assigned > 0 {
		return calendar.ErrCalendarInUse
	}

	if err := s.CalendarRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete calendar: %w", err)
	}
	return nil
}

// AddHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) AddHoliday(ctx context.Context, req calendar.CreateHolidayRequest) (calendar.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return calendar.HolidayResponse{}, err
	}

	if _, err := s.CalendarRepository.GetByID(ctx, req.CalendarID); err != nil {
		return calendar.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return calendar.HolidayResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	created, err := s.holidayRepo.Create(ctx, calendar.Holiday{
		ID:          uuid.NewString(),
		CalendarID:  req.CalendarID,
		Name:        req.Name,
		Date:        date,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		return calendar.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return mapHolidayToResponse(created), nil
}

// ListHolidays implements calendar.CalendarService.
func (s *CalendarServiceImpl) ListHolidays(ctx context.Context, calendarID string) ([]calendar.HolidayResponse, error) {
	if _, err := s.CalendarRepository.GetByID(ctx, calendarID); err != nil {
		return nil, err
	}

	holidays, err := s.holidayRepo.ListByCalendar(ctx, calendarID)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	result := make([]calendar.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		result = append(result, mapHolidayToResponse(h))
	}
	return result, nil
}

// DeleteHoliday implements calendar.CalendarService.
func (s *CalendarServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func mapCalendarToResponse(c calendar.Calendar) calendar.CalendarResponse {
	return calendar.CalendarResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}

func mapHolidayToResponse(h calendar.Holiday) calendar.HolidayResponse {
	return calendar.HolidayResponse{
		ID:          h.ID,
		CalendarID:  h.CalendarID,
		Name:        h.Name,
		Date:        h.Date.Format("2006-01-02"),
		IsRecurring: h.IsRecurring,
	}
}
