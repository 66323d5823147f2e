package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/calendar"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type calendarRepositoryImpl struct {
	db *database.DB
}

func NewCalendarRepository(db *database.DB) calendar.CalendarRepository {
	return &calendarRepositoryImpl{db: db}
}

func (r *calendarRepositoryImpl) Create(ctx context.Context, c calendar.Calendar) (calendar.Calendar, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO calendars (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, c.ID, c.Name, c.Description).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return calendar.Calendar{}, err
	}
	return c, nil
}

func (r *calendarRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.Calendar, error) {
	q := GetQuerier(ctx, r.db)

	var c calendar.Calendar
	query := `SELECT id, name, description, created_at, updated_at FROM calendars WHERE id = $1`
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.Calendar{}, calendar.ErrCalendarNotFound
		}
		return calendar.Calendar{}, err
	}
	return c, nil
}

func (r *calendarRepositoryImpl) List(ctx context.Context) ([]calendar.Calendar, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, description, created_at, updated_at FROM calendars ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var calendars []calendar.Calendar
	for rows.Next() {
		var c calendar.Calendar
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		calendars = append(calendars, c)
	}
	return calendars, rows.Err()
}

func (r *calendarRepositoryImpl) Update(ctx context.Context, c calendar.Calendar) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE calendars SET name = $2, description = $3, updated_at = $4 WHERE id = $1`,
		c.ID, c.Name, c.Description, time.Now())
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return calendar.ErrCalendarNotFound
	}
	return nil
}

func (r *calendarRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM calendars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return calendar.ErrCalendarNotFound
	}
	return nil
}

func (r *calendarRepositoryImpl) CountWorkGroups(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM work_groups WHERE calendar_id = $1`, id).Scan(&count)
	return count, err
}

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}

func (r *holidayRepositoryImpl) Create(ctx context.Context, h calendar.Holiday) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (id, calendar_id, name, date, is_recurring, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, h.ID, h.CalendarID, h.Name, h.Date, h.IsRecurring).
		Scan(&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return calendar.Holiday{}, err
	}
	return h, nil
}

func (r *holidayRepositoryImpl) GetByID(ctx context.Context, id string) (calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	var h calendar.Holiday
	query := `SELECT id, calendar_id, name, date, is_recurring, created_at, updated_at FROM holidays WHERE id = $1`
	err := q.QueryRow(ctx, query, id).Scan(
		&h.ID, &h.CalendarID, &h.Name, &h.Date, &h.IsRecurring, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return calendar.Holiday{}, calendar.ErrHolidayNotFound
		}
		return calendar.Holiday{}, err
	}
	return h, nil
}

func (r *holidayRepositoryImpl) ListByCalendar(ctx context.Context, calendarID string) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, calendar_id, name, date, is_recurring, created_at, updated_at
		FROM holidays
		WHERE calendar_id = $1
		ORDER BY date
	`
	return r.scanHolidays(ctx, q, query, calendarID)
}

func (r *holidayRepositoryImpl) ListForRange(ctx context.Context, calendarID string, start, end time.Time) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	// Recurring holidays are matched by month and day in the domain layer, so
	// they are always returned for the calendar.
	query := `
		SELECT id, calendar_id, name, date, is_recurring, created_at, updated_at
		FROM holidays
		WHERE calendar_id = $1 AND (is_recurring OR (date >= $2 AND date <= $3))
		ORDER BY date
	`
	return r.scanHolidays(ctx, q, query, calendarID, start, end)
}

func (r *holidayRepositoryImpl) scanHolidays(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]calendar.Holiday, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holidays []calendar.Holiday
	for rows.Next() {
		var h calendar.Holiday
		if err := rows.Scan(&h.ID, &h.CalendarID, &h.Name, &h.Date, &h.IsRecurring, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}

func (r *holidayRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM holidays WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return calendar.ErrHolidayNotFound
	}
	return nil
}
