package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/shift"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}

const shiftColumns = `id, name, start_time_1, end_time_1, start_time_2, end_time_2,
	allowed_log_start_time, log_period_duration_minutes, float_duration_minutes,
	is_night_shift, created_at, updated_at`

func (r *shiftRepositoryImpl) Create(ctx context.Context, s shift.Shift) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shifts (
			id, name, start_time_1, end_time_1, start_time_2, end_time_2,
			allowed_log_start_time, log_period_duration_minutes, float_duration_minutes,
			is_night_shift, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		s.ID, s.Name, s.StartTime1, s.EndTime1, s.StartTime2, s.EndTime2,
		s.AllowedLogStartTime, s.LogPeriodDurationMinutes, s.FloatDurationMinutes,
		s.IsNightShift,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return shift.Shift{}, err
	}
	return s, nil
}

func (r *shiftRepositoryImpl) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	var s shift.Shift
	err := q.QueryRow(ctx, `SELECT `+shiftColumns+` FROM shifts WHERE id = $1`, id).Scan(
		&s.ID, &s.Name, &s.StartTime1, &s.EndTime1, &s.StartTime2, &s.EndTime2,
		&s.AllowedLogStartTime, &s.LogPeriodDurationMinutes, &s.FloatDurationMinutes,
		&s.IsNightShift, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return shift.Shift{}, shift.ErrShiftNotFound
		}
		return shift.Shift{}, err
	}
	return s, nil
}

func (r *shiftRepositoryImpl) List(ctx context.Context) ([]shift.Shift, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+shiftColumns+` FROM shifts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []shift.Shift
	for rows.Next() {
		var s shift.Shift
		err := rows.Scan(
			&s.ID, &s.Name, &s.StartTime1, &s.EndTime1, &s.StartTime2, &s.EndTime2,
			&s.AllowedLogStartTime, &s.LogPeriodDurationMinutes, &s.FloatDurationMinutes,
			&s.IsNightShift, &s.CreatedAt, &s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, s)
	}
	return shifts, rows.Err()
}

func (r *shiftRepositoryImpl) Update(ctx context.Context, s shift.Shift) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE shifts
		SET name = $2, start_time_1 = $3, end_time_1 = $4, start_time_2 = $5, end_time_2 = $6,
			allowed_log_start_time = $7, log_period_duration_minutes = $8,
			float_duration_minutes = $9, is_night_shift = $10, updated_at = $11
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		s.ID, s.Name, s.StartTime1, s.EndTime1, s.StartTime2, s.EndTime2,
		s.AllowedLogStartTime, s.LogPeriodDurationMinutes, s.FloatDurationMinutes,
		s.IsNightShift, time.Now(),
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM shifts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return shift.ErrShiftNotFound
	}
	return nil
}

func (r *shiftRepositoryImpl) CountWorkGroupAssignments(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM work_group_shifts WHERE shift_id = $1`, id).Scan(&count)
	return count, err
}
