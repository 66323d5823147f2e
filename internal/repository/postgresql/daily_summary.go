package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type summaryRepositoryImpl struct {
	db *database.DB
}

func NewSummaryRepository(db *database.DB) attendance.SummaryRepository {
	return &summaryRepositoryImpl{db: db}
}

const summaryColumns = `id, personnel_id, date, shift_id, status, presence_minutes, delay_minutes,
	overtime_minutes, undertime_minutes, expected_work_minutes, first_in, last_out,
	raw_logs_count, notes, is_processed, processed_at`

func (r *summaryRepositoryImpl) Upsert(ctx context.Context, s attendance.DailySummary) (attendance.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO daily_summaries (
			id, personnel_id, date, shift_id, status, presence_minutes, delay_minutes,
			overtime_minutes, undertime_minutes, expected_work_minutes, first_in, last_out,
			raw_logs_count, notes, is_processed, processed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (personnel_id, date) DO UPDATE SET
			shift_id = EXCLUDED.shift_id,
			status = EXCLUDED.status,
			presence_minutes = EXCLUDED.presence_minutes,
			delay_minutes = EXCLUDED.delay_minutes,
			overtime_minutes = EXCLUDED.overtime_minutes,
			undertime_minutes = EXCLUDED.undertime_minutes,
			expected_work_minutes = EXCLUDED.expected_work_minutes,
			first_in = EXCLUDED.first_in,
			last_out = EXCLUDED.last_out,
			raw_logs_count = EXCLUDED.raw_logs_count,
			notes = EXCLUDED.notes,
			is_processed = EXCLUDED.is_processed,
			processed_at = EXCLUDED.processed_at
		RETURNING id
	`
	err := q.QueryRow(ctx, query,
		s.ID, s.PersonnelID, s.Date, s.ShiftID, s.Status, s.PresenceMinutes, s.DelayMinutes,
		s.OvertimeMinutes, s.UndertimeMinutes, s.ExpectedWorkMinutes, s.FirstIn, s.LastOut,
		s.RawLogsCount, s.Notes, s.IsProcessed, s.ProcessedAt,
	).Scan(&s.ID)
	if err != nil {
		return attendance.DailySummary{}, err
	}
	return s, nil
}

func (r *summaryRepositoryImpl) GetByKey(ctx context.Context, personnelID string, date time.Time) (attendance.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	var s attendance.DailySummary
	query := `SELECT ` + summaryColumns + ` FROM daily_summaries WHERE personnel_id = $1 AND date = $2`
	err := q.QueryRow(ctx, query, personnelID, date).Scan(
		&s.ID, &s.PersonnelID, &s.Date, &s.ShiftID, &s.Status, &s.PresenceMinutes, &s.DelayMinutes,
		&s.OvertimeMinutes, &s.UndertimeMinutes, &s.ExpectedWorkMinutes, &s.FirstIn, &s.LastOut,
		&s.RawLogsCount, &s.Notes, &s.IsProcessed, &s.ProcessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.DailySummary{}, attendance.ErrSummaryNotFound
		}
		return attendance.DailySummary{}, err
	}
	return s, nil
}

func (r *summaryRepositoryImpl) List(ctx context.Context, filter attendance.SummaryFilter) ([]attendance.DailySummary, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if len(filter.PersonnelIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("personnel_id = ANY($%d)", argIdx))
		args = append(args, filter.PersonnelIDs)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.ShiftID != nil {
		conditions = append(conditions, fmt.Sprintf("shift_id = $%d", argIdx))
		args = append(args, *filter.ShiftID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM daily_summaries WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + summaryColumns + `
		FROM daily_summaries
		WHERE ` + where + `
		ORDER BY date DESC, personnel_id
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	summaries, err := r.scanSummaries(ctx, q, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func (r *summaryRepositoryImpl) ListForPeriod(ctx context.Context, personnelIDs []string, start, end time.Time) ([]attendance.DailySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + summaryColumns + `
		FROM daily_summaries
		WHERE personnel_id = ANY($1) AND date >= $2 AND date <= $3
		ORDER BY personnel_id, date
	`
	return r.scanSummaries(ctx, q, query, personnelIDs, start, end)
}

func (r *summaryRepositoryImpl) MarkUnprocessed(ctx context.Context, personnelID string, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE daily_summaries SET is_processed = false WHERE personnel_id = $1 AND date = $2`
	_, err := q.Exec(ctx, query, personnelID, date)
	if err != nil {
		return fmt.Errorf("failed to mark summary unprocessed: %w", err)
	}
	return nil
}

func (r *summaryRepositoryImpl) scanSummaries(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]attendance.DailySummary, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []attendance.DailySummary
	for rows.Next() {
		var s attendance.DailySummary
		err := rows.Scan(
			&s.ID, &s.PersonnelID, &s.Date, &s.ShiftID, &s.Status, &s.PresenceMinutes, &s.DelayMinutes,
			&s.OvertimeMinutes, &s.UndertimeMinutes, &s.ExpectedWorkMinutes, &s.FirstIn, &s.LastOut,
			&s.RawLogsCount, &s.Notes, &s.IsProcessed, &s.ProcessedAt,
		)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
