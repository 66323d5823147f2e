package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type logRepositoryImpl struct {
	db *database.DB
}

func NewLogRepository(db *database.DB) attendance.LogRepository {
	return &logRepositoryImpl{db: db}
}

const logColumns = `id, personnel_id, log_time, log_type, device_id, is_manual, created_at, updated_at`

func (r *logRepositoryImpl) Create(ctx context.Context, log attendance.AttendanceLog) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_logs (id, personnel_id, log_time, log_type, device_id, is_manual, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		log.ID, log.PersonnelID, log.LogTime, log.LogType, log.DeviceID, log.IsManual,
	).Scan(&log.CreatedAt, &log.UpdatedAt)
	if err != nil {
		return attendance.AttendanceLog{}, err
	}
	return log, nil
}

func (r *logRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	var log attendance.AttendanceLog
	err := q.QueryRow(ctx, `SELECT `+logColumns+` FROM attendance_logs WHERE id = $1`, id).Scan(
		&log.ID, &log.PersonnelID, &log.LogTime, &log.LogType, &log.DeviceID,
		&log.IsManual, &log.CreatedAt, &log.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceLog{}, attendance.ErrLogNotFound
		}
		return attendance.AttendanceLog{}, err
	}
	return log, nil
}

func (r *logRepositoryImpl) ListForDay(ctx context.Context, personnelID string, date time.Time) ([]attendance.AttendanceLog, error) {
	q := GetQuerier(ctx, r.db)

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT ` + logColumns + `
		FROM attendance_logs
		WHERE personnel_id = $1 AND log_time >= $2 AND log_time < $3
		ORDER BY log_time
	`
	rows, err := q.Query(ctx, query, personnelID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []attendance.AttendanceLog
	for rows.Next() {
		var log attendance.AttendanceLog
		err := rows.Scan(
			&log.ID, &log.PersonnelID, &log.LogTime, &log.LogType, &log.DeviceID,
			&log.IsManual, &log.CreatedAt, &log.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

func (r *logRepositoryImpl) Update(ctx context.Context, log attendance.AttendanceLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance_logs
		SET log_time = $2, log_type = $3, device_id = $4, updated_at = $5
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, log.ID, log.LogTime, log.LogType, log.DeviceID, time.Now())
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return attendance.ErrLogNotFound
	}
	return nil
}

func (r *logRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_logs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return attendance.ErrLogNotFound
	}
	return nil
}

func (r *logRepositoryImpl) CreateBatch(ctx context.Context, logs []attendance.AttendanceLog) (int, error) {
	q := GetQuerier(ctx, r.db)

	inserted := 0
	for _, log := range logs {
		_, err := q.Exec(ctx, `
			INSERT INTO attendance_logs (id, personnel_id, log_time, log_type, device_id, is_manual, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
			ON CONFLICT (personnel_id, log_time, log_type) DO NOTHING
		`, log.ID, log.PersonnelID, log.LogTime, log.LogType, log.DeviceID, log.IsManual)
		if err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
