package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveTypeRepositoryImpl struct {
	db *database.DB
}

func NewLeaveTypeRepository(db *database.DB) request.LeaveTypeRepository {
	return &leaveTypeRepositoryImpl{db: db}
}

func (r *leaveTypeRepositoryImpl) Create(ctx context.Context, t request.LeaveType) (request.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_types (id, name, is_paid, counts_as_work, requires_approval, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, t.ID, t.Name, t.IsPaid, t.CountsAsWork, t.RequiresApproval).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return request.LeaveType{}, err
	}
	return t, nil
}

func (r *leaveTypeRepositoryImpl) GetByID(ctx context.Context, id string) (request.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	var t request.LeaveType
	query := `SELECT id, name, is_paid, counts_as_work, requires_approval, created_at, updated_at FROM leave_types WHERE id = $1`
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.IsPaid, &t.CountsAsWork, &t.RequiresApproval, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.LeaveType{}, request.ErrLeaveTypeNotFound
		}
		return request.LeaveType{}, err
	}
	return t, nil
}

func (r *leaveTypeRepositoryImpl) List(ctx context.Context) ([]request.LeaveType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, is_paid, counts_as_work, requires_approval, created_at, updated_at FROM leave_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []request.LeaveType
	for rows.Next() {
		var t request.LeaveType
		if err := rows.Scan(&t.ID, &t.Name, &t.IsPaid, &t.CountsAsWork, &t.RequiresApproval, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *leaveTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM leave_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return request.ErrLeaveTypeNotFound
	}
	return nil
}

type missionTypeRepositoryImpl struct {
	db *database.DB
}

func NewMissionTypeRepository(db *database.DB) request.MissionTypeRepository {
	return &missionTypeRepositoryImpl{db: db}
}

func (r *missionTypeRepositoryImpl) Create(ctx context.Context, t request.MissionType) (request.MissionType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO mission_types (id, name, counts_as_work, requires_approval, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, t.ID, t.Name, t.CountsAsWork, t.RequiresApproval).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return request.MissionType{}, err
	}
	return t, nil
}

func (r *missionTypeRepositoryImpl) GetByID(ctx context.Context, id string) (request.MissionType, error) {
	q := GetQuerier(ctx, r.db)

	var t request.MissionType
	query := `SELECT id, name, counts_as_work, requires_approval, created_at, updated_at FROM mission_types WHERE id = $1`
	err := q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.CountsAsWork, &t.RequiresApproval, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.MissionType{}, request.ErrMissionTypeNotFound
		}
		return request.MissionType{}, err
	}
	return t, nil
}

func (r *missionTypeRepositoryImpl) List(ctx context.Context) ([]request.MissionType, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, counts_as_work, requires_approval, created_at, updated_at FROM mission_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []request.MissionType
	for rows.Next() {
		var t request.MissionType
		if err := rows.Scan(&t.ID, &t.Name, &t.CountsAsWork, &t.RequiresApproval, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *missionTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM mission_types WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return request.ErrMissionTypeNotFound
	}
	return nil
}
