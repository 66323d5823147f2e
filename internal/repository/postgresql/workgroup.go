package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/workgroup"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type workGroupRepositoryImpl struct {
	db *database.DB
}

func NewWorkGroupRepository(db *database.DB) workgroup.WorkGroupRepository {
	return &workGroupRepositoryImpl{db: db}
}

func (r *workGroupRepositoryImpl) Create(ctx context.Context, g workgroup.WorkGroup) (workgroup.WorkGroup, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_groups (id, name, repetition_period_days, start_date, calendar_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		g.ID, g.Name, g.RepetitionPeriodDays, g.StartDate, g.CalendarID,
	).Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return workgroup.WorkGroup{}, err
	}
	return g, nil
}

func (r *workGroupRepositoryImpl) GetByID(ctx context.Context, id string) (workgroup.WorkGroup, error) {
	q := GetQuerier(ctx, r.db)

	var g workgroup.WorkGroup
	query := `
		SELECT id, name, repetition_period_days, start_date, calendar_id, created_at, updated_at
		FROM work_groups
		WHERE id = $1
	`
	err := q.QueryRow(ctx, query, id).Scan(
		&g.ID, &g.Name, &g.RepetitionPeriodDays, &g.StartDate, &g.CalendarID, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return workgroup.WorkGroup{}, workgroup.ErrWorkGroupNotFound
		}
		return workgroup.WorkGroup{}, err
	}

	assignments, err := r.listAssignments(ctx, q, id)
	if err != nil {
		return workgroup.WorkGroup{}, err
	}
	g.Assignments = assignments
	return g, nil
}

func (r *workGroupRepositoryImpl) List(ctx context.Context) ([]workgroup.WorkGroup, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `
		SELECT id, name, repetition_period_days, start_date, calendar_id, created_at, updated_at
		FROM work_groups
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []workgroup.WorkGroup
	for rows.Next() {
		var g workgroup.WorkGroup
		err := rows.Scan(&g.ID, &g.Name, &g.RepetitionPeriodDays, &g.StartDate, &g.CalendarID, &g.CreatedAt, &g.UpdatedAt)
		if err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range groups {
		assignments, err := r.listAssignments(ctx, q, groups[i].ID)
		if err != nil {
			return nil, err
		}
		groups[i].Assignments = assignments
	}
	return groups, nil
}

func (r *workGroupRepositoryImpl) listAssignments(ctx context.Context, q database.Querier, groupID string) ([]workgroup.ShiftAssignment, error) {
	rows, err := q.Query(ctx, `
		SELECT id, work_group_id, day_of_cycle, shift_id
		FROM work_group_shifts
		WHERE work_group_id = $1
		ORDER BY day_of_cycle
	`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assignments []workgroup.ShiftAssignment
	for rows.Next() {
		var a workgroup.ShiftAssignment
		if err := rows.Scan(&a.ID, &a.WorkGroupID, &a.DayOfCycle, &a.ShiftID); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (r *workGroupRepositoryImpl) Update(ctx context.Context, g workgroup.WorkGroup) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_groups
		SET name = $2, repetition_period_days = $3, start_date = $4, calendar_id = $5, updated_at = $6
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		g.ID, g.Name, g.RepetitionPeriodDays, g.StartDate, g.CalendarID, time.Now())
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return workgroup.ErrWorkGroupNotFound
	}
	return nil
}

func (r *workGroupRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM work_groups WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return workgroup.ErrWorkGroupNotFound
	}
	return nil
}

func (r *workGroupRepositoryImpl) ReplaceAssignments(ctx context.Context, groupID string, assignments []workgroup.ShiftAssignment) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM work_group_shifts WHERE work_group_id = $1`, groupID); err != nil {
		return err
	}
	for _, a := range assignments {
		id := a.ID
		if id == "" {
			id = uuid.NewString()
		}
		_, err := q.Exec(ctx, `
			INSERT INTO work_group_shifts (id, work_group_id, day_of_cycle, shift_id)
			VALUES ($1, $2, $3, $4)
		`, id, groupID, a.DayOfCycle, a.ShiftID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *workGroupRepositoryImpl) CountPersonnel(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM personnel WHERE work_group_id = $1`, id).Scan(&count)
	return count, err
}
