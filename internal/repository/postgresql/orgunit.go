package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/orgunit"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type orgUnitRepositoryImpl struct {
	db *database.DB
}

func NewOrgUnitRepository(db *database.DB) orgunit.OrgUnitRepository {
	return &orgUnitRepositoryImpl{db: db}
}

func (r *orgUnitRepositoryImpl) Create(ctx context.Context, unit orgunit.OrgUnit) (orgunit.OrgUnit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO org_units (id, name, description, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query, unit.ID, unit.Name, unit.Description, unit.ParentID).
		Scan(&unit.CreatedAt, &unit.UpdatedAt)
	if err != nil {
		return orgunit.OrgUnit{}, err
	}
	return unit, nil
}

func (r *orgUnitRepositoryImpl) GetByID(ctx context.Context, id string) (orgunit.OrgUnit, error) {
	q := GetQuerier(ctx, r.db)

	var unit orgunit.OrgUnit
	query := `
		SELECT id, name, description, parent_id, created_at, updated_at
		FROM org_units
		WHERE id = $1
	`
	err := q.QueryRow(ctx, query, id).Scan(
		&unit.ID, &unit.Name, &unit.Description, &unit.ParentID, &unit.CreatedAt, &unit.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return orgunit.OrgUnit{}, orgunit.ErrOrgUnitNotFound
		}
		return orgunit.OrgUnit{}, err
	}
	return unit, nil
}

func (r *orgUnitRepositoryImpl) List(ctx context.Context) ([]orgunit.OrgUnit, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, parent_id, created_at, updated_at
		FROM org_units
		ORDER BY name
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []orgunit.OrgUnit
	for rows.Next() {
		var unit orgunit.OrgUnit
		if err := rows.Scan(&unit.ID, &unit.Name, &unit.Description, &unit.ParentID, &unit.CreatedAt, &unit.UpdatedAt); err != nil {
			return nil, err
		}
		units = append(units, unit)
	}
	return units, rows.Err()
}

func (r *orgUnitRepositoryImpl) Update(ctx context.Context, unit orgunit.OrgUnit) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE org_units
		SET name = $2, description = $3, parent_id = $4, updated_at = $5
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query, unit.ID, unit.Name, unit.Description, unit.ParentID, time.Now())
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return orgunit.ErrOrgUnitNotFound
	}
	return nil
}

func (r *orgUnitRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM org_units WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return orgunit.ErrOrgUnitNotFound
	}
	return nil
}

func (r *orgUnitRepositoryImpl) CountChildren(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM org_units WHERE parent_id = $1`, id).Scan(&count)
	return count, err
}

func (r *orgUnitRepositoryImpl) CountPersonnel(ctx context.Context, id string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM personnel WHERE unit_id = $1`, id).Scan(&count)
	return count, err
}
