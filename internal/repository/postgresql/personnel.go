package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/personnel"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type personnelRepositoryImpl struct {
	db *database.DB
}

func NewPersonnelRepository(db *database.DB) personnel.PersonnelRepository {
	return &personnelRepositoryImpl{db: db}
}

const personnelColumns = `p.id, p.first_name, p.last_name, p.card_number, p.personnel_number,
	p.unit_id, p.work_group_id, p.employment_type, p.hire_date, p.termination_date,
	p.is_active, p.created_at, p.updated_at, u.name AS unit_name`

func (r *personnelRepositoryImpl) Create(ctx context.Context, p personnel.Personnel) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO personnel (
			id, first_name, last_name, card_number, personnel_number,
			unit_id, work_group_id, employment_type, hire_date, is_active,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		p.ID, p.FirstName, p.LastName, p.CardNumber, p.PersonnelNumber,
		p.UnitID, p.WorkGroupID, p.EmploymentType, p.HireDate, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return personnel.Personnel{}, err
	}
	return p, nil
}

func (r *personnelRepositoryImpl) GetByID(ctx context.Context, id string) (personnel.Personnel, error) {
	return r.getBy(ctx, "p.id = $1", id)
}

func (r *personnelRepositoryImpl) GetByCardNumber(ctx context.Context, cardNumber string) (personnel.Personnel, error) {
	return r.getBy(ctx, "p.card_number = $1", cardNumber)
}

func (r *personnelRepositoryImpl) GetByPersonnelNumber(ctx context.Context, personnelNumber string) (personnel.Personnel, error) {
	return r.getBy(ctx, "p.personnel_number = $1", personnelNumber)
}

func (r *personnelRepositoryImpl) getBy(ctx context.Context, where string, arg interface{}) (personnel.Personnel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + personnelColumns + `
		FROM personnel p
		LEFT JOIN org_units u ON p.unit_id = u.id
		WHERE ` + where
	var p personnel.Personnel
	err := q.QueryRow(ctx, query, arg).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.CardNumber, &p.PersonnelNumber,
		&p.UnitID, &p.WorkGroupID, &p.EmploymentType, &p.HireDate, &p.TerminationDate,
		&p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.UnitName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return personnel.Personnel{}, personnel.ErrPersonnelNotFound
		}
		return personnel.Personnel{}, err
	}
	return p, nil
}

func (r *personnelRepositoryImpl) List(ctx context.Context, filter personnel.PersonnelFilter) ([]personnel.Personnel, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argIdx := 1

	if filter.UnitID != nil {
		conditions = append(conditions, fmt.Sprintf("p.unit_id = $%d", argIdx))
		args = append(args, *filter.UnitID)
		argIdx++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf(
			"(p.first_name ILIKE $%d OR p.last_name ILIKE $%d OR p.card_number ILIKE $%d OR p.personnel_number ILIKE $%d)",
			argIdx, argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}
	if filter.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("p.is_active = $%d", argIdx))
		args = append(args, *filter.IsActive)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM personnel p WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT ` + personnelColumns + `
		FROM personnel p
		LEFT JOIN org_units u ON p.unit_id = u.id
		WHERE ` + where + `
		ORDER BY p.personnel_number
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []personnel.Personnel
	for rows.Next() {
		var p personnel.Personnel
		err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.CardNumber, &p.PersonnelNumber,
			&p.UnitID, &p.WorkGroupID, &p.EmploymentType, &p.HireDate, &p.TerminationDate,
			&p.IsActive, &p.CreatedAt, &p.UpdatedAt, &p.UnitName,
		)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	return result, total, rows.Err()
}

func (r *personnelRepositoryImpl) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM personnel WHERE is_active = true ORDER BY personnel_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *personnelRepositoryImpl) Update(ctx context.Context, p personnel.Personnel) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE personnel
		SET first_name = $2, last_name = $3, card_number = $4, personnel_number = $5,
			unit_id = $6, work_group_id = $7, employment_type = $8,
			hire_date = $9, termination_date = $10, is_active = $11, updated_at = $12
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		p.ID, p.FirstName, p.LastName, p.CardNumber, p.PersonnelNumber,
		p.UnitID, p.WorkGroupID, p.EmploymentType,
		p.HireDate, p.TerminationDate, p.IsActive, time.Now(),
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return personnel.ErrPersonnelNotFound
	}
	return nil
}

func (r *personnelRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx,
		`UPDATE personnel SET is_active = false, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return personnel.ErrPersonnelNotFound
	}
	return nil
}
