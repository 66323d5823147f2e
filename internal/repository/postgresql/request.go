package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/request"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type requestRepositoryImpl struct {
	db *database.DB
}

func NewRequestRepository(db *database.DB) request.RequestRepository {
	return &requestRepositoryImpl{db: db}
}

// Leave and mission requests share the requests table, discriminated by
// request_type. Variant columns are nullable and only populated for their
// own variant.
const requestColumns = `r.id, r.request_type, r.personnel_id, r.status, r.start_date, r.end_date,
	r.is_hourly, r.start_time, r.end_time, r.description, r.reject_reason,
	r.approver_id, r.approved_at,
	r.leave_type_id, lt.is_paid,
	r.mission_type_id, r.destination, r.estimated_cost, r.purpose,
	r.created_at, r.updated_at,
	p.first_name, p.last_name, COALESCE(lt.name, mt.name)`

const requestJoins = `
	FROM requests r
	JOIN personnel p ON r.personnel_id = p.id
	LEFT JOIN leave_types lt ON r.leave_type_id = lt.id
	LEFT JOIN mission_types mt ON r.mission_type_id = mt.id`

func scanRequest(row pgx.Row) (request.Request, error) {
	var req request.Request
	var leaveTypeID *string
	var leaveIsPaid *bool
	var missionTypeID, destination *string
	var estimatedCost *float64
	var purpose *string
	var firstName, lastName string

	err := row.Scan(
		&req.ID, &req.Type, &req.PersonnelID, &req.Status, &req.StartDate, &req.EndDate,
		&req.IsHourly, &req.StartTime, &req.EndTime, &req.Description, &req.RejectReason,
		&req.ApproverID, &req.ApprovedAt,
		&leaveTypeID, &leaveIsPaid,
		&missionTypeID, &destination, &estimatedCost, &purpose,
		&req.CreatedAt, &req.UpdatedAt,
		&firstName, &lastName, &req.TypeName,
	)
	if err != nil {
		return request.Request{}, err
	}

	switch req.Type {
	case request.TypeLeave:
		if leaveTypeID != nil {
			req.Leave = &request.LeaveDetails{LeaveTypeID: *leaveTypeID}
			if leaveIsPaid != nil {
				req.Leave.IsPaid = *leaveIsPaid
			}
		}
	case request.TypeMission:
		if missionTypeID != nil {
			req.Mission = &request.MissionDetails{
				MissionTypeID: *missionTypeID,
				EstimatedCost: estimatedCost,
				Purpose:       purpose,
			}
			if destination != nil {
				req.Mission.Destination = *destination
			}
		}
	}

	name := strings.TrimSpace(firstName + " " + lastName)
	req.PersonnelName = &name
	return req, nil
}

func (r *requestRepositoryImpl) Create(ctx context.Context, req request.Request) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	var leaveTypeID, missionTypeID, destination, purpose *string
	var estimatedCost *float64
	if req.Leave != nil {
		leaveTypeID = &req.Leave.LeaveTypeID
	}
	if req.Mission != nil {
		missionTypeID = &req.Mission.MissionTypeID
		destination = &req.Mission.Destination
		estimatedCost = req.Mission.EstimatedCost
		purpose = req.Mission.Purpose
	}

	query := `
		INSERT INTO requests (
			id, request_type, personnel_id, status, start_date, end_date,
			is_hourly, start_time, end_time, description,
			leave_type_id, mission_type_id, destination, estimated_cost, purpose,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
		RETURNING created_at, updated_at
	`
	err := q.QueryRow(ctx, query,
		req.ID, req.Type, req.PersonnelID, req.Status, req.StartDate, req.EndDate,
		req.IsHourly, req.StartTime, req.EndTime, req.Description,
		leaveTypeID, missionTypeID, destination, estimatedCost, purpose,
	).Scan(&req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return request.Request{}, err
	}
	return req, nil
}

func (r *requestRepositoryImpl) GetByID(ctx context.Context, id string, requestType request.RequestType) (request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + requestJoins + ` WHERE r.id = $1 AND r.request_type = $2`
	req, err := scanRequest(q.QueryRow(ctx, query, id, requestType))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return request.Request{}, request.ErrRequestNotFound
		}
		return request.Request{}, err
	}
	return req, nil
}

func (r *requestRepositoryImpl) List(ctx context.Context, filter request.RequestFilter) ([]request.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"r.request_type = $1"}
	args := []interface{}{filter.Type}
	argIdx := 2

	if len(filter.PersonnelIDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("r.personnel_id = ANY($%d)", argIdx))
		args = append(args, filter.PersonnelIDs)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("r.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("r.end_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("r.start_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM requests r WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + requestColumns + requestJoins + `
		WHERE ` + where + `
		ORDER BY r.created_at DESC
		LIMIT $` + fmt.Sprint(argIdx) + ` OFFSET $` + fmt.Sprint(argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	return r.queryRequests(ctx, q, query, args, total)
}

func (r *requestRepositoryImpl) ListOverlapping(ctx context.Context, requestType request.RequestType, personnelID string, start, end time.Time) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + requestJoins + `
		WHERE r.request_type = $1 AND r.personnel_id = $2
			AND r.status IN ('PENDING', 'APPROVED')
			AND r.end_date >= $3 AND r.start_date <= $4
	`
	requests, _, err := r.queryRequests(ctx, q, query, []interface{}{requestType, personnelID, start, end}, 0)
	return requests, err
}

func (r *requestRepositoryImpl) ListApprovedForDay(ctx context.Context, requestType request.RequestType, personnelID string, date time.Time) ([]request.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + requestColumns + requestJoins + `
		WHERE r.request_type = $1 AND r.personnel_id = $2
			AND r.status = 'APPROVED'
			AND r.start_date <= $3 AND r.end_date >= $3
	`
	requests, _, err := r.queryRequests(ctx, q, query, []interface{}{requestType, personnelID, date}, 0)
	return requests, err
}

func (r *requestRepositoryImpl) queryRequests(ctx context.Context, q database.Querier, query string, args []interface{}, total int64) ([]request.Request, int64, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var requests []request.Request
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, req)
	}
	return requests, total, rows.Err()
}

func (r *requestRepositoryImpl) Update(ctx context.Context, req request.Request) error {
	q := GetQuerier(ctx, r.db)

	var destination, purpose *string
	var estimatedCost *float64
	if req.Mission != nil {
		destination = &req.Mission.Destination
		estimatedCost = req.Mission.EstimatedCost
		purpose = req.Mission.Purpose
	}

	query := `
		UPDATE requests
		SET status = $2, start_date = $3, end_date = $4, start_time = $5, end_time = $6,
			description = $7, reject_reason = $8, approver_id = $9, approved_at = $10,
			destination = $11, estimated_cost = $12, purpose = $13, updated_at = $14
		WHERE id = $1
	`
	commandTag, err := q.Exec(ctx, query,
		req.ID, req.Status, req.StartDate, req.EndDate, req.StartTime, req.EndTime,
		req.Description, req.RejectReason, req.ApproverID, req.ApprovedAt,
		destination, estimatedCost, purpose, time.Now(),
	)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}
	return nil
}

func (r *requestRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM requests WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() == 0 {
		return request.ErrRequestNotFound
	}
	return nil
}
