package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/leave"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
)

type leaveRequestRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.RequestRepository {
	return &leaveRequestRepositoryImpl{db: db}
}

const leaveRequestColumns = `
	lr.id, lr.employee_id, lr.company_id, lr.start_date, lr.end_date, lr.days,
	lr.reason, lr.status, lr.rejection_reason, lr.reviewed_by, lr.reviewed_at,
	lr.created_at, lr.updated_at
`

func scanLeaveRequest(row pgx.Row, withEmployeeName bool) (leave.Request, error) {
	var lr leave.Request
	dest := []interface{}{
		&lr.ID, &lr.EmployeeID, &lr.CompanyID, &lr.StartDate, &lr.EndDate, &lr.Days,
		&lr.Reason, &lr.Status, &lr.RejectionReason, &lr.ReviewedBy, &lr.ReviewedAt,
		&lr.CreatedAt, &lr.UpdatedAt,
	}
	if withEmployeeName {
		dest = append(dest, &lr.EmployeeName)
	}
	return lr, row.Scan(dest...)
}

// Create implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, employee_id, company_id, start_date, end_date, days,
			reason, status, created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.EmployeeID, request.CompanyID, request.StartDate, request.EndDate, request.Days,
		request.Reason, request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.Request{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1 AND lr.company_id = $2
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, companyID), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lr, nil
}

// GetByIDForUpdate implements leave.RequestRepository. FOR UPDATE blocks a
// second reviewer until the first transaction commits, so the stale-status
// window between read and update is closed.
func (r *leaveRequestRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string, companyID string) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.id = $1 AND lr.company_id = $2
		FOR UPDATE
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id, companyID), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to lock leave request: %w", err)
	}

	return lr, nil
}

// List implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) List(ctx context.Context, filter leave.RequestFilter, companyID string) ([]leave.Request, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"lr.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("lr.employee_id = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", len(args)))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM leave_requests lr" + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leave requests: %w", err)
	}

	query := "SELECT " + leaveRequestColumns + `,
		e.first_name || ' ' || e.last_name AS employee_name
		FROM leave_requests lr
		INNER JOIN employees e ON lr.employee_id = e.id
	` + where + " ORDER BY lr.created_at DESC"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		if filter.Page > 1 {
			args = append(args, (filter.Page-1)*filter.Limit)
			query += fmt.Sprintf(" OFFSET $%d", len(args))
		}
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		lr, err := scanLeaveRequest(rows, true)
		if err != nil {
			return nil, 0, err
		}
		requests = append(requests, lr)
	}

	return requests, total, rows.Err()
}

// Update implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) Update(ctx context.Context, request leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $1, rejection_reason = $2, reviewed_by = $3, reviewed_at = $4, updated_at = NOW()
		WHERE id = $5 AND company_id = $6
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		request.Status, request.RejectionReason, request.ReviewedBy, request.ReviewedAt,
		request.ID, request.CompanyID,
	).Scan(&request.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Request{}, leave.ErrRequestNotFound
		}
		return leave.Request{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return request, nil
}

// ListRejectedOverlapping implements leave.RequestRepository.
func (r *leaveRequestRepositoryImpl) ListRejectedOverlapping(ctx context.Context, employeeID string, companyID string, from, to time.Time) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := "SELECT " + leaveRequestColumns + `
		FROM leave_requests lr
		WHERE lr.employee_id = $1 AND lr.company_id = $2
		  AND lr.status = $3
		  AND lr.start_date <= $4 AND lr.end_date >= $5
	`

	rows, err := q.Query(ctx, query, employeeID, companyID, leave.RequestStatusRejected, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list rejected leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		lr, err := scanLeaveRequest(rows, false)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}

	return requests, rows.Err()
}
