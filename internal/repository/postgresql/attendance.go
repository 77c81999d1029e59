package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andes-hr/hr-backend-go/internal/domain/attendance"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
)

type markRepositoryImpl struct {
	db *database.DB
}

func NewMarkRepository(db *database.DB) attendance.MarkRepository {
	return &markRepositoryImpl{db: db}
}

// Create implements attendance.MarkRepository.
func (r *markRepositoryImpl) Create(ctx context.Context, m attendance.Mark) (attendance.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_marks (
			id, employee_id, company_id, kind, recorded_at, date_local,
			latitude, longitude, inside_geofence, is_late, late_minutes, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		m.EmployeeID, m.CompanyID, m.Kind, m.RecordedAt, m.DateLocal,
		m.Latitude, m.Longitude, m.InsideGeofence, m.IsLate, m.LateMinutes,
	).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return attendance.Mark{}, fmt.Errorf("failed to create mark: %w", err)
	}
	return m, nil
}

// LockEmployeeDay implements attendance.MarkRepository. A transaction-scoped
// advisory lock keyed on the employee-day; held until commit or rollback.
func (r *markRepositoryImpl) LockEmployeeDay(ctx context.Context, employeeID string, dateLocal string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, employeeID+":"+dateLocal)
	if err != nil {
		return fmt.Errorf("failed to lock employee day: %w", err)
	}
	return nil
}

// GetByEmployeeAndDay implements attendance.MarkRepository.
func (r *markRepositoryImpl) GetByEmployeeAndDay(ctx context.Context, employeeID string, dateLocal string, companyID string) ([]attendance.Mark, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, kind, recorded_at, date_local,
		       latitude, longitude, inside_geofence, is_late, late_minutes, created_at
		FROM attendance_marks
		WHERE employee_id = $1 AND date_local = $2 AND company_id = $3
		ORDER BY recorded_at
	`

	rows, err := q.Query(ctx, query, employeeID, dateLocal, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get marks for day: %w", err)
	}
	defer rows.Close()

	var marks []attendance.Mark
	for rows.Next() {
		var m attendance.Mark
		err := rows.Scan(
			&m.ID, &m.EmployeeID, &m.CompanyID, &m.Kind, &m.RecordedAt, &m.DateLocal,
			&m.Latitude, &m.Longitude, &m.InsideGeofence, &m.IsLate, &m.LateMinutes, &m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}

	return marks, rows.Err()
}

// List implements attendance.MarkRepository.
func (r *markRepositoryImpl) List(ctx context.Context, filter attendance.MarkFilter, companyID string) ([]attendance.Mark, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"m.company_id = $1"}
	args := []interface{}{companyID}

	if filter.EmployeeID != nil {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("m.employee_id = $%d", len(args)))
	}
	if filter.Kind != nil {
		args = append(args, *filter.Kind)
		conditions = append(conditions, fmt.Sprintf("m.kind = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("m.recorded_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("m.recorded_at <= $%d", len(args)))
	}

	where := " WHERE " + strings.Join(conditions, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM attendance_marks m" + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count marks: %w", err)
	}

	query := `
		SELECT m.id, m.employee_id, m.company_id, m.kind, m.recorded_at, m.date_local,
		       m.latitude, m.longitude, m.inside_geofence, m.is_late, m.late_minutes, m.created_at,
		       e.first_name || ' ' || e.last_name AS employee_name
		FROM attendance_marks m
		INNER JOIN employees e ON m.employee_id = e.id
	` + where + " ORDER BY m.recorded_at DESC"

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
		return nil, 0, fmt.Errorf("failed to list marks: %w", err)
	}
	defer rows.Close()

	var marks []attendance.Mark
	for rows.Next() {
		var m attendance.Mark
		err := rows.Scan(
			&m.ID, &m.EmployeeID, &m.CompanyID, &m.Kind, &m.RecordedAt, &m.DateLocal,
			&m.Latitude, &m.Longitude, &m.InsideGeofence, &m.IsLate, &m.LateMinutes, &m.CreatedAt,
			&m.EmployeeName,
		)
		if err != nil {
			return nil, 0, err
		}
		marks = append(marks, m)
	}

	return marks, total, rows.Err()
}

// EmployeesWithMarks implements attendance.MarkRepository.
func (r *markRepositoryImpl) EmployeesWithMarks(ctx context.Context, companyID string, from, to time.Time) (map[string]bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT employee_id
		FROM attendance_marks
		WHERE company_id = $1 AND recorded_at >= $2 AND recorded_at <= $3
	`

	rows, err := q.Query(ctx, query, companyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to find employees with marks: %w", err)
	}
	defer rows.Close()

	present := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		present[id] = true
	}

	return present, rows.Err()
}
