package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/leave"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
)

type leaveBalanceRepositoryImpl struct {
	db *database.DB
}

func NewLeaveBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &leaveBalanceRepositoryImpl{db: db}
}

// GetOrCreate implements leave.BalanceRepository. A missing row means the
// employee has never been granted days for the period, so it starts at zero.
func (r *leaveBalanceRepositoryImpl) GetOrCreate(ctx context.Context, employeeID string, period int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_balances (id, employee_id, period, available_days, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, 0, NOW(), NOW())
		ON CONFLICT (employee_id, period) DO UPDATE SET updated_at = leave_balances.updated_at
		RETURNING id, employee_id, period, available_days, created_at, updated_at
	`

	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID, period).
		Scan(&b.ID, &b.EmployeeID, &b.Period, &b.AvailableDays, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to get or create leave balance: %w", err)
	}

	return b, nil
}

// GetForUpdate implements leave.BalanceRepository. FOR UPDATE serializes
// concurrent approvals drawing on the same balance.
func (r *leaveBalanceRepositoryImpl) GetForUpdate(ctx context.Context, employeeID string, period int) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period, available_days, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1 AND period = $2
		FOR UPDATE
	`

	var b leave.Balance
	err := q.QueryRow(ctx, query, employeeID, period).
		Scan(&b.ID, &b.EmployeeID, &b.Period, &b.AvailableDays, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to lock leave balance: %w", err)
	}

	return b, nil
}

// Update implements leave.BalanceRepository.
func (r *leaveBalanceRepositoryImpl) Update(ctx context.Context, b leave.Balance) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_balances
		SET available_days = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query, b.AvailableDays, b.ID).Scan(&b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.Balance{}, leave.ErrBalanceNotFound
		}
		return leave.Balance{}, fmt.Errorf("failed to update leave balance: %w", err)
	}

	return b, nil
}

// ListByEmployee implements leave.BalanceRepository.
func (r *leaveBalanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, period, available_days, created_at, updated_at
		FROM leave_balances
		WHERE employee_id = $1
		ORDER BY period DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave balances: %w", err)
	}
	defer rows.Close()

	var balances []leave.Balance
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.Period, &b.AvailableDays, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}
