package postgresql

import (
	"context"
	"fmt"

	"github.com/andes-hr/hr-backend-go/internal/domain/employee"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
)

type contractRepositoryImpl struct {
	db *database.DB
}

func NewContractRepository(db *database.DB) employee.ContractRepository {
	return &contractRepositoryImpl{db: db}
}

// Create implements employee.ContractRepository.
func (r *contractRepositoryImpl) Create(ctx context.Context, c employee.Contract) (employee.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO contracts (id, employee_id, kind, start_date, end_date, salary, is_active, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		c.EmployeeID, c.Kind, c.StartDate, c.EndDate, c.Salary, c.IsActive,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return employee.Contract{}, fmt.Errorf("failed to create contract: %w", err)
	}
	return c, nil
}

// ListByEmployee implements employee.ContractRepository.
func (r *contractRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]employee.Contract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, kind, start_date, end_date, salary, is_active, created_at, updated_at
		FROM contracts
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []employee.Contract
	for rows.Next() {
		var c employee.Contract
		err := rows.Scan(&c.ID, &c.EmployeeID, &c.Kind, &c.StartDate, &c.EndDate, &c.Salary, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

// ListLegacyByEmployee implements employee.ContractRepository. The legacy
// table predates the contracts migration and is never written to.
func (r *contractRepositoryImpl) ListLegacyByEmployee(ctx context.Context, employeeID string) ([]employee.LegacyContract, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, contract_type, start_date, end_date, salary, is_active
		FROM legacy_contracts
		WHERE employee_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list legacy contracts: %w", err)
	}
	defer rows.Close()

	var contracts []employee.LegacyContract
	for rows.Next() {
		var c employee.LegacyContract
		err := rows.Scan(&c.ID, &c.EmployeeID, &c.ContractType, &c.StartDate, &c.EndDate, &c.Salary, &c.IsActive)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}

	return contracts, rows.Err()
}

// DeactivateByEmployee implements employee.ContractRepository.
func (r *contractRepositoryImpl) DeactivateByEmployee(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE contracts SET is_active = FALSE, updated_at = NOW() WHERE employee_id = $1 AND is_active`,
		employeeID,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate contracts: %w", err)
	}
	return nil
}
