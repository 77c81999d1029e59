package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/master/branch"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// Create implements branch.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, company_id, name, address, timezone, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, b.CompanyID, b.Name, b.Address, b.Timezone).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}
	return b, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string, companyID string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, address, timezone, created_at, updated_at
		FROM branches
		WHERE id = $1 AND company_id = $2
	`

	var b branch.Branch
	err := q.QueryRow(ctx, query, id, companyID).
		Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.Timezone, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return b, nil
}

// List implements branch.BranchRepository.
func (r *branchRepositoryImpl) List(ctx context.Context, companyID string) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, name, address, timezone, created_at, updated_at
		FROM branches
		WHERE company_id = $1
		ORDER BY name
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.CompanyID, &b.Name, &b.Address, &b.Timezone, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}

	return branches, rows.Err()
}

// Delete implements branch.BranchRepository.
func (r *branchRepositoryImpl) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM branches WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete branch: %w", err)
	}
	if commandTag.RowsAffected() != 1 {
		return branch.ErrBranchNotFound
	}
	return nil
}

// GetTimezoneByEmployeeID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetTimezoneByEmployeeID(ctx context.Context, employeeID string, companyID string) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.timezone
		FROM branches b
		INNER JOIN employees e ON e.branch_id = b.id
		WHERE e.id = $1 AND e.company_id = $2
	`

	var tz string
	err := q.QueryRow(ctx, query, employeeID, companyID).Scan(&tz)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", branch.ErrBranchNotFound
		}
		return "", fmt.Errorf("failed to resolve branch timezone: %w", err)
	}

	return tz, nil
}
