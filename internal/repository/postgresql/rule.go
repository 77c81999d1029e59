package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/attendance"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
)

type ruleRepositoryImpl struct {
	db *database.DB
}

func NewRuleRepository(db *database.DB) attendance.RuleRepository {
	return &ruleRepositoryImpl{db: db}
}

// GetByCompany implements attendance.RuleRepository.
func (r *ruleRepositoryImpl) GetByCompany(ctx context.Context, companyID string) (attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, cutoff, geofence_id, created_at, updated_at
		FROM attendance_rules
		WHERE company_id = $1
	`

	var rule attendance.Rule
	var cutoff string
	err := q.QueryRow(ctx, query, companyID).
		Scan(&rule.ID, &rule.CompanyID, &cutoff, &rule.GeofenceID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Rule{}, attendance.ErrRuleNotFound
		}
		return attendance.Rule{}, fmt.Errorf("failed to get attendance rule: %w", err)
	}

	rule.Cutoff, err = attendance.ParseTimeOfDay(cutoff)
	if err != nil {
		return attendance.Rule{}, fmt.Errorf("malformed cutoff %q: %w", cutoff, err)
	}

	return rule, nil
}

// Upsert implements attendance.RuleRepository. One rule row per company.
func (r *ruleRepositoryImpl) Upsert(ctx context.Context, rule attendance.Rule) (attendance.Rule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_rules (id, company_id, cutoff, geofence_id, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (company_id) DO UPDATE
		SET cutoff = EXCLUDED.cutoff, geofence_id = EXCLUDED.geofence_id, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rule.CompanyID, rule.Cutoff.String(), rule.GeofenceID).
		Scan(&rule.ID, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		return attendance.Rule{}, fmt.Errorf("failed to upsert attendance rule: %w", err)
	}
	return rule, nil
}
