package attendance

import (
	"context"
	"time"
)

// MarkRepository defines data access for clock events. Every method takes
// companyID to keep tenants isolated.
type MarkRepository interface {
	// Create inserts a new mark
	Create(ctx context.Context, m Mark) (Mark, error)

	// LockEmployeeDay serializes marking for one employee-day. Callers must
	// be inside a transaction; the lock is released on commit or rollback.
	// Without it two simultaneous identical marks both see an empty day.
	LockEmployeeDay(ctx context.Context, employeeID string, dateLocal string) error

	// GetByEmployeeAndDay returns all marks for the employee on the local
	// calendar day (dateLocal is "YYYY-MM-DD"). Used inside the marking
	// transaction to enforce the per-day state machine.
	GetByEmployeeAndDay(ctx context.Context, employeeID string, dateLocal string, companyID string) ([]Mark, error)

	// List retrieves marks with filters and pagination
	List(ctx context.Context, filter MarkFilter, companyID string) ([]Mark, int64, error)

	// EmployeesWithMarks returns the set of employee IDs that have at least
	// one mark inside [from, to]. Feeds the payroll estimator's
	// no-attendance warning.
	EmployeesWithMarks(ctx context.Context, companyID string, from, to time.Time) (map[string]bool, error)
}

type GeofenceRepository interface {
	Create(ctx context.Context, g Geofence) (Geofence, error)
	GetByID(ctx context.Context, id string, companyID string) (Geofence, error)
	List(ctx context.Context, companyID string) ([]Geofence, error)
	Delete(ctx context.Context, id string, companyID string) error
}

type RuleRepository interface {
	// GetByCompany returns the company's rule or ErrRuleNotFound.
	GetByCompany(ctx context.Context, companyID string) (Rule, error)

	// Upsert creates or replaces the company's single rule row.
	Upsert(ctx context.Context, r Rule) (Rule, error)
}
