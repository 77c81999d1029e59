package leave

import (
	"context"
	"time"
)

type RequestRepository interface {
	// Create inserts a new pending request
	Create(ctx context.Context, r Request) (Request, error)

	// GetByID returns the request or ErrRequestNotFound
	GetByID(ctx context.Context, id string, companyID string) (Request, error)

	// GetByIDForUpdate locks the request row for the current transaction.
	// Reviews read the request through this so two concurrent reviews of the
	// same request serialize before the status guard runs.
	GetByIDForUpdate(ctx context.Context, id string, companyID string) (Request, error)

	// List retrieves requests with filters and pagination
	List(ctx context.Context, filter RequestFilter, companyID string) ([]Request, int64, error)

	// Update persists a status transition
	Update(ctx context.Context, r Request) (Request, error)

	// ListRejectedOverlapping returns rejected requests for the employee that
	// overlap [from, to] inclusive.
	ListRejectedOverlapping(ctx context.Context, employeeID string, companyID string, from, to time.Time) ([]Request, error)
}

type BalanceRepository interface {
	// GetOrCreate returns the employee's balance for the period, inserting a
	// zero-day row when none exists yet.
	GetOrCreate(ctx context.Context, employeeID string, period int) (Balance, error)

	// GetForUpdate locks the balance row for the current transaction. Callers
	// must be inside a transaction; the lock serializes concurrent approvals.
	GetForUpdate(ctx context.Context, employeeID string, period int) (Balance, error)

	// Update persists the available-day count
	Update(ctx context.Context, b Balance) (Balance, error)

	// ListByEmployee returns all balance rows for the employee
	ListByEmployee(ctx context.Context, employeeID string) ([]Balance, error)
}
