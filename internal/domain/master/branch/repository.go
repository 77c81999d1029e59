package branch

import "context"

type BranchRepository interface {
	Create(ctx context.Context, b Branch) (Branch, error)
	GetByID(ctx context.Context, id string, companyID string) (Branch, error)
	List(ctx context.Context, companyID string) ([]Branch, error)
	Delete(ctx context.Context, id string, companyID string) error

	// GetTimezoneByEmployeeID resolves the IANA timezone of the branch the
	// employee is assigned to.
	GetTimezoneByEmployeeID(ctx context.Context, employeeID string, companyID string) (string, error)
}
