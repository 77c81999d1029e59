package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, e Employee) (Employee, error)
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetByUserID(ctx context.Context, userID string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter, companyID string) ([]Employee, int64, error)
	ListActive(ctx context.Context, companyID string) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest, companyID string) error
	SetUserID(ctx context.Context, employeeID string, userID string) error
	DocumentExists(ctx context.Context, companyID string, documentNumber string) (bool, error)
}

type ContractRepository interface {
	Create(ctx context.Context, c Contract) (Contract, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Contract, error)
	ListLegacyByEmployee(ctx context.Context, employeeID string) ([]LegacyContract, error)

	// DeactivateByEmployee retires all active contracts before a new one is
	// inserted so exactly one canonical contract is active at a time.
	DeactivateByEmployee(ctx context.Context, employeeID string) error
}
