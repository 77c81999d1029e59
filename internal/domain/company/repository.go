package company

import "context"

type CompanyRepository interface {
	Create(ctx context.Context, c Company) (Company, error)
	GetByID(ctx context.Context, id string) (Company, error)
	Update(ctx context.Context, id string, req UpdateCompanyRequest) error
	List(ctx context.Context) ([]Company, error)
}
