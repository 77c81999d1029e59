package company

import (
	"context"
	"fmt"

	"github.com/andes-hr/hr-backend-go/internal/domain/company"
)

type CompanyServiceImpl struct {
	company.CompanyRepository
}

func NewCompanyService(repo company.CompanyRepository) *CompanyServiceImpl {
	return &CompanyServiceImpl{CompanyRepository: repo}
}

func (s *CompanyServiceImpl) Get(ctx context.Context, companyID string) (company.CompanyResponse, error) {
	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(c), nil
}

func (s *CompanyServiceImpl) Update(ctx context.Context, companyID string, req company.UpdateCompanyRequest) (company.CompanyResponse, error) {
	if err := req.Validate(); err != nil {
		return company.CompanyResponse{}, err
	}

	if err := s.CompanyRepository.Update(ctx, companyID, req); err != nil {
		return company.CompanyResponse{}, fmt.Errorf("failed to update company: %w", err)
	}

	c, err := s.CompanyRepository.GetByID(ctx, companyID)
	if err != nil {
		return company.CompanyResponse{}, err
	}
	return company.ToResponse(c), nil
}
