package position

import (
	"github.com/andes-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreatePositionRequest struct {
	Name       string          `json:"name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func (r *CreatePositionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PositionResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	BaseSalary decimal.Decimal `json:"base_salary"`
}

func ToResponse(p Position) PositionResponse {
	return PositionResponse{
		ID:         p.ID,
		Name:       p.Name,
		BaseSalary: p.BaseSalary,
	}
}
