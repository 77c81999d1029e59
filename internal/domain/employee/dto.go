package employee

import (
	"github.com/andes-hr/hr-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	DocumentNumber string  `json:"document_number"`
	FirstName      string  `json:"first_name"`
	LastName       string  `json:"last_name"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	BranchID       *string `json:"branch_id,omitempty"`
	PositionID     *string `json:"position_id,omitempty"`
	HireDate       string  `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DocumentNumber) {
		errs = append(errs, validator.ValidationError{Field: "document_number", Message: "is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	BranchID   *string `json:"branch_id,omitempty"`
	PositionID *string `json:"position_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{string(StatusActive), string(StatusInactive)}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be active or inactive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddContractRequest struct {
	EmployeeID string
	Kind       string          `json:"kind"`
	StartDate  string          `json:"start_date"`
	EndDate    *string         `json:"end_date,omitempty"`
	Salary     decimal.Decimal `json:"salary"`
}

func (r *AddContractRequest) Validate() error {
	var errs validator.ValidationErrors

	kinds := []string{string(ContractKindPermanent), string(ContractKindFixedTerm), string(ContractKindIntern)}
	if !validator.IsInSlice(r.Kind, kinds) {
		errs = append(errs, validator.ValidationError{Field: "kind", Message: "must be permanent, fixed_term or intern"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	DocumentNumber string  `json:"document_number"`
	FullName       string  `json:"full_name"`
	Email          *string `json:"email,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	BranchName     *string `json:"branch,omitempty"`
	PositionName   *string `json:"position,omitempty"`
	Status         string  `json:"status"`
	HireDate       string  `json:"hire_date"`
	HasUser        bool    `json:"has_user"`
}

type ContractResponse struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	StartDate string          `json:"start_date"`
	EndDate   *string         `json:"end_date,omitempty"`
	Salary    decimal.Decimal `json:"salary"`
	IsActive  bool            `json:"is_active"`
}

type EmployeeFilter struct {
	Status   *Status
	BranchID *string
	Page     int
	Limit    int
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		DocumentNumber: e.DocumentNumber,
		FullName:       e.FullName(),
		Email:          e.Email,
		Phone:          e.Phone,
		BranchName:     e.BranchName,
		PositionName:   e.PositionName,
		Status:         string(e.Status),
		HireDate:       e.HireDate.Format("2006-01-02"),
		HasUser:        e.UserID != nil,
	}
}

func ToContractResponse(c Contract) ContractResponse {
	var endDate *string
	if c.EndDate != nil {
		formatted := c.EndDate.Format("2006-01-02")
		endDate = &formatted
	}
	return ContractResponse{
		ID:        c.ID,
		Kind:      string(c.Kind),
		StartDate: c.StartDate.Format("2006-01-02"),
		EndDate:   endDate,
		Salary:    c.Salary,
		IsActive:  c.IsActive,
	}
}
