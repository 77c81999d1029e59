package payroll

import "github.com/andes-hr/hr-backend-go/internal/pkg/validator"

type EstimateRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func (r *EstimateRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.PeriodStart); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.PeriodEnd); !ok {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LineItemResponse struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	ContractID     string `json:"contract_id"`
	LegacyContract bool   `json:"legacy_contract"`
	MonthlySalary  string `json:"monthly_salary"`
	UnexcusedDays  string `json:"unexcused_days"`
	DaysWorked     string `json:"days_worked"`
	Payment        string `json:"payment"`
}

type EstimateResponse struct {
	PeriodStart string             `json:"period_start"`
	PeriodEnd   string             `json:"period_end"`
	Lines       []LineItemResponse `json:"lines"`
	Issues      []Issue            `json:"issues"`
	Total       string             `json:"total"`
}

func ToEstimateResponse(e Estimate) EstimateResponse {
	resp := EstimateResponse{
		PeriodStart: e.PeriodStart.Format("2006-01-02"),
		PeriodEnd:   e.PeriodEnd.Format("2006-01-02"),
		Lines:       make([]LineItemResponse, 0, len(e.Lines)),
		Issues:      e.Issues,
		Total:       e.Total.StringFixed(2),
	}
	if resp.Issues == nil {
		resp.Issues = []Issue{}
	}
	for _, l := range e.Lines {
		resp.Lines = append(resp.Lines, LineItemResponse{
			EmployeeID:     l.EmployeeID,
			EmployeeName:   l.EmployeeName,
			ContractID:     l.ContractID,
			LegacyContract: l.LegacyContract,
			MonthlySalary:  l.MonthlySalary.StringFixed(2),
			UnexcusedDays:  l.UnexcusedDays.String(),
			DaysWorked:     l.DaysWorked.String(),
			Payment:        l.Payment.StringFixed(2),
		})
	}
	return resp
}
