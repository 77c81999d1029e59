package leave

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andes-hr/hr-backend-go/internal/pkg/validator"
)

type CreateRequestRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *CreateRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectRequestRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GrantDaysRequest struct {
	Period int             `json:"period"`
	Days   decimal.Decimal `json:"days"`
}

func (r *GrantDaysRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Period < 2000 || r.Period > 2200 {
		errs = append(errs, validator.ValidationError{Field: "period", Message: "must be a plausible year"})
	}
	if !r.Days.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "days", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RequestResponse struct {
	ID              string  `json:"id"`
	EmployeeID      string  `json:"employee_id"`
	EmployeeName    *string `json:"employee_name,omitempty"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	Days            string  `json:"days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	ReviewedBy      *string `json:"reviewed_by,omitempty"`
	ReviewedAt      *string `json:"reviewed_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func ToRequestResponse(r Request) RequestResponse {
	resp := RequestResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Days:            r.Days.String(),
		Reason:          r.Reason,
		Status:          string(r.Status),
		RejectionReason: r.RejectionReason,
		ReviewedBy:      r.ReviewedBy,
		CreatedAt:       r.CreatedAt.UTC().Format(time.RFC3339),
	}
	if r.ReviewedAt != nil {
		reviewedAt := r.ReviewedAt.UTC().Format(time.RFC3339)
		resp.ReviewedAt = &reviewedAt
	}
	return resp
}

type RequestFilter struct {
	EmployeeID *string
	Status     *RequestStatus
	Page       int
	Limit      int
}

type ListRequestsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Requests   []RequestResponse `json:"requests"`
}

type BalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	Period        int    `json:"period"`
	AvailableDays string `json:"available_days"`
}

func ToBalanceResponse(b Balance) BalanceResponse {
	return BalanceResponse{
		EmployeeID:    b.EmployeeID,
		Period:        b.Period,
		AvailableDays: b.AvailableDays.String(),
	}
}
