package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andes-hr/hr-backend-go/internal/domain/payroll"
	"github.com/andes-hr/hr-backend-go/internal/handler/http/response"
	payrollservice "github.com/andes-hr/hr-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Estimate(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService *payrollservice.PayrollServiceImpl
}

func NewPayrollHandler(payrollService *payrollservice.PayrollServiceImpl) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Estimate implements PayrollHandler. The period comes from the query string
// since the operation is a read-only preview.
func (h *PayrollHandlerImpl) Estimate(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := payroll.EstimateRequest{
		PeriodStart: r.URL.Query().Get("period_start"),
		PeriodEnd:   r.URL.Query().Get("period_end"),
	}

	estimate, err := h.payrollService.Estimate(r.Context(), claims.CompanyID, req)
	if err != nil {
		slog.Error("Payroll estimate error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, estimate)
}

// Payslip implements PayrollHandler. Streams a PDF.
func (h *PayrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req := payroll.EstimateRequest{
		PeriodStart: r.URL.Query().Get("period_start"),
		PeriodEnd:   r.URL.Query().Get("period_end"),
	}
	employeeID := chi.URLParam(r, "employeeID")

	pdf, err := h.payrollService.Payslip(r.Context(), claims.CompanyID, employeeID, req)
	if err != nil {
		slog.Error("Payslip error", "error", err, "employee_id", employeeID)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%s-%s.pdf", employeeID, req.PeriodStart))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
