package payroll

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/andes-hr/hr-backend-go/internal/domain/payroll"
	"github.com/andes-hr/hr-backend-go/internal/pkg/validator"
)

// Payslip renders one employee's line of a period estimate as a PDF.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, companyID string, employeeID string, req payroll.EstimateRequest) ([]byte, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	periodStart, _ := validator.IsValidDate(req.PeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PeriodEnd)

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	est, err := s.estimate(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}

	var line *payroll.LineItem
	for i := range est.Lines {
		if est.Lines[i].EmployeeID == employeeID {
			line = &est.Lines[i]
			break
		}
	}
	if line == nil {
		// The employee was skipped; surface the collected issue instead.
		for _, issue := range est.Issues {
			if issue.EmployeeID == employeeID && issue.Level == payroll.IssueLevelError {
				return nil, fmt.Errorf("cannot generate payslip: %s", issue.Message)
			}
		}
		return nil, fmt.Errorf("employee %s has no payroll line for the period", employeeID)
	}

	return renderPayslip(*line, est)
}

func renderPayslip(line payroll.LineItem, est payroll.Estimate) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", line.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		est.PeriodStart.Format("2006-01-02"), est.PeriodEnd.Format("2006-01-02")))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly salary: %s", line.MonthlySalary.StringFixed(2)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Unexcused days: %s", line.UnexcusedDays.String()))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Days paid: %s of 30", line.DaysWorked.String()))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Payment: %s", line.Payment.StringFixed(2)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
