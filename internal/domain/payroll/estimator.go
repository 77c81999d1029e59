package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/andes-hr/hr-backend-go/internal/domain/employee"
	"github.com/andes-hr/hr-backend-go/internal/domain/leave"
)

// payrollDivisor is the fixed month length used for daily-rate purposes,
// independent of the period's real calendar length.
var payrollDivisor = decimal.NewFromInt(30)

// EmployeeInput bundles everything the estimator needs for one employee.
// Contracts and legacy contracts feed active-contract resolution; rejected
// leaves are the ones already filtered to the period by the caller.
type EmployeeInput struct {
	Employee        employee.Employee
	Contracts       []employee.Contract
	LegacyContracts []employee.LegacyContract
	RejectedLeaves  []leave.Request
	HasAttendance   bool
}

// Compute runs the estimate for a period. Per-employee problems become
// Issues on the result: a missing contract skips the employee with an error,
// missing attendance only adds a warning. The daily rate always divides by
// 30 regardless of the period's real length.
func Compute(periodStart, periodEnd time.Time, inputs []EmployeeInput) Estimate {
	est := Estimate{
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Total:       decimal.Zero,
	}

	for _, in := range inputs {
		name := in.Employee.FullName()

		active, ok := employee.ResolveActiveContract(in.Contracts, in.LegacyContracts)
		if !ok {
			est.Issues = append(est.Issues, Issue{
				EmployeeID:   in.Employee.ID,
				EmployeeName: name,
				Level:        IssueLevelError,
				Message:      "no active contract for the period",
			})
			continue
		}

		if !in.HasAttendance {
			est.Issues = append(est.Issues, Issue{
				EmployeeID:   in.Employee.ID,
				EmployeeName: name,
				Level:        IssueLevelWarning,
				Message:      fmt.Sprintf("no attendance records between %s and %s", periodStart.Format("2006-01-02"), periodEnd.Format("2006-01-02")),
			})
		}

		unexcused := UnexcusedDays(periodStart, periodEnd, in.RejectedLeaves)
		daysWorked := payrollDivisor.Sub(unexcused)
		if daysWorked.IsNegative() {
			daysWorked = decimal.Zero
		}

		payment := active.Salary.
			Div(payrollDivisor).
			Mul(daysWorked).
			Round(2)

		est.Lines = append(est.Lines, LineItem{
			EmployeeID:     in.Employee.ID,
			EmployeeName:   name,
			ContractID:     active.ContractID,
			LegacyContract: active.Legacy,
			MonthlySalary:  active.Salary,
			UnexcusedDays:  unexcused,
			DaysWorked:     daysWorked,
			Payment:        payment,
		})
		est.Total = est.Total.Add(payment)
	}

	return est
}

// UnexcusedDays sums the day counts of rejected leaves that overlap the
// period. Overlap is inclusive on both ends; each overlapping request
// contributes its full day count, fractional days included.
func UnexcusedDays(periodStart, periodEnd time.Time, rejected []leave.Request) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rejected {
		if r.Status != leave.RequestStatusRejected {
			continue
		}
		if r.Overlaps(periodStart, periodEnd) {
			total = total.Add(r.Days)
		}
	}
	return total
}
