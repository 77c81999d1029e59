package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/andes-hr/hr-backend-go/internal/domain/attendance"
	"github.com/andes-hr/hr-backend-go/internal/domain/employee"
	"github.com/andes-hr/hr-backend-go/internal/domain/leave"
	"github.com/andes-hr/hr-backend-go/internal/domain/payroll"
	"github.com/andes-hr/hr-backend-go/internal/pkg/validator"
)

type PayrollServiceImpl struct {
	employee.EmployeeRepository
	employee.ContractRepository
	leave.RequestRepository
	attendance.MarkRepository
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	contractRepo employee.ContractRepository,
	leaveRepo leave.RequestRepository,
	markRepo attendance.MarkRepository,
) *PayrollServiceImpl {
	return &PayrollServiceImpl{
		EmployeeRepository: employeeRepo,
		ContractRepository: contractRepo,
		RequestRepository:  leaveRepo,
		MarkRepository:     markRepo,
	}
}

// Estimate assembles each active employee's inputs and runs the period
// calculation. It is a preview: nothing is persisted.
func (s *PayrollServiceImpl) Estimate(ctx context.Context, companyID string, req payroll.EstimateRequest) (payroll.EstimateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.EstimateResponse{}, err
	}

	periodStart, _ := validator.IsValidDate(req.PeriodStart)
	periodEnd, _ := validator.IsValidDate(req.PeriodEnd)
	if periodEnd.Before(periodStart) {
		return payroll.EstimateResponse{}, leave.ErrInvalidRange
	}

	est, err := s.estimate(ctx, companyID, periodStart, periodEnd)
	if err != nil {
		return payroll.EstimateResponse{}, err
	}

	return payroll.ToEstimateResponse(est), nil
}

func (s *PayrollServiceImpl) estimate(ctx context.Context, companyID string, periodStart, periodEnd time.Time) (payroll.Estimate, error) {
	employees, err := s.EmployeeRepository.ListActive(ctx, companyID)
	if err != nil {
		return payroll.Estimate{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	// Marks are timestamped instants; widen the window to the period's last
	// second so the whole end day counts.
	present, err := s.MarkRepository.EmployeesWithMarks(ctx, companyID, periodStart, periodEnd.Add(24*time.Hour-time.Second))
	if err != nil {
		return payroll.Estimate{}, fmt.Errorf("failed to check attendance presence: %w", err)
	}

	inputs := make([]payroll.EmployeeInput, 0, len(employees))
	for _, e := range employees {
		contracts, err := s.ContractRepository.ListByEmployee(ctx, e.ID)
		if err != nil {
			return payroll.Estimate{}, fmt.Errorf("failed to list contracts for %s: %w", e.ID, err)
		}
		legacy, err := s.ContractRepository.ListLegacyByEmployee(ctx, e.ID)
		if err != nil {
			return payroll.Estimate{}, fmt.Errorf("failed to list legacy contracts for %s: %w", e.ID, err)
		}
		rejected, err := s.RequestRepository.ListRejectedOverlapping(ctx, e.ID, companyID, periodStart, periodEnd)
		if err != nil {
			return payroll.Estimate{}, fmt.Errorf("failed to list rejected leaves for %s: %w", e.ID, err)
		}

		inputs = append(inputs, payroll.EmployeeInput{
			Employee:        e,
			Contracts:       contracts,
			LegacyContracts: legacy,
			RejectedLeaves:  rejected,
			HasAttendance:   present[e.ID],
		})
	}

	return payroll.Compute(periodStart, periodEnd, inputs), nil
}
