package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/andes-hr/hr-backend-go/internal/domain/employee"
	"github.com/andes-hr/hr-backend-go/internal/domain/leave"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
	"github.com/andes-hr/hr-backend-go/internal/pkg/validator"
	"github.com/andes-hr/hr-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.RequestRepository
	leave.BalanceRepository
	employee.EmployeeRepository
}

func (s *LeaveServiceImpl) nowUTC() time.Time {
	return time.Now().UTC()
}

func NewLeaveService(
	db *database.DB,
	requestRepo leave.RequestRepository,
	balanceRepo leave.BalanceRepository,
	employeeRepo employee.EmployeeRepository,
) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		db:                 db,
		RequestRepository:  requestRepo,
		BalanceRepository:  balanceRepo,
		EmployeeRepository: employeeRepo,
	}
}

// CreateRequest files a pending leave petition for the employee.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, employeeID string, companyID string, req leave.CreateRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return leave.RequestResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	request, err := leave.NewRequest(employeeID, companyID, startDate, endDate, req.Reason)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	created, err := s.RequestRepository.Create(ctx, request)
	if err != nil {
		return leave.RequestResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToRequestResponse(created), nil
}

// Approve moves a pending request to approved and deducts its days from the
// employee's balance for the period. Both the request row and the balance row
// are locked for the whole transaction: the request lock stops two reviews of
// the same request from both passing the pending guard, the balance lock
// stops two approvals from spending the same days.
func (s *LeaveServiceImpl) Approve(ctx context.Context, requestID string, companyID string, reviewerID string) (leave.RequestResponse, error) {
	var updated leave.Request

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.RequestRepository.GetByIDForUpdate(txCtx, requestID, companyID)
		if err != nil {
			return err
		}

		if _, err := s.BalanceRepository.GetOrCreate(txCtx, request.EmployeeID, request.Period()); err != nil {
			return err
		}
		balance, err := s.BalanceRepository.GetForUpdate(txCtx, request.EmployeeID, request.Period())
		if err != nil {
			return err
		}

		if err := request.Approve(&balance, reviewerID, s.nowUTC()); err != nil {
			return err
		}

		if _, err := s.BalanceRepository.Update(txCtx, balance); err != nil {
			return err
		}

		updated, err = s.RequestRepository.Update(txCtx, request)
		return err
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(updated), nil
}

// Reject moves a pending request to rejected with a mandatory reason. The
// balance is never touched.
func (s *LeaveServiceImpl) Reject(ctx context.Context, requestID string, companyID string, reviewerID string, req leave.RejectRequestRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	var updated leave.Request

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.RequestRepository.GetByIDForUpdate(txCtx, requestID, companyID)
		if err != nil {
			return err
		}

		if err := request.Reject(reviewerID, req.Reason, s.nowUTC()); err != nil {
			return err
		}

		updated, err = s.RequestRepository.Update(txCtx, request)
		return err
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	return leave.ToRequestResponse(updated), nil
}

func (s *LeaveServiceImpl) Get(ctx context.Context, requestID string, companyID string) (leave.RequestResponse, error) {
	request, err := s.RequestRepository.GetByID(ctx, requestID, companyID)
	if err != nil {
		return leave.RequestResponse{}, err
	}
	return leave.ToRequestResponse(request), nil
}

func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.RequestFilter, companyID string) (leave.ListRequestsResponse, error) {
	requests, total, err := s.RequestRepository.List(ctx, filter, companyID)
	if err != nil {
		return leave.ListRequestsResponse{}, err
	}

	responses := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.ToRequestResponse(r))
	}

	return leave.ListRequestsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Requests:   responses,
	}, nil
}

// Balances returns every period balance for the employee.
func (s *LeaveServiceImpl) Balances(ctx context.Context, employeeID string, companyID string) ([]leave.BalanceResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	balances, err := s.BalanceRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.BalanceResponse, 0, len(balances))
	for _, b := range balances {
		responses = append(responses, leave.ToBalanceResponse(b))
	}
	return responses, nil
}

// GrantDays adds allowance to an employee's balance for a period, creating
// the row when it does not exist yet.
func (s *LeaveServiceImpl) GrantDays(ctx context.Context, employeeID string, companyID string, req leave.GrantDaysRequest) (leave.BalanceResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.BalanceResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return leave.BalanceResponse{}, err
	}

	var updated leave.Balance
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if _, err := s.BalanceRepository.GetOrCreate(txCtx, employeeID, req.Period); err != nil {
			return err
		}
		balance, err := s.BalanceRepository.GetForUpdate(txCtx, employeeID, req.Period)
		if err != nil {
			return err
		}

		balance.AvailableDays = balance.AvailableDays.Add(req.Days)
		updated, err = s.BalanceRepository.Update(txCtx, balance)
		return err
	})
	if err != nil {
		return leave.BalanceResponse{}, err
	}

	return leave.ToBalanceResponse(updated), nil
}
