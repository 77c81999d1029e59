package employee

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/andes-hr/hr-backend-go/internal/domain/employee"
	"github.com/andes-hr/hr-backend-go/internal/domain/user"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
	"github.com/andes-hr/hr-backend-go/internal/pkg/validator"
	"github.com/andes-hr/hr-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	employee.ContractRepository
	user.UserRepository
	defaultPassword string
}

func NewEmployeeService(
	db *database.DB,
	employeeRepo employee.EmployeeRepository,
	contractRepo employee.ContractRepository,
	userRepo user.UserRepository,
	defaultPassword string,
) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepo,
		ContractRepository: contractRepo,
		UserRepository:     userRepo,
		defaultPassword:    defaultPassword,
	}
}

// Create registers a new employee. Account provisioning is a separate,
// explicit step (ProvisionUser).
func (s *EmployeeServiceImpl) Create(ctx context.Context, companyID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	exists, err := s.EmployeeRepository.DocumentExists(ctx, companyID, req.DocumentNumber)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check document number: %w", err)
	}
	if exists {
		return employee.EmployeeResponse{}, employee.ErrDocumentExists
	}

	hireDate, _ := validator.IsValidDate(req.HireDate)

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		CompanyID:      companyID,
		BranchID:       req.BranchID,
		PositionID:     req.PositionID,
		DocumentNumber: req.DocumentNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Phone:          req.Phone,
		Status:         employee.StatusActive,
		HireDate:       hireDate,
	})
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee.ToResponse(created), nil
}

func (s *EmployeeServiceImpl) Get(ctx context.Context, id string, companyID string) (employee.EmployeeResponse, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter, companyID string) ([]employee.EmployeeResponse, int64, error) {
	employees, total, err := s.EmployeeRepository.List(ctx, filter, companyID)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, employee.ToResponse(e))
	}
	return responses, total, nil
}

func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest, companyID string) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.EmployeeRepository.Update(ctx, req, companyID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	e, err := s.EmployeeRepository.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(e), nil
}

// ProvisionUser creates a login for an employee that has none. The username
// is derived from the employee's name, suffixed with a counter on collision.
// The account starts with the company-wide default password and must change
// it on first login.
func (s *EmployeeServiceImpl) ProvisionUser(ctx context.Context, employeeID string, companyID string) (user.User, error) {
	e, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return user.User{}, err
	}

	existing, err := s.UserRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to check existing account: %w", err)
	}
	if existing != nil {
		return user.User{}, user.ErrUsernameExists
	}

	password := s.defaultPassword
	if password == "" {
		password = e.DocumentNumber
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}
	hashStr := string(hash)

	var created user.User
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		username, err := s.nextUsername(txCtx, e.FirstName, e.LastName)
		if err != nil {
			return err
		}

		created, err = s.UserRepository.Create(txCtx, user.User{
			CompanyID:          companyID,
			Username:           username,
			Email:              e.Email,
			PasswordHash:       &hashStr,
			Role:               user.RoleEmployee,
			MustChangePassword: true,
			EmployeeID:         &e.ID,
		})
		if err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}

		return s.EmployeeRepository.SetUserID(txCtx, e.ID, created.ID)
	})
	if err != nil {
		return user.User{}, err
	}

	return created, nil
}

func (s *EmployeeServiceImpl) nextUsername(ctx context.Context, firstName, lastName string) (string, error) {
	base := strings.ToLower(strings.ReplaceAll(firstName, " ", "") + "." + strings.ReplaceAll(lastName, " ", ""))

	candidate := base
	for i := 2; ; i++ {
		exists, err := s.UserRepository.UsernameExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check username: %w", err)
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, i)
	}
}

// AddContract inserts a new canonical contract, retiring any previous active
// one so a single contract governs the employee.
func (s *EmployeeServiceImpl) AddContract(ctx context.Context, companyID string, req employee.AddContractRequest) (employee.ContractResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.ContractResponse{}, err
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return employee.ContractResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	var endDate *time.Time
	if req.EndDate != nil {
		parsed, _ := validator.IsValidDate(*req.EndDate)
		endDate = &parsed
	}

	var created employee.Contract
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.ContractRepository.DeactivateByEmployee(txCtx, req.EmployeeID); err != nil {
			return err
		}

		var err error
		created, err = s.ContractRepository.Create(txCtx, employee.Contract{
			EmployeeID: req.EmployeeID,
			Kind:       employee.ContractKind(req.Kind),
			StartDate:  startDate,
			EndDate:    endDate,
			Salary:     req.Salary,
			IsActive:   true,
		})
		return err
	})
	if err != nil {
		return employee.ContractResponse{}, fmt.Errorf("failed to add contract: %w", err)
	}

	return employee.ToContractResponse(created), nil
}

func (s *EmployeeServiceImpl) ListContracts(ctx context.Context, employeeID string, companyID string) ([]employee.ContractResponse, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return nil, err
	}

	contracts, err := s.ContractRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		responses = append(responses, employee.ToContractResponse(c))
	}
	return responses, nil
}

// ActiveContract resolves the contract currently governing the employee,
// considering both canonical and legacy rows.
func (s *EmployeeServiceImpl) ActiveContract(ctx context.Context, employeeID string, companyID string) (employee.ActiveContract, error) {
	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID, companyID); err != nil {
		return employee.ActiveContract{}, err
	}

	contracts, err := s.ContractRepository.ListByEmployee(ctx, employeeID)
	if err != nil {
		return employee.ActiveContract{}, err
	}
	legacy, err := s.ContractRepository.ListLegacyByEmployee(ctx, employeeID)
	if err != nil {
		return employee.ActiveContract{}, err
	}

	active, ok := employee.ResolveActiveContract(contracts, legacy)
	if !ok {
		return employee.ActiveContract{}, employee.ErrContractNotFound
	}
	return active, nil
}
