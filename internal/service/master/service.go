package master

import (
	"context"
	"fmt"

	"github.com/andes-hr/hr-backend-go/internal/domain/master/branch"
	"github.com/andes-hr/hr-backend-go/internal/domain/master/position"
)

// MasterServiceImpl manages the lookup tables employees hang off of:
// branches and positions.
type MasterServiceImpl struct {
	branch.BranchRepository
	position.PositionRepository
}

func NewMasterService(branchRepo branch.BranchRepository, positionRepo position.PositionRepository) *MasterServiceImpl {
	return &MasterServiceImpl{
		BranchRepository:   branchRepo,
		PositionRepository: positionRepo,
	}
}

func (s *MasterServiceImpl) CreateBranch(ctx context.Context, companyID string, req branch.CreateBranchRequest) (branch.BranchResponse, error) {
	if err := req.Validate(); err != nil {
		return branch.BranchResponse{}, err
	}

	tz := req.Timezone
	if tz == "" {
		tz = "UTC"
	}

	created, err := s.BranchRepository.Create(ctx, branch.Branch{
		CompanyID: companyID,
		Name:      req.Name,
		Address:   req.Address,
		Timezone:  tz,
	})
	if err != nil {
		return branch.BranchResponse{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return branch.ToResponse(created), nil
}

func (s *MasterServiceImpl) ListBranches(ctx context.Context, companyID string) ([]branch.BranchResponse, error) {
	branches, err := s.BranchRepository.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]branch.BranchResponse, 0, len(branches))
	for _, b := range branches {
		responses = append(responses, branch.ToResponse(b))
	}
	return responses, nil
}

func (s *MasterServiceImpl) DeleteBranch(ctx context.Context, id string, companyID string) error {
	return s.BranchRepository.Delete(ctx, id, companyID)
}

func (s *MasterServiceImpl) CreatePosition(ctx context.Context, companyID string, req position.CreatePositionRequest) (position.PositionResponse, error) {
	if err := req.Validate(); err != nil {
		return position.PositionResponse{}, err
	}

	created, err := s.PositionRepository.Create(ctx, position.Position{
		CompanyID:  companyID,
		Name:       req.Name,
		BaseSalary: req.BaseSalary,
	})
	if err != nil {
		return position.PositionResponse{}, fmt.Errorf("failed to create position: %w", err)
	}

	return position.ToResponse(created), nil
}

func (s *MasterServiceImpl) ListPositions(ctx context.Context, companyID string) ([]position.PositionResponse, error) {
	positions, err := s.PositionRepository.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]position.PositionResponse, 0, len(positions))
	for _, p := range positions {
		responses = append(responses, position.ToResponse(p))
	}
	return responses, nil
}

func (s *MasterServiceImpl) DeletePosition(ctx context.Context, id string, companyID string) error {
	return s.PositionRepository.Delete(ctx, id, companyID)
}
