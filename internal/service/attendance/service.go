package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/andes-hr/hr-backend-go/internal/domain/attendance"
	"github.com/andes-hr/hr-backend-go/internal/domain/master/branch"
	"github.com/andes-hr/hr-backend-go/internal/pkg/database"
	"github.com/andes-hr/hr-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.MarkRepository
	attendance.GeofenceRepository
	attendance.RuleRepository
	branch.BranchRepository

	// now is swappable for tests
	now func() time.Time
}

func NewAttendanceService(
	db *database.DB,
	markRepo attendance.MarkRepository,
	geofenceRepo attendance.GeofenceRepository,
	ruleRepo attendance.RuleRepository,
	branchRepo branch.BranchRepository,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		db:                 db,
		MarkRepository:     markRepo,
		GeofenceRepository: geofenceRepo,
		RuleRepository:     ruleRepo,
		BranchRepository:   branchRepo,
		now:                time.Now,
	}
}

// Mark records a clock event for the employee. The whole decision runs in
// one transaction: per-day state machine, geofence check, late computation.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, employeeID string, companyID string, req attendance.MarkRequest) (attendance.MarkResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.MarkResponse{}, err
	}
	kind := attendance.MarkKind(req.Kind)

	loc := s.employeeLocation(ctx, employeeID, companyID)
	nowLocal := s.now().In(loc)
	dateLocal := nowLocal.Format("2006-01-02")

	var created attendance.Mark
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		// Serialize the check-then-insert: a second identical mark waits
		// here and then sees the first one's row.
		if err := s.MarkRepository.LockEmployeeDay(txCtx, employeeID, dateLocal); err != nil {
			return err
		}

		marks, err := s.MarkRepository.GetByEmployeeAndDay(txCtx, employeeID, dateLocal, companyID)
		if err != nil {
			return err
		}
		if err := attendance.ValidateTransition(attendance.StateOf(marks), kind); err != nil {
			return err
		}

		rule, err := s.companyRule(txCtx, companyID)
		if err != nil {
			return err
		}

		inside := false
		if rule.GeofenceID != nil {
			coord := req.Coordinate()
			if coord == nil {
				return attendance.ErrCoordinateNeeded
			}
			fence, err := s.GeofenceRepository.GetByID(txCtx, *rule.GeofenceID, companyID)
			if err != nil {
				// A rule pointing at a missing fence admits nobody.
				if errors.Is(err, attendance.ErrGeofenceNotFound) {
					return attendance.ErrOutsideGeofence
				}
				return err
			}
			inside = fence.Fence.Contains(*coord)
			if !inside {
				return attendance.ErrOutsideGeofence
			}
		}

		mark := attendance.Mark{
			EmployeeID:     employeeID,
			CompanyID:      companyID,
			Kind:           kind,
			RecordedAt:     nowLocal.UTC(),
			DateLocal:      dateLocal,
			Latitude:       req.Latitude,
			Longitude:      req.Longitude,
			InsideGeofence: inside,
		}

		if kind == attendance.MarkKindCheckIn {
			decision := attendance.ComputeLateDecision(nowLocal, rule.Cutoff)
			mark.IsLate = decision.IsLate
			mark.LateMinutes = decision.LateMinutes
		}

		created, err = s.MarkRepository.Create(txCtx, mark)
		return err
	})
	if err != nil {
		return attendance.MarkResponse{}, err
	}

	return attendance.ToMarkResponse(created), nil
}

// employeeLocation resolves the branch timezone; employees without a branch
// mark on UTC days.
func (s *AttendanceServiceImpl) employeeLocation(ctx context.Context, employeeID string, companyID string) *time.Location {
	tz, err := s.BranchRepository.GetTimezoneByEmployeeID(ctx, employeeID, companyID)
	if err != nil {
		return time.UTC
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// companyRule falls back to the default cutoff with no geofence when the
// company has not configured one.
func (s *AttendanceServiceImpl) companyRule(ctx context.Context, companyID string) (attendance.Rule, error) {
	rule, err := s.RuleRepository.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, attendance.ErrRuleNotFound) {
			return attendance.Rule{CompanyID: companyID, Cutoff: attendance.DefaultCutoff}, nil
		}
		return attendance.Rule{}, err
	}
	return rule, nil
}

func (s *AttendanceServiceImpl) ListMarks(ctx context.Context, filter attendance.MarkFilter, companyID string) (attendance.ListMarksResponse, error) {
	marks, total, err := s.MarkRepository.List(ctx, filter, companyID)
	if err != nil {
		return attendance.ListMarksResponse{}, err
	}

	responses := make([]attendance.MarkResponse, 0, len(marks))
	for _, m := range marks {
		responses = append(responses, attendance.ToMarkResponse(m))
	}

	return attendance.ListMarksResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Marks:      responses,
	}, nil
}

// DaySummary derives the worked-hours view of one employee-day.
func (s *AttendanceServiceImpl) DaySummary(ctx context.Context, employeeID string, companyID string, dateLocal string) (attendance.DaySummaryResponse, error) {
	marks, err := s.MarkRepository.GetByEmployeeAndDay(ctx, employeeID, dateLocal, companyID)
	if err != nil {
		return attendance.DaySummaryResponse{}, err
	}

	summary := attendance.DaySummaryResponse{Date: dateLocal}

	var checkIn, checkOut *attendance.Mark
	for i := range marks {
		switch marks[i].Kind {
		case attendance.MarkKindCheckIn:
			checkIn = &marks[i]
		case attendance.MarkKindCheckOut:
			checkOut = &marks[i]
		}
	}

	if checkIn != nil {
		formatted := checkIn.RecordedAt.UTC().Format(time.RFC3339)
		summary.CheckIn = &formatted
		summary.IsLate = checkIn.IsLate
		summary.LateMinutes = checkIn.LateMinutes
	}
	if checkOut != nil {
		formatted := checkOut.RecordedAt.UTC().Format(time.RFC3339)
		summary.CheckOut = &formatted
	}

	if checkIn != nil && checkOut != nil {
		hours, err := attendance.HoursWorked(checkIn.RecordedAt, checkOut.RecordedAt)
		if err != nil {
			return attendance.DaySummaryResponse{}, fmt.Errorf("inconsistent marks for %s: %w", dateLocal, err)
		}
		overtime := attendance.Overtime(hours)
		summary.HoursWorked = &hours
		summary.Overtime = &overtime
	}

	return summary, nil
}

func (s *AttendanceServiceImpl) CreateGeofence(ctx context.Context, companyID string, req attendance.CreateGeofenceRequest) (attendance.GeofenceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.GeofenceResponse{}, err
	}

	created, err := s.GeofenceRepository.Create(ctx, attendance.Geofence{
		CompanyID: companyID,
		Name:      req.Name,
		Fence:     req.Fence(),
	})
	if err != nil {
		return attendance.GeofenceResponse{}, fmt.Errorf("failed to create geofence: %w", err)
	}

	return attendance.ToGeofenceResponse(created), nil
}

func (s *AttendanceServiceImpl) ListGeofences(ctx context.Context, companyID string) ([]attendance.GeofenceResponse, error) {
	fences, err := s.GeofenceRepository.List(ctx, companyID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.GeofenceResponse, 0, len(fences))
	for _, g := range fences {
		responses = append(responses, attendance.ToGeofenceResponse(g))
	}
	return responses, nil
}

func (s *AttendanceServiceImpl) DeleteGeofence(ctx context.Context, id string, companyID string) error {
	return s.GeofenceRepository.Delete(ctx, id, companyID)
}

func (s *AttendanceServiceImpl) GetRule(ctx context.Context, companyID string) (attendance.RuleResponse, error) {
	rule, err := s.companyRule(ctx, companyID)
	if err != nil {
		return attendance.RuleResponse{}, err
	}
	return attendance.ToRuleResponse(rule), nil
}

func (s *AttendanceServiceImpl) UpsertRule(ctx context.Context, companyID string, req attendance.UpsertRuleRequest) (attendance.RuleResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RuleResponse{}, err
	}

	cutoff, err := attendance.ParseTimeOfDay(req.Cutoff)
	if err != nil {
		return attendance.RuleResponse{}, err
	}

	if req.GeofenceID != nil {
		if _, err := s.GeofenceRepository.GetByID(ctx, *req.GeofenceID, companyID); err != nil {
			return attendance.RuleResponse{}, err
		}
	}

	rule, err := s.RuleRepository.Upsert(ctx, attendance.Rule{
		CompanyID:  companyID,
		Cutoff:     cutoff,
		GeofenceID: req.GeofenceID,
	})
	if err != nil {
		return attendance.RuleResponse{}, err
	}

	return attendance.ToRuleResponse(rule), nil
}
