package response

import (
	"errors"
	"net/http"

	"github.com/andes-hr/hr-backend-go/internal/domain/attendance"
	"github.com/andes-hr/hr-backend-go/internal/domain/auth"
	"github.com/andes-hr/hr-backend-go/internal/domain/company"
	"github.com/andes-hr/hr-backend-go/internal/domain/employee"
	"github.com/andes-hr/hr-backend-go/internal/domain/leave"
	"github.com/andes-hr/hr-backend-go/internal/domain/master/branch"
	"github.com/andes-hr/hr-backend-go/internal/domain/master/position"
	"github.com/andes-hr/hr-backend-go/internal/domain/user"
	"github.com/andes-hr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenExpired),
		errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrPasswordMismatch):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Account already exists")

	// Company and master data
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")
	case errors.Is(err, company.ErrNothingToUpdate):
		BadRequest(w, "No updatable fields provided", nil)
	case errors.Is(err, branch.ErrBranchNotFound):
		NotFound(w, "Branch not found")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDocumentExists):
		Conflict(w, "Document number already registered")
	case errors.Is(err, employee.ErrContractNotFound):
		NotFound(w, "No active contract")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrDuplicateCheckIn),
		errors.Is(err, attendance.ErrMissingCheckIn),
		errors.Is(err, attendance.ErrDuplicateCheckOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrOutsideGeofence):
		Forbidden(w, "Location is outside the allowed area")
	case errors.Is(err, attendance.ErrCoordinateNeeded):
		BadRequest(w, "Location is required to mark attendance", nil)
	case errors.Is(err, attendance.ErrMarkNotFound):
		NotFound(w, "Attendance mark not found")
	case errors.Is(err, attendance.ErrGeofenceNotFound):
		NotFound(w, "Geofence not found")
	case errors.Is(err, attendance.ErrRuleNotFound):
		NotFound(w, "Attendance rule not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrBalanceNotFound):
		NotFound(w, "Leave balance not found")
	case errors.Is(err, leave.ErrInvalidRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrReasonRequired):
		BadRequest(w, "Rejection reason is required", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
