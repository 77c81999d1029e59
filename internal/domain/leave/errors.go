package leave

import "errors"

var (
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrBalanceNotFound     = errors.New("leave balance not found")
	ErrInvalidRange        = errors.New("end date must not be before start date")
	ErrAlreadyProcessed    = errors.New("leave request has already been processed")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrReasonRequired      = errors.New("rejection reason is required")
)
