package company

import "errors"

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrNothingToUpdate = errors.New("no updatable fields provided")
)
