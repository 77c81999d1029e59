package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrDocumentExists   = errors.New("document number already registered in this company")
	ErrContractNotFound = errors.New("contract not found")
)
