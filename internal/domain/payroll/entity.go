package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type IssueLevel string

const (
	IssueLevelError   IssueLevel = "error"
	IssueLevelWarning IssueLevel = "warning"
)

// Issue is a per-employee problem found while estimating. Issues are
// collected and reported alongside the result, never raised.
type Issue struct {
	EmployeeID   string     `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	Level        IssueLevel `json:"level"`
	Message      string     `json:"message"`
}

// LineItem is one employee's estimated payment for the period.
type LineItem struct {
	EmployeeID     string
	EmployeeName   string
	ContractID     string
	LegacyContract bool
	MonthlySalary  decimal.Decimal
	UnexcusedDays  decimal.Decimal
	DaysWorked     decimal.Decimal
	Payment        decimal.Decimal
}

// Estimate is the whole-company result for a period.
type Estimate struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	Lines       []LineItem
	Issues      []Issue
	Total       decimal.Decimal
}
