package position

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is a job title with a default base salary, used when an employee
// has no contract-specific salary.
type Position struct {
	ID         string
	CompanyID  string
	Name       string
	BaseSalary decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
