package employee

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

type Employee struct {
	ID             string
	CompanyID      string
	BranchID       *string
	PositionID     *string
	UserID         *string
	DocumentNumber string
	FirstName      string
	LastName       string
	Email          *string
	Phone          *string
	Status         Status
	HireDate       time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// Joined fields
	BranchName   *string
	PositionName *string
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func (e Employee) IsActive() bool {
	return e.Status == StatusActive
}
