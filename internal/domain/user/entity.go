package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // Back-office administrator - full access
	RoleManager  Role = "manager"  // Can approve leave and review attendance
	RoleEmployee Role = "employee" // Regular employee
)

type User struct {
	ID                 string
	CompanyID          string
	Username           string
	Email              *string
	PasswordHash       *string
	Role               Role
	MustChangePassword bool
	EmployeeID         *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsAdmin checks if user is a back-office administrator
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanApprove checks if user can approve leave requests and review marks
func (u *User) CanApprove() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}
