package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (*User, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string, mustChange bool) error
}
