package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string, companyID string) (Position, error)
	List(ctx context.Context, companyID string) ([]Position, error)
	Delete(ctx context.Context, id string, companyID string) error
}
