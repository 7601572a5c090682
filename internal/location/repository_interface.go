package location

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateLocationRequest) (*Location, error)
	List(ctx context.Context) ([]Location, error)
	GetByID(ctx context.Context, id string) (*Location, error)
	Update(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error)
	Delete(ctx context.Context, id string) error
}
