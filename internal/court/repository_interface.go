package court

import "context"

type Repository interface {
	Create(ctx context.Context, req CreateCourtRequest, available bool) (*Court, error)
	List(ctx context.Context, locationID string) ([]Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	Update(ctx context.Context, id string, req UpdateCourtRequest) (*Court, error)
	Delete(ctx context.Context, id string) error
}
