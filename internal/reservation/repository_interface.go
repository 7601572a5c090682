package reservation

import (
	"context"
	"time"
)

// UpdateFields is the parsed form of UpdateReservationRequest; nil fields
// are left alone.
type UpdateFields struct {
	CourtID   *string
	UserID    *string
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
}

type Repository interface {
	Create(ctx context.Context, courtID, userID string, start, end time.Time, status string) (*Reservation, error)
	List(ctx context.Context, filter ListFilter) ([]Reservation, error)
	GetByID(ctx context.Context, id string) (*Reservation, error)
	GetDetails(ctx context.Context, id string) (*ReservationWithDetails, error)
	Update(ctx context.Context, id string, fields UpdateFields) (*Reservation, error)
	Delete(ctx context.Context, id string) error
}
