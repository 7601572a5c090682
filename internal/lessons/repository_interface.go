package lessons

import (
	"context"
	"time"
)

// BookingUpdateFields is the parsed form of UpdateLessonBookingRequest; nil
// fields are left alone.
type BookingUpdateFields struct {
	StartTime *time.Time
	EndTime   *time.Time
	Status    *string
	Notes     *string
}

type Repository interface {
	CreatePackage(ctx context.Context, req CreatePackageRequest, active bool) (*LessonPackage, error)
	ListPackages(ctx context.Context, activeOnly bool) ([]LessonPackage, error)
	GetPackageByID(ctx context.Context, id string) (*LessonPackage, error)
	UpdatePackage(ctx context.Context, id string, req UpdatePackageRequest) (*LessonPackage, error)
	DeletePackage(ctx context.Context, id string) error

	PurchasePackage(ctx context.Context, memberID string, pkg *LessonPackage) (*MemberPackage, error)
	ListMemberPackages(ctx context.Context, memberID string) ([]MemberPackage, error)
	GetMemberPackageByID(ctx context.Context, id string) (*MemberPackage, error)

	CreateBooking(ctx context.Context, req CreateLessonBookingRequest, start, end time.Time) (*LessonBooking, error)
	ListBookings(ctx context.Context, filter BookingFilter) ([]LessonBooking, error)
	GetBookingByID(ctx context.Context, id string) (*LessonBooking, error)
	UpdateBooking(ctx context.Context, id string, fields BookingUpdateFields) (*LessonBooking, error)
	DeleteBooking(ctx context.Context, id string) error
}
