package lessons

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JaeMinBird/Courtly/internal/metrics"
)

var (
	ErrPackageNotFound       = errors.New("package not found")
	ErrPackageInactive       = errors.New("package is not available for purchase")
	ErrMemberPackageNotFound = errors.New("member package not found")
	ErrPackageExhausted      = errors.New("package has no remaining lessons or has expired")
	ErrBookingNotFound       = errors.New("lesson booking not found")
	ErrInvalidTimeRange      = errors.New("invalid time range")
)

type Service interface {
	CreatePackage(ctx context.Context, req CreatePackageRequest) (*LessonPackage, error)
	GetPackages(ctx context.Context, activeOnly bool) ([]LessonPackage, error)
	GetPackageByID(ctx context.Context, id string) (*LessonPackage, error)
	UpdatePackage(ctx context.Context, id string, req UpdatePackageRequest) (*LessonPackage, error)
	DeletePackage(ctx context.Context, id string) error

	PurchasePackage(ctx context.Context, req PurchasePackageRequest) (*MemberPackage, error)
	GetMemberPackages(ctx context.Context, memberID string) ([]MemberPackage, error)
	GetMemberPackageByID(ctx context.Context, id string) (*MemberPackage, error)

	CreateBooking(ctx context.Context, req CreateLessonBookingRequest) (*LessonBooking, error)
	GetBookings(ctx context.Context, filter BookingFilter) ([]LessonBooking, error)
	GetBookingByID(ctx context.Context, id string) (*LessonBooking, error)
	UpdateBooking(ctx context.Context, id string, req UpdateLessonBookingRequest) (*LessonBooking, error)
	DeleteBooking(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePackage(ctx context.Context, req CreatePackageRequest) (*LessonPackage, error) {
	active := true
	if req.Active != nil {
		active = *req.Active
	}

	return s.repo.CreatePackage(ctx, req, active)
}

func (s *service) GetPackages(ctx context.Context, activeOnly bool) ([]LessonPackage, error) {
	return s.repo.ListPackages(ctx, activeOnly)
}

func (s *service) GetPackageByID(ctx context.Context, id string) (*LessonPackage, error) {
	pkg, err := s.repo.GetPackageByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *service) UpdatePackage(ctx context.Context, id string, req UpdatePackageRequest) (*LessonPackage, error) {
	pkg, err := s.repo.UpdatePackage(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	return pkg, nil
}

func (s *service) DeletePackage(ctx context.Context, id string) error {
	return s.repo.DeletePackage(ctx, id)
}

func (s *service) PurchasePackage(ctx context.Context, req PurchasePackageRequest) (*MemberPackage, error) {
	pkg, err := s.GetPackageByID(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}
	if !pkg.Active {
		return nil, ErrPackageInactive
	}

	mp, err := s.repo.PurchasePackage(ctx, req.MemberID, pkg)
	if err != nil {
		return nil, err
	}

	metrics.RecordPackagePurchase()

	return mp, nil
}

func (s *service) GetMemberPackages(ctx context.Context, memberID string) ([]MemberPackage, error) {
	return s.repo.ListMemberPackages(ctx, memberID)
}

func (s *service) GetMemberPackageByID(ctx context.Context, id string) (*MemberPackage, error) {
	mp, err := s.repo.GetMemberPackageByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMemberPackageNotFound
		}
		return nil, err
	}
	return mp, nil
}

func (s *service) CreateBooking(ctx context.Context, req CreateLessonBookingRequest) (*LessonBooking, error) {
	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}

	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}

	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	booking, err := s.repo.CreateBooking(ctx, req, start, end)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPackageExhausted
		}
		return nil, err
	}

	return booking, nil
}

func (s *service) GetBookings(ctx context.Context, filter BookingFilter) ([]LessonBooking, error) {
	return s.repo.ListBookings(ctx, filter)
}

func (s *service) GetBookingByID(ctx context.Context, id string) (*LessonBooking, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *service) UpdateBooking(ctx context.Context, id string, req UpdateLessonBookingRequest) (*LessonBooking, error) {
	fields := BookingUpdateFields{
		Status: req.Status,
		Notes:  req.Notes,
	}

	if req.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeRange
		}
		fields.StartTime = &start
	}

	if req.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeRange
		}
		fields.EndTime = &end
	}

	booking, err := s.repo.UpdateBooking(ctx, id, fields)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	return booking, nil
}

func (s *service) DeleteBooking(ctx context.Context, id string) error {
	return s.repo.DeleteBooking(ctx, id)
}
