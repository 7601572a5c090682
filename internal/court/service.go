package court

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrCourtNotFound  = errors.New("court not found")
	ErrRequiredFields = errors.New("location id, name and sport are required")
	ErrInvalidSport   = errors.New("invalid sport")
)

var validSports = map[string]bool{
	"tennis":     true,
	"pickleball": true,
	"squash":     true,
}

type Service interface {
	CreateCourt(ctx context.Context, req CreateCourtRequest) (*Court, error)
	GetAllCourts(ctx context.Context, locationID string) ([]Court, error)
	GetCourtByID(ctx context.Context, id string) (*Court, error)
	UpdateCourt(ctx context.Context, id string, req UpdateCourtRequest) (*Court, error)
	DeleteCourt(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCourt(ctx context.Context, req CreateCourtRequest) (*Court, error) {
	if req.LocationID == "" || req.Name == "" || req.Sport == "" {
		return nil, ErrRequiredFields
	}

	if !validSports[req.Sport] {
		return nil, ErrInvalidSport
	}

	// Courts are bookable unless the caller says otherwise.
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	return s.repo.Create(ctx, req, available)
}

func (s *service) GetAllCourts(ctx context.Context, locationID string) ([]Court, error) {
	return s.repo.List(ctx, locationID)
}

func (s *service) GetCourtByID(ctx context.Context, id string) (*Court, error) {
	court, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return court, nil
}

func (s *service) UpdateCourt(ctx context.Context, id string, req UpdateCourtRequest) (*Court, error) {
	if req.Sport != nil && !validSports[*req.Sport] {
		return nil, ErrInvalidSport
	}

	court, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	return court, nil
}

func (s *service) DeleteCourt(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
