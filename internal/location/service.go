package location

import (
	"context"
	"database/sql"
	"errors"
)

var (
	ErrLocationNotFound = errors.New("location not found")
	ErrRequiredFields   = errors.New("name, address, city and country are required")
)

type Service interface {
	CreateLocation(ctx context.Context, req CreateLocationRequest) (*Location, error)
	GetAllLocations(ctx context.Context) ([]Location, error)
	GetLocationByID(ctx context.Context, id string) (*Location, error)
	UpdateLocation(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error)
	DeleteLocation(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateLocation(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	if req.Name == "" || req.Address == "" || req.City == "" || req.Country == "" {
		return nil, ErrRequiredFields
	}

	return s.repo.Create(ctx, req)
}

func (s *service) GetAllLocations(ctx context.Context) ([]Location, error) {
	return s.repo.List(ctx)
}

func (s *service) GetLocationByID(ctx context.Context, id string) (*Location, error) {
	loc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return loc, nil
}

func (s *service) UpdateLocation(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error) {
	loc, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	return loc, nil
}

func (s *service) DeleteLocation(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
