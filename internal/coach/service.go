package coach

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

var (
	ErrCoachNotFound      = errors.New("coach not found")
	ErrInvalidTimeOfDay   = errors.New("invalid time of day")
	ErrAvailabilityWindow = errors.New("end time must be after start time")
)

type Service interface {
	CreateCoach(ctx context.Context, req CreateCoachRequest) (*CoachProfile, error)
	GetAllCoaches(ctx context.Context) ([]CoachProfile, error)
	GetCoachByID(ctx context.Context, id string) (*CoachProfile, error)
	UpdateCoach(ctx context.Context, id string, req UpdateCoachRequest) (*CoachProfile, error)
	DeleteCoach(ctx context.Context, id string) error

	AddAvailability(ctx context.Context, coachID string, req CreateAvailabilityRequest) (*CoachAvailability, error)
	GetAvailability(ctx context.Context, coachID string) ([]CoachAvailability, error)
	RemoveAvailability(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateCoach(ctx context.Context, req CreateCoachRequest) (*CoachProfile, error) {
	return s.repo.CreateProfile(ctx, req)
}

func (s *service) GetAllCoaches(ctx context.Context) ([]CoachProfile, error) {
	return s.repo.ListProfiles(ctx)
}

func (s *service) GetCoachByID(ctx context.Context, id string) (*CoachProfile, error) {
	profile, err := s.repo.GetProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *service) UpdateCoach(ctx context.Context, id string, req UpdateCoachRequest) (*CoachProfile, error) {
	profile, err := s.repo.UpdateProfile(ctx, id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *service) DeleteCoach(ctx context.Context, id string) error {
	return s.repo.DeleteProfile(ctx, id)
}

func (s *service) AddAvailability(ctx context.Context, coachID string, req CreateAvailabilityRequest) (*CoachAvailability, error) {
	if _, err := s.GetCoachByID(ctx, coachID); err != nil {
		return nil, err
	}

	start, err := time.Parse("15:04:05", req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeOfDay
	}

	end, err := time.Parse("15:04:05", req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeOfDay
	}

	if !end.After(start) {
		return nil, ErrAvailabilityWindow
	}

	return s.repo.CreateAvailability(ctx, coachID, req)
}

func (s *service) GetAvailability(ctx context.Context, coachID string) ([]CoachAvailability, error) {
	if _, err := s.GetCoachByID(ctx, coachID); err != nil {
		return nil, err
	}

	return s.repo.ListAvailabilityByCoach(ctx, coachID)
}

func (s *service) RemoveAvailability(ctx context.Context, id string) error {
	return s.repo.DeleteAvailability(ctx, id)
}
