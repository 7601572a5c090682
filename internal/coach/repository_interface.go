package coach

import "context"

type Repository interface {
	CreateProfile(ctx context.Context, req CreateCoachRequest) (*CoachProfile, error)
	ListProfiles(ctx context.Context) ([]CoachProfile, error)
	GetProfileByID(ctx context.Context, id string) (*CoachProfile, error)
	UpdateProfile(ctx context.Context, id string, req UpdateCoachRequest) (*CoachProfile, error)
	DeleteProfile(ctx context.Context, id string) error

	CreateAvailability(ctx context.Context, coachID string, req CreateAvailabilityRequest) (*CoachAvailability, error)
	ListAvailabilityByCoach(ctx context.Context, coachID string) ([]CoachAvailability, error)
	DeleteAvailability(ctx context.Context, id string) error
}
