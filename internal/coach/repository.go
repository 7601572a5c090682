package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const (
	profileColumns      = "id, bio, experience_years, sports, hourly_rate_cents, profile_image_url, created_at, updated_at"
	availabilityColumns = "id, coach_id, day_of_week, start_time, end_time, location_id, created_at, updated_at"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateProfile(ctx context.Context, req CreateCoachRequest) (*CoachProfile, error) {
	query := `
		INSERT INTO coach_profiles (id, bio, experience_years, sports, hourly_rate_cents, profile_image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + profileColumns

	var profile CoachProfile
	err := r.db.GetContext(ctx, &profile, query,
		uuid.NewString(), req.Bio, req.ExperienceYears, pq.StringArray(req.Sports),
		req.HourlyRateCents, req.ProfileImageURL)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *repository) ListProfiles(ctx context.Context) ([]CoachProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM coach_profiles
		ORDER BY created_at DESC
	`

	profiles := []CoachProfile{}
	err := r.db.SelectContext(ctx, &profiles, query)
	if err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *repository) GetProfileByID(ctx context.Context, id string) (*CoachProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM coach_profiles
		WHERE id = $1
	`

	var profile CoachProfile
	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *repository) UpdateProfile(ctx context.Context, id string, req UpdateCoachRequest) (*CoachProfile, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}

	if req.Bio != nil {
		set("bio", *req.Bio)
	}
	if req.ExperienceYears != nil {
		set("experience_years", *req.ExperienceYears)
	}
	if req.Sports != nil {
		set("sports", pq.StringArray(req.Sports))
	}
	if req.HourlyRateCents != nil {
		set("hourly_rate_cents", *req.HourlyRateCents)
	}
	if req.ProfileImageURL != nil {
		set("profile_image_url", *req.ProfileImageURL)
	}

	query := fmt.Sprintf(`
		UPDATE coach_profiles
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), n, profileColumns)
	args = append(args, id)

	var profile CoachProfile
	err := r.db.GetContext(ctx, &profile, query, args...)
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *repository) DeleteProfile(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM coach_profiles WHERE id = $1`, id)
	return err
}

func (r *repository) CreateAvailability(ctx context.Context, coachID string, req CreateAvailabilityRequest) (*CoachAvailability, error) {
	query := `
		INSERT INTO coach_availability (id, coach_id, day_of_week, start_time, end_time, location_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + availabilityColumns

	var slot CoachAvailability
	err := r.db.GetContext(ctx, &slot, query,
		uuid.NewString(), coachID, *req.DayOfWeek, req.StartTime, req.EndTime, req.LocationID)
	if err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *repository) ListAvailabilityByCoach(ctx context.Context, coachID string) ([]CoachAvailability, error) {
	query := `
		SELECT ` + availabilityColumns + `
		FROM coach_availability
		WHERE coach_id = $1
		ORDER BY day_of_week ASC, start_time ASC
	`

	slots := []CoachAvailability{}
	err := r.db.SelectContext(ctx, &slots, query, coachID)
	if err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *repository) DeleteAvailability(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM coach_availability WHERE id = $1`, id)
	return err
}
