package coach

import (
	"time"

	"github.com/lib/pq"
)

type CoachProfile struct {
	ID              string         `db:"id" json:"id"`
	Bio             *string        `db:"bio" json:"bio"`
	ExperienceYears *int           `db:"experience_years" json:"experience_years"`
	Sports          pq.StringArray `db:"sports" json:"sports"`
	HourlyRateCents *int64         `db:"hourly_rate_cents" json:"hourly_rate_cents"`
	ProfileImageURL *string        `db:"profile_image_url" json:"profile_image_url"`
	CreatedAt       time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at" json:"updated_at"`
}

// CoachAvailability is a recurring weekly slot; day_of_week runs
// Sunday (0) through Saturday (6), times are HH:MM:SS.
type CoachAvailability struct {
	ID         string    `db:"id" json:"id"`
	CoachID    string    `db:"coach_id" json:"coach_id"`
	DayOfWeek  int       `db:"day_of_week" json:"day_of_week"`
	StartTime  string    `db:"start_time" json:"start_time"`
	EndTime    string    `db:"end_time" json:"end_time"`
	LocationID *string   `db:"location_id" json:"location_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type CreateCoachRequest struct {
	Bio             *string  `json:"bio"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0"`
	Sports          []string `json:"sports" validate:"required,min=1,dive,oneof=tennis pickleball squash"`
	HourlyRateCents *int64   `json:"hourly_rate_cents" validate:"omitempty,gte=0"`
	ProfileImageURL *string  `json:"profile_image_url"`
}

type UpdateCoachRequest struct {
	Bio             *string  `json:"bio"`
	ExperienceYears *int     `json:"experience_years" validate:"omitempty,gte=0"`
	Sports          []string `json:"sports" validate:"omitempty,min=1,dive,oneof=tennis pickleball squash"`
	HourlyRateCents *int64   `json:"hourly_rate_cents" validate:"omitempty,gte=0"`
	ProfileImageURL *string  `json:"profile_image_url"`
}

type CreateAvailabilityRequest struct {
	DayOfWeek  *int    `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime  string  `json:"start_time" validate:"required"`
	EndTime    string  `json:"end_time" validate:"required"`
	LocationID *string `json:"location_id"`
}
