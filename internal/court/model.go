package court

import "time"

type Court struct {
	ID         string    `db:"id" json:"id"`
	LocationID string    `db:"location_id" json:"location_id"`
	Name       string    `db:"name" json:"name"`
	Sport      string    `db:"sport" json:"sport"`
	Indoor     bool      `db:"indoor" json:"indoor"`
	Available  bool      `db:"available" json:"available"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type CreateCourtRequest struct {
	LocationID string `json:"location_id"`
	Name       string `json:"name"`
	Sport      string `json:"sport"`
	Indoor     bool   `json:"indoor"`
	Available  *bool  `json:"available"`
}

type UpdateCourtRequest struct {
	LocationID *string `json:"location_id"`
	Name       *string `json:"name"`
	Sport      *string `json:"sport"`
	Indoor     *bool   `json:"indoor"`
	Available  *bool   `json:"available"`
}
