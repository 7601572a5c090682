package location

import "time"

type Location struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Address    string    `db:"address" json:"address"`
	City       string    `db:"city" json:"city"`
	State      *string   `db:"state" json:"state"`
	Country    string    `db:"country" json:"country"`
	PostalCode *string   `db:"postal_code" json:"postal_code"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

type CreateLocationRequest struct {
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	City       string  `json:"city"`
	State      *string `json:"state"`
	Country    string  `json:"country"`
	PostalCode *string `json:"postal_code"`
}

// UpdateLocationRequest carries a partial update; nil fields are left alone.
type UpdateLocationRequest struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	Country    *string `json:"country"`
	PostalCode *string `json:"postal_code"`
}
