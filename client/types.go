package client

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

type AuthResponse struct {
	Message string   `json:"message"`
	User    *User    `json:"user,omitempty"`
	Session *Session `json:"session,omitempty"`
}

type Location struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	State      *string   `json:"state"`
	Country    string    `json:"country"`
	PostalCode *string   `json:"postal_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
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

type Court struct {
	ID         string    `json:"id"`
	LocationID string    `json:"location_id"`
	Name       string    `json:"name"`
	Sport      string    `json:"sport"`
	Indoor     bool      `json:"indoor"`
	Available  bool      `json:"available"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
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

type Reservation struct {
	ID        string    `json:"id"`
	CourtID   string    `json:"court_id"`
	UserID    string    `json:"user_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateReservationRequest struct {
	CourtID   string `json:"court_id"`
	UserID    string `json:"user_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`
}

type UpdateReservationRequest struct {
	CourtID   *string `json:"court_id"`
	UserID    *string `json:"user_id"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Status    *string `json:"status"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
