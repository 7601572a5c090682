package reservation

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type Reservation struct {
	ID        string    `db:"id" json:"id"`
	CourtID   string    `db:"court_id" json:"court_id"`
	UserID    string    `db:"user_id" json:"user_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ReservationWithDetails joins the court and user rows needed for
// notification emails and admin views.
type ReservationWithDetails struct {
	Reservation
	CourtName    string  `db:"court_name" json:"court_name"`
	LocationName string  `db:"location_name" json:"location_name"`
	UserEmail    string  `db:"user_email" json:"user_email"`
	UserName     *string `db:"user_name" json:"user_name"`
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

// ListFilter narrows a reservation listing; empty fields match everything.
type ListFilter struct {
	UserID  string
	CourtID string
}
