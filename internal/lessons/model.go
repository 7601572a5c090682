package lessons

import "time"

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

type LessonPackage struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Description  *string   `db:"description" json:"description"`
	LessonCount  int       `db:"lesson_count" json:"lesson_count"`
	ValidityDays int       `db:"validity_days" json:"validity_days"`
	PriceCents   int64     `db:"price_cents" json:"price_cents"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type MemberPackage struct {
	ID               string    `db:"id" json:"id"`
	MemberID         string    `db:"member_id" json:"member_id"`
	PackageID        string    `db:"package_id" json:"package_id"`
	LessonsRemaining int       `db:"lessons_remaining" json:"lessons_remaining"`
	PurchaseDate     time.Time `db:"purchase_date" json:"purchase_date"`
	ExpiryDate       time.Time `db:"expiry_date" json:"expiry_date"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

type LessonBooking struct {
	ID        string    `db:"id" json:"id"`
	MemberID  string    `db:"member_id" json:"member_id"`
	CoachID   string    `db:"coach_id" json:"coach_id"`
	CourtID   *string   `db:"court_id" json:"court_id"`
	PackageID *string   `db:"package_id" json:"package_id"`
	StartTime time.Time `db:"start_time" json:"start_time"`
	EndTime   time.Time `db:"end_time" json:"end_time"`
	Status    string    `db:"status" json:"status"`
	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePackageRequest struct {
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	LessonCount  int     `json:"lesson_count" validate:"required,min=1"`
	ValidityDays int     `json:"validity_days" validate:"required,min=1"`
	PriceCents   int64   `json:"price_cents" validate:"gte=0"`
	Active       *bool   `json:"active"`
}

type UpdatePackageRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	LessonCount  *int    `json:"lesson_count" validate:"omitempty,min=1"`
	ValidityDays *int    `json:"validity_days" validate:"omitempty,min=1"`
	PriceCents   *int64  `json:"price_cents" validate:"omitempty,gte=0"`
	Active       *bool   `json:"active"`
}

type PurchasePackageRequest struct {
	MemberID  string `json:"member_id" validate:"required"`
	PackageID string `json:"package_id" validate:"required"`
}

type CreateLessonBookingRequest struct {
	MemberID  string  `json:"member_id" validate:"required"`
	CoachID   string  `json:"coach_id" validate:"required"`
	CourtID   *string `json:"court_id"`
	PackageID *string `json:"package_id"`
	StartTime string  `json:"start_time" validate:"required"`
	EndTime   string  `json:"end_time" validate:"required"`
	Notes     *string `json:"notes"`
}

type UpdateLessonBookingRequest struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Status    *string `json:"status" validate:"omitempty,oneof=confirmed cancelled completed"`
	Notes     *string `json:"notes"`
}

// BookingFilter narrows a lesson booking listing; empty fields match all.
type BookingFilter struct {
	MemberID string
	CoachID  string
}
