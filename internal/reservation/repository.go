package reservation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const reservationColumns = "id, court_id, user_id, start_time, end_time, status, created_at, updated_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, courtID, userID string, start, end time.Time, status string) (*Reservation, error) {
	query := `
		INSERT INTO court_reservations (id, court_id, user_id, start_time, end_time, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + reservationColumns

	var res Reservation
	err := r.db.GetContext(ctx, &res, query, uuid.NewString(), courtID, userID, start, end, status)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *repository) List(ctx context.Context, filter ListFilter) ([]Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM court_reservations
	`
	conditions := []string{}
	args := []interface{}{}

	if filter.UserID != "" {
		args = append(args, filter.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filter.CourtID != "" {
		args = append(args, filter.CourtID)
		conditions = append(conditions, fmt.Sprintf("court_id = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY start_time DESC"

	reservations := []Reservation{}
	err := r.db.SelectContext(ctx, &reservations, query, args...)
	if err != nil {
		return nil, err
	}

	return reservations, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM court_reservations
		WHERE id = $1
	`

	var res Reservation
	err := r.db.GetContext(ctx, &res, query, id)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *repository) GetDetails(ctx context.Context, id string) (*ReservationWithDetails, error) {
	query := `
		SELECT
			r.id,
			r.court_id,
			r.user_id,
			r.start_time,
			r.end_time,
			r.status,
			r.created_at,
			r.updated_at,
			c.name AS court_name,
			l.name AS location_name,
			u.email AS user_email,
			u.full_name AS user_name
		FROM court_reservations r
		JOIN courts c ON r.court_id = c.id
		JOIN locations l ON c.location_id = l.id
		JOIN users u ON r.user_id = u.id
		WHERE r.id = $1
	`

	var details ReservationWithDetails
	err := r.db.GetContext(ctx, &details, query, id)
	if err != nil {
		return nil, err
	}

	return &details, nil
}

func (r *repository) Update(ctx context.Context, id string, fields UpdateFields) (*Reservation, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}

	if fields.CourtID != nil {
		set("court_id", *fields.CourtID)
	}
	if fields.UserID != nil {
		set("user_id", *fields.UserID)
	}
	if fields.StartTime != nil {
		set("start_time", *fields.StartTime)
	}
	if fields.EndTime != nil {
		set("end_time", *fields.EndTime)
	}
	if fields.Status != nil {
		set("status", *fields.Status)
	}

	query := fmt.Sprintf(`
		UPDATE court_reservations
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), n, reservationColumns)
	args = append(args, id)

	var res Reservation
	err := r.db.GetContext(ctx, &res, query, args...)
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM court_reservations WHERE id = $1`, id)
	return err
}
