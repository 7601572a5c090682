package lessons

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	packageColumns       = "id, name, description, lesson_count, validity_days, price_cents, active, created_at, updated_at"
	memberPackageColumns = "id, member_id, package_id, lessons_remaining, purchase_date, expiry_date, created_at, updated_at"
	bookingColumns       = "id, member_id, coach_id, court_id, package_id, start_time, end_time, status, notes, created_at, updated_at"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreatePackage(ctx context.Context, req CreatePackageRequest, active bool) (*LessonPackage, error) {
	query := `
		INSERT INTO lesson_packages (id, name, description, lesson_count, validity_days, price_cents, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + packageColumns

	var pkg LessonPackage
	err := r.db.GetContext(ctx, &pkg, query,
		uuid.NewString(), req.Name, req.Description, req.LessonCount,
		req.ValidityDays, req.PriceCents, active)
	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *repository) ListPackages(ctx context.Context, activeOnly bool) ([]LessonPackage, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM lesson_packages
	`
	if activeOnly {
		query += " WHERE active = true"
	}
	query += " ORDER BY price_cents ASC"

	packages := []LessonPackage{}
	err := r.db.SelectContext(ctx, &packages, query)
	if err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *repository) GetPackageByID(ctx context.Context, id string) (*LessonPackage, error) {
	query := `
		SELECT ` + packageColumns + `
		FROM lesson_packages
		WHERE id = $1
	`

	var pkg LessonPackage
	err := r.db.GetContext(ctx, &pkg, query, id)
	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *repository) UpdatePackage(ctx context.Context, id string, req UpdatePackageRequest) (*LessonPackage, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Description != nil {
		set("description", *req.Description)
	}
	if req.LessonCount != nil {
		set("lesson_count", *req.LessonCount)
	}
	if req.ValidityDays != nil {
		set("validity_days", *req.ValidityDays)
	}
	if req.PriceCents != nil {
		set("price_cents", *req.PriceCents)
	}
	if req.Active != nil {
		set("active", *req.Active)
	}

	query := fmt.Sprintf(`
		UPDATE lesson_packages
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), n, packageColumns)
	args = append(args, id)

	var pkg LessonPackage
	err := r.db.GetContext(ctx, &pkg, query, args...)
	if err != nil {
		return nil, err
	}

	return &pkg, nil
}

func (r *repository) DeletePackage(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lesson_packages WHERE id = $1`, id)
	return err
}

// PurchasePackage creates a member package grant inside one transaction. The
// lesson balance and expiry are derived from the package at purchase time so
// later package edits never change what a member already bought.
func (r *repository) PurchasePackage(ctx context.Context, memberID string, pkg *LessonPackage) (*MemberPackage, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO member_packages (id, member_id, package_id, lessons_remaining, purchase_date, expiry_date)
		VALUES ($1, $2, $3, $4, NOW(), NOW() + make_interval(days => $5))
		RETURNING ` + memberPackageColumns

	var mp MemberPackage
	err = tx.GetContext(ctx, &mp, query,
		uuid.NewString(), memberID, pkg.ID, pkg.LessonCount, pkg.ValidityDays)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &mp, nil
}

func (r *repository) ListMemberPackages(ctx context.Context, memberID string) ([]MemberPackage, error) {
	query := `
		SELECT ` + memberPackageColumns + `
		FROM member_packages
		WHERE member_id = $1
		ORDER BY purchase_date DESC
	`

	packages := []MemberPackage{}
	err := r.db.SelectContext(ctx, &packages, query, memberID)
	if err != nil {
		return nil, err
	}

	return packages, nil
}

func (r *repository) GetMemberPackageByID(ctx context.Context, id string) (*MemberPackage, error) {
	query := `
		SELECT ` + memberPackageColumns + `
		FROM member_packages
		WHERE id = $1
	`

	var mp MemberPackage
	err := r.db.GetContext(ctx, &mp, query, id)
	if err != nil {
		return nil, err
	}

	return &mp, nil
}

// CreateBooking inserts the booking and, when a package is attached, debits
// one lesson from it in the same transaction. A package with no remaining
// lessons or an expired window fails the whole booking.
func (r *repository) CreateBooking(ctx context.Context, req CreateLessonBookingRequest, start, end time.Time) (*LessonBooking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if req.PackageID != nil {
		result, err := tx.ExecContext(ctx, `
			UPDATE member_packages
			SET lessons_remaining = lessons_remaining - 1, updated_at = NOW()
			WHERE id = $1 AND lessons_remaining > 0 AND expiry_date > NOW()
		`, *req.PackageID)
		if err != nil {
			return nil, err
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		if rows == 0 {
			return nil, sql.ErrNoRows
		}
	}

	query := `
		INSERT INTO lesson_bookings (id, member_id, coach_id, court_id, package_id, start_time, end_time, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + bookingColumns

	var booking LessonBooking
	err = tx.GetContext(ctx, &booking, query,
		uuid.NewString(), req.MemberID, req.CoachID, req.CourtID, req.PackageID,
		start, end, StatusConfirmed, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) ListBookings(ctx context.Context, filter BookingFilter) ([]LessonBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM lesson_bookings
	`
	conditions := []string{}
	args := []interface{}{}

	if filter.MemberID != "" {
		args = append(args, filter.MemberID)
		conditions = append(conditions, fmt.Sprintf("member_id = $%d", len(args)))
	}
	if filter.CoachID != "" {
		args = append(args, filter.CoachID)
		conditions = append(conditions, fmt.Sprintf("coach_id = $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY start_time DESC"

	bookings := []LessonBooking{}
	err := r.db.SelectContext(ctx, &bookings, query, args...)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) GetBookingByID(ctx context.Context, id string) (*LessonBooking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM lesson_bookings
		WHERE id = $1
	`

	var booking LessonBooking
	err := r.db.GetContext(ctx, &booking, query, id)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) UpdateBooking(ctx context.Context, id string, fields BookingUpdateFields) (*LessonBooking, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
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
	if fields.Notes != nil {
		set("notes", *fields.Notes)
	}

	query := fmt.Sprintf(`
		UPDATE lesson_bookings
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), n, bookingColumns)
	args = append(args, id)

	var booking LessonBooking
	err := r.db.GetContext(ctx, &booking, query, args...)
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) DeleteBooking(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM lesson_bookings WHERE id = $1`, id)
	return err
}
