package court

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const courtColumns = "id, location_id, name, sport, indoor, available, created_at, updated_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req CreateCourtRequest, available bool) (*Court, error) {
	query := `
		INSERT INTO courts (id, location_id, name, sport, indoor, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + courtColumns

	var court Court
	err := r.db.GetContext(ctx, &court, query,
		uuid.NewString(), req.LocationID, req.Name, req.Sport, req.Indoor, available)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) List(ctx context.Context, locationID string) ([]Court, error) {
	query := `
		SELECT ` + courtColumns + `
		FROM courts
	`
	args := []interface{}{}

	if locationID != "" {
		query += " WHERE location_id = $1"
		args = append(args, locationID)
	}

	query += " ORDER BY name ASC"

	courts := []Court{}
	err := r.db.SelectContext(ctx, &courts, query, args...)
	if err != nil {
		return nil, err
	}

	return courts, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Court, error) {
	query := `
		SELECT ` + courtColumns + `
		FROM courts
		WHERE id = $1
	`

	var court Court
	err := r.db.GetContext(ctx, &court, query, id)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) Update(ctx context.Context, id string, req UpdateCourtRequest) (*Court, error) {
	sets := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1

	set := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}

	if req.LocationID != nil {
		set("location_id", *req.LocationID)
	}
	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Sport != nil {
		set("sport", *req.Sport)
	}
	if req.Indoor != nil {
		set("indoor", *req.Indoor)
	}
	if req.Available != nil {
		set("available", *req.Available)
	}

	query := fmt.Sprintf(`
		UPDATE courts
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), n, courtColumns)
	args = append(args, id)

	var court Court
	err := r.db.GetContext(ctx, &court, query, args...)
	if err != nil {
		return nil, err
	}

	return &court, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courts WHERE id = $1`, id)
	return err
}
