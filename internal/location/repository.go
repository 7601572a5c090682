package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const locationColumns = "id, name, address, city, state, country, postal_code, created_at, updated_at"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, req CreateLocationRequest) (*Location, error) {
	query := `
		INSERT INTO locations (id, name, address, city, state, country, postal_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + locationColumns

	var loc Location
	err := r.db.GetContext(ctx, &loc, query,
		uuid.NewString(), req.Name, req.Address, req.City, req.State, req.Country, req.PostalCode)
	if err != nil {
		return nil, err
	}

	return &loc, nil
}

func (r *repository) List(ctx context.Context) ([]Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		ORDER BY name ASC
	`

	locations := []Location{}
	err := r.db.SelectContext(ctx, &locations, query)
	if err != nil {
		return nil, err
	}

	return locations, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE id = $1
	`

	var loc Location
	err := r.db.GetContext(ctx, &loc, query, id)
	if err != nil {
		return nil, err
	}

	return &loc, nil
}

// Update applies only the fields present in the request. Returns
// sql.ErrNoRows when no row matched the id.
func (r *repository) Update(ctx context.Context, id string, req UpdateLocationRequest) (*Location, error) {
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
	if req.Address != nil {
		set("address", *req.Address)
	}
	if req.City != nil {
		set("city", *req.City)
	}
	if req.State != nil {
		set("state", *req.State)
	}
	if req.Country != nil {
		set("country", *req.Country)
	}
	if req.PostalCode != nil {
		set("postal_code", *req.PostalCode)
	}

	query := fmt.Sprintf(`
		UPDATE locations
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(sets, ", "), n, locationColumns)
	args = append(args, id)

	var loc Location
	err := r.db.GetContext(ctx, &loc, query, args...)
	if err != nil {
		return nil, err
	}

	return &loc, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM locations WHERE id = $1`, id)
	return err
}
