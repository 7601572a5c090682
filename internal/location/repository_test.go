package location

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func setupLocationMock(t *testing.T) (Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewRepository(sqlxDB)

	closer := func() { sqlxDB.Close() }
	return repo, mock, closer
}

func locationRows(id, name string, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "address", "city", "state", "country", "postal_code", "created_at", "updated_at"}).
		AddRow(id, name, "1 Main St", "Springfield", nil, "US", nil, now, now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock, close := setupLocationMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery("INSERT INTO locations").
		WillReturnRows(locationRows("loc-1", "Court Club", now))

	loc, err := repo.Create(context.Background(), CreateLocationRequest{
		Name:    "Court Club",
		Address: "1 Main St",
		City:    "Springfield",
		Country: "US",
	})
	require.NoError(t, err)
	require.Equal(t, "loc-1", loc.ID)
	require.Equal(t, "Court Club", loc.Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_OrderedByName(t *testing.T) {
	repo, mock, close := setupLocationMock(t)
	defer close()

	now := time.Now()

	mock.ExpectQuery(`(?s)SELECT.+FROM locations.+ORDER BY name ASC`).
		WillReturnRows(locationRows("loc-1", "Alpha Club", now).
			AddRow("loc-2", "Beta Club", "2 Oak Ave", "Shelbyville", nil, "US", nil, now, now))

	locations, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 2)
	require.Equal(t, "Alpha Club", locations[0].Name)
	require.Equal(t, "Beta Club", locations[1].Name)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, close := setupLocationMock(t)
	defer close()

	mock.ExpectQuery(`(?s)SELECT.+FROM locations.+WHERE id = \$1`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	loc, err := repo.GetByID(context.Background(), "missing")
	require.Nil(t, loc)
	require.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestRepository_Update_PartialFields(t *testing.T) {
	repo, mock, close := setupLocationMock(t)
	defer close()

	now := time.Now()
	name := "Renamed Club"

	mock.ExpectQuery(`(?s)UPDATE locations.+SET updated_at = NOW\(\), name = \$1.+WHERE id = \$2`).
		WithArgs(name, "loc-1").
		WillReturnRows(locationRows("loc-1", name, now))

	loc, err := repo.Update(context.Background(), "loc-1", UpdateLocationRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, name, loc.Name)
}

func TestRepository_Update_NoMatch(t *testing.T) {
	repo, mock, close := setupLocationMock(t)
	defer close()

	name := "Renamed Club"

	mock.ExpectQuery("UPDATE locations").
		WillReturnError(sql.ErrNoRows)

	loc, err := repo.Update(context.Background(), "missing", UpdateLocationRequest{Name: &name})
	require.Nil(t, loc)
	require.True(t, errors.Is(err, sql.ErrNoRows))
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, close := setupLocationMock(t)
	defer close()

	mock.ExpectExec("DELETE FROM locations WHERE id").
		WithArgs("loc-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "loc-1")
	require.NoError(t, err)
}
