package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"corecodecamp/internal/domain"
)

// Postgres error codes mapped to domain errors.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

const campColumns = `id, moniker, name, description, start_date, end_date,
		location_venue_name, location_address1, location_address2, location_address3,
		location_city_town, location_state_province, location_postal_code, location_country`

type campRepository struct {
	DB *sql.DB
}

func NewCampRepository(db *sql.DB) domain.CampRepository {
	return &campRepository{
		DB: db,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCamp(row rowScanner) (*domain.Camp, error) {
	c := &domain.Camp{}
	err := row.Scan(
		&c.ID, &c.Moniker, &c.Name, &c.Description, &c.StartDate, &c.EndDate,
		&c.Location.VenueName, &c.Location.Address1, &c.Location.Address2, &c.Location.Address3,
		&c.Location.CityTown, &c.Location.StateProvince, &c.Location.PostalCode, &c.Location.Country,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *campRepository) queryCamps(ctx context.Context, query string, args ...any) ([]*domain.Camp, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	camps := make([]*domain.Camp, 0)
	for rows.Next() {
		c, err := scanCamp(rows)
		if err != nil {
			return nil, err
		}
		camps = append(camps, c)
	}
	return camps, rows.Err()
}

func (r *campRepository) List(ctx context.Context) ([]*domain.Camp, error) {
	query := `
		SELECT ` + campColumns + `
		FROM camps
		ORDER BY start_date, moniker
	`
	return r.queryCamps(ctx, query)
}

func (r *campRepository) ListByEventDate(ctx context.Context, date time.Time) ([]*domain.Camp, error) {
	query := `
		SELECT ` + campColumns + `
		FROM camps
		WHERE start_date <= $1::date AND end_date >= $1::date
		ORDER BY start_date, moniker
	`
	return r.queryCamps(ctx, query, date.Format(time.DateOnly))
}

func (r *campRepository) GetByMoniker(ctx context.Context, moniker string) (*domain.Camp, error) {
	query := `
		SELECT ` + campColumns + `
		FROM camps
		WHERE moniker = $1
	`
	c, err := scanCamp(r.DB.QueryRowContext(ctx, query, moniker))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *campRepository) Create(ctx context.Context, c *domain.Camp) error {
	query := `
		INSERT INTO camps (moniker, name, description, start_date, end_date,
			location_venue_name, location_address1, location_address2, location_address3,
			location_city_town, location_state_province, location_postal_code, location_country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		c.Moniker, c.Name, c.Description, c.StartDate.Format(time.DateOnly), c.EndDate.Format(time.DateOnly),
		c.Location.VenueName, c.Location.Address1, c.Location.Address2, c.Location.Address3,
		c.Location.CityTown, c.Location.StateProvince, c.Location.PostalCode, c.Location.Country,
	).Scan(&c.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return domain.ErrMonikerTaken
		}
		return err
	}
	return nil
}

func (r *campRepository) Update(ctx context.Context, c *domain.Camp) error {
	query := `
		UPDATE camps SET
			name = $1, description = $2, start_date = $3, end_date = $4,
			location_venue_name = $5, location_address1 = $6, location_address2 = $7, location_address3 = $8,
			location_city_town = $9, location_state_province = $10, location_postal_code = $11, location_country = $12
		WHERE id = $13
	`
	result, err := r.DB.ExecContext(ctx, query,
		c.Name, c.Description, c.StartDate.Format(time.DateOnly), c.EndDate.Format(time.DateOnly),
		c.Location.VenueName, c.Location.Address1, c.Location.Address2, c.Location.Address3,
		c.Location.CityTown, c.Location.StateProvince, c.Location.PostalCode, c.Location.Country,
		c.ID,
	)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNoChanges
	}
	return nil
}

func (r *campRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM camps WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return domain.ErrCampHasTalks
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNoChanges
	}
	return nil
}
