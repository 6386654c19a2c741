package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"addressbook-api/internal/geo"
	"addressbook-api/internal/models"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectPersons = `
	SELECT
		p.id,
		p.name,
		p.email,
		p.phone,
		p.created_at,
		p.updated_at,
		a.id,
		a.person_id,
		a.city,
		a.country,
		a.street,
		a.postal,
		a.latitude,
		a.longitude,
		a.created_at,
		a.updated_at
	FROM person p
	JOIN address_book a ON a.person_id = p.id
`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository stores persons and their addresses in PostgreSQL.
type Repository struct {
	db  *pgxpool.Pool
	loc *time.Location
	now func() time.Time
}

// NewRepository creates a new PostgreSQL repository. Timestamps are written
// and returned in loc; nil means UTC.
func NewRepository(db *pgxpool.Pool, loc *time.Location) *Repository {
	if loc == nil {
		loc = time.UTC
	}
	return &Repository{db: db, loc: loc, now: time.Now}
}

// Migrate applies Schema.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("repository: failed to apply schema: %w", err)
	}
	return nil
}

// ListPersons returns one page of persons in insertion order.
func (r *Repository) ListPersons(ctx context.Context, skip, limit int) ([]models.Person, error) {
	sql := selectPersons + `
		ORDER BY p.id
		OFFSET $1
		LIMIT $2
	`
	return r.queryPersons(ctx, r.db, sql, skip, limit)
}

// GetPerson returns the person with the given id or ErrNotFound.
func (r *Repository) GetPerson(ctx context.Context, id int64) (*models.Person, error) {
	return r.getPerson(ctx, r.db, id, false)
}

// FindNearby returns every person whose address lies within radiusKm of the
// given point, boundary included. The distance is evaluated by PostgreSQL.
func (r *Repository) FindNearby(ctx context.Context, lat, lon, radiusKm float64) ([]models.Person, error) {
	sql := selectPersons + `
		WHERE ` + geo.DistanceSQL("a.latitude", "a.longitude", "$1", "$2") + ` <= $3
		ORDER BY p.id
	`
	return r.queryPersons(ctx, r.db, sql, lat, lon, radiusKm)
}

// CreatePerson inserts p and its address in one transaction.
func (r *Repository) CreatePerson(ctx context.Context, p models.Person) (*models.Person, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	now := r.now().In(r.loc)
	p.CreatedAt, p.UpdatedAt = now, now
	p.Address.CreatedAt, p.Address.UpdatedAt = now, now

	err = tx.QueryRow(ctx, `
		INSERT INTO person (name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, p.Name, p.Email, p.Phone, p.CreatedAt, p.UpdatedAt).Scan(&p.ID)
	if err != nil {
		return nil, wrapWriteError("failed to insert person", err)
	}

	p.Address.PersonID = p.ID
	a := &p.Address
	err = tx.QueryRow(ctx, `
		INSERT INTO address_book (person_id, city, country, street, postal, latitude, longitude, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`, a.PersonID, a.City, a.Country, a.Street, a.Postal, a.Latitude, a.Longitude, a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		return nil, wrapWriteError("failed to insert address", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapWriteError("failed to commit", err)
	}
	return &p, nil
}

// UpdatePerson locks the person row with SELECT ... FOR UPDATE, applies
// mutate to the loaded aggregate and writes both rows back before committing.
// Concurrent updates or deletes of the same id wait for the lock. An error
// from mutate rolls the transaction back and is returned unchanged.
func (r *Repository) UpdatePerson(ctx context.Context, id int64, mutate func(*models.Person) error) (*models.Person, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	p, err := r.getPerson(ctx, tx, id, true)
	if err != nil {
		return nil, err
	}

	if err := mutate(p); err != nil {
		return nil, err
	}

	now := r.now().In(r.loc)
	p.UpdatedAt = now
	p.Address.UpdatedAt = now

	_, err = tx.Exec(ctx, `
		UPDATE person
		SET name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1
	`, p.ID, p.Name, p.Email, p.Phone, p.UpdatedAt)
	if err != nil {
		return nil, wrapWriteError("failed to update person", err)
	}

	a := p.Address
	_, err = tx.Exec(ctx, `
		UPDATE address_book
		SET city = $2, country = $3, street = $4, postal = $5, latitude = $6, longitude = $7, updated_at = $8
		WHERE id = $1
	`, a.ID, a.City, a.Country, a.Street, a.Postal, a.Latitude, a.Longitude, a.UpdatedAt)
	if err != nil {
		return nil, wrapWriteError("failed to update address", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, wrapWriteError("failed to commit", err)
	}
	return p, nil
}

// DeletePerson locks and deletes the person; the address row cascades.
func (r *Repository) DeletePerson(ctx context.Context, id int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var lockedID int64
	err = tx.QueryRow(ctx, `SELECT id FROM person WHERE id = $1 FOR UPDATE`, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("repository: failed to lock person: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM person WHERE id = $1`, id); err != nil {
		return fmt.Errorf("repository: failed to delete person: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit: %w", err)
	}
	return nil
}

func (r *Repository) getPerson(ctx context.Context, q querier, id int64, forUpdate bool) (*models.Person, error) {
	sql := selectPersons + `WHERE p.id = $1`
	if forUpdate {
		sql += ` FOR UPDATE OF p`
	}

	p, err := r.scanPerson(q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repository: failed to get person: %w", err)
	}
	return p, nil
}

func (r *Repository) queryPersons(ctx context.Context, q querier, sql string, args ...any) ([]models.Person, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute query: %w", err)
	}
	defer rows.Close()

	persons := []models.Person{}
	for rows.Next() {
		p, err := r.scanPerson(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan person: %w", err)
		}
		persons = append(persons, *p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return persons, nil
}

func (r *Repository) scanPerson(row pgx.Row) (*models.Person, error) {
	var p models.Person
	a := &p.Address
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.CreatedAt,
		&p.UpdatedAt,
		&a.ID,
		&a.PersonID,
		&a.City,
		&a.Country,
		&a.Street,
		&a.Postal,
		&a.Latitude,
		&a.Longitude,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = p.CreatedAt.In(r.loc)
	p.UpdatedAt = p.UpdatedAt.In(r.loc)
	a.CreatedAt = a.CreatedAt.In(r.loc)
	a.UpdatedAt = a.UpdatedAt.In(r.loc)
	return &p, nil
}

func wrapWriteError(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
	}
	return fmt.Errorf("repository: %s: %w", msg, err)
}
