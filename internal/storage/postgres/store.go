package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/platedash/admin-api/internal/models"
	"github.com/platedash/admin-api/internal/storage"
)

// Ensure Store satisfies the storage.CustomerStore interface at compile time.
var _ storage.CustomerStore = (*Store)(nil)

// Store provides Postgres-backed persistence for the customer directory.
type Store struct {
	pool *pgxpool.Pool
}

// NewCustomerStore connects to Postgres and runs migrations.
func NewCustomerStore(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	s := &Store{pool: pool}
	if err := s.migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return s, nil
}

// Close releases database resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

func (s *Store) migrate(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS customers (
			id BIGSERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			dob TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'customer',
			password_hash TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS customers_phone_unique_idx ON customers (phone);`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}

// List returns the directory ordered by id.
func (s *Store) List(ctx context.Context) ([]models.Customer, error) {
	const query = `
	SELECT id, name, dob, phone, role, password_hash, created_at
	FROM customers
	ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Get fetches a single customer by id.
func (s *Store) Get(ctx context.Context, id int64) (models.Customer, error) {
	const query = `
	SELECT id, name, dob, phone, role, password_hash, created_at
	FROM customers
	WHERE id = $1;
	`
	return scanCustomer(s.pool.QueryRow(ctx, query, id))
}

// Create inserts a new customer row.
func (s *Store) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	if customer.Role == "" {
		customer.Role = models.DefaultRole
	}
	const query = `
	INSERT INTO customers (name, dob, phone, role, password_hash)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, name, dob, phone, role, password_hash, created_at;
	`
	row := s.pool.QueryRow(ctx, query,
		customer.Name, customer.DOB, customer.Phone, customer.Role, customer.PasswordHash)
	created, err := scanCustomer(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.Customer{}, storage.ErrAlreadyExists
		}
		return models.Customer{}, err
	}
	return created, nil
}

// Rename updates the display name of exactly one customer.
func (s *Store) Rename(ctx context.Context, id int64, name string) (models.Customer, error) {
	const query = `
	UPDATE customers SET name = $1
	WHERE id = $2
	RETURNING id, name, dob, phone, role, password_hash, created_at;
	`
	return scanCustomer(s.pool.QueryRow(ctx, query, name, id))
}

// Delete removes exactly one customer.
func (s *Store) Delete(ctx context.Context, id int64) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanCustomer(row pgx.Row) (models.Customer, error) {
	var c models.Customer
	if err := row.Scan(&c.ID, &c.Name, &c.DOB, &c.Phone, &c.Role, &c.PasswordHash, &c.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Customer{}, storage.ErrNotFound
		}
		return models.Customer{}, err
	}
	return c, nil
}
