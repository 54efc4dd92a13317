package storage

import (
	"context"
	"errors"

	"github.com/platedash/admin-api/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict.
var ErrAlreadyExists = errors.New("record already exists")

// CustomerStore captures the directory operations needed by handlers.
// Rename and Delete target exactly one record by id; both return ErrNotFound
// when no record carries that id.
type CustomerStore interface {
	List(ctx context.Context) ([]models.Customer, error)
	Get(ctx context.Context, id int64) (models.Customer, error)
	Create(ctx context.Context, customer models.Customer) (models.Customer, error)
	Rename(ctx context.Context, id int64, name string) (models.Customer, error)
	Delete(ctx context.Context, id int64) error
}
