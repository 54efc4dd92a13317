package memory

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/platedash/admin-api/internal/models"
	"github.com/platedash/admin-api/internal/storage"
)

// Ensure Store satisfies the storage.CustomerStore interface at compile time.
var _ storage.CustomerStore = (*Store)(nil)

// Store keeps the customer directory in process memory. It is the default
// backend: the directory lives only for the lifetime of the server, and ids
// are assigned from a monotonic counter so they stay unique.
type Store struct {
	mu        sync.Mutex
	nextID    int64
	customers []models.Customer
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{nextID: 1}
}

// List returns a copy of the directory in insertion order.
func (s *Store) List(ctx context.Context) ([]models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Customer, len(s.customers))
	copy(out, s.customers)
	return out, nil
}

// Get fetches a single customer by id.
func (s *Store) Get(ctx context.Context, id int64) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Customer{}, storage.ErrNotFound
}

// Create appends a customer, assigning the next id and creation time.
func (s *Store) Create(ctx context.Context, customer models.Customer) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer.ID = s.nextID
	s.nextID++
	if customer.CreatedAt.IsZero() {
		customer.CreatedAt = time.Now().UTC()
	}
	if customer.Role == "" {
		customer.Role = models.DefaultRole
	}
	s.customers = append(s.customers, customer)
	return customer, nil
}

// Rename replaces the display name of exactly the record carrying id.
func (s *Store) Rename(ctx context.Context, id int64, name string) (models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers[i].Name = name
			return s.customers[i], nil
		}
	}
	return models.Customer{}, storage.ErrNotFound
}

// Delete removes exactly the record carrying id, leaving all others intact.
func (s *Store) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.customers {
		if s.customers[i].ID == id {
			s.customers = append(s.customers[:i], s.customers[i+1:]...)
			return nil
		}
	}
	return storage.ErrNotFound
}

type seedFile struct {
	Customers []struct {
		Name     string `yaml:"name"`
		DOB      string `yaml:"dob"`
		Phone    string `yaml:"phone"`
		Role     string `yaml:"role"`
		Password string `yaml:"password"`
	} `yaml:"customers"`
}

// SeedFromFile loads sample customers from a YAML fixture. Entries without a
// name or phone are skipped; plaintext fixture passwords are hashed before
// they reach the store.
func (s *Store) SeedFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parse seed file: %w", err)
	}
	for _, c := range sf.Customers {
		name := strings.TrimSpace(c.Name)
		phone := strings.TrimSpace(c.Phone)
		if name == "" || phone == "" {
			continue
		}
		customer := models.Customer{
			Name:  name,
			DOB:   strings.TrimSpace(c.DOB),
			Phone: phone,
			Role:  strings.TrimSpace(c.Role),
		}
		if c.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash seed password: %w", err)
			}
			customer.PasswordHash = string(hash)
		}
		if _, err := s.Create(ctx, customer); err != nil {
			return err
		}
	}
	return nil
}
