package adminauth

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords so
// login failures do not reveal which half was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Account is one dashboard operator.
type Account struct {
	Username     string
	PasswordHash string
	Role         string
}

// Accounts is the fixed set of operators loaded at startup.
type Accounts struct {
	byUsername map[string]Account
}

type accountsFile struct {
	Admins []struct {
		Username     string `yaml:"username"`
		Password     string `yaml:"password"`
		PasswordHash string `yaml:"password_hash"`
		Role         string `yaml:"role"`
	} `yaml:"admins"`
}

// LoadAccounts reads operator accounts from a YAML file. Entries may carry a
// precomputed `password_hash`, or a `password` which is hashed at load time
// and never kept in memory.
func LoadAccounts(path string) (*Accounts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read admins file: %w", err)
	}
	var af accountsFile
	if err := yaml.Unmarshal(data, &af); err != nil {
		return nil, fmt.Errorf("parse admins file: %w", err)
	}

	accounts := &Accounts{byUsername: make(map[string]Account, len(af.Admins))}
	for _, a := range af.Admins {
		username := strings.TrimSpace(a.Username)
		if username == "" {
			continue
		}
		hash := strings.TrimSpace(a.PasswordHash)
		if hash == "" {
			if a.Password == "" {
				return nil, fmt.Errorf("admin %q has no password or password_hash", username)
			}
			generated, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, fmt.Errorf("hash password for %q: %w", username, err)
			}
			hash = string(generated)
		}
		role := strings.TrimSpace(a.Role)
		if role == "" {
			role = "admin"
		}
		if _, dup := accounts.byUsername[username]; dup {
			return nil, fmt.Errorf("duplicate admin username %q", username)
		}
		accounts.byUsername[username] = Account{Username: username, PasswordHash: hash, Role: role}
	}
	if len(accounts.byUsername) == 0 {
		return nil, errors.New("admins file defines no accounts")
	}
	return accounts, nil
}

// Authenticate checks a username/password pair against the loaded accounts.
func (a *Accounts) Authenticate(username, password string) (Account, error) {
	account, ok := a.byUsername[strings.TrimSpace(username)]
	if !ok {
		return Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}
	return account, nil
}

// Len reports how many accounts were loaded.
func (a *Accounts) Len() int {
	return len(a.byUsername)
}
