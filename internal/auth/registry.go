package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/projectpulse/project-pulse-backend/internal/auth/domain"
)

// Account is one seed entry for the identity registry.
type Account struct {
	Username string
	Password string
	Name     string
}

// ParseAccounts parses the "username:password:DisplayName" comma-separated
// seed format used by the ACCOUNTS config variable.
func ParseAccounts(raw string) ([]Account, error) {
	var out []Account
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("malformed account entry %q", entry)
		}
		out = append(out, Account{
			Username: parts[0],
			Password: parts[1],
			Name:     parts[2],
		})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no accounts configured")
	}
	return out, nil
}

type registryEntry struct {
	hash []byte
	name string
}

// dummyHash is compared against when the username is unknown, so that path
// costs a real bcrypt comparison too.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder"), bcrypt.DefaultCost)

// Registry is the fixed identity store. Accounts are defined at startup and
// are not mutable at runtime. Passwords are kept only as bcrypt hashes.
type Registry struct {
	entries map[string]registryEntry
}

// NewRegistry hashes each seed password and builds the registry.
func NewRegistry(accounts []Account) (*Registry, error) {
	entries := make(map[string]registryEntry, len(accounts))
	for _, a := range accounts {
		if _, dup := entries[a.Username]; dup {
			return nil, fmt.Errorf("duplicate account %q", a.Username)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %q: %w", a.Username, err)
		}
		entries[a.Username] = registryEntry{hash: hash, name: a.Name}
	}
	return &Registry{entries: entries}, nil
}

// Authenticate checks the credentials against the registry. Unknown users
// and wrong passwords both return ErrInvalidCredentials.
func (r *Registry) Authenticate(username, password string) (*domain.Identity, error) {
	entry, ok := r.entries[username]
	if !ok {
		bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(entry.hash, []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return &domain.Identity{Username: username, Name: entry.name}, nil
}

// Count returns the number of registered accounts.
func (r *Registry) Count() int {
	return len(r.entries)
}
