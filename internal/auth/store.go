// Package auth persists the bearer token issued by the Biogleam backend.
package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zalando/go-keyring"
)

const (
	service = "biogleam-cli"
	account = "api-token"
)

// ErrNotFound is returned when no token is stored. Absence means logged-out.
var ErrNotFound = errors.New("no stored token")

// TokenStore holds the bearer credential between requests. The token is
// treated as a capability: its presence gates every authenticated call.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Delete() error
}

// KeyringStore keeps the token in the OS keychain/credential manager.
type KeyringStore struct{}

// Save persists the token securely.
func (KeyringStore) Save(token string) error {
	if err := keyring.Set(service, account, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return nil
}

// Load retrieves the stored token.
func (KeyringStore) Load() (string, error) {
	token, err := keyring.Get(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to load token: %w", err)
	}
	return token, nil
}

// Delete removes the stored token. Deleting an absent token is not an error.
func (KeyringStore) Delete() error {
	if err := keyring.Delete(service, account); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// MemoryStore is an in-process token store for tests and for the site
// server, which never persists credentials to disk.
type MemoryStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

// Save stores the token in memory.
func (m *MemoryStore) Save(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

// Load returns the stored token, or ErrNotFound.
func (m *MemoryStore) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrNotFound
	}
	return m.token, nil
}

// Delete clears the stored token.
func (m *MemoryStore) Delete() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
