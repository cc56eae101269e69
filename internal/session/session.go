// Package session owns the current user's identity.
//
// A Manager is the single source of truth for "who is logged in" and
// "are they an admin". It is constructed explicitly with its token store
// and identity client rather than living as a package singleton, so
// tests and the two frontends (CLI, site server) build isolated
// instances with their own lifecycles.
package session

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/biogleam/biogleam/internal/auth"
	"github.com/biogleam/biogleam/internal/models"
)

// IdentityClient is the slice of the API client the session layer needs.
type IdentityClient interface {
	CurrentUser(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context)
}

// Manager holds at most one resident session, kept consistent with the
// stored token: token absent means no session, token present but
// undecodable means the session is cleared and the token discarded.
type Manager struct {
	mu      sync.RWMutex
	current *models.Session
	ready   bool

	tokens   auth.TokenStore
	identity IdentityClient
	decoder  TokenDecoder
	log      zerolog.Logger
}

// Option customizes a Manager.
type Option func(*Manager)

// WithDecoder swaps the token decoder.
func WithDecoder(d TokenDecoder) Option {
	return func(m *Manager) { m.decoder = d }
}

// WithLogger enables session lifecycle logging.
func WithLogger(log zerolog.Logger) Option {
	return func(m *Manager) { m.log = log }
}

// NewManager creates a session manager over the given token store and
// identity client.
func NewManager(tokens auth.TokenStore, identity IdentityClient, opts ...Option) *Manager {
	m := &Manager{
		tokens:   tokens,
		identity: identity,
		decoder:  UnverifiedDecoder{},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Initialize settles the session from the persisted token.
//
// No token: settle logged-out immediately, without any network call.
// Token present: decode locally first (cheap); on decode failure fall
// back to the backend's identity endpoint; if that also fails, discard
// the token and settle logged-out. Always terminates in the ready state
// exactly once.
func (m *Manager) Initialize(ctx context.Context) {
	defer m.settle()

	token, err := m.tokens.Load()
	if err != nil || token == "" {
		return
	}

	sess, err := m.decoder.Decode(token)
	if err == nil {
		m.set(sess)
		return
	}
	m.log.Debug().Err(err).Msg("Token decode failed, falling back to identity endpoint")

	user, err := m.identity.CurrentUser(ctx)
	if err != nil {
		m.log.Debug().Err(err).Msg("Identity check failed, discarding token")
		if err := m.tokens.Delete(); err != nil {
			m.log.Warn().Err(err).Msg("Failed to discard token")
		}
		return
	}
	m.set(user.Session())
}

// Login installs an identity obtained from a successful login call that
// has already persisted a fresh token.
func (m *Manager) Login(sess *models.Session) {
	m.set(sess)
}

// Logout ends the session. The server-side call is best-effort; local
// state always clears. Logout never fails.
func (m *Manager) Logout(ctx context.Context) {
	m.identity.Logout(ctx)
	if err := m.tokens.Delete(); err != nil {
		m.log.Warn().Err(err).Msg("Failed to discard token on logout")
	}
	m.set(nil)
}

// Refresh re-fetches the identity from the backend. A failure means the
// session is no longer valid and triggers the full logout sequence.
func (m *Manager) Refresh(ctx context.Context) {
	user, err := m.identity.CurrentUser(ctx)
	if err != nil {
		m.log.Debug().Err(err).Msg("Session refresh failed, logging out")
		m.Logout(ctx)
		return
	}
	m.set(user.Session())
}

// Current returns the resident session, or nil when logged out.
func (m *Manager) Current() *models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// IsAuthenticated reports whether a session is resident.
func (m *Manager) IsAuthenticated() bool {
	return m.Current() != nil
}

// IsAdmin reports whether the resident session holds the admin role.
func (m *Manager) IsAdmin() bool {
	sess := m.Current()
	return sess != nil && sess.Role == models.RoleAdmin
}

// Ready reports whether Initialize has settled.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

func (m *Manager) set(sess *models.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = sess
}

func (m *Manager) settle() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ready = true
}
