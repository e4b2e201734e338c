// Package session owns the auth lifecycle: startup hydration from the
// credential store, login, logout, and the guard every authenticated
// command runs first.
package session

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/emkr-13/sim-admin/internal/api"
	"github.com/emkr-13/sim-admin/internal/credential"
	"github.com/emkr-13/sim-admin/internal/models"
)

// State is the manager's position in the auth lifecycle.
type State int

const (
	// StateUnknown holds from construction until hydration settles.
	StateUnknown State = iota
	StateAuthenticated
	StateUnauthenticated
)

// ErrLoginRequired is returned by Require once hydration has settled and
// no user is authenticated.
var ErrLoginRequired = errors.New("login required")

// Manager is the process-wide session owner. It is constructed explicitly
// at startup and injected into whatever consumes it; all methods are safe
// for concurrent use.
type Manager struct {
	client *api.Client
	creds  credential.Store

	mu      sync.Mutex
	state   State
	user    *models.UserProfile
	loading bool
}

// New creates a Manager in the Unknown state with loading set.
func New(client *api.Client, creds credential.Store) *Manager {
	return &Manager{
		client:  client,
		creds:   creds,
		state:   StateUnknown,
		loading: true,
	}
}

// Hydrate restores the session at startup. No stored token means
// Unauthenticated; a stored token is verified with a profile fetch, and a
// backend rejection (non-2xx) clears the store. A transport failure leaves
// the token in place for the next run but still settles Unauthenticated.
// Hydration settles exactly once; later calls are no-ops.
func (m *Manager) Hydrate(ctx context.Context) {
	m.mu.Lock()
	if !m.loading {
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	state := StateUnauthenticated
	var user *models.UserProfile

	sess, err := m.creds.Get()
	switch {
	case err != nil:
		log.Printf("session: credential read failed: %v", err)
	case sess == nil:
		// nothing stored, nothing to verify
	default:
		profile, err := m.client.User().Profile(ctx)
		if err == nil {
			sess.User = profile
			if err := m.creds.Set(sess); err != nil {
				log.Printf("session: credential write failed: %v", err)
			}
			state, user = StateAuthenticated, profile
			break
		}
		var reqErr *api.RequestError
		if errors.As(err, &reqErr) {
			// token invalid or expired
			if err := m.creds.Clear(); err != nil {
				log.Printf("session: credential clear failed: %v", err)
			}
		} else {
			log.Printf("session: auth check failed: %v", err)
		}
	}

	m.mu.Lock()
	m.state, m.user, m.loading = state, user, false
	m.mu.Unlock()
}

// Login performs the credential exchange followed by a profile fetch and
// reports overall success. It never returns an error: every failure mode
// is logged and reported as false. A login whose profile fetch fails is
// rolled back so no half-authenticated session is left in the store.
func (m *Manager) Login(ctx context.Context, email, password string) bool {
	res, err := m.client.Auth().Login(ctx, email, password)
	if err != nil {
		log.Printf("session: login failed: %v", err)
		return false
	}

	sess := &models.Session{AccessToken: res.Token, RefreshToken: res.RefreshToken}
	if err := m.creds.Set(sess); err != nil {
		log.Printf("session: credential write failed: %v", err)
		return false
	}

	profile, err := m.client.User().Profile(ctx)
	if err != nil {
		log.Printf("session: profile fetch after login failed: %v", err)
		if err := m.creds.Clear(); err != nil {
			log.Printf("session: credential clear failed: %v", err)
		}
		m.setState(StateUnauthenticated, nil)
		return false
	}

	sess.User = profile
	if err := m.creds.Set(sess); err != nil {
		log.Printf("session: credential write failed: %v", err)
	}
	m.setState(StateAuthenticated, profile)
	return true
}

// Logout invalidates the server-side session on a best-effort basis, then
// unconditionally clears the stored credentials. Calling it when already
// logged out is safe.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.client.Auth().Logout(ctx); err != nil && !errors.Is(err, api.ErrNoAuthToken) {
		log.Printf("session: server logout failed: %v", err)
	}
	if err := m.creds.Clear(); err != nil {
		log.Printf("session: credential clear failed: %v", err)
	}
	m.setState(StateUnauthenticated, nil)
}

// Require is the auth guard. It waits for hydration to settle before
// judging the session, then returns ErrLoginRequired when nobody is
// logged in.
func (m *Manager) Require(ctx context.Context) error {
	m.Hydrate(ctx)
	if !m.IsAuthenticated() {
		return ErrLoginRequired
	}
	return nil
}

// UpdateProfile edits the fullname, re-fetches the profile and refreshes
// the cached copy in the credential store.
func (m *Manager) UpdateProfile(ctx context.Context, fullname string) (*models.UserProfile, error) {
	if _, err := m.client.User().UpdateProfile(ctx, fullname); err != nil {
		return nil, err
	}
	profile, err := m.client.User().Profile(ctx)
	if err != nil {
		return nil, err
	}

	if sess, err := m.creds.Get(); err == nil && sess != nil {
		sess.User = profile
		if err := m.creds.Set(sess); err != nil {
			log.Printf("session: credential write failed: %v", err)
		}
	}

	m.mu.Lock()
	m.user = profile
	m.mu.Unlock()
	return profile, nil
}

func (m *Manager) setState(state State, user *models.UserProfile) {
	m.mu.Lock()
	m.state, m.user, m.loading = state, user, false
	m.mu.Unlock()
}

// State returns the current lifecycle state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// IsAuthenticated reports whether a user is logged in.
func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

// IsLoading reports whether hydration has not settled yet.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// User returns the cached profile, nil when not authenticated.
func (m *Manager) User() *models.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}
