package credential

import (
	"sync"

	"github.com/emkr-13/sim-admin/internal/models"
)

// Memory is an in-process credential store for tests and ephemeral runs.
type Memory struct {
	mu   sync.Mutex
	sess *models.Session
}

// Get returns a copy of the stored session, or nil when none is stored.
func (m *Memory) Get() (*models.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sess == nil || m.sess.AccessToken == "" {
		return nil, nil
	}
	cp := *m.sess
	return &cp, nil
}

// Set replaces the stored session.
func (m *Memory) Set(sess *models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *sess
	m.sess = &cp
	return nil
}

// Clear removes the stored session.
func (m *Memory) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sess = nil
	return nil
}
