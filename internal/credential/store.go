// Package credential persists the session credentials between runs. The
// access token stored here is the sole bearer credential; everything that
// talks to the backend reads it through the Store interface, so tests can
// swap in the in-memory implementation.
package credential

import "github.com/emkr-13/sim-admin/internal/models"

// Store is the durable home of the current session. Writes are
// last-writer-wins; nothing coordinates across processes.
type Store interface {
	// Get returns the stored session, or nil when nothing is stored.
	Get() (*models.Session, error)
	Set(*models.Session) error
	Clear() error
}
