package credential

import (
	"path/filepath"
	"testing"

	"github.com/emkr-13/sim-admin/internal/models"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "creds", "credentials.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteEmptyGet(t *testing.T) {
	store := openTestStore(t)

	sess, err := store.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil session from empty store, got %+v", sess)
	}
}

func TestSQLiteRoundtrip(t *testing.T) {
	store := openTestStore(t)

	in := &models.Session{
		AccessToken:  "access-1",
		RefreshToken: "refresh-1",
		User: &models.UserProfile{
			Email:       "admin@mail.com",
			Fullname:    "Admin",
			UserCreated: "2025-01-01T00:00:00Z",
		},
	}
	if err := store.Set(in); err != nil {
		t.Fatalf("Set: %v", err)
	}

	out, err := store.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out == nil {
		t.Fatal("expected stored session, got nil")
	}
	if out.AccessToken != "access-1" || out.RefreshToken != "refresh-1" {
		t.Errorf("tokens = %q/%q, want access-1/refresh-1", out.AccessToken, out.RefreshToken)
	}
	if out.User == nil || out.User.Email != "admin@mail.com" {
		t.Errorf("user not restored: %+v", out.User)
	}
}

func TestSQLiteOverwrite(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(&models.Session{AccessToken: "old"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Set(&models.Session{AccessToken: "new", RefreshToken: "r2"}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	out, err := store.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if out.AccessToken != "new" || out.RefreshToken != "r2" {
		t.Errorf("got %q/%q, want new/r2", out.AccessToken, out.RefreshToken)
	}
}

func TestSQLiteClear(t *testing.T) {
	store := openTestStore(t)

	if err := store.Set(&models.Session{AccessToken: "tok"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	sess, err := store.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess != nil {
		t.Fatalf("expected nil after clear, got %+v", sess)
	}

	// clearing again must stay a no-op
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestSQLitePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.db")

	first, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	if err := first.Set(&models.Session{AccessToken: "persisted"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	first.Close()

	second, err := OpenSQLite(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	sess, err := second.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if sess == nil || sess.AccessToken != "persisted" {
		t.Fatalf("session did not survive reopen: %+v", sess)
	}
}

func TestMemoryStore(t *testing.T) {
	var store Memory

	sess, err := store.Get()
	if err != nil || sess != nil {
		t.Fatalf("empty Get = %+v, %v", sess, err)
	}

	if err := store.Set(&models.Session{AccessToken: "tok"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := store.Get()
	if err != nil || got == nil || got.AccessToken != "tok" {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	// the returned copy must not alias the stored session
	got.AccessToken = "mutated"
	again, _ := store.Get()
	if again.AccessToken != "tok" {
		t.Errorf("stored session mutated through returned copy")
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if sess, _ := store.Get(); sess != nil {
		t.Fatalf("expected nil after clear, got %+v", sess)
	}
}
