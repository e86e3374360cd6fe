package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/avelezt/lanes/internal/models"
)

func tempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadEmptyStore(t *testing.T) {
	tempHome(t)

	store, err := Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if store.LoggedIn() {
		t.Error("fresh store reports logged in")
	}
	if store.Token() != "" {
		t.Errorf("fresh store token = %q", store.Token())
	}
	if store.User() != nil {
		t.Errorf("fresh store user = %v", store.User())
	}
}

func TestSetCredentialsRoundTrip(t *testing.T) {
	home := tempHome(t)

	store, err := Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	user := models.User{ID: "u1", Email: "a@x.com", FullName: "Ada"}
	if err := store.SetCredentials("tok-1", user); err != nil {
		t.Fatalf("SetCredentials error = %v", err)
	}
	if !store.LoggedIn() {
		t.Error("store not logged in after SetCredentials")
	}

	// A second Load sees the persisted session.
	reloaded, err := Load()
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.Token() != "tok-1" {
		t.Errorf("reloaded token = %q", reloaded.Token())
	}
	if u := reloaded.User(); u == nil || u.ID != "u1" {
		t.Errorf("reloaded user = %v", u)
	}

	// The token must not be group or world readable.
	info, err := os.Stat(filepath.Join(home, ".lanes", "session.yaml"))
	if err != nil {
		t.Fatalf("stat session file: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("session file mode = %o, want 600", perm)
	}
}

func TestSetUserRequiresLogin(t *testing.T) {
	tempHome(t)

	store, err := Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	err = store.SetUser(models.User{ID: "u1"})
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("SetUser error = %v, want ErrNotLoggedIn", err)
	}
}

func TestClearRemovesSession(t *testing.T) {
	home := tempHome(t)

	store, err := Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if err := store.SetCredentials("tok", models.User{ID: "u1"}); err != nil {
		t.Fatalf("SetCredentials error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear error = %v", err)
	}
	if store.LoggedIn() {
		t.Error("store still logged in after Clear")
	}
	if _, err := os.Stat(filepath.Join(home, ".lanes", "session.yaml")); !os.IsNotExist(err) {
		t.Error("session file survived Clear")
	}

	// Clearing twice is fine.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear error = %v", err)
	}
}

func TestLoadToleratesCorruptFile(t *testing.T) {
	home := tempHome(t)
	dir := filepath.Join(home, ".lanes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "session.yaml"), []byte("{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := Load()
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if store.LoggedIn() {
		t.Error("corrupt session produced a logged-in store")
	}
}
