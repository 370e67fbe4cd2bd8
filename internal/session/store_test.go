package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"lazapee/internal/api"
)

func TestSaveThenCurrentAndAuthenticated(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	if store.IsAuthenticated() {
		t.Fatal("expected fresh store to be unauthenticated")
	}

	err = store.Save(Session{Token: "t1", User: api.User{UserName: "a", Email: "a@b.com"}})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if !store.IsAuthenticated() {
		t.Fatal("expected authenticated after save")
	}
	if got := store.Token(); got != "t1" {
		t.Fatalf("expected token t1, got %q", got)
	}
	user := store.Current()
	if user == nil || user.UserName != "a" || user.Email != "a@b.com" {
		t.Fatalf("unexpected stored user: %+v", user)
	}
}

func TestClearRemovesBothKeys(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	if err := store.Save(Session{Token: "t1", User: api.User{UserName: "a", Email: "a@b.com"}}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear returned error: %v", err)
	}

	if store.IsAuthenticated() {
		t.Fatal("expected unauthenticated after clear")
	}
	if store.Current() != nil {
		t.Fatal("expected no user after clear")
	}
	for _, name := range []string{tokenFile, userFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Fatalf("expected %s to be removed", name)
		}
	}

	// Clearing an already-empty store is not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear returned error: %v", err)
	}
}

func TestSessionSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if err := store.Save(Session{Token: "t1", User: api.User{UserName: "a", Email: "a@b.com"}}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	reopened, err := Open(dir)
	if err != nil {
		t.Fatalf("reopen returned error: %v", err)
	}
	if reopened.Token() != "t1" {
		t.Fatalf("expected persisted token, got %q", reopened.Token())
	}
	user := reopened.Current()
	if user == nil || user.Email != "a@b.com" {
		t.Fatalf("expected persisted user, got %+v", user)
	}
}

func TestCorruptUserFileStillAuthenticated(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, tokenFile), []byte("t1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, userFile), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if !store.IsAuthenticated() {
		t.Fatal("token alone should count as authenticated")
	}
	if store.Current() != nil {
		t.Fatal("corrupt user file should map to no user")
	}
}

func TestIdentityFallsBackToTokenClaims(t *testing.T) {
	dir := t.TempDir()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email":    "a@b.com",
		"userName": "a",
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, tokenFile), []byte(token), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}

	identity := store.Identity()
	if identity == nil {
		t.Fatal("expected identity from token claims")
	}
	if identity.Email != "a@b.com" || identity.UserName != "a" {
		t.Fatalf("unexpected identity: %+v", identity)
	}
}

func TestIdentityNilForOpaqueToken(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, tokenFile), []byte("not-a-jwt"), 0o600); err != nil {
		t.Fatal(err)
	}

	store, err := Open(dir)
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	if store.Identity() != nil {
		t.Fatal("expected no identity for an opaque token")
	}
}
