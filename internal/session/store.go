package session

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"lazapee/internal/api"
)

const (
	tokenFile = "auth_token"
	userFile  = "user.json"
)

// Session is the persisted login state: an opaque bearer token plus the
// user it was issued to.
type Session struct {
	Token string
	User  api.User
}

// Store persists the session under two independent keys on disk, mirroring
// the token/user split of the original client. There is no expiry tracking;
// a stale token surfaces as a failed authenticated request somewhere else.
type Store struct {
	mu  sync.Mutex
	dir string

	token string
	user  *api.User
}

// Open loads any previously persisted session from dir, creating dir if
// needed. A corrupt user file is tolerated: the token alone still counts as
// an authenticated session.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}

	store := &Store{dir: dir}

	raw, err := os.ReadFile(filepath.Join(dir, tokenFile))
	switch {
	case err == nil:
		store.token = strings.TrimSpace(string(raw))
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	raw, err = os.ReadFile(filepath.Join(dir, userFile))
	switch {
	case err == nil:
		var user api.User
		if err := json.Unmarshal(raw, &user); err != nil {
			log.Println("[SESSION] [ERROR] stored user unreadable:", err)
		} else {
			store.user = &user
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, err
	}

	return store, nil
}

// Save persists the session, overwriting any prior one.
func (s *Store) Save(session Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(session.Token), 0o600); err != nil {
		return err
	}
	encoded, err := json.Marshal(session.User)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.dir, userFile), encoded, 0o600); err != nil {
		return err
	}

	s.token = session.Token
	user := session.User
	s.user = &user
	return nil
}

// Clear removes both the token and the user. Missing files are fine.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	s.token = ""
	s.user = nil
	return nil
}

// Current returns the stored user, or nil when none is persisted.
func (s *Store) Current() *api.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Token returns the stored bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated is true iff a token is present. Token validity is not
// checked here.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Identity returns the user to display. When the user record is missing but
// a token exists, it falls back to the token's unverified claims so the UI
// still has a name to show.
func (s *Store) Identity() *api.User {
	if user := s.Current(); user != nil {
		return user
	}

	token := s.Token()
	if token == "" {
		return nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return nil
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	user := api.User{}
	if email, ok := claims["email"].(string); ok {
		user.Email = email
	}
	if name, ok := claims["userName"].(string); ok {
		user.UserName = name
	}
	if user.Email == "" && user.UserName == "" {
		return nil
	}
	return &user
}
