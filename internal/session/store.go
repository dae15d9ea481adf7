package session

import (
	"context"
	"encoding/json"
	"fmt"

	"alumni/internal/auth"
	"alumni/internal/entity"
	"alumni/internal/generator"
)

// Keys of the two persisted entries.
const (
	TokenKey = "token"
	UserKey  = "user"
)

type Option func(*Store)

func WithGenerator(g *generator.Generator) Option {
	return func(s *Store) { s.gen = g }
}

// Store owns the visitor's authentication state. It has two states,
// anonymous and authenticated, and changes only through SignIn, SignUp
// and SignOut.
type Store struct {
	storage  Storage
	verifier auth.CredentialVerifier
	gen      *generator.Generator

	token   string
	user    *entity.User
	err     string
	loading bool
}

// New rehydrates from storage before returning.
func New(storage Storage, verifier auth.CredentialVerifier, opts ...Option) *Store {
	s := &Store{storage: storage, verifier: verifier, gen: generator.NewGenerator()}
	for _, opt := range opts {
		opt(s)
	}
	s.rehydrate()
	return s
}

func (s *Store) rehydrate() {
	token, hasToken := s.storage.Get(TokenKey)
	raw, hasUser := s.storage.Get(UserKey)
	if !hasToken && !hasUser {
		return
	}

	var u entity.User
	if token == "" || raw == "" || json.Unmarshal([]byte(raw), &u) != nil || u.ID == "" {
		// half written or tampered: forget it and stay anonymous
		_ = s.storage.Clear(TokenKey, UserKey)
		return
	}
	s.token = token
	s.user = &u
}

func (s *Store) IsAuthenticated() bool {
	return s.token != "" && s.user != nil
}

// User returns a copy of the signed-in user.
func (s *Store) User() (entity.User, bool) {
	if !s.IsAuthenticated() {
		return entity.User{}, false
	}
	return *s.user, true
}

func (s *Store) Token() string { return s.token }

// Err is the message of the last failed sign-in or sign-up.
func (s *Store) Err() string { return s.err }

func (s *Store) Loading() bool { return s.loading }

func (s *Store) SignIn(ctx context.Context, email, password string) error {
	s.loading = true
	defer func() { s.loading = false }()
	s.err = ""

	if s.verifier == nil {
		s.err = "Login failed"
		return fmt.Errorf("sign in: no credential verifier")
	}
	u, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		s.err = auth.Message(err, "Login failed")
		return err
	}
	return s.establish(u)
}

func (s *Store) SignUp(ctx context.Context, profile entity.Profile) error {
	s.loading = true
	defer func() { s.loading = false }()
	s.err = ""

	if s.verifier == nil {
		s.err = "Registration failed"
		return fmt.Errorf("sign up: no credential verifier")
	}
	u, err := s.verifier.Register(ctx, profile)
	if err != nil {
		s.err = auth.Message(err, "Registration failed")
		return err
	}
	return s.establish(u)
}

// SignOut always succeeds, even when storage cannot be written.
func (s *Store) SignOut() {
	_ = s.storage.Clear(TokenKey, UserKey)
	s.token = ""
	s.user = nil
	s.err = ""
}

func (s *Store) establish(u entity.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		s.err = "Login failed"
		return fmt.Errorf("encode user: %w", err)
	}
	token := s.gen.SessionToken()
	if err := s.storage.Put(map[string]string{TokenKey: token, UserKey: string(raw)}); err != nil {
		s.err = "Could not save your session. Please try again."
		return fmt.Errorf("persist session: %w", err)
	}
	s.token = token
	s.user = &u
	return nil
}
