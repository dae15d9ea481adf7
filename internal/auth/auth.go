package auth

import (
	"context"
	"errors"

	"alumni/internal/entity"
)

var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// CredentialVerifier is the identity provider behind the session store.
// The demo directory is the only implementation; a remote one can take its
// place without touching the store or the handlers.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (entity.User, error)
	Register(ctx context.Context, profile entity.Profile) (entity.User, error)
}

// Message turns an error from a verifier into the text shown on the form.
func Message(err error, fallback string) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, ErrEmailAlreadyRegistered):
		return "Email already registered. Please use a different email."
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return "The request took too long. Please try again."
	default:
		return fallback
	}
}
