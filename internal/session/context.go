package session

import "context"

type ctxKeyStore struct{}

func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, ctxKeyStore{}, s)
}

// FromContext returns the request's store. Requests that did not pass the
// session middleware get an anonymous store over throwaway memory.
func FromContext(ctx context.Context) *Store {
	if s, ok := ctx.Value(ctxKeyStore{}).(*Store); ok && s != nil {
		return s
	}
	return &Store{storage: NewMemoryStorage()}
}
