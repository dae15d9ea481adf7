package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/hlog"

	"alumni/internal/auth"
	"alumni/internal/session"
)

// Sessions rebuilds the visitor's session store from the request cookie and
// hands it down through the request context.
func Sessions(cookies sessions.Store, verifier auth.CredentialVerifier, opts ...session.Option) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			storage, err := session.NewCookieStorage(cookies, w, r)
			if err != nil {
				hlog.FromRequest(r).Debug().Err(err).Msg("unreadable session cookie, continuing anonymous")
			}
			st := session.New(storage, verifier, opts...)
			next.ServeHTTP(w, r.WithContext(session.WithStore(r.Context(), st)))
		})
	}
}
