package middleware

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/hlog"

	"alumni/internal/session"
)

// SessionState is the part of the session store the guard looks at.
type SessionState interface {
	Loading() bool
	IsAuthenticated() bool
}

// RequireAuth lets authenticated visitors through, remembers where anonymous
// visitors were heading and sends them to /login, and renders nothing while
// the session is still being settled.
func RequireAuth(flashStore sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			guardWith(session.FromContext(r.Context()), flashStore, next, w, r)
		})
	}
}

func guardWith(st SessionState, flashStore sessions.Store, next http.Handler, w http.ResponseWriter, r *http.Request) {
	if st.Loading() {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if !st.IsAuthenticated() {
		if r.Method == http.MethodGet {
			path := r.URL.Path
			if r.URL.RawQuery != "" {
				path += "?" + r.URL.RawQuery
			}
			if err := session.NewFlashes(flashStore, w, r).SetReturnTo(path); err != nil {
				hlog.FromRequest(r).Warn().Err(err).Msg("remember return path")
			}
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	next.ServeHTTP(w, r)
}
