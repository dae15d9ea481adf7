package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/sessions"
	"github.com/rs/zerolog"

	"alumni/internal/auth"
	"alumni/internal/config"
	"alumni/internal/countdown"
	"alumni/internal/generator"
	"alumni/internal/modal"
	"alumni/internal/repository"
)

// Deps is everything the router wires into the page handlers.
type Deps struct {
	Config    config.Config
	Logger    zerolog.Logger
	Cookies   sessions.Store
	Verifier  auth.CredentialVerifier
	Events    *repository.EventRepository
	Jobs      *repository.JobRepository
	Stories   *repository.StoryRepository
	Alumni    *repository.AlumniRepository
	Countdown *countdown.Ticker
	Generator *generator.Generator
	Now       func() time.Time
}

// asPage rewrites r so that a failed POST can re-render the page it came
// from with the given modal still open over the same filters.
func asPage(r *http.Request, path string, kind modal.Kind, id string) *http.Request {
	v := formFilters(r)
	v.Del("modal")
	v.Del("id")
	v.Set("modal", string(kind))
	if id != "" {
		v.Set("id", id)
	}
	r2 := r.Clone(r.Context())
	r2.URL = &url.URL{Path: path, RawQuery: v.Encode()}
	return r2
}

// listURL is path with the filters a modal form carried along.
func listURL(r *http.Request, path string) string {
	return modal.CloseURL(path, formFilters(r))
}

// formFilters reads the hidden filters field of a parsed form. Malformed
// pairs are dropped.
func formFilters(r *http.Request) url.Values {
	v, _ := url.ParseQuery(r.PostForm.Get("filters"))
	if v == nil {
		v = url.Values{}
	}
	return v
}

// safeReturn only accepts local absolute paths.
func safeReturn(p, fallback string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") || strings.HasPrefix(p, "/\\") {
		return fallback
	}
	return p
}
