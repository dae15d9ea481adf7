package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/csrf"

	"alumni/internal/generator"
	"alumni/internal/middleware"
	"alumni/internal/session"
)

// NewRouter builds the whole site. Pages under the guard redirect
// anonymous visitors to /login unless Config.OpenRoutes is set.
func NewRouter(d Deps) (http.Handler, error) {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Generator == nil {
		d.Generator = generator.NewGenerator()
	}

	render, err := NewRenderer(d.Cookies, d.Now)
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	authH := NewAuthHandler(render)
	homeH := NewHomeHandler(render, d.Events, d.Now)
	eventH := NewEventHandler(render, d.Events, d.Countdown, d.Generator, d.Now, d.Config.PastEventsLimit)
	jobH := NewJobHandler(render, d.Jobs, d.Generator, d.Now)
	storyH := NewStoryHandler(render, d.Stories)
	dirH := NewDirectoryHandler(render, d.Alumni)
	apiH := NewAPIHandler(d.Events, d.Jobs, d.Countdown, d.Now, d.Config.PastEventsLimit)

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.Recover)
	if d.Config.RequestTimeout > 0 {
		r.Use(chimw.Timeout(d.Config.RequestTimeout))
	}

	r.Handle("/static/*", StaticFiles())

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: d.Config.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
		r.Get("/countdown", apiH.Countdown)
		r.Get("/events", apiH.Events)
		r.Get("/jobs", apiH.Jobs)
	})

	r.Group(func(r chi.Router) {
		if d.Config.CSRFKey != nil {
			r.Use(csrf.Protect(d.Config.CSRFKey,
				csrf.Secure(d.Config.SessionSecure),
				csrf.Path("/"),
				csrf.FieldName("csrf_token"),
			))
		}
		r.Use(middleware.Sessions(d.Cookies, d.Verifier, session.WithGenerator(d.Generator)))

		r.Get("/", homeH.HomePage)
		r.Get("/login", authH.LoginPage)
		r.Post("/login", authH.Login)
		r.Get("/register", authH.RegisterPage)
		r.Post("/register", authH.Register)
		r.Post("/logout", authH.Logout)
		r.Get("/membership", homeH.MembershipPage)
		r.Post("/membership/register", homeH.MembershipRegister)
		r.Get("/contact", homeH.ContactPage)
		r.Post("/contact", homeH.Contact)

		r.Group(func(r chi.Router) {
			if !d.Config.OpenRoutes {
				r.Use(middleware.RequireAuth(d.Cookies))
			}
			r.Get("/about", homeH.AboutPage)
			r.Get("/connecting-with-alumni", homeH.ConnectingPage)
			r.Get("/success-stories", storyH.StoriesPage)
			r.Get("/alumni-directory", dirH.DirectoryPage)

			r.Get("/events", eventH.EventsPage)
			r.Post("/events/ideas", eventH.SubmitIdea)
			r.Post("/events/{id}/register", eventH.Register)

			r.Get("/jobs", jobH.JobsPage)
			r.Post("/jobs/post", jobH.Post)
			r.Post("/jobs/{id}/apply", jobH.Apply)
			r.Post("/jobs/{id}/contact", jobH.Contact)
		})

		r.NotFound(homeH.NotFound)
	})

	return r, nil
}
