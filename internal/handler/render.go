package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"
	"github.com/rs/zerolog/hlog"
	"github.com/yuin/goldmark"

	"alumni/internal/middleware"
	"alumni/internal/modal"
	"alumni/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFiles serves the embedded CSS and JS under /static/.
func StaticFiles() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

// Renderer owns the parsed page templates. Each page is the layout plus
// one page file, so every page can define its own "content" and "modal".
type Renderer struct {
	pages   map[string]*template.Template
	flashes sessions.Store
	md      goldmark.Markdown
	now     func() time.Time
}

func NewRenderer(flashes sessions.Store, now func() time.Time) (*Renderer, error) {
	rd := &Renderer{
		pages:   map[string]*template.Template{},
		flashes: flashes,
		md:      goldmark.New(),
		now:     now,
	}

	base, err := template.New("layout.html").Funcs(rd.funcs()).
		ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		name := path.Base(file)
		if name == "layout.html" || name == "partials.html" {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		rd.pages[name] = clone
	}
	return rd, nil
}

func (rd *Renderer) funcs() template.FuncMap {
	return template.FuncMap{
		"date": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Monday, January 2, 2006")
		},
		"shortDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("Jan 2, 2006")
		},
		"clock": func(t time.Time) string { return t.Format("3:04 PM") },
		"isoDate": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.Format("2006-01-02")
		},
		"markdown": rd.markdown,
		"lower":    strings.ToLower,
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
		"join":     strings.Join,
		"openURL":  modal.OpenURL,
		"closeURL": modal.CloseURL,
		"filters":  modal.Filters,
		"withParam": func(p string, q url.Values, key, value string) string {
			v := url.Values{}
			for k, vals := range q {
				if k != "modal" && k != "id" {
					v[k] = vals
				}
			}
			if value == "" || value == "all" {
				v.Del(key)
			} else {
				v.Set(key, value)
			}
			if len(v) == 0 {
				return p
			}
			return p + "?" + v.Encode()
		},
	}
}

// markdown renders story text. Raw HTML in the source is dropped by
// goldmark's default renderer.
func (rd *Renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := rd.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// view starts a page's data with what the layout needs. Only the listed
// modal kinds can open on the page. It pops pending flash messages, so it
// must run before anything is written.
func (rd *Renderer) view(w http.ResponseWriter, r *http.Request, title string, kinds ...modal.Kind) map[string]interface{} {
	st := session.FromContext(r.Context())
	user, _ := st.User()
	m := modal.Parse(r.URL.Query())
	if !allowed(m.Kind, kinds) {
		m = modal.State{}
	}
	return map[string]interface{}{
		"Title":         title,
		"Path":          r.URL.Path,
		"Query":         r.URL.Query(),
		"User":          user,
		"Authenticated": st.IsAuthenticated(),
		"Flashes":       session.NewFlashes(rd.flashes, w, r).Pop(),
		"CSRFField":     csrf.TemplateField(r),
		"Modal":         m,
		"CloseURL":      modal.CloseURL(r.URL.Path, r.URL.Query()),
		"Year":          rd.now().Year(),
	}
}

func allowed(k modal.Kind, kinds []modal.Kind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// render executes into a buffer first, so a failing template ends in the
// crash page rather than half a document.
func (rd *Renderer) render(w http.ResponseWriter, r *http.Request, page string, status int, data map[string]interface{}) {
	tmpl, ok := rd.pages[page]
	if !ok {
		hlog.FromRequest(r).Error().Str("page", page).Msg("unknown template")
		middleware.WriteCrashPage(w)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("page", page).Msg("App Error")
		middleware.WriteCrashPage(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (rd *Renderer) flash(w http.ResponseWriter, r *http.Request) *session.Flashes {
	return session.NewFlashes(rd.flashes, w, r)
}

// redirect stores an acknowledgement and sends the visitor to target.
func (rd *Renderer) redirect(w http.ResponseWriter, r *http.Request, target, ok, failed string) {
	f := rd.flash(w, r)
	var err error
	if ok != "" {
		err = f.Success(ok)
	}
	if failed != "" {
		err = f.Error(failed)
	}
	if err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("save flash")
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
