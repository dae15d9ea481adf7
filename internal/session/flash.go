package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// FlashCookieName holds one-shot messages and the page to return to after login.
const FlashCookieName = "alumni-flash"

const (
	flashOK     = "ok"
	flashError  = "error"
	returnToKey = "redirect_after_login"
)

type Flash struct {
	Message string
	OK      bool
}

type Flashes struct {
	store sessions.Store
	r     *http.Request
	w     http.ResponseWriter
}

func NewFlashes(store sessions.Store, w http.ResponseWriter, r *http.Request) *Flashes {
	return &Flashes{store: store, r: r, w: w}
}

func (f *Flashes) get() *sessions.Session {
	s, err := f.store.Get(f.r, FlashCookieName)
	if err != nil || s == nil {
		return sessions.NewSession(f.store, FlashCookieName)
	}
	return s
}

func (f *Flashes) Success(msg string) error { return f.add(msg, flashOK) }

func (f *Flashes) Error(msg string) error { return f.add(msg, flashError) }

func (f *Flashes) add(msg, kind string) error {
	s := f.get()
	s.AddFlash(msg, kind)
	return s.Save(f.r, f.w)
}

// Pop returns and forgets all pending messages, successes first.
func (f *Flashes) Pop() []Flash {
	s := f.get()
	var out []Flash
	for _, v := range s.Flashes(flashOK) {
		if msg, ok := v.(string); ok {
			out = append(out, Flash{Message: msg, OK: true})
		}
	}
	for _, v := range s.Flashes(flashError) {
		if msg, ok := v.(string); ok {
			out = append(out, Flash{Message: msg})
		}
	}
	if len(out) > 0 {
		_ = s.Save(f.r, f.w)
	}
	return out
}

func (f *Flashes) SetReturnTo(path string) error {
	s := f.get()
	s.Values[returnToKey] = path
	return s.Save(f.r, f.w)
}

// PopReturnTo returns the remembered path, or fallback.
func (f *Flashes) PopReturnTo(fallback string) string {
	s := f.get()
	path, ok := s.Values[returnToKey].(string)
	if !ok || path == "" {
		return fallback
	}
	delete(s.Values, returnToKey)
	_ = s.Save(f.r, f.w)
	return path
}
