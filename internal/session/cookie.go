package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

// CookieName is the cookie carrying the token and the serialized user.
const CookieName = "alumni-session"

// NewCookieStore builds the signed store shared by the session and flash cookies.
func NewCookieStore(key []byte, secure bool) *sessions.CookieStore {
	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   30 * 24 * 60 * 60,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return cs
}

// CookieStorage keeps entries in a signed cookie session. Every write is
// saved to the response straight away, so callers must write before the body.
type CookieStorage struct {
	session *sessions.Session
	r       *http.Request
	w       http.ResponseWriter
	maxAge  int
}

// NewCookieStorage never returns nil. An unreadable cookie yields an empty
// session together with the decode error, so callers fail closed.
func NewCookieStorage(store sessions.Store, w http.ResponseWriter, r *http.Request) (*CookieStorage, error) {
	s, err := store.Get(r, CookieName)
	if s == nil {
		s = sessions.NewSession(store, CookieName)
	}
	return &CookieStorage{session: s, r: r, w: w, maxAge: s.Options.MaxAge}, err
}

func (c *CookieStorage) Get(key string) (string, bool) {
	v, ok := c.session.Values[key].(string)
	return v, ok
}

func (c *CookieStorage) Put(entries map[string]string) error {
	for k, v := range entries {
		c.session.Values[k] = v
	}
	// a Clear earlier in the same request may have expired the cookie
	if c.session.Options.MaxAge < 0 {
		c.session.Options.MaxAge = c.maxAge
	}
	return c.session.Save(c.r, c.w)
}

func (c *CookieStorage) Clear(keys ...string) error {
	for _, k := range keys {
		delete(c.session.Values, k)
	}
	if len(c.session.Values) == 0 {
		c.session.Options.MaxAge = -1
	}
	return c.session.Save(c.r, c.w)
}
