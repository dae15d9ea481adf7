package middleware

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"alumni/internal/auth"
	"alumni/internal/session"
)

type fakeState struct{ loading, authed bool }

func (f fakeState) Loading() bool         { return f.loading }
func (f fakeState) IsAuthenticated() bool { return f.authed }

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("protected content"))
})

func TestGuardStates(t *testing.T) {
	cs := session.NewCookieStore([]byte(strings.Repeat("m", 32)), false)

	cases := []struct {
		name       string
		state      fakeState
		wantStatus int
		wantBody   string
		wantLoc    string
	}{
		{"loading renders nothing", fakeState{loading: true}, http.StatusNoContent, "", ""},
		{"anonymous redirects", fakeState{}, http.StatusSeeOther, "", "/login"},
		{"authenticated passes", fakeState{authed: true}, http.StatusOK, "protected content", ""},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/events?status=past", nil)
		guardWith(tc.state, cs, okHandler, rec, req)

		if rec.Code != tc.wantStatus {
			t.Fatalf("%s: status = %d, want %d", tc.name, rec.Code, tc.wantStatus)
		}
		if tc.wantBody != "" && rec.Body.String() != tc.wantBody {
			t.Fatalf("%s: body = %q", tc.name, rec.Body.String())
		}
		if tc.wantBody == "" && strings.Contains(rec.Body.String(), "protected content") {
			t.Fatalf("%s: wrapped content leaked", tc.name)
		}
		if loc := rec.Header().Get("Location"); loc != tc.wantLoc {
			t.Fatalf("%s: Location = %q, want %q", tc.name, loc, tc.wantLoc)
		}
	}
}

func TestRequireAuthRemembersPath(t *testing.T) {
	cs := session.NewCookieStore([]byte(strings.Repeat("m", 32)), false)
	h := Sessions(cs, nil)(RequireAuth(cs)(okHandler))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs?q=engineer", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get("Location"))
	}

	next := httptest.NewRequest(http.MethodGet, "/login", nil)
	for _, c := range rec.Result().Cookies() {
		next.AddCookie(c)
	}
	if got := session.NewFlashes(cs, httptest.NewRecorder(), next).PopReturnTo("/"); got != "/jobs?q=engineer" {
		t.Fatalf("return path = %q", got)
	}
}

func TestRequireAuthWithSignedInCookie(t *testing.T) {
	cs := session.NewCookieStore([]byte(strings.Repeat("m", 32)), false)
	verifier, err := auth.NewDemoDirectory(auth.DemoAccounts(), 0, 0)
	if err != nil {
		t.Fatalf("NewDemoDirectory() error = %v", err)
	}

	login := httptest.NewRecorder()
	storage, _ := session.NewCookieStorage(cs, login, httptest.NewRequest(http.MethodPost, "/login", nil))
	if err := session.New(storage, verifier).SignIn(context.Background(), "demo@namal.edu.pk", "demo123"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	for _, c := range login.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	Sessions(cs, verifier)(RequireAuth(cs)(okHandler)).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "protected content" {
		t.Fatalf("expected content, got %d %q", rec.Code, rec.Body.String())
	}
}

func TestRecover(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)
	boom := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("template exploded") })

	rec := httptest.NewRecorder()
	Logging(logger)(Recover(boom)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/events", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Something went wrong") {
		t.Fatalf("crash page missing: %q", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "template exploded") {
		t.Fatalf("panic not logged: %s", logs.String())
	}
	if !strings.Contains(logs.String(), `"status":500`) {
		t.Fatalf("access line missing: %s", logs.String())
	}
}
