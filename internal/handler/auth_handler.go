package handler

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"alumni/internal/auth"
	"alumni/internal/entity"
	"alumni/internal/form"
	"alumni/internal/session"
)

type AuthHandler struct {
	render *Renderer
}

func NewAuthHandler(render *Renderer) *AuthHandler {
	return &AuthHandler{render: render}
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()).IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	data := h.render.view(w, r, "Login")
	data["Email"] = ""
	h.render.render(w, r, "login.html", http.StatusOK, data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form submission", http.StatusBadRequest)
		return
	}
	email := r.PostForm.Get("email")
	password := r.PostForm.Get("password")

	fail := func(status int, msg string) {
		data := h.render.view(w, r, "Login")
		data["Email"] = email
		data["FormError"] = msg
		h.render.render(w, r, "login.html", status, data)
	}

	if err := form.ValidateLogin(email, password); err != nil {
		fail(http.StatusUnprocessableEntity, form.Message(err, "Login failed"))
		return
	}

	st := session.FromContext(r.Context())
	if err := st.SignIn(r.Context(), email, password); err != nil {
		hlog.FromRequest(r).Info().Err(err).Str("email", email).Msg("sign in failed")
		fail(authStatus(err, auth.ErrInvalidCredentials, http.StatusUnauthorized), st.Err())
		return
	}

	user, _ := st.User()
	hlog.FromRequest(r).Info().Str("user_id", user.ID).Msg("signed in")

	target := safeReturn(h.render.flash(w, r).PopReturnTo("/"), "/")
	h.render.redirect(w, r, target, "Login successful! Welcome back to Namal Alumni Network.", "")
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	if session.FromContext(r.Context()).IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	data := h.render.view(w, r, "Register")
	data["Form"] = entity.Profile{}
	h.render.render(w, r, "register.html", http.StatusOK, data)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form submission", http.StatusBadRequest)
		return
	}
	profile := form.ParseProfile(r.PostForm)

	fail := func(status int, msg string) {
		shown := profile
		shown.Password = ""
		data := h.render.view(w, r, "Register")
		data["Form"] = shown
		data["FormError"] = msg
		h.render.render(w, r, "register.html", status, data)
	}

	if err := form.ValidateProfile(profile, r.PostForm.Get("confirmPassword")); err != nil {
		fail(http.StatusUnprocessableEntity, form.Message(err, "Registration failed"))
		return
	}

	st := session.FromContext(r.Context())
	if err := st.SignUp(r.Context(), profile); err != nil {
		hlog.FromRequest(r).Info().Err(err).Str("email", profile.Email).Msg("sign up failed")
		fail(authStatus(err, auth.ErrEmailAlreadyRegistered, http.StatusConflict), st.Err())
		return
	}

	user, _ := st.User()
	hlog.FromRequest(r).Info().Str("user_id", user.ID).Msg("signed up")
	h.render.redirect(w, r, "/", "Registration successful! Welcome to Namal Alumni Network. You can now access all features.", "")
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session.FromContext(r.Context()).SignOut()
	h.render.redirect(w, r, "/", "You have been logged out successfully.", "")
}

// authStatus is status when err is the expected refusal, and 503 for
// anything else, such as the verifier timing out.
func authStatus(err, refusal error, status int) int {
	if errors.Is(err, refusal) {
		return status
	}
	return http.StatusServiceUnavailable
}
