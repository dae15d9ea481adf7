package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"alumni/internal/entity"
	"alumni/internal/form"
	"alumni/internal/modal"
	"alumni/internal/repository"
	"alumni/internal/session"
)

// HomeHandler serves the marketing pages and the membership sign-up modal.
type HomeHandler struct {
	render *Renderer
	events *repository.EventRepository
	now    func() time.Time
}

func NewHomeHandler(render *Renderer, events *repository.EventRepository, now func() time.Time) *HomeHandler {
	return &HomeHandler{render: render, events: events, now: now}
}

func (h *HomeHandler) HomePage(w http.ResponseWriter, r *http.Request) {
	data := h.render.view(w, r, "Home", modal.Register)
	data["Upcoming"] = h.events.Upcoming(h.now(), 3)
	h.withMembershipForm(r, data)
	h.render.render(w, r, "home.html", http.StatusOK, data)
}

func (h *HomeHandler) MembershipPage(w http.ResponseWriter, r *http.Request) {
	data := h.render.view(w, r, "Membership", modal.Register)
	h.withMembershipForm(r, data)
	h.render.render(w, r, "membership.html", http.StatusOK, data)
}

// withMembershipForm prefills the modal from the signed-in user and the
// tier picked on the pricing card.
func (h *HomeHandler) withMembershipForm(r *http.Request, data map[string]interface{}) {
	f := form.MembershipRegistration{Tier: r.URL.Query().Get("tier")}
	if user, ok := session.FromContext(r.Context()).User(); ok {
		f.Name = user.Name()
		f.Email = user.Email
		f.GraduationYear = user.GraduationYear
	}
	data["Form"] = f
	data["Tiers"] = entity.MembershipTiers()
}

func (h *HomeHandler) MembershipRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form submission", http.StatusBadRequest)
		return
	}
	page, file, title := "/membership", "membership.html", "Membership"
	if r.PostForm.Get("return") == "/" {
		page, file, title = "/", "home.html", "Home"
	}

	reg := form.ParseMembershipRegistration(r.PostForm)
	tier, err := reg.Validate()
	if err != nil {
		pr := asPage(r, page, modal.Register, "")
		data := h.render.view(w, pr, title, modal.Register)
		data["Form"] = reg
		data["Tiers"] = entity.MembershipTiers()
		data["FormError"] = form.Message(err, "Registration failed")
		if page == "/" {
			data["Upcoming"] = h.events.Upcoming(h.now(), 3)
		}
		h.render.render(w, pr, file, http.StatusUnprocessableEntity, data)
		return
	}

	hlog.FromRequest(r).Info().Str("tier", tier.Key).Str("email", reg.Email).Msg("membership registration received")
	h.render.redirect(w, r, page, "Thank you for registering as a "+tier.Name+"! We will be in touch shortly.", "")
}

func (h *HomeHandler) ContactPage(w http.ResponseWriter, r *http.Request) {
	data := h.render.view(w, r, "Contact")
	f := form.ContactMessage{}
	if user, ok := session.FromContext(r.Context()).User(); ok {
		f.Name = user.Name()
		f.Email = user.Email
	}
	data["Form"] = f
	h.render.render(w, r, "contact.html", http.StatusOK, data)
}

func (h *HomeHandler) Contact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form submission", http.StatusBadRequest)
		return
	}
	msg := form.ParseContactMessage(r.PostForm)
	if err := msg.Validate(); err != nil {
		data := h.render.view(w, r, "Contact")
		data["Form"] = msg
		data["FormError"] = form.Message(err, "Could not send your message")
		h.render.render(w, r, "contact.html", http.StatusUnprocessableEntity, data)
		return
	}
	hlog.FromRequest(r).Info().Str("subject", msg.Subject).Msg("contact message received")
	h.render.redirect(w, r, "/contact", "Thank you for contacting us! We will get back to you soon.", "")
}

func (h *HomeHandler) AboutPage(w http.ResponseWriter, r *http.Request) {
	h.render.render(w, r, "about.html", http.StatusOK, h.render.view(w, r, "About"))
}

func (h *HomeHandler) ConnectingPage(w http.ResponseWriter, r *http.Request) {
	h.render.render(w, r, "connecting.html", http.StatusOK, h.render.view(w, r, "Connecting with Alumni"))
}

func (h *HomeHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.render.render(w, r, "notfound.html", http.StatusNotFound, h.render.view(w, r, "Page not found"))
}
