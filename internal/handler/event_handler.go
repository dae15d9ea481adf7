package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"alumni/internal/countdown"
	"alumni/internal/entity"
	"alumni/internal/form"
	"alumni/internal/generator"
	"alumni/internal/listing"
	"alumni/internal/modal"
	"alumni/internal/repository"
	"alumni/internal/session"
)

type EventHandler struct {
	render    *Renderer
	events    *repository.EventRepository
	ticker    *countdown.Ticker
	gen       *generator.Generator
	now       func() time.Time
	pastLimit int
}

func NewEventHandler(render *Renderer, events *repository.EventRepository, ticker *countdown.Ticker,
	gen *generator.Generator, now func() time.Time, pastLimit int) *EventHandler {
	return &EventHandler{render: render, events: events, ticker: ticker, gen: gen, now: now, pastLimit: pastLimit}
}

func (h *EventHandler) EventsPage(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	m := modal.Parse(r.URL.Query())
	closeURL := modal.CloseURL(r.URL.Path, r.URL.Query())
	st := session.FromContext(r.Context())

	var selected entity.Event
	if m.Is(modal.EventDetails) || m.Is(modal.EventRegister) {
		e, err := h.events.GetByID(m.ID)
		if err != nil {
			h.render.redirect(w, r, closeURL, "", "Event not found")
			return
		}
		selected = e
	}

	var f interface{}
	switch {
	case m.Is(modal.EventRegister):
		if !st.IsAuthenticated() {
			h.render.redirect(w, r, closeURL, "", "Please login to register for events")
			return
		}
		if !selected.IsRegistrationOpen(now) {
			h.render.redirect(w, r, closeURL, "", "Registration is closed for this event")
			return
		}
		reg := form.EventRegistration{}
		if user, ok := st.User(); ok {
			reg.Name = user.Name()
			reg.Email = user.Email
		}
		f = reg
	case m.Is(modal.EventIdea):
		if !st.IsAuthenticated() {
			h.render.redirect(w, r, closeURL, "", "Please login to suggest an event")
			return
		}
		f = form.EventIdea{}
	}

	h.show(w, r, now, selected, f, "", http.StatusOK)
}

// show renders the listing for r's query with the current modal.
func (h *EventHandler) show(w http.ResponseWriter, r *http.Request, now time.Time, selected entity.Event, f interface{}, formErr string, status int) {
	q := listing.ParseEventQuery(r.URL.Query())
	data := h.render.view(w, r, "Events", modal.EventDetails, modal.EventRegister, modal.EventIdea)
	data["Now"] = now
	data["EventQuery"] = q
	data["Types"] = listing.EventTypes
	data["Events"] = listing.FilterEvents(h.events.GetAll(), q, now, h.pastLimit)
	data["Countdown"] = h.ticker.Current()
	data["CountdownInterval"] = h.ticker.Interval().Milliseconds()
	data["Selected"] = selected
	data["Form"] = f
	data["FormError"] = formErr
	h.render.render(w, r, "events.html", status, data)
}

func (h *EventHandler) Register(w http.ResponseWriter, r *http.Request) {
	st := session.FromContext(r.Context())
	if !st.IsAuthenticated() {
		h.render.redirect(w, r, "/events", "", "Please login to register for events")
		return
	}
	id := chi.URLParam(r, "id")
	e, err := h.events.GetByID(id)
	if err != nil {
		h.render.redirect(w, r, "/events", "", "Event not found")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form submission", http.StatusBadRequest)
		return
	}

	now := h.now()
	reg := form.ParseEventRegistration(r.PostForm)
	if err := reg.Validate(e, now); err != nil {
		pr := asPage(r, "/events", modal.EventRegister, e.ID)
		h.show(w, pr, now, e, reg, form.Message(err, "Registration failed"), http.StatusUnprocessableEntity)
		return
	}

	ref := h.gen.Reference("EVT")
	hlog.FromRequest(r).Info().Str("event_id", e.ID).Str("reference", ref).Msg("event registration received")
	h.render.redirect(w, r, listURL(r, "/events"), fmt.Sprintf("You are registered for %s! Your reference is %s.", e.Title, ref), "")
}

func (h *EventHandler) SubmitIdea(w http.ResponseWriter, r *http.Request) {
	if !session.FromContext(r.Context()).IsAuthenticated() {
		h.render.redirect(w, r, "/events", "", "Please login to suggest an event")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form submission", http.StatusBadRequest)
		return
	}

	now := h.now()
	idea := form.ParseEventIdea(r.PostForm)
	if err := idea.Validate(now); err != nil {
		pr := asPage(r, "/events", modal.EventIdea, "")
		h.show(w, pr, now, entity.Event{}, idea, form.Message(err, "Could not submit your idea"), http.StatusUnprocessableEntity)
		return
	}

	ref := h.gen.Reference("IDEA")
	hlog.FromRequest(r).Info().Str("title", idea.Title).Str("reference", ref).Msg("event idea received")
	h.render.redirect(w, r, listURL(r, "/events"), "Thank you! Your event idea has been submitted for review.", "")
}
