package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog/hlog"

	"alumni/internal/countdown"
	"alumni/internal/entity"
	"alumni/internal/listing"
	"alumni/internal/repository"
)

// APIHandler serves read-only JSON for the countdown banner and for
// clients that want the listings without HTML.
type APIHandler struct {
	events    *repository.EventRepository
	jobs      *repository.JobRepository
	ticker    *countdown.Ticker
	now       func() time.Time
	pastLimit int
}

func NewAPIHandler(events *repository.EventRepository, jobs *repository.JobRepository, ticker *countdown.Ticker,
	now func() time.Time, pastLimit int) *APIHandler {
	return &APIHandler{events: events, jobs: jobs, ticker: ticker, now: now, pastLimit: pastLimit}
}

type eventView struct {
	entity.Event
	IsPast             bool    `json:"isPast"`
	IsRegistrationOpen bool    `json:"isRegistrationOpen"`
	SpotsRemaining     int     `json:"spotsRemaining"`
	AverageRating      float64 `json:"averageRating"`
}

type jobView struct {
	entity.Job
	DeadlinePassed bool   `json:"deadlinePassed"`
	SalaryText     string `json:"salaryText"`
}

func (h *APIHandler) Countdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, map[string]interface{}{
		"success":   true,
		"countdown": h.ticker.Current(),
		"updatedAt": h.ticker.UpdatedAt(),
	})
}

func (h *APIHandler) Events(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	q := listing.ParseEventQuery(r.URL.Query())
	events := listing.FilterEvents(h.events.GetAll(), q, now, h.pastLimit)

	out := make([]eventView, 0, len(events))
	for _, e := range events {
		out = append(out, eventView{
			Event:              e,
			IsPast:             e.IsPast(now),
			IsRegistrationOpen: e.IsRegistrationOpen(now),
			SpotsRemaining:     e.SpotsRemaining(),
			AverageRating:      e.AverageRating(),
		})
	}
	writeJSON(w, r, map[string]interface{}{
		"success": true,
		"count":   len(out),
		"data":    out,
	})
}

func (h *APIHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	jobs := listing.FilterJobs(h.jobs.GetAll(), listing.ParseJobQuery(r.URL.Query()))

	out := make([]jobView, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobView{Job: j, DeadlinePassed: j.DeadlinePassed(now), SalaryText: j.SalaryText()})
	}
	writeJSON(w, r, map[string]interface{}{
		"success": true,
		"count":   len(out),
		"data":    out,
	})
}

func writeJSON(w http.ResponseWriter, r *http.Request, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("encode response")
	}
}
