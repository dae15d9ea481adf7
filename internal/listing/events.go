package listing

import (
	"net/url"
	"strings"
	"time"

	"alumni/internal/entity"
)

const (
	StatusUpcoming = "upcoming"
	StatusPast     = "past"
	StatusAll      = "all"
)

// EventTypes are the options of the type filter, in display order.
var EventTypes = []string{"all", "reunion", "networking", "workshop", "conference"}

type EventQuery struct {
	Status string
	Type   string
	Search string
}

// ParseEventQuery reads status, type and q. Status defaults to upcoming.
func ParseEventQuery(v url.Values) EventQuery {
	q := EventQuery{
		Status: strings.ToLower(strings.TrimSpace(v.Get("status"))),
		Type:   strings.ToLower(strings.TrimSpace(v.Get("type"))),
		Search: strings.TrimSpace(v.Get("q")),
	}
	if q.Status == "" {
		q.Status = StatusUpcoming
	}
	if q.Type == "" {
		q.Type = "all"
	}
	return q
}

// Values is the inverse of ParseEventQuery. Defaults are left out.
func (q EventQuery) Values() url.Values {
	v := url.Values{}
	if q.Status != "" && q.Status != StatusUpcoming {
		v.Set("status", q.Status)
	}
	if q.Type != "" && q.Type != "all" {
		v.Set("type", q.Type)
	}
	if q.Search != "" {
		v.Set("q", q.Search)
	}
	return v
}

// FilterEvents applies status, then type, then search. The past list is
// capped at pastLimit; a non-positive limit disables the cap.
func FilterEvents(events []entity.Event, q EventQuery, now time.Time, pastLimit int) []entity.Event {
	out := make([]entity.Event, 0, len(events))
	for _, e := range events {
		switch q.Status {
		case StatusUpcoming:
			if e.IsPast(now) {
				continue
			}
		case StatusPast:
			if !e.IsPast(now) {
				continue
			}
		}
		out = append(out, e)
	}
	if q.Status == StatusPast && pastLimit > 0 && len(out) > pastLimit {
		out = out[:pastLimit]
	}

	kept := out[:0]
	for _, e := range out {
		if !matchesType(e, q.Type) || !matchesEventSearch(e, q.Search) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func matchesType(e entity.Event, typ string) bool {
	if typ == "" || strings.EqualFold(typ, "all") {
		return true
	}
	return strings.EqualFold(e.Type, typ)
}

func matchesEventSearch(e entity.Event, search string) bool {
	if search == "" {
		return true
	}
	if containsFold(e.Title, search) || containsFold(e.Description, search) || containsFold(e.Location, search) {
		return true
	}
	for _, tag := range e.Tags {
		if containsFold(tag, search) {
			return true
		}
	}
	return false
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
