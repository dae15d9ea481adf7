// Package modal keeps the open/closed state of the page overlays in the
// URL, so a modal survives reloads and closes with a plain link.
package modal

import (
	"net/url"
	"strings"
)

type Kind string

const (
	None          Kind = ""
	Story         Kind = "story"
	EventDetails  Kind = "event-details"
	EventRegister Kind = "event-register"
	EventIdea     Kind = "event-idea"
	JobDetails    Kind = "job-details"
	JobApply      Kind = "job-apply"
	JobContact    Kind = "job-contact"
	JobPost       Kind = "job-post"
	Register      Kind = "register"
)

var kinds = map[Kind]bool{
	Story: true, EventDetails: true, EventRegister: true, EventIdea: true,
	JobDetails: true, JobApply: true, JobContact: true, JobPost: true, Register: true,
}

// NeedsID reports whether the kind is about one record.
func (k Kind) NeedsID() bool {
	switch k {
	case Story, EventDetails, EventRegister, JobDetails, JobApply, JobContact:
		return true
	}
	return false
}

type State struct {
	Kind Kind
	ID   string
}

// Parse reads ?modal=&id=. Unknown kinds, and record kinds without an
// id, parse as closed.
func Parse(v url.Values) State {
	k := Kind(strings.ToLower(strings.TrimSpace(v.Get("modal"))))
	if !kinds[k] {
		return State{}
	}
	s := State{Kind: k, ID: strings.TrimSpace(v.Get("id"))}
	if k.NeedsID() && s.ID == "" {
		return State{}
	}
	return s
}

func (s State) Open() bool { return s.Kind != None }

func (s State) Is(k Kind) bool { return s.Kind == k }

// OpenURL links to path with the modal open and the other params kept.
func OpenURL(path string, query url.Values, k Kind, id string) string {
	v := without(query)
	v.Set("modal", string(k))
	if id != "" {
		v.Set("id", id)
	}
	return path + "?" + v.Encode()
}

// CloseURL links to path with the modal params dropped and the filters
// kept.
func CloseURL(path string, query url.Values) string {
	v := without(query)
	if len(v) == 0 {
		return path
	}
	return path + "?" + v.Encode()
}

// Filters encodes query without the modal params, for a form to carry the
// list filters through its POST.
func Filters(query url.Values) string {
	return without(query).Encode()
}

func without(query url.Values) url.Values {
	v := url.Values{}
	for key, vals := range query {
		if key == "modal" || key == "id" {
			continue
		}
		v[key] = append([]string(nil), vals...)
	}
	return v
}
