package modal

import (
	"net/url"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		query string
		want  State
	}{
		{"", State{}},
		{"modal=job-apply&id=3", State{Kind: JobApply, ID: "3"}},
		{"modal=EVENT-IDEA", State{Kind: EventIdea}},
		{"modal=job-apply", State{}},
		{"modal=popup&id=1", State{}},
		{"modal=register&id=", State{Kind: Register}},
	}
	for _, tt := range tests {
		v, _ := url.ParseQuery(tt.query)
		got := Parse(v)
		if got != tt.want {
			t.Fatalf("Parse(%q) = %+v, want %+v", tt.query, got, tt.want)
		}
		if got.Open() != (tt.want.Kind != None) {
			t.Fatalf("Open() wrong for %q", tt.query)
		}
	}
}

func TestURLs(t *testing.T) {
	q, _ := url.ParseQuery("status=past&type=workshop&modal=event-details&id=6")

	if got := CloseURL("/events", q); got != "/events?status=past&type=workshop" {
		t.Fatalf("CloseURL() = %q", got)
	}
	if got := CloseURL("/events", url.Values{"modal": {"event-idea"}}); got != "/events" {
		t.Fatalf("CloseURL() without filters = %q", got)
	}
	if got := OpenURL("/events", q, EventRegister, "2"); got != "/events?id=2&modal=event-register&status=past&type=workshop" {
		t.Fatalf("OpenURL() = %q", got)
	}
	if got := Filters(q); got != "status=past&type=workshop" {
		t.Fatalf("Filters() = %q", got)
	}
	if q.Get("modal") != "event-details" {
		t.Fatalf("input query was modified")
	}
}
