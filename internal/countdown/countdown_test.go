package countdown

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"alumni/internal/entity"
)

var start = time.Date(2025, 2, 20, 14, 0, 0, 0, time.UTC)

func workshop() []entity.Event {
	return []entity.Event{
		{ID: "1", Title: "Annual Alumni Reunion 2025", Start: start.AddDate(0, 4, 0), End: start.AddDate(0, 4, 0).Add(8 * time.Hour)},
		{ID: "2", Title: "Tech Career Workshop", Start: start, End: start.Add(3 * time.Hour)},
		{ID: "5", Title: "Winter Alumni Meetup 2024", Start: start.AddDate(0, -2, 0), End: start.AddDate(0, -2, 0).Add(3 * time.Hour)},
	}
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want string
	}{
		{"two days ahead", start.Add(-48 * time.Hour), "2 days 0 hours 0 minutes left until Tech Career Workshop"},
		{"mixed units", start.Add(-(26*time.Hour + 5*time.Minute + 30*time.Second)), "1 days 2 hours 5 minutes left until Tech Career Workshop"},
		{"at start", start, ""},
		{"while running", start.Add(time.Hour), ""},
		{"after the workshop", start.Add(4 * time.Hour), "119 days 20 hours 0 minutes left until Annual Alumni Reunion 2025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compute(workshop(), tt.now); got != tt.want {
				t.Fatalf("Compute() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComputeNothingAhead(t *testing.T) {
	if got := Compute(nil, start); got != "" {
		t.Fatalf("Compute(nil) = %q", got)
	}
	if got := Compute(workshop(), start.AddDate(1, 0, 0)); got != "" {
		t.Fatalf("Compute() after everything = %q", got)
	}
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	c.now = t
	c.mu.Unlock()
}

func TestTickerRefreshesAndStops(t *testing.T) {
	c := &clock{now: start.Add(-48 * time.Hour)}
	tk := NewTickerWithClock(workshop, 5*time.Millisecond, zerolog.Nop(), c.Now)

	if got := tk.Current(); got != "2 days 0 hours 0 minutes left until Tech Career Workshop" {
		t.Fatalf("initial Current() = %q", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		tk.Run(ctx)
		close(done)
	}()

	c.Set(start.Add(-time.Hour))
	deadline := time.After(time.Second)
	for tk.Current() != "0 days 1 hours 0 minutes left until Tech Career Workshop" {
		select {
		case <-deadline:
			t.Fatalf("ticker never refreshed, Current() = %q", tk.Current())
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
