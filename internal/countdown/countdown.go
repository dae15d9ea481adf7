// Package countdown computes the "time left until the next event" banner
// and keeps it fresh on a fixed interval.
package countdown

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"alumni/internal/entity"
)

// Next returns the non-past event with the earliest start.
func Next(events []entity.Event, now time.Time) (entity.Event, bool) {
	var next entity.Event
	found := false
	for _, e := range events {
		if e.IsPast(now) {
			continue
		}
		if !found || e.Start.Before(next.Start) {
			next = e
			found = true
		}
	}
	return next, found
}

// Compute renders the banner text, or "" when nothing is ahead.
func Compute(events []entity.Event, now time.Time) string {
	next, ok := Next(events, now)
	if !ok {
		return ""
	}
	diff := next.Start.Sub(now)
	if diff <= 0 {
		return ""
	}
	days := int(diff / (24 * time.Hour))
	hours := int(diff % (24 * time.Hour) / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)
	return fmt.Sprintf("%d days %d hours %d minutes left until %s", days, hours, minutes, next.Title)
}

// Ticker caches Compute and refreshes it every interval until Run's
// context is cancelled.
type Ticker struct {
	events   func() []entity.Event
	now      func() time.Time
	interval time.Duration
	logger   zerolog.Logger

	mu      sync.RWMutex
	current string
	updated time.Time
}

func NewTicker(events func() []entity.Event, interval time.Duration, logger zerolog.Logger) *Ticker {
	return NewTickerWithClock(events, interval, logger, time.Now)
}

func NewTickerWithClock(events func() []entity.Event, interval time.Duration, logger zerolog.Logger, now func() time.Time) *Ticker {
	t := &Ticker{events: events, now: now, interval: interval, logger: logger}
	t.refresh()
	return t
}

func (t *Ticker) Run(ctx context.Context) {
	tk := time.NewTicker(t.interval)
	defer tk.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Debug().Msg("countdown ticker stopped")
			return
		case <-tk.C:
			t.refresh()
		}
	}
}

// Current is safe to call from any goroutine.
func (t *Ticker) Current() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

func (t *Ticker) UpdatedAt() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.updated
}

func (t *Ticker) Interval() time.Duration { return t.interval }

func (t *Ticker) refresh() {
	now := t.now()
	text := Compute(t.events(), now)

	t.mu.Lock()
	changed := text != t.current
	t.current = text
	t.updated = now
	t.mu.Unlock()

	if changed {
		t.logger.Debug().Str("countdown", text).Msg("countdown refreshed")
	}
}
