package repository

import (
	"embed"
	"fmt"
	"time"

	"github.com/yosuke-furukawa/json5/encoding/json5"
)

//go:embed fixtures/*.json5
var fixtures embed.FS

// NotFoundError is returned when a fixture id does not exist.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func load(name string, v any) error {
	data, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := json5.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}

// FixtureEpoch is the day the fixture dates were written against.
var FixtureEpoch = time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)

// calendar places fixture dates in loc, moved by the whole days
// between FixtureEpoch and the day the data is loaded. A loaded fixture set
// always has the same mix of past and upcoming entries.
type calendar struct {
	loc  *time.Location
	days int
}

// newCalendar keeps dates as written when asOf is zero.
func newCalendar(loc *time.Location, asOf time.Time) calendar {
	if asOf.IsZero() {
		return calendar{loc: loc}
	}
	y, m, d := asOf.In(loc).Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return calendar{loc: loc, days: int(day.Sub(FixtureEpoch) / (24 * time.Hour))}
}

// parse reads yyyy-mm-dd with an optional hh:mm. An empty date is the zero
// time.
func (c calendar) parse(date, clock string) (time.Time, error) {
	if date == "" {
		return time.Time{}, nil
	}
	var t time.Time
	var err error
	if clock == "" {
		t, err = time.ParseInLocation("2006-01-02", date, c.loc)
	} else {
		t, err = time.ParseInLocation("2006-01-02 15:04", date+" "+clock, c.loc)
	}
	if err != nil {
		return time.Time{}, err
	}
	return t.AddDate(0, 0, c.days), nil
}
