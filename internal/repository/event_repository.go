package repository

import (
	"fmt"
	"sort"
	"time"

	"alumni/internal/entity"
)

type eventRecord struct {
	ID                   string           `json:"id"`
	Title                string           `json:"title"`
	Description          string           `json:"description"`
	ShortDescription     string           `json:"shortDescription"`
	Date                 string           `json:"date"`
	StartTime            string           `json:"startTime"`
	EndTime              string           `json:"endTime"`
	Location             string           `json:"location"`
	Venue                *entity.Venue    `json:"venue"`
	Type                 string           `json:"type"`
	Category             string           `json:"category"`
	Capacity             int              `json:"capacity"`
	RegisteredCount      int              `json:"registeredCount"`
	IsVirtual            bool             `json:"isVirtual"`
	MeetingLink          string           `json:"meetingLink"`
	Images               []entity.Image   `json:"images"`
	Organizer            entity.Organizer `json:"organizer"`
	Benefits             []string         `json:"benefits"`
	Tags                 []string         `json:"tags"`
	RegistrationFee      entity.Fee       `json:"registrationFee"`
	RegistrationDeadline string           `json:"registrationDeadline"`
	CreatedAt            string           `json:"createdAt"`
}

func (r eventRecord) toEntity(cal calendar) (entity.Event, error) {
	start, err := cal.parse(r.Date, r.StartTime)
	if err != nil {
		return entity.Event{}, fmt.Errorf("event %s start: %w", r.ID, err)
	}
	end, err := cal.parse(r.Date, r.EndTime)
	if err != nil {
		return entity.Event{}, fmt.Errorf("event %s end: %w", r.ID, err)
	}
	if r.EndTime == "" {
		end = start
	}
	deadline, err := cal.parse(r.RegistrationDeadline, "")
	if err != nil {
		return entity.Event{}, fmt.Errorf("event %s deadline: %w", r.ID, err)
	}
	created, err := cal.parse(r.CreatedAt, "")
	if err != nil {
		return entity.Event{}, fmt.Errorf("event %s createdAt: %w", r.ID, err)
	}
	return entity.Event{
		ID:                   r.ID,
		Title:                r.Title,
		Description:          r.Description,
		ShortDescription:     r.ShortDescription,
		Start:                start,
		End:                  end,
		Location:             r.Location,
		Venue:                r.Venue,
		Type:                 r.Type,
		Category:             r.Category,
		Capacity:             r.Capacity,
		RegisteredCount:      r.RegisteredCount,
		IsVirtual:            r.IsVirtual,
		MeetingLink:          r.MeetingLink,
		Images:               r.Images,
		Organizer:            r.Organizer,
		Benefits:             r.Benefits,
		Tags:                 r.Tags,
		RegistrationFee:      r.RegistrationFee,
		RegistrationDeadline: deadline,
		CreatedAt:            created,
	}, nil
}

type EventRepository struct {
	events []entity.Event
}

// NewEventRepository loads the embedded events, placing their dates in loc
// relative to asOf. A zero asOf keeps the dates as written.
func NewEventRepository(loc *time.Location, asOf time.Time) (*EventRepository, error) {
	var records []eventRecord
	if err := load("events.json5", &records); err != nil {
		return nil, err
	}
	cal := newCalendar(loc, asOf)
	events := make([]entity.Event, 0, len(records))
	for _, rec := range records {
		e, err := rec.toEntity(cal)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return &EventRepository{events: events}, nil
}

func NewEventRepositoryFrom(events []entity.Event) *EventRepository {
	return &EventRepository{events: cloneEvents(events)}
}

// GetAll returns a copy in fixture order.
func (r *EventRepository) GetAll() []entity.Event {
	return cloneEvents(r.events)
}

func (r *EventRepository) GetByID(id string) (entity.Event, error) {
	for _, e := range r.events {
		if e.ID == id {
			return cloneEvents([]entity.Event{e})[0], nil
		}
	}
	return entity.Event{}, &NotFoundError{Kind: "event", ID: id}
}

// Upcoming returns up to n events that have not finished, soonest first.
func (r *EventRepository) Upcoming(now time.Time, n int) []entity.Event {
	var out []entity.Event
	for _, e := range r.GetAll() {
		if !e.IsPast(now) {
			out = append(out, e)
		}
	}
	sortByStart(out)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func sortByStart(events []entity.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Start.Before(events[j].Start)
	})
}

func cloneEvents(in []entity.Event) []entity.Event {
	out := make([]entity.Event, len(in))
	for i, e := range in {
		e.Images = append([]entity.Image(nil), e.Images...)
		e.Benefits = append([]string(nil), e.Benefits...)
		e.Tags = append([]string(nil), e.Tags...)
		e.Feedback = append([]entity.Feedback(nil), e.Feedback...)
		if e.Venue != nil {
			v := *e.Venue
			e.Venue = &v
		}
		out[i] = e
	}
	return out
}
