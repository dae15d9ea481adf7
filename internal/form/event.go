package form

import (
	"net/url"
	"strconv"
	"time"

	"alumni/internal/entity"
)

type EventRegistration struct {
	Name  string `form:"name" validate:"required"`
	Email string `form:"email" validate:"required,email"`
	Phone string `form:"phone" validate:"required"`
	Notes string `form:"notes"`
}

func ParseEventRegistration(v url.Values) EventRegistration {
	return EventRegistration{
		Name:  value(v, "name"),
		Email: value(v, "email"),
		Phone: value(v, "phone"),
		Notes: value(v, "notes"),
	}
}

// Validate also refuses events that are no longer open at now.
func (r EventRegistration) Validate(e entity.Event, now time.Time) error {
	if !e.IsRegistrationOpen(now) {
		return Invalid("Registration is closed for this event")
	}
	return check(r, map[string]string{
		"email.email": "Please enter a valid email address",
	}, "Please fill in your name, email and phone number")
}

type EventIdea struct {
	Title        string `form:"title" validate:"required"`
	Description  string `form:"description" validate:"required"`
	Type         string `form:"type" validate:"required,oneof=reunion networking workshop conference"`
	ProposedDate string `form:"proposedDate" validate:"required,datetime=2006-01-02"`
	Attendees    int    `form:"attendees" validate:"gte=0"`
}

func ParseEventIdea(v url.Values) EventIdea {
	return EventIdea{
		Title:        value(v, "title"),
		Description:  value(v, "description"),
		Type:         value(v, "type"),
		ProposedDate: value(v, "proposedDate"),
		Attendees:    number(v, "attendees"),
	}
}

func (i EventIdea) Validate(now time.Time) error {
	err := check(i, map[string]string{
		"type.oneof":            "Please choose an event type",
		"proposedDate.datetime": "Please enter the proposed date as a date",
		"attendees.gte":         "Expected attendees cannot be negative",
	}, "Please fill in the title, description, type and proposed date")
	if err != nil {
		return err
	}
	if pastDate(i.ProposedDate, now) {
		return &ValidationError{Field: "proposedDate", Message: "The proposed date cannot be in the past"}
	}
	return nil
}

// pastDate reports whether a yyyy-mm-dd date is before now's date.
// Unparseable input is left to the datetime tag.
func pastDate(raw string, now time.Time) bool {
	d, err := time.ParseInLocation("2006-01-02", raw, now.Location())
	if err != nil {
		return false
	}
	y, m, day := now.Date()
	return d.Before(time.Date(y, m, day, 0, 0, 0, 0, now.Location()))
}

// number reads a non-required integer field; junk reads as -1 so the
// gte=0 tag reports it.
func number(v url.Values, key string) int {
	raw := value(v, key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return -1
	}
	return n
}
