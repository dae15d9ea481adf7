package entity

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var numbers = message.NewPrinter(language.English)

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type Person struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (p Person) Name() string {
	return p.FirstName + " " + p.LastName
}

type Job struct {
	ID                  string       `json:"_id"`
	Title               string       `json:"title"`
	Company             string       `json:"company"`
	Location            string       `json:"location"`
	JobType             string       `json:"jobType"`
	Category            string       `json:"category"`
	ExperienceLevel     string       `json:"experienceLevel"`
	Description         string       `json:"description"`
	Requirements        []string     `json:"requirements"`
	Responsibilities    []string     `json:"responsibilities"`
	Salary              *SalaryRange `json:"salaryRange,omitempty"`
	ApplicationDeadline time.Time    `json:"applicationDeadline"`
	ApplicationMethod   string       `json:"applicationMethod"`
	ApplicationEmail    string       `json:"applicationEmail,omitempty"`
	ApplicationURL      string       `json:"applicationUrl,omitempty"`
	PostedBy            Person       `json:"postedBy"`
	Views               int          `json:"views"`
	ApplicationCount    int          `json:"applicationCount"`
	CreatedAt           time.Time    `json:"createdAt"`
}

// DeadlinePassed compares calendar dates: a job stays open for the whole
// deadline day and closes from the next day on.
func (j Job) DeadlinePassed(now time.Time) bool {
	if j.ApplicationDeadline.IsZero() {
		return false
	}
	y, m, d := now.In(j.ApplicationDeadline.Location()).Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, j.ApplicationDeadline.Location())
	dy, dm, dd := j.ApplicationDeadline.Date()
	deadline := time.Date(dy, dm, dd, 0, 0, 0, 0, j.ApplicationDeadline.Location())
	return deadline.Before(today)
}

func (j Job) SalaryText() string {
	s := j.Salary
	if s == nil || (s.Min == 0 && s.Max == 0) {
		return "Salary not specified"
	}
	switch {
	case s.Min > 0 && s.Max > 0:
		return numbers.Sprintf("%s %d - %d", s.Currency, s.Min, s.Max)
	case s.Min > 0:
		return numbers.Sprintf("%s %d+", s.Currency, s.Min)
	default:
		return numbers.Sprintf("Up to %s %d", s.Currency, s.Max)
	}
}
