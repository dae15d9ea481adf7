package form

import (
	"net/url"
	"time"
)

const msgApplicationRequired = "Please fill in all required fields and upload your CV"

// JobApplication lives for a single request; nothing is kept after the
// acknowledgement.
type JobApplication struct {
	Name          string  `form:"name" validate:"required"`
	Qualification string  `form:"qualification" validate:"required"`
	CV            *Upload `form:"cv" validate:"required"`
}

func ParseJobApplication(v url.Values, cv *Upload) JobApplication {
	return JobApplication{
		Name:          value(v, "name"),
		Qualification: value(v, "qualification"),
		CV:            cv,
	}
}

func (a JobApplication) Validate() error {
	if err := check(a, nil, msgApplicationRequired); err != nil {
		return err
	}
	return ValidateCV(a.CV)
}

type ContactRecruiter struct {
	Message string `form:"message" validate:"required"`
}

func ParseContactRecruiter(v url.Values) ContactRecruiter {
	return ContactRecruiter{Message: value(v, "message")}
}

func (c ContactRecruiter) Validate() error {
	return check(c, nil, "Please write a message for the recruiter")
}

var JobTypes = []string{"Full-time", "Part-time", "Contract", "Internship", "Remote"}

// JobPosting is the "post a job" modal. The deadline is a date in the
// form's yyyy-mm-dd format.
type JobPosting struct {
	Title       string `form:"title" validate:"required"`
	Company     string `form:"company" validate:"required"`
	Location    string `form:"location" validate:"required"`
	JobType     string `form:"jobType" validate:"required,oneof=Full-time Part-time Contract Internship Remote"`
	Category    string `form:"category" validate:"required"`
	Description string `form:"description" validate:"required"`
	Deadline    string `form:"deadline" validate:"required,datetime=2006-01-02"`
	SalaryMin   int    `form:"salaryMin" validate:"gte=0"`
	SalaryMax   int    `form:"salaryMax" validate:"gte=0"`
}

func ParseJobPosting(v url.Values) JobPosting {
	return JobPosting{
		Title:       value(v, "title"),
		Company:     value(v, "company"),
		Location:    value(v, "location"),
		JobType:     value(v, "jobType"),
		Category:    value(v, "category"),
		Description: value(v, "description"),
		Deadline:    value(v, "deadline"),
		SalaryMin:   number(v, "salaryMin"),
		SalaryMax:   number(v, "salaryMax"),
	}
}

func (p JobPosting) Validate(now time.Time) error {
	err := check(p, map[string]string{
		"jobType.oneof":     "Please choose a valid job type",
		"deadline.datetime": "Please enter the deadline as a date",
		"salaryMin.gte":     "Salary cannot be negative",
		"salaryMax.gte":     "Salary cannot be negative",
	}, "Please fill in all required fields")
	if err != nil {
		return err
	}
	if p.SalaryMin > 0 && p.SalaryMax > 0 && p.SalaryMax < p.SalaryMin {
		return &ValidationError{Field: "salaryMax", Message: "Maximum salary must not be below the minimum"}
	}
	if pastDate(p.Deadline, now) {
		return &ValidationError{Field: "deadline", Message: "The application deadline cannot be in the past"}
	}
	return nil
}
