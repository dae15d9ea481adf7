package repository

import (
	"fmt"
	"time"

	"alumni/internal/entity"
)

type jobRecord struct {
	ID                  string              `json:"id"`
	Title               string              `json:"title"`
	Company             string              `json:"company"`
	Location            string              `json:"location"`
	JobType             string              `json:"jobType"`
	Category            string              `json:"category"`
	ExperienceLevel     string              `json:"experienceLevel"`
	Description         string              `json:"description"`
	Requirements        []string            `json:"requirements"`
	Responsibilities    []string            `json:"responsibilities"`
	SalaryRange         *entity.SalaryRange `json:"salaryRange"`
	ApplicationDeadline string              `json:"applicationDeadline"`
	ApplicationMethod   string              `json:"applicationMethod"`
	ApplicationEmail    string              `json:"applicationEmail"`
	ApplicationURL      string              `json:"applicationUrl"`
	PostedBy            entity.Person       `json:"postedBy"`
	Views               int                 `json:"views"`
	ApplicationCount    int                 `json:"applicationCount"`
	CreatedAt           string              `json:"createdAt"`
}

func (r jobRecord) toEntity(cal calendar) (entity.Job, error) {
	deadline, err := cal.parse(r.ApplicationDeadline, "")
	if err != nil {
		return entity.Job{}, fmt.Errorf("job %s deadline: %w", r.ID, err)
	}
	created, err := cal.parse(r.CreatedAt, "")
	if err != nil {
		return entity.Job{}, fmt.Errorf("job %s createdAt: %w", r.ID, err)
	}
	return entity.Job{
		ID:                  r.ID,
		Title:               r.Title,
		Company:             r.Company,
		Location:            r.Location,
		JobType:             r.JobType,
		Category:            r.Category,
		ExperienceLevel:     r.ExperienceLevel,
		Description:         r.Description,
		Requirements:        r.Requirements,
		Responsibilities:    r.Responsibilities,
		Salary:              r.SalaryRange,
		ApplicationDeadline: deadline,
		ApplicationMethod:   r.ApplicationMethod,
		ApplicationEmail:    r.ApplicationEmail,
		ApplicationURL:      r.ApplicationURL,
		PostedBy:            r.PostedBy,
		Views:               r.Views,
		ApplicationCount:    r.ApplicationCount,
		CreatedAt:           created,
	}, nil
}

type JobRepository struct {
	jobs []entity.Job
}

// NewJobRepository loads the embedded jobs the same way NewEventRepository
// loads events.
func NewJobRepository(loc *time.Location, asOf time.Time) (*JobRepository, error) {
	var records []jobRecord
	if err := load("jobs.json5", &records); err != nil {
		return nil, err
	}
	cal := newCalendar(loc, asOf)
	jobs := make([]entity.Job, 0, len(records))
	for _, rec := range records {
		j, err := rec.toEntity(cal)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return &JobRepository{jobs: jobs}, nil
}

func NewJobRepositoryFrom(jobs []entity.Job) *JobRepository {
	return &JobRepository{jobs: cloneJobs(jobs)}
}

func (r *JobRepository) GetAll() []entity.Job {
	return cloneJobs(r.jobs)
}

func (r *JobRepository) GetByID(id string) (entity.Job, error) {
	for _, j := range r.jobs {
		if j.ID == id {
			return cloneJobs([]entity.Job{j})[0], nil
		}
	}
	return entity.Job{}, &NotFoundError{Kind: "job", ID: id}
}

func cloneJobs(in []entity.Job) []entity.Job {
	out := make([]entity.Job, len(in))
	for i, j := range in {
		j.Requirements = append([]string(nil), j.Requirements...)
		j.Responsibilities = append([]string(nil), j.Responsibilities...)
		if j.Salary != nil {
			s := *j.Salary
			j.Salary = &s
		}
		out[i] = j
	}
	return out
}
