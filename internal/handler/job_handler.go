package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"alumni/internal/entity"
	"alumni/internal/form"
	"alumni/internal/generator"
	"alumni/internal/listing"
	"alumni/internal/modal"
	"alumni/internal/repository"
	"alumni/internal/session"
)

// maxApplicationBody bounds the whole multipart request. Anything over the
// CV limit but under this still gets the friendly size message.
const maxApplicationBody = 2*form.MaxCVSize + 1<<20

const (
	msgApplyLogin   = "Please login to apply for jobs"
	msgJobClosed    = "The application deadline for this job has passed"
	msgJobNotFound  = "Job not found"
	msgApplied      = "Application submitted successfully! The recruiter will contact you soon."
	msgRecruiterMsg = "Message sent to recruiter!"
)

type JobHandler struct {
	render *Renderer
	jobs   *repository.JobRepository
	gen    *generator.Generator
	now    func() time.Time

	// onJobPosted runs after a posting passes validation. Postings are
	// never added to the board.
	onJobPosted func(r *http.Request, p form.JobPosting)
}

func NewJobHandler(render *Renderer, jobs *repository.JobRepository, gen *generator.Generator, now func() time.Time) *JobHandler {
	return &JobHandler{
		render: render,
		jobs:   jobs,
		gen:    gen,
		now:    now,
		onJobPosted: func(r *http.Request, p form.JobPosting) {
			hlog.FromRequest(r).Info().Str("title", p.Title).Str("company", p.Company).Msg("job posting received")
		},
	}
}

func (h *JobHandler) JobsPage(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	m := modal.Parse(r.URL.Query())
	closeURL := modal.CloseURL(r.URL.Path, r.URL.Query())
	st := session.FromContext(r.Context())

	var selected entity.Job
	if m.Is(modal.JobDetails) || m.Is(modal.JobApply) || m.Is(modal.JobContact) {
		j, err := h.jobs.GetByID(m.ID)
		if err != nil {
			h.render.redirect(w, r, closeURL, "", msgJobNotFound)
			return
		}
		selected = j
	}

	var f interface{}
	switch {
	case m.Is(modal.JobApply):
		if !st.IsAuthenticated() {
			h.render.redirect(w, r, closeURL, "", msgApplyLogin)
			return
		}
		if selected.DeadlinePassed(now) {
			h.render.redirect(w, r, closeURL, "", msgJobClosed)
			return
		}
		app := form.JobApplication{}
		if user, ok := st.User(); ok {
			app.Name = user.Name()
		}
		f = app
	case m.Is(modal.JobContact):
		if selected.DeadlinePassed(now) {
			h.render.redirect(w, r, closeURL, "", msgJobClosed)
			return
		}
		f = form.ContactRecruiter{}
	case m.Is(modal.JobPost):
		if !st.IsAuthenticated() {
			h.render.redirect(w, r, closeURL, "", "Please login to post a job")
			return
		}
		f = form.JobPosting{JobType: form.JobTypes[0]}
	}

	h.show(w, r, now, selected, f, "", http.StatusOK)
}

func (h *JobHandler) show(w http.ResponseWriter, r *http.Request, now time.Time, selected entity.Job, f interface{}, formErr string, status int) {
	q := listing.ParseJobQuery(r.URL.Query())
	data := h.render.view(w, r, "Jobs", modal.JobDetails, modal.JobApply, modal.JobContact, modal.JobPost)
	data["Now"] = now
	data["JobQuery"] = q
	data["Categories"] = listing.JobCategories
	data["Jobs"] = listing.FilterJobs(h.jobs.GetAll(), q)
	data["JobTypes"] = form.JobTypes
	data["Selected"] = selected
	data["Form"] = f
	data["FormError"] = formErr
	h.render.render(w, r, "jobs.html", status, data)
}

// openJob loads the job in the URL and refuses closed postings.
func (h *JobHandler) openJob(w http.ResponseWriter, r *http.Request, now time.Time) (entity.Job, bool) {
	j, err := h.jobs.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		h.render.redirect(w, r, "/jobs", "", msgJobNotFound)
		return entity.Job{}, false
	}
	if j.DeadlinePassed(now) {
		h.render.redirect(w, r, "/jobs", "", msgJobClosed)
		return entity.Job{}, false
	}
	return j, true
}

func (h *JobHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if !session.FromContext(r.Context()).IsAuthenticated() {
		h.render.redirect(w, r, "/jobs", "", msgApplyLogin)
		return
	}
	now := h.now()
	job, ok := h.openJob(w, r, now)
	if !ok {
		return
	}

	fail := func(app form.JobApplication, msg string) {
		app.CV = nil
		pr := asPage(r, "/jobs", modal.JobApply, job.ID)
		h.show(w, pr, now, job, app, msg, http.StatusUnprocessableEntity)
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxApplicationBody)
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			fail(form.JobApplication{}, "File size should be less than 5MB")
			return
		}
		hlog.FromRequest(r).Debug().Err(err).Msg("parse application form")
		fail(form.JobApplication{}, "Please fill in all required fields and upload your CV")
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	var cv *form.Upload
	if files := r.MultipartForm.File["cv"]; len(files) > 0 {
		u, err := form.ReadUpload(files[0])
		if err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("read cv upload")
			fail(form.ParseJobApplication(r.PostForm, nil), "Could not read your CV. Please try again.")
			return
		}
		cv = u
	}

	app := form.ParseJobApplication(r.PostForm, cv)
	if err := app.Validate(); err != nil {
		fail(app, form.Message(err, "Please fill in all required fields and upload your CV"))
		return
	}

	ref := h.gen.Reference("APP")
	hlog.FromRequest(r).Info().
		Str("job_id", job.ID).
		Str("reference", ref).
		Str("cv_type", cv.MIME.String()).
		Int64("cv_size", cv.Size).
		Msg("job application received")

	f := h.render.flash(w, r)
	if err := f.Success(msgApplied); err != nil {
		hlog.FromRequest(r).Warn().Err(err).Msg("save flash")
	}
	h.render.redirect(w, r, listURL(r, "/jobs"), "Your application reference is "+ref+".", "")
}

func (h *JobHandler) Contact(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	job, ok := h.openJob(w, r, now)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form submission", http.StatusBadRequest)
		return
	}
	msg := form.ParseContactRecruiter(r.PostForm)
	if err := msg.Validate(); err != nil {
		pr := asPage(r, "/jobs", modal.JobContact, job.ID)
		h.show(w, pr, now, job, msg, form.Message(err, "Could not send your message"), http.StatusUnprocessableEntity)
		return
	}
	hlog.FromRequest(r).Info().Str("job_id", job.ID).Msg("recruiter message received")
	h.render.redirect(w, r, listURL(r, "/jobs"), msgRecruiterMsg, "")
}

func (h *JobHandler) Post(w http.ResponseWriter, r *http.Request) {
	if !session.FromContext(r.Context()).IsAuthenticated() {
		h.render.redirect(w, r, "/jobs", "", "Please login to post a job")
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad form submission", http.StatusBadRequest)
		return
	}
	now := h.now()
	p := form.ParseJobPosting(r.PostForm)
	if err := p.Validate(now); err != nil {
		pr := asPage(r, "/jobs", modal.JobPost, "")
		h.show(w, pr, now, entity.Job{}, p, form.Message(err, "Could not post the job"), http.StatusUnprocessableEntity)
		return
	}
	h.onJobPosted(r, p)
	h.render.redirect(w, r, listURL(r, "/jobs"), "Job posted successfully!", "")
}
