package form

import (
	"archive/zip"
	"bytes"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"alumni/internal/entity"
)

var now = time.Date(2025, 1, 20, 10, 0, 0, 0, time.UTC)

func pdf(t *testing.T, size int64) *Upload {
	t.Helper()
	u, err := NewUpload("cv.pdf", "application/pdf", strings.NewReader("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n"), size)
	if err != nil {
		t.Fatalf("NewUpload() error = %v", err)
	}
	return u
}

func docx(t *testing.T) *Upload {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip create: %v", err)
		}
		_, _ = w.Write([]byte("<xml/>"))
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	u, err := NewUpload("cv.docx", "", bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("NewUpload() error = %v", err)
	}
	return u
}

func message(err error) string {
	return Message(err, "<not a validation error>")
}

func TestJobApplication(t *testing.T) {
	text, err := NewUpload("cv.txt", "text/plain", strings.NewReader("just some plain text"), 20)
	if err != nil {
		t.Fatalf("NewUpload() error = %v", err)
	}

	tests := []struct {
		name string
		app  JobApplication
		want string
	}{
		{"valid pdf", JobApplication{Name: "Ayesha", Qualification: "BS CS", CV: pdf(t, 1024)}, ""},
		{"valid docx", JobApplication{Name: "Ayesha", Qualification: "BS CS", CV: docx(t)}, ""},
		{"missing cv", JobApplication{Name: "Ayesha", Qualification: "BS CS"}, "Please fill in all required fields and upload your CV"},
		{"missing name", JobApplication{Qualification: "BS CS", CV: pdf(t, 10)}, "Please fill in all required fields and upload your CV"},
		{"plain text cv", JobApplication{Name: "Ayesha", Qualification: "BS CS", CV: text}, "Please upload a PDF or Word document"},
		{"exactly 5MB", JobApplication{Name: "Ayesha", Qualification: "BS CS", CV: pdf(t, MaxCVSize)}, ""},
		{"over 5MB", JobApplication{Name: "Ayesha", Qualification: "BS CS", CV: pdf(t, MaxCVSize+1)}, "File size should be less than 5MB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.app.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if got := message(err); got != tt.want {
				t.Fatalf("Validate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseJobApplicationTrims(t *testing.T) {
	app := ParseJobApplication(url.Values{"name": {"   "}, "qualification": {" MBA "}}, pdf(t, 10))
	if app.Qualification != "MBA" {
		t.Fatalf("Qualification = %q", app.Qualification)
	}
	if got := message(app.Validate()); got != msgApplicationRequired {
		t.Fatalf("blank name accepted: %q", got)
	}
}

func TestEventRegistration(t *testing.T) {
	open := entity.Event{
		Start:                now.AddDate(0, 1, 0),
		End:                  now.AddDate(0, 1, 0).Add(time.Hour),
		Capacity:             10,
		RegisteredCount:      3,
		RegistrationDeadline: now.AddDate(0, 0, 20),
	}
	full := open
	full.RegisteredCount = 10

	valid := EventRegistration{Name: "Ali", Email: "ali@example.com", Phone: "0300"}
	if err := valid.Validate(open, now); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if got := message(valid.Validate(full, now)); got != "Registration is closed for this event" {
		t.Fatalf("full event = %q", got)
	}

	bad := valid
	bad.Email = "not-an-email"
	if got := message(bad.Validate(open, now)); got != "Please enter a valid email address" {
		t.Fatalf("bad email = %q", got)
	}
	if got := message(EventRegistration{}.Validate(open, now)); got != "Please fill in your name, email and phone number" {
		t.Fatalf("empty form = %q", got)
	}
}

func TestEventIdea(t *testing.T) {
	idea := ParseEventIdea(url.Values{
		"title":        {"Alumni Hackathon"},
		"description":  {"A weekend of building"},
		"type":         {"workshop"},
		"proposedDate": {"2025-03-01"},
	})
	if err := idea.Validate(now); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	today := idea
	today.ProposedDate = "2025-01-20"
	if err := today.Validate(now); err != nil {
		t.Fatalf("today should be allowed: %v", err)
	}

	past := idea
	past.ProposedDate = "2025-01-19"
	if got := message(past.Validate(now)); got != "The proposed date cannot be in the past" {
		t.Fatalf("past date = %q", got)
	}

	garbled := idea
	garbled.ProposedDate = "next spring"
	var ve *ValidationError
	if err := garbled.Validate(now); !errors.As(err, &ve) || ve.Field != "proposedDate" {
		t.Fatalf("garbled date error = %v", err)
	}
}

func TestJobPosting(t *testing.T) {
	p := ParseJobPosting(url.Values{
		"title":       {"Backend Engineer"},
		"company":     {"Acme"},
		"location":    {"Remote"},
		"jobType":     {"Full-time"},
		"category":    {"Technology"},
		"description": {"Go services"},
		"deadline":    {"2025-02-01"},
		"salaryMin":   {"100000"},
		"salaryMax":   {"90000"},
	})
	if got := message(p.Validate(now)); got != "Maximum salary must not be below the minimum" {
		t.Fatalf("salary order = %q", got)
	}
	p.SalaryMax = 0
	if err := p.Validate(now); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	p.JobType = "Gig"
	if got := message(p.Validate(now)); got != "Please choose a valid job type" {
		t.Fatalf("job type = %q", got)
	}
}

func TestMembershipRegistration(t *testing.T) {
	m := ParseMembershipRegistration(url.Values{"name": {"Sara"}, "email": {"sara@example.com"}, "tier": {"Premium"}})
	tier, err := m.Validate()
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if tier.Key != "premium" || tier.Price != "$50" {
		t.Fatalf("tier = %+v", tier)
	}

	m.Tier = "platinum"
	if _, err := m.Validate(); message(err) != "Please choose Basic, Premium or Lifetime membership" {
		t.Fatalf("unknown tier = %v", err)
	}
	m.Tier = ""
	if _, err := m.Validate(); message(err) != "Please fill in your name, email and membership type" {
		t.Fatalf("missing tier = %v", err)
	}
}

func TestValidateProfile(t *testing.T) {
	v := url.Values{
		"firstName": {"New"},
		"lastName":  {"Grad"},
		"email":     {"new@namal.edu.pk"},
		"password":  {"secret1"},
	}
	p := ParseProfile(v)
	if err := ValidateProfile(p, "secret1"); err != nil {
		t.Fatalf("ValidateProfile() error = %v", err)
	}
	if got := message(ValidateProfile(p, "secret2")); got != "Passwords do not match" {
		t.Fatalf("mismatch = %q", got)
	}
	p.Password = "abc"
	if got := message(ValidateProfile(p, "abc")); got != "Password must be at least 6 characters" {
		t.Fatalf("short password = %q", got)
	}
	if err := ValidateLogin("", "x"); err == nil {
		t.Fatalf("ValidateLogin accepted an empty email")
	}
}

func TestContactForms(t *testing.T) {
	if err := ParseContactRecruiter(url.Values{"message": {"  "}}).Validate(); err == nil {
		t.Fatalf("blank recruiter message accepted")
	}
	c := ParseContactMessage(url.Values{"name": {"A"}, "email": {"a@b.co"}, "subject": {"Hi"}, "message": {"Hello"}})
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}
