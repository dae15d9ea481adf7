package repository

import (
	"errors"
	"testing"
	"time"
)

var pkt = time.FixedZone("PKT", 5*60*60)

func TestEventFixtures(t *testing.T) {
	repo, err := NewEventRepository(pkt, time.Time{})
	if err != nil {
		t.Fatalf("NewEventRepository() error = %v", err)
	}
	events := repo.GetAll()
	if len(events) != 10 {
		t.Fatalf("got %d events, want 10", len(events))
	}

	winter, err := repo.GetByID("5")
	if err != nil {
		t.Fatalf("GetByID(5) error = %v", err)
	}
	if winter.Title != "Winter Alumni Meetup 2024" || winter.Capacity != 300 || winter.RegisteredCount != 245 {
		t.Fatalf("unexpected event 5: %+v", winter)
	}
	wantStart := time.Date(2024, 12, 15, 14, 0, 0, 0, pkt)
	if !winter.Start.Equal(wantStart) || !winter.End.Equal(wantStart.Add(3*time.Hour)) {
		t.Fatalf("event 5 runs %v to %v", winter.Start, winter.End)
	}

	seminar, _ := repo.GetByID("10")
	if seminar.Description != "" || seminar.ShortDescription == "" {
		t.Fatalf("event 10 descriptions = %q / %q", seminar.Description, seminar.ShortDescription)
	}

	workshop, _ := repo.GetByID("2")
	if !workshop.IsVirtual || !workshop.RegistrationDeadline.Equal(time.Date(2025, 2, 18, 0, 0, 0, 0, pkt)) {
		t.Fatalf("unexpected event 2: %+v", workshop)
	}

	var nf *NotFoundError
	if _, err := repo.GetByID("99"); !errors.As(err, &nf) || nf.Kind != "event" {
		t.Fatalf("GetByID(99) error = %v", err)
	}
}

func TestEventRepositoryReturnsCopies(t *testing.T) {
	repo, err := NewEventRepository(pkt, time.Time{})
	if err != nil {
		t.Fatalf("NewEventRepository() error = %v", err)
	}
	first := repo.GetAll()
	first[0].Title = "changed"
	first[0].Tags[0] = "changed"
	first[0].Venue.City = "changed"

	again, _ := repo.GetByID(first[0].ID)
	if again.Title == "changed" || again.Tags[0] == "changed" || again.Venue.City == "changed" {
		t.Fatalf("fixture was mutated through a returned copy: %+v", again)
	}
}

func TestUpcoming(t *testing.T) {
	repo, err := NewEventRepository(pkt, time.Time{})
	if err != nil {
		t.Fatalf("NewEventRepository() error = %v", err)
	}
	now := time.Date(2025, 1, 20, 10, 0, 0, 0, pkt)
	got := repo.Upcoming(now, 3)
	if len(got) != 3 {
		t.Fatalf("got %d upcoming", len(got))
	}
	if got[0].ID != "2" || got[1].ID != "3" || got[2].ID != "4" {
		t.Fatalf("upcoming order = %s %s %s", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestJobFixtures(t *testing.T) {
	repo, err := NewJobRepository(pkt, time.Time{})
	if err != nil {
		t.Fatalf("NewJobRepository() error = %v", err)
	}
	if n := len(repo.GetAll()); n != 9 {
		t.Fatalf("got %d jobs, want 9", n)
	}
	job, err := repo.GetByID("1")
	if err != nil {
		t.Fatalf("GetByID(1) error = %v", err)
	}
	if job.SalaryText() != "PKR 150,000 - 250,000" {
		t.Fatalf("SalaryText() = %q", job.SalaryText())
	}
	if job.PostedBy.Name() != "Ahmed Khan" || job.ApplicationEmail != "careers@techcorp.com" {
		t.Fatalf("unexpected job 1: %+v", job)
	}
	if job.DeadlinePassed(time.Date(2025, 8, 15, 23, 0, 0, 0, pkt)) {
		t.Fatalf("job should stay open through its deadline day")
	}
	if !job.DeadlinePassed(time.Date(2025, 8, 16, 0, 1, 0, 0, pkt)) {
		t.Fatalf("job should close the day after its deadline")
	}
}

func TestStoryAndAlumniFixtures(t *testing.T) {
	stories, err := NewStoryRepository()
	if err != nil {
		t.Fatalf("NewStoryRepository() error = %v", err)
	}
	bare, err := stories.GetByID("4")
	if err != nil {
		t.Fatalf("GetByID(4) error = %v", err)
	}
	if bare.DisplayTitle() != "Untitled Story" || bare.Body() != "No story available." {
		t.Fatalf("story fallbacks = %q / %q", bare.DisplayTitle(), bare.Body())
	}

	alumni, err := NewAlumniRepository()
	if err != nil {
		t.Fatalf("NewAlumniRepository() error = %v", err)
	}
	if len(alumni.GetAll()) != 8 {
		t.Fatalf("got %d alumni", len(alumni.GetAll()))
	}
}

func TestFixturesFollowLoadDay(t *testing.T) {
	now := time.Date(2026, 10, 19, 9, 30, 0, 0, pkt)

	events, err := NewEventRepository(pkt, now)
	if err != nil {
		t.Fatalf("NewEventRepository() error = %v", err)
	}
	upcoming := events.Upcoming(now, 0)
	if len(upcoming) != 4 {
		t.Fatalf("got %d upcoming events on the load day, want 4", len(upcoming))
	}
	if !upcoming[0].IsRegistrationOpen(now) {
		t.Fatalf("soonest event %s should take registrations", upcoming[0].ID)
	}

	reunion, _ := events.GetByID("1")
	// written as 2025-06-15 10:00, 134 days after the epoch
	wantStart := time.Date(2026, 10, 19, 10, 0, 0, 0, pkt).AddDate(0, 0, 134)
	if !reunion.Start.Equal(wantStart) {
		t.Fatalf("event 1 starts %v, want %v", reunion.Start, wantStart)
	}

	jobs, err := NewJobRepository(pkt, now)
	if err != nil {
		t.Fatalf("NewJobRepository() error = %v", err)
	}
	for _, j := range jobs.GetAll() {
		if j.DeadlinePassed(now) {
			t.Fatalf("job %s closed on the load day", j.ID)
		}
	}
}
