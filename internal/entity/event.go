package entity

import "time"

// PlaceholderImage is shown when an event or story has no usable picture.
const PlaceholderImage = "https://images.pexels.com/photos/1190298/pexels-photo-1190298.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1"

type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
}

type Image struct {
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	IsPrimary bool   `json:"isPrimary"`
}

type Organizer struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
}

type Fee struct {
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
}

type Feedback struct {
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// Event is a fixture event. Past/open/spots are never stored: they are
// derived from Start, End, RegistrationDeadline and the counts on every read.
type Event struct {
	ID                   string     `json:"_id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	ShortDescription     string     `json:"shortDescription,omitempty"`
	Start                time.Time  `json:"start"`
	End                  time.Time  `json:"end"`
	Location             string     `json:"location"`
	Venue                *Venue     `json:"venue,omitempty"`
	Type                 string     `json:"type"`
	Category             string     `json:"category"`
	Capacity             int        `json:"capacity"`
	RegisteredCount      int        `json:"registeredCount"`
	IsVirtual            bool       `json:"isVirtual"`
	MeetingLink          string     `json:"meetingLink,omitempty"`
	Images               []Image    `json:"images"`
	Organizer            Organizer  `json:"organizer"`
	Benefits             []string   `json:"benefits"`
	Tags                 []string   `json:"tags"`
	RegistrationFee      Fee        `json:"registrationFee"`
	RegistrationDeadline time.Time  `json:"registrationDeadline"`
	Feedback             []Feedback `json:"feedback"`
	CreatedAt            time.Time  `json:"createdAt"`
}

// IsPast reports whether the event has already finished at now.
func (e Event) IsPast(now time.Time) bool {
	return e.End.Before(now)
}

func (e Event) SpotsRemaining() int {
	if n := e.Capacity - e.RegisteredCount; n > 0 {
		return n
	}
	return 0
}

// IsRegistrationOpen: not past, deadline day not over, and seats left.
func (e Event) IsRegistrationOpen(now time.Time) bool {
	if e.IsPast(now) || e.SpotsRemaining() == 0 {
		return false
	}
	if e.RegistrationDeadline.IsZero() {
		return true
	}
	return now.Before(e.RegistrationDeadline.AddDate(0, 0, 1))
}

func (e Event) AverageRating() float64 {
	if len(e.Feedback) == 0 {
		return 0
	}
	sum := 0
	for _, f := range e.Feedback {
		sum += f.Rating
	}
	return float64(sum) / float64(len(e.Feedback))
}

func (e Event) PrimaryImage() string {
	for _, img := range e.Images {
		if img.IsPrimary && img.URL != "" {
			return img.URL
		}
	}
	if len(e.Images) > 0 && e.Images[0].URL != "" {
		return e.Images[0].URL
	}
	return PlaceholderImage
}

// DisplayLocation hides the physical address of virtual events.
func (e Event) DisplayLocation() string {
	if e.IsVirtual {
		return "Virtual Event"
	}
	return e.Location
}
