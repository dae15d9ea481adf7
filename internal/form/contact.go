package form

import (
	"net/url"

	"alumni/internal/entity"
)

type ContactMessage struct {
	Name    string `form:"name" validate:"required"`
	Email   string `form:"email" validate:"required,email"`
	Subject string `form:"subject" validate:"required"`
	Message string `form:"message" validate:"required"`
}

func ParseContactMessage(v url.Values) ContactMessage {
	return ContactMessage{
		Name:    value(v, "name"),
		Email:   value(v, "email"),
		Subject: value(v, "subject"),
		Message: value(v, "message"),
	}
}

func (c ContactMessage) Validate() error {
	return check(c, map[string]string{
		"email.email": "Please enter a valid email address",
	}, "Please fill in all fields")
}

// MembershipRegistration is the "Join" modal on the membership and
// home pages.
type MembershipRegistration struct {
	Name           string `form:"name" validate:"required"`
	Email          string `form:"email" validate:"required,email"`
	Phone          string `form:"phone"`
	GraduationYear int    `form:"graduationYear" validate:"omitempty,gte=1950,lte=2100"`
	Tier           string `form:"tier" validate:"required"`
}

func ParseMembershipRegistration(v url.Values) MembershipRegistration {
	return MembershipRegistration{
		Name:           value(v, "name"),
		Email:          value(v, "email"),
		Phone:          value(v, "phone"),
		GraduationYear: number(v, "graduationYear"),
		Tier:           value(v, "tier"),
	}
}

func (m MembershipRegistration) Validate() (entity.MembershipTier, error) {
	err := check(m, map[string]string{
		"email.email":        "Please enter a valid email address",
		"graduationYear.gte": "Please enter a valid graduation year",
		"graduationYear.lte": "Please enter a valid graduation year",
	}, "Please fill in your name, email and membership type")
	if err != nil {
		return entity.MembershipTier{}, err
	}
	tier, ok := entity.LookupTier(m.Tier)
	if !ok {
		return entity.MembershipTier{}, &ValidationError{Field: "tier", Message: "Please choose Basic, Premium or Lifetime membership"}
	}
	return tier, nil
}
