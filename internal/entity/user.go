package entity

import "strings"

type User struct {
	ID             string `json:"_id"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	GraduationYear int    `json:"graduationYear,omitempty"`
	DegreeProgram  string `json:"degreeProgram,omitempty"`
	Role           string `json:"role,omitempty"`
	MembershipType string `json:"membershipType,omitempty"`
}

func (u User) Name() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Initial is the first letter of the first name, used by the navbar avatar.
func (u User) Initial() string {
	for _, r := range u.FirstName {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// Profile is what a visitor submits on the sign-up form.
type Profile struct {
	FirstName      string `form:"firstName" validate:"required"`
	LastName       string `form:"lastName" validate:"required"`
	Email          string `form:"email" validate:"required,email"`
	Password       string `form:"password" validate:"required,min=6"`
	GraduationYear int    `form:"graduationYear" validate:"omitempty,gte=1950,lte=2100"`
	DegreeProgram  string `form:"degreeProgram"`
}
