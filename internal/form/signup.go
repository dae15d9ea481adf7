package form

import (
	"net/url"

	"alumni/internal/entity"
)

// ParseProfile reads the sign-up form. The password is not trimmed.
func ParseProfile(v url.Values) entity.Profile {
	return entity.Profile{
		FirstName:      value(v, "firstName"),
		LastName:       value(v, "lastName"),
		Email:          value(v, "email"),
		Password:       v.Get("password"),
		GraduationYear: number(v, "graduationYear"),
		DegreeProgram:  value(v, "degreeProgram"),
	}
}

// ValidateProfile also checks the password confirmation field.
func ValidateProfile(p entity.Profile, confirm string) error {
	err := check(p, map[string]string{
		"email.email":        "Please enter a valid email address",
		"password.min":       "Password must be at least 6 characters",
		"graduationYear.gte": "Please enter a valid graduation year",
		"graduationYear.lte": "Please enter a valid graduation year",
	}, "Please fill in all required fields")
	if err != nil {
		return err
	}
	if p.Password != confirm {
		return &ValidationError{Field: "confirmPassword", Message: "Passwords do not match"}
	}
	return nil
}

// ValidateLogin only checks presence; the verifier decides the rest.
func ValidateLogin(email, password string) error {
	if email == "" || password == "" {
		return Invalid("Please enter your email and password")
	}
	return nil
}
