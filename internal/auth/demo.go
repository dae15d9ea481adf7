package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"alumni/internal/entity"
)

// Account is one row of the fixed demo table.
type Account struct {
	User     entity.User
	Password string
}

type demoAccount struct {
	user entity.User
	hash []byte
}

// DemoDirectory checks credentials against a fixed table and waits a fixed
// delay before answering, standing in for a network round trip.
type DemoDirectory struct {
	accounts      []demoAccount
	loginDelay    time.Duration
	registerDelay time.Duration
}

func NewDemoDirectory(accounts []Account, loginDelay, registerDelay time.Duration) (*DemoDirectory, error) {
	d := &DemoDirectory{loginDelay: loginDelay, registerDelay: registerDelay}
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password for %s: %w", a.User.Email, err)
		}
		d.accounts = append(d.accounts, demoAccount{user: a.User, hash: hash})
	}
	return d, nil
}

func (d *DemoDirectory) Verify(ctx context.Context, email, password string) (entity.User, error) {
	if err := wait(ctx, d.loginDelay); err != nil {
		return entity.User{}, err
	}
	acc, ok := d.lookup(email)
	if !ok {
		return entity.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acc.hash, []byte(password)); err != nil {
		return entity.User{}, ErrInvalidCredentials
	}
	return acc.user, nil
}

// Register never adds to the table: a new member only exists in the
// session that created it.
func (d *DemoDirectory) Register(ctx context.Context, p entity.Profile) (entity.User, error) {
	if err := wait(ctx, d.registerDelay); err != nil {
		return entity.User{}, err
	}
	if _, ok := d.lookup(p.Email); ok {
		return entity.User{}, ErrEmailAlreadyRegistered
	}
	return entity.User{
		ID:             strconv.Itoa(len(d.accounts) + 1),
		FirstName:      strings.TrimSpace(p.FirstName),
		LastName:       strings.TrimSpace(p.LastName),
		Email:          p.Email,
		GraduationYear: p.GraduationYear,
		DegreeProgram:  strings.TrimSpace(p.DegreeProgram),
		MembershipType: "Basic",
	}, nil
}

// lookup matches the address exactly as typed.
func (d *DemoDirectory) lookup(email string) (demoAccount, bool) {
	for _, acc := range d.accounts {
		if acc.user.Email == email {
			return acc, true
		}
	}
	return demoAccount{}, false
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// DemoAccounts is the table the binary ships with.
func DemoAccounts() []Account {
	return []Account{
		{
			User: entity.User{
				ID:             "1",
				FirstName:      "John",
				LastName:       "Doe",
				Email:          "demo@namal.edu.pk",
				GraduationYear: 2020,
				DegreeProgram:  "Computer Science",
				MembershipType: "Premium",
			},
			Password: "demo123",
		},
		{
			User: entity.User{
				ID:             "2",
				FirstName:      "Jane",
				LastName:       "Smith",
				Email:          "admin@namal.edu.pk",
				GraduationYear: 2019,
				DegreeProgram:  "Business Administration",
				MembershipType: "Lifetime",
			},
			Password: "admin123",
		},
	}
}
