package booking

import (
	"regexp"
	"strings"
)

const (
	MaxNameLength    = 255
	MaxCompanyLength = 255
	MaxPurposeLength = 2000
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 \-()]{6,19}$`)
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

// Contact identifies the person making the booking.
type Contact struct {
	fullName    string
	email       string
	phone       string
	companyName string
}

func NewContact(fullName, email, phone, companyName string) (Contact, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return Contact{}, ErrEmptyFullName
	}
	if len(fullName) > MaxNameLength {
		return Contact{}, ErrFieldTooLong
	}

	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Contact{}, ErrInvalidEmail
	}

	phone = strings.TrimSpace(phone)
	if !phoneRegex.MatchString(phone) {
		return Contact{}, ErrInvalidPhone
	}

	companyName = strings.TrimSpace(companyName)
	if len(companyName) > MaxCompanyLength {
		return Contact{}, ErrFieldTooLong
	}

	return Contact{
		fullName:    fullName,
		email:       email,
		phone:       phone,
		companyName: companyName,
	}, nil
}

func (c Contact) FullName() string    { return c.fullName }
func (c Contact) Email() string       { return c.email }
func (c Contact) Phone() string       { return c.phone }
func (c Contact) CompanyName() string { return c.companyName }

type Purpose struct {
	value string
}

func NewPurpose(s string) (Purpose, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Purpose{}, ErrEmptyPurpose
	}
	if len(s) > MaxPurposeLength {
		return Purpose{}, ErrFieldTooLong
	}
	return Purpose{value: s}, nil
}

func (p Purpose) String() string {
	return p.value
}
