package booking

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyCustomerName    = errors.New("customer name cannot be empty")
	ErrInvalidCustomerEmail = errors.New("invalid customer email format")
	ErrInvalidCustomerPhone = errors.New("invalid customer phone format")
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	// Indonesian mobile numbers: +62/62/0 prefix followed by 8x.
	phoneRegex    = regexp.MustCompile(`^(\+62|62|0)8[1-9][0-9]{6,9}$`)
	phoneStripper = regexp.MustCompile(`[^0-9+]`)
)

// Customer captures who the booking is for, validated the way the booking
// form validates it.
type Customer struct {
	name  string
	phone string
	email string
}

func NewCustomer(name, phone, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Customer{}, ErrEmptyCustomerName
	}

	phone = phoneStripper.ReplaceAllString(strings.TrimSpace(phone), "")
	if !phoneRegex.MatchString(phone) {
		return Customer{}, ErrInvalidCustomerPhone
	}

	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return Customer{}, ErrInvalidCustomerEmail
	}

	return Customer{name: name, phone: phone, email: email}, nil
}

func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Email() string { return c.email }

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
