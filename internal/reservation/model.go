package reservation

import (
	"strings"
	"time"
)

// DateLayout is the ISO calendar date format used by the form.
const DateLayout = "2006-01-02"

// GuestsMore is the guests value for parties above eight.
const GuestsMore = "more"

// Request is the reservation form as submitted by the visitor.
// It is never persisted.
type Request struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email_address"`
	Phone    string `json:"phone" validate:"required,phone_number"`
	Date     string `json:"date" validate:"required,isodate,notpast,within_window"`
	Time     string `json:"time" validate:"required"`
	Guests   string `json:"guests" validate:"required,oneof=1 2 3 4 5 6 7 8 more"`
	Occasion string `json:"occasion"`
	Message  string `json:"message"`
}

// Trimmed returns a copy with surrounding whitespace removed from every field.
func (r Request) Trimmed() Request {
	return Request{
		Name:     strings.TrimSpace(r.Name),
		Email:    strings.TrimSpace(r.Email),
		Phone:    strings.TrimSpace(r.Phone),
		Date:     strings.TrimSpace(r.Date),
		Time:     strings.TrimSpace(r.Time),
		Guests:   strings.TrimSpace(r.Guests),
		Occasion: strings.TrimSpace(r.Occasion),
		Message:  strings.TrimSpace(r.Message),
	}
}

// FieldErrors maps a form field (JSON name) to a readable message.
// An empty map means the request is valid.
type FieldErrors map[string]string

// ValidationError is returned when a submission fails field validation.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "reservation request has invalid fields"
}

// Window is the inclusive range of bookable dates.
type Window struct {
	From time.Time
	To   time.Time
}

// Availability is the slot listing for one date.
type Availability struct {
	Date     string   `json:"date"`
	Weekday  string   `json:"weekday"`
	Lunch    []string `json:"lunch"`
	Dinner   []string `json:"dinner"`
	Times    []string `json:"times"`
	Bookable bool     `json:"bookable"`
}

// Confirmation is returned to the visitor after a successful dispatch.
type Confirmation struct {
	Reference string `json:"reference"`
	Title     string `json:"title"`
	Message   string `json:"message"`
}
