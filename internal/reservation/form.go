package reservation

import (
	"context"
	"errors"
	"time"

	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
)

// FormState is where a Form is in its submit cycle.
type FormState int

const (
	FormEditing FormState = iota
	FormSubmitting
	FormSucceeded
	FormFailed
)

func (s FormState) String() string {
	switch s {
	case FormSubmitting:
		return "submitting"
	case FormSucceeded:
		return "succeeded"
	case FormFailed:
		return "failed"
	default:
		return "editing"
	}
}

// Form holds the reservation form between edits: the entered fields, the
// slots offered for the chosen date and the last validation result.
type Form struct {
	Request
	Times  []string
	Errors FieldErrors
	State  FormState
}

// SetDate changes the date. The chosen time is cleared because the slot
// list depends on the weekday; Times is recomputed, or emptied when the
// date cannot be read.
func (f *Form) SetDate(date string) {
	f.Date = date
	f.Time = ""

	d, err := ParseDate(date)
	if err != nil {
		f.Times = nil
		return
	}
	f.Times = AvailableTimes(d)
}

// SetTime picks a slot. The value is checked on submit.
func (f *Form) SetTime(t string) {
	f.Time = t
}

// Validate checks the form as of today with messages from bundle in
// locale, recording the result in Errors.
func (f *Form) Validate(today time.Time, bundle *i18n.Bundle, locale i18n.Locale) bool {
	f.Errors = ValidateIn(f.Request, today, bundle, locale)
	if len(f.Errors) > 0 {
		f.State = FormEditing
		return false
	}
	return true
}

// Submit is SubmitIn with English messages.
func (f *Form) Submit(ctx context.Context, d Dispatcher, reference string, today time.Time) (Ack, error) {
	return f.SubmitIn(ctx, d, reference, today, messages, i18n.English)
}

// SubmitIn validates the form as of today and, when valid, sends it.
// On success every field is cleared. On a dispatch failure the fields are
// left as entered so the visitor can retry.
func (f *Form) SubmitIn(ctx context.Context, d Dispatcher, reference string, today time.Time, bundle *i18n.Bundle, locale i18n.Locale) (Ack, error) {
	if !f.Validate(today, bundle, locale) {
		return Ack{}, &ValidationError{Fields: f.Errors}
	}
	return f.send(ctx, d, reference)
}

// send dispatches a form that already passed Validate.
func (f *Form) send(ctx context.Context, d Dispatcher, reference string) (Ack, error) {
	f.State = FormSubmitting
	ack, err := d.Send(ctx, BuildPayload(f.Request, reference))
	if err != nil {
		f.State = FormFailed
		var derr *DispatchError
		if !errors.As(err, &derr) {
			err = &DispatchError{Dispatcher: "unknown", Err: err}
		}
		return Ack{}, err
	}

	*f = Form{State: FormSucceeded}
	return ack, nil
}
