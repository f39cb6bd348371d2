package reservation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lucsky/cuid"
	"github.com/rs/zerolog"

	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
)

var ErrInvalidDate = errors.New("date must be YYYY-MM-DD")

// Clock returns the current instant.
type Clock func() time.Time

type Service struct {
	dispatcher Dispatcher
	guard      *Guard
	bundle     *i18n.Bundle
	loc        *time.Location
	now        Clock
	log        zerolog.Logger
}

type Option func(*Service)

// WithClock replaces time.Now.
func WithClock(now Clock) Option {
	return func(s *Service) { s.now = now }
}

// WithLocation sets the zone "today" is computed in.
func WithLocation(loc *time.Location) Option {
	return func(s *Service) { s.loc = loc }
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Service) { s.log = log }
}

func WithBundle(bundle *i18n.Bundle) Option {
	return func(s *Service) { s.bundle = bundle }
}

func NewService(dispatcher Dispatcher, opts ...Option) *Service {
	s := &Service{
		dispatcher: dispatcher,
		guard:      NewGuard(),
		bundle:     messages,
		loc:        time.UTC,
		now:        time.Now,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the current calendar date in the restaurant's zone.
func (s *Service) Today() time.Time {
	return TodayIn(s.now(), s.loc)
}

func (s *Service) Window() Window {
	return BookingWindow(s.Today())
}

// --------------------------------------------------
// Slots for a date, split by sitting
// --------------------------------------------------
func (s *Service) Availability(date string) (*Availability, error) {
	d, err := ParseDate(strings.TrimSpace(date))
	if err != nil {
		return nil, ErrInvalidDate
	}

	a := &Availability{
		Date:     d.Format(DateLayout),
		Weekday:  strings.ToLower(d.Weekday().String()),
		Times:    AvailableTimes(d),
		Bookable: s.Window().Contains(d),
	}
	for _, sitting := range Sittings(d.Weekday()) {
		switch sitting.Name {
		case lunch.Name:
			a.Lunch = sitting.Slots()
		default:
			a.Dinner = sitting.Slots()
		}
	}
	return a, nil
}

// Validate returns the field errors for req in locale.
func (s *Service) Validate(req Request, locale i18n.Locale) FieldErrors {
	return ValidateIn(req, s.Today(), s.bundle, locale)
}

// --------------------------------------------------
// Submit: validate, guard, dispatch
// --------------------------------------------------
func (s *Service) Submit(ctx context.Context, req Request, locale i18n.Locale) (*Confirmation, error) {
	form := Form{Request: req}
	if !form.Validate(s.Today(), s.bundle, locale) {
		return nil, &ValidationError{Fields: form.Errors}
	}

	release, err := s.guard.Acquire(req.Email)
	if err != nil {
		return nil, err
	}
	defer release()

	reference := cuid.Slug()

	ack, err := form.send(ctx, s.dispatcher, reference)
	if err != nil {
		s.log.Error().
			Err(err).
			Str("reference", reference).
			Msg("reservation dispatch failed")
		return nil, err
	}

	s.log.Info().
		Str("reference", reference).
		Str("dispatcher", ack.Dispatcher).
		Str("date", req.Date).
		Str("time", req.Time).
		Msg("reservation request sent")

	return &Confirmation{
		Reference: reference,
		Title:     s.bundle.T(locale, i18n.ReservationFormSuccess),
		Message:   s.bundle.T(locale, i18n.ReservationFormSuccessDescription),
	}, nil
}
