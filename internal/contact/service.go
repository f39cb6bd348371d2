package contact

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/lucsky/cuid"
	"github.com/rs/zerolog"

	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
)

var validate = reservation.NewValidator()

var messageKeys = map[string]map[string]i18n.Key{
	"name":    {"required": i18n.ValidationNameRequired},
	"email":   {"required": i18n.ValidationEmailRequired, "email_address": i18n.ValidationEmailInvalid},
	"subject": {"required": i18n.ValidationSubjectRequired},
	"message": {"required": i18n.ValidationMessageRequired},
}

type Service struct {
	dispatcher reservation.Dispatcher
	guard      *reservation.Guard
	bundle     *i18n.Bundle
	log        zerolog.Logger
}

func NewService(dispatcher reservation.Dispatcher, bundle *i18n.Bundle, log zerolog.Logger) *Service {
	return &Service{
		dispatcher: dispatcher,
		guard:      reservation.NewGuard(),
		bundle:     bundle,
		log:        log,
	}
}

// Validate returns the failing fields of m with messages in locale.
func (s *Service) Validate(m Message, locale i18n.Locale) reservation.FieldErrors {
	errs := make(reservation.FieldErrors)

	err := validate.Struct(m.Trimmed())
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errs
	}

	for _, fe := range verrs {
		if key, ok := messageKeys[fe.Field()][fe.Tag()]; ok {
			errs[fe.Field()] = s.bundle.T(locale, key)
		}
	}
	return errs
}

// Payload formats m for the contact mail template.
func Payload(m Message, reference string) reservation.Payload {
	m = m.Trimmed()
	return reservation.Payload{
		"kind":      reservation.KindContact,
		"reference": reference,
		"name":      m.Name,
		"email":     m.Email,
		"subject":   m.Subject,
		"message":   m.Message,
	}
}

// --------------------------------------------------
// Send: validate, guard, dispatch
// --------------------------------------------------
func (s *Service) Send(ctx context.Context, m Message, locale i18n.Locale) (string, error) {
	if errs := s.Validate(m, locale); len(errs) > 0 {
		return "", &reservation.ValidationError{Fields: errs}
	}

	release, err := s.guard.Acquire(m.Email)
	if err != nil {
		return "", err
	}
	defer release()

	reference := cuid.Slug()
	if _, err := s.dispatcher.Send(ctx, Payload(m, reference)); err != nil {
		s.log.Error().Err(err).Str("reference", reference).Msg("contact dispatch failed")
		return "", err
	}

	s.log.Info().Str("reference", reference).Msg("contact message sent")
	return reference, nil
}
