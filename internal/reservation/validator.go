package reservation

import (
	"context"
	"errors"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[(]?[0-9]{3}[)]?[-\s.]?[0-9]{3}[-\s.]?[0-9]{4,6}$`)
)

// bookingMonths is how far ahead a table can be requested.
const bookingMonths = 3

var (
	validate = NewValidator()
	messages = i18n.MustLoad()
)

type todayKey struct{}

// NewValidator returns a validator with the site's field rules registered:
// email_address, phone_number, isodate, notpast and within_window.
// Field names in errors are the JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v.RegisterValidation("email_address", func(fl validator.FieldLevel) bool {
		return ValidEmail(fl.Field().String())
	}))
	mustRegister(v.RegisterValidation("phone_number", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	}))
	mustRegister(v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	}))
	mustRegister(v.RegisterValidationCtx("notpast", func(ctx context.Context, fl validator.FieldLevel) bool {
		date, err := ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return !date.Before(BookingWindow(todayFrom(ctx)).From)
	}))
	mustRegister(v.RegisterValidationCtx("within_window", func(ctx context.Context, fl validator.FieldLevel) bool {
		date, err := ParseDate(fl.Field().String())
		if err != nil {
			return false
		}
		return !date.After(BookingWindow(todayFrom(ctx)).To)
	}))

	v.RegisterStructValidationCtx(timeSlotRule, Request{})

	return v
}

func mustRegister(err error) {
	if err != nil {
		panic(err)
	}
}

// ValidEmail reports whether s looks like local@domain.tld.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ParseDate reads an ISO calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// BookingWindow is [today, today + 3 months], both ends inclusive.
func BookingWindow(today time.Time) Window {
	from := calendarDay(today)
	return Window{From: from, To: from.AddDate(0, bookingMonths, 0)}
}

// Contains reports whether date falls inside the window.
func (w Window) Contains(date time.Time) bool {
	d := calendarDay(date)
	return !d.Before(w.From) && !d.After(w.To)
}

// TodayIn is the calendar date of t as seen in loc.
func TodayIn(t time.Time, loc *time.Location) time.Time {
	return calendarDay(t.In(loc))
}

// calendarDay drops the clock and zone, keeping the date as seen in t's zone.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func todayFrom(ctx context.Context) time.Time {
	if today, ok := ctx.Value(todayKey{}).(time.Time); ok {
		return today
	}
	return time.Now()
}

// The time must be one of the slots generated for the chosen date.
// Blank times and unreadable dates are reported by their own field rules.
func timeSlotRule(ctx context.Context, sl validator.StructLevel) {
	req := sl.Current().Interface().(Request)
	if req.Time == "" {
		return
	}

	date, err := ParseDate(req.Date)
	if err != nil {
		return
	}

	if !slices.Contains(AvailableTimes(date), req.Time) {
		sl.ReportError(req.Time, "time", "Time", "slot", "")
	}
}

var messageKeys = map[string]map[string]i18n.Key{
	"name": {
		"required": i18n.ValidationNameRequired,
	},
	"email": {
		"required":      i18n.ValidationEmailRequired,
		"email_address": i18n.ValidationEmailInvalid,
	},
	"phone": {
		"required":     i18n.ValidationPhoneRequired,
		"phone_number": i18n.ValidationPhoneInvalid,
	},
	"date": {
		"required":      i18n.ValidationDateRequired,
		"isodate":       i18n.ValidationDateInvalid,
		"notpast":       i18n.ValidationDatePast,
		"within_window": i18n.ValidationDateTooFar,
	},
	"time": {
		"required": i18n.ValidationTimeRequired,
		"slot":     i18n.ValidationTimeUnavailable,
	},
	"guests": {
		"required": i18n.ValidationGuestsRequired,
		"oneof":    i18n.ValidationGuestsInvalid,
	},
}

// Check evaluates every field rule against req as of today and returns the
// failing fields with their message keys. All rules run; nothing short
// circuits across fields.
func Check(req Request, today time.Time) map[string]i18n.Key {
	issues := make(map[string]i18n.Key)

	ctx := context.WithValue(context.Background(), todayKey{}, today)
	err := validate.StructCtx(ctx, req.Trimmed())
	if err == nil {
		return issues
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return issues
	}

	for _, fe := range verrs {
		if _, seen := issues[fe.Field()]; seen {
			continue
		}
		if key, ok := messageKeys[fe.Field()][fe.Tag()]; ok {
			issues[fe.Field()] = key
		}
	}
	return issues
}

// Validate returns the English field errors for req as of today.
func Validate(req Request, today time.Time) FieldErrors {
	return ValidateIn(req, today, messages, i18n.English)
}

// ValidateIn is Validate with messages from bundle in locale.
func ValidateIn(req Request, today time.Time, bundle *i18n.Bundle, locale i18n.Locale) FieldErrors {
	issues := Check(req, today)

	errs := make(FieldErrors, len(issues))
	for field, key := range issues {
		errs[field] = bundle.T(locale, key)
	}
	return errs
}
