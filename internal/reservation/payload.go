package reservation

import (
	"fmt"

	"github.com/Eyobiel-12/savannaeetcafe/internal/i18n"
)

// Payload kinds. Each kind maps to its own mail template.
const (
	KindReservation = "reservation"
	KindContact     = "contact"
)

// Payload is the flat set of template parameters handed to a Dispatcher.
type Payload map[string]string

func (p Payload) Kind() string { return p["kind"] }
func (p Payload) Reference() string { return p["reference"] }

// BuildPayload formats a validated request for the mail template.
// Empty occasion and message get readable defaults, and guests is sent
// both as display text and raw value ("aantal").
func BuildPayload(req Request, reference string) Payload {
	req = req.Trimmed()

	occasion := req.Occasion
	if occasion == "" {
		occasion = messages.T(i18n.English, i18n.ReservationOccasionNotSpecified)
	}
	message := req.Message
	if message == "" {
		message = messages.T(i18n.English, i18n.ReservationNoMessage)
	}

	return Payload{
		"kind":      KindReservation,
		"reference": reference,
		"name":      req.Name,
		"email":     req.Email,
		"phone":     req.Phone,
		"date":      req.Date,
		"time":      req.Time,
		"guests":    GuestsDisplay(req.Guests),
		"aantal":    req.Guests,
		"occasion":  occasion,
		"message":   message,
	}
}

// GuestsDisplay renders the guests choice: "1 Guest", "4 Guests", or the
// call-us text for parties over eight.
func GuestsDisplay(guests string) string {
	switch guests {
	case GuestsMore:
		return messages.T(i18n.English, i18n.ReservationFormMoreThan8)
	case "1":
		return "1 " + messages.T(i18n.English, i18n.ReservationFormGuestSingular)
	default:
		return fmt.Sprintf("%s %s", guests, messages.T(i18n.English, i18n.ReservationFormGuestPlural))
	}
}
