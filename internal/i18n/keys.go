package i18n

// Key identifies one translated string. The set is closed: every Key must
// be present in every locale table, which Load verifies.
type Key int

const (
	NavHome Key = iota
	NavAbout
	NavMenu
	NavGallery
	NavContact
	NavReserveTable

	MenuFilterSearch
	MenuFilterDietary
	MenuFilterSpiceLevel
	MenuFilterPrice
	MenuFilterNoResults
	MenuTabMeat
	MenuTabVegetarian

	ReservationFormName
	ReservationFormEmail
	ReservationFormPhone
	ReservationFormDate
	ReservationFormTime
	ReservationFormGuests
	ReservationFormGuestSingular
	ReservationFormGuestPlural
	ReservationFormMoreThan8
	ReservationFormOccasion
	ReservationFormMessage
	ReservationFormSubmit
	ReservationLunchService
	ReservationDinnerService
	ReservationFormSuccess
	ReservationFormSuccessDescription
	ReservationDispatchFailed
	ReservationDispatchFailedDescription
	ReservationInFlight
	ReservationOccasionNotSpecified
	ReservationNoMessage

	ValidationNameRequired
	ValidationEmailRequired
	ValidationEmailInvalid
	ValidationPhoneRequired
	ValidationPhoneInvalid
	ValidationDateRequired
	ValidationDateInvalid
	ValidationDatePast
	ValidationDateTooFar
	ValidationTimeRequired
	ValidationTimeUnavailable
	ValidationGuestsRequired
	ValidationGuestsInvalid
	ValidationSubjectRequired
	ValidationMessageRequired

	ContactFormSuccess

	keyCount
)

var keyNames = [keyCount]string{
	NavHome:         "nav.home",
	NavAbout:        "nav.about",
	NavMenu:         "nav.menu",
	NavGallery:      "nav.gallery",
	NavContact:      "nav.contact",
	NavReserveTable: "nav.reserveTable",

	MenuFilterSearch:     "menu.filter.search",
	MenuFilterDietary:    "menu.filter.dietary",
	MenuFilterSpiceLevel: "menu.filter.spiceLevel",
	MenuFilterPrice:      "menu.filter.price",
	MenuFilterNoResults:  "menu.filter.noResults",
	MenuTabMeat:          "menu.tabs.meat",
	MenuTabVegetarian:    "menu.tabs.vegetarian",

	ReservationFormName:                  "reservation.form.name",
	ReservationFormEmail:                 "reservation.form.email",
	ReservationFormPhone:                 "reservation.form.phone",
	ReservationFormDate:                  "reservation.form.date",
	ReservationFormTime:                  "reservation.form.time",
	ReservationFormGuests:                "reservation.form.guests",
	ReservationFormGuestSingular:         "reservation.form.guestSingular",
	ReservationFormGuestPlural:           "reservation.form.guestPlural",
	ReservationFormMoreThan8:             "reservation.form.moreThan8",
	ReservationFormOccasion:              "reservation.form.occasion",
	ReservationFormMessage:               "reservation.form.message",
	ReservationFormSubmit:                "reservation.form.submit",
	ReservationLunchService:              "reservation.lunchService",
	ReservationDinnerService:             "reservation.dinnerService",
	ReservationFormSuccess:               "reservation.formSuccess",
	ReservationFormSuccessDescription:    "reservation.formSuccessDescription",
	ReservationDispatchFailed:            "reservation.dispatchFailed",
	ReservationDispatchFailedDescription: "reservation.dispatchFailedDescription",
	ReservationInFlight:                  "reservation.inFlight",
	ReservationOccasionNotSpecified:      "reservation.occasionNotSpecified",
	ReservationNoMessage:                 "reservation.noMessage",

	ValidationNameRequired:    "validation.nameRequired",
	ValidationEmailRequired:   "validation.emailRequired",
	ValidationEmailInvalid:    "validation.emailInvalid",
	ValidationPhoneRequired:   "validation.phoneRequired",
	ValidationPhoneInvalid:    "validation.phoneInvalid",
	ValidationDateRequired:    "validation.dateRequired",
	ValidationDateInvalid:     "validation.dateInvalid",
	ValidationDatePast:        "validation.datePast",
	ValidationDateTooFar:      "validation.dateTooFar",
	ValidationTimeRequired:    "validation.timeRequired",
	ValidationTimeUnavailable: "validation.timeUnavailable",
	ValidationGuestsRequired:  "validation.guestsRequired",
	ValidationGuestsInvalid:   "validation.guestsInvalid",
	ValidationSubjectRequired: "validation.subjectRequired",
	ValidationMessageRequired: "validation.messageRequired",

	ContactFormSuccess: "contact.formSuccess",
}

var keysByName = func() map[string]Key {
	m := make(map[string]Key, keyCount)
	for k, name := range keyNames {
		m[name] = Key(k)
	}
	return m
}()

// String returns the dotted name used in the locale tables.
func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "i18n.unknown"
	}
	return keyNames[k]
}

// ParseKey maps a dotted name back to its Key.
func ParseKey(name string) (Key, bool) {
	k, ok := keysByName[name]
	return k, ok
}

// Keys lists every key in declaration order.
func Keys() []Key {
	keys := make([]Key, keyCount)
	for i := range keys {
		keys[i] = Key(i)
	}
	return keys
}
