package restaurant

import (
	"fmt"
	"strings"
	"time"

	"github.com/Eyobiel-12/savannaeetcafe/internal/reservation"
)

// a sitting stays open for one slot after its last booking
const closingGrace = 30

var week = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

type Service struct {
	info Info
	loc  *time.Location
}

func NewService(info Info, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{info: info, loc: loc}
}

func (s *Service) Info() Info {
	return s.info
}

// --------------------------------------------------
// Opening hours, Monday first, from the booking sittings
// --------------------------------------------------
func (s *Service) Hours() []OpeningHours {
	var hours []OpeningHours
	for _, day := range week {
		for _, sitting := range reservation.Sittings(day) {
			hours = append(hours, OpeningHours{
				Day:     strings.ToLower(day.String()),
				Sitting: sitting.Name,
				Opens:   clock(sitting.First),
				Closes:  clock(sitting.Last + closingGrace),
			})
		}
	}
	return hours
}

// IsOpen reports whether t falls inside a sitting, in the restaurant's zone.
func (s *Service) IsOpen(t time.Time) bool {
	local := t.In(s.loc)
	minute := local.Hour()*60 + local.Minute()

	for _, sitting := range reservation.Sittings(local.Weekday()) {
		if minute >= sitting.First && minute < sitting.Last+closingGrace {
			return true
		}
	}
	return false
}

func clock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
