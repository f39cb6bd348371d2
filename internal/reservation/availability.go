package reservation

import (
	"fmt"
	"time"
)

const slotStep = 30

// Sitting is one service window of the day. First and Last are the first
// and last bookable slot, in minutes after midnight.
type Sitting struct {
	Name  string
	First int
	Last  int
}

var lunch = Sitting{Name: "lunch", First: 12 * 60, Last: 14*60 + 30}

// Sittings returns the service windows for a weekday: lunch every day,
// dinner from 18:00 until 22:00, or 23:00 on Friday and Saturday.
func Sittings(day time.Weekday) []Sitting {
	dinner := Sitting{Name: "dinner", First: 18 * 60, Last: 22 * 60}
	if day == time.Friday || day == time.Saturday {
		dinner.Last = 23 * 60
	}
	return []Sitting{lunch, dinner}
}

// Slots lists the half-hour slots of the sitting as "HH:MM".
func (s Sitting) Slots() []string {
	slots := make([]string, 0, (s.Last-s.First)/slotStep+1)
	for m := s.First; m <= s.Last; m += slotStep {
		slots = append(slots, formatClock(m))
	}
	return slots
}

// AvailableTimes returns the bookable slots for date: the lunch slots
// followed by the dinner slots, ascending and without duplicates.
func AvailableTimes(date time.Time) []string {
	var times []string
	for _, s := range Sittings(date.Weekday()) {
		times = append(times, s.Slots()...)
	}
	return times
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
