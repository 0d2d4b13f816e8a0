package reservation

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	icalSummary  = "Padel Court Reservation"
	icalLocation = "4Locos Padel"

	// iCalendar "basic" UTC timestamp, RFC 5545 date-time form 2.
	icalTimeLayout = "20060102T150405Z"
)

// buildCalendarInvite renders a single-VEVENT VCALENDAR for a reservation.
// Timestamps are UTC; the date carries the day, start/end the wall clock.
func buildCalendarInvite(courtName string, start, end, now time.Time) string {
	var b strings.Builder

	line := func(s string) {
		b.WriteString(s)
		b.WriteString("\r\n")
	}

	line("BEGIN:VCALENDAR")
	line("VERSION:2.0")
	line("PRODID:-//4Locos Padel//Reservations//EN")
	line("METHOD:REQUEST")
	line("BEGIN:VEVENT")
	line("UID:" + uuid.NewString())
	line("DTSTAMP:" + now.UTC().Format(icalTimeLayout))
	line("DTSTART:" + start.UTC().Format(icalTimeLayout))
	line("DTEND:" + end.UTC().Format(icalTimeLayout))
	line("SUMMARY:" + icalSummary)
	line(fmt.Sprintf("DESCRIPTION:Reservation for %s", courtName))
	line("LOCATION:" + icalLocation)
	line("END:VEVENT")
	line("END:VCALENDAR")

	return b.String()
}

// eventTime combines the reservation day with a wall-clock "HH:mm" string
// into a concrete UTC instant.
func eventTime(date time.Time, wallClock string) (time.Time, error) {
	t, err := time.Parse("15:04", wallClock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", wallClock, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}
