package reservation

import (
	"strconv"
	"strings"
	"time"
)

// Reservation is a time-bounded booking of one court by one requester.
// Date is a UTC midnight calendar day; StartTime and EndTime are 24-hour
// wall-clock strings ("HH:mm") within that day.
type Reservation struct {
	ID                 int64
	CourtID            int64
	CourtName          string // populated on joined reads
	Name               string
	Email              string
	Date               time.Time
	StartTime          string
	EndTime            string
	Status             Status
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// StartHour returns the hour component of StartTime, or -1 if malformed.
func (r *Reservation) StartHour() int {
	return hourOf(r.StartTime)
}

// EndHour returns the hour component of EndTime, or -1 if malformed.
func (r *Reservation) EndHour() int {
	return hourOf(r.EndTime)
}

// DurationHours is the booked length in hours, end minus start.
func (r *Reservation) DurationHours() float64 {
	start, ok1 := minutesOf(r.StartTime)
	end, ok2 := minutesOf(r.EndTime)
	if !ok1 || !ok2 {
		return 0
	}
	return float64(end-start) / 60.0
}

// Covers reports whether this reservation occupies the given hour slot.
// Cancelled reservations never cover anything.
func (r *Reservation) Covers(hour int) bool {
	if r.Status == StatusCancelled {
		return false
	}
	return hour >= r.StartHour() && hour < r.EndHour()
}

func hourOf(t string) int {
	m, ok := minutesOf(t)
	if !ok {
		return -1
	}
	return m / 60
}

func minutesOf(t string) (int, bool) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return h*60 + m, true
}
